package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/txnsuite/estate-reporting/internal/apperrors"
	"github.com/txnsuite/estate-reporting/internal/core/events"
	portssvc "github.com/txnsuite/estate-reporting/internal/core/ports/services"
	"github.com/txnsuite/estate-reporting/internal/handlers"
	"github.com/txnsuite/estate-reporting/internal/middleware"
)

// --- Mock ProjectionService ---
type MockProjectionService struct {
	mock.Mock
}

func (m *MockProjectionService) Apply(ctx context.Context, env events.Envelope) error {
	args := m.Called(ctx, env)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ProjectionService = (*MockProjectionService)(nil)

// --- Test Suite ---
type EventsHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockProjectionService *MockProjectionService
	jwtSecret             string
	jwtIssuer             string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *EventsHandlerTestSuite) generateTestToken(subject string) string {
	return suite.generateTestTokenWithIssuer(subject, suite.jwtIssuer)
}

func (suite *EventsHandlerTestSuite) generateTestTokenWithIssuer(subject, issuer string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *EventsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.jwtIssuer = "estate-reporting-test"

	// Use the actual AuthMiddleware
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret, suite.jwtIssuer))

	suite.mockProjectionService = new(MockProjectionService)

	estates := suite.router.Group("/api/v1/estates/:estate_id")
	handlers.RegisterEventRoutes(estates, suite.mockProjectionService)
}

func (suite *EventsHandlerTestSuite) postEvent(estateID string, body []byte, withToken bool) *httptest.ResponseRecorder {
	url := fmt.Sprintf("/api/v1/estates/%s/events", estateID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if withToken {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("transport"))
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *EventsHandlerTestSuite) TestIngestEvent_Accepted() {
	estateID := uuid.NewString()
	eventID := uuid.New()
	body, _ := json.Marshal(gin.H{
		"eventId":   eventID,
		"eventType": "EstateCreatedEvent",
		"payload":   gin.H{"estateId": estateID, "estateName": "Demo Estate"},
	})

	suite.mockProjectionService.On("Apply",
		mock.Anything,
		mock.MatchedBy(func(env events.Envelope) bool {
			return env.EventID == eventID && env.EventType == "EstateCreatedEvent"
		}),
	).Return(nil).Once()

	w := suite.postEvent(estateID, body, true)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.Equal("accepted", responseBody["status"])
	suite.Equal(eventID.String(), responseBody["eventId"])

	suite.mockProjectionService.AssertExpectations(suite.T())
}

func (suite *EventsHandlerTestSuite) TestIngestEvent_MissingEnvelopeFields() {
	// No payload, so binding fails before the service is reached.
	body, _ := json.Marshal(gin.H{
		"eventId":   uuid.New(),
		"eventType": "EstateCreatedEvent",
	})

	w := suite.postEvent(uuid.NewString(), body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProjectionService.AssertNotCalled(suite.T(), "Apply")
}

func (suite *EventsHandlerTestSuite) TestIngestEvent_MalformedJSON() {
	w := suite.postEvent(uuid.NewString(), []byte("{not json"), true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProjectionService.AssertNotCalled(suite.T(), "Apply")
}

func (suite *EventsHandlerTestSuite) TestIngestEvent_PermanentReject() {
	body, _ := json.Marshal(gin.H{
		"eventId":   uuid.New(),
		"eventType": "MerchantCreatedEvent",
		"payload":   gin.H{"merchantId": "not-a-uuid"},
	})

	suite.mockProjectionService.On("Apply", mock.Anything, mock.Anything).
		Return(apperrors.NewAppError(http.StatusBadRequest, "Invalid event payload", nil)).Once()

	w := suite.postEvent(uuid.NewString(), body, true)

	suite.Equal(http.StatusBadRequest, w.Code)

	var responseBody map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err)
	suite.Equal("Invalid event payload", responseBody["error"])

	suite.mockProjectionService.AssertExpectations(suite.T())
}

func (suite *EventsHandlerTestSuite) TestIngestEvent_RetryableFailure() {
	body, _ := json.Marshal(gin.H{
		"eventId":   uuid.New(),
		"eventType": "TransactionCompletedEvent",
		"payload":   gin.H{},
	})

	// A retryable error must surface as 500 so the transport redelivers.
	suite.mockProjectionService.On("Apply", mock.Anything, mock.Anything).
		Return(fmt.Errorf("apply: %w", apperrors.ErrPersistenceUnavailable)).Once()

	w := suite.postEvent(uuid.NewString(), body, true)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockProjectionService.AssertExpectations(suite.T())
}

func (suite *EventsHandlerTestSuite) TestIngestEvent_Unauthorised() {
	body, _ := json.Marshal(gin.H{
		"eventId":   uuid.New(),
		"eventType": "EstateCreatedEvent",
		"payload":   gin.H{},
	})

	w := suite.postEvent(uuid.NewString(), body, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockProjectionService.AssertNotCalled(suite.T(), "Apply")
}

func (suite *EventsHandlerTestSuite) TestIngestEvent_WrongIssuerRejected() {
	body, _ := json.Marshal(gin.H{
		"eventId":   uuid.New(),
		"eventType": "EstateCreatedEvent",
		"payload":   gin.H{},
	})

	url := fmt.Sprintf("/api/v1/estates/%s/events", uuid.NewString())
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestTokenWithIssuer("transport", "some-other-service"))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockProjectionService.AssertNotCalled(suite.T(), "Apply")
}

// --- Run Test Suite ---
func TestEventsHandler(t *testing.T) {
	suite.Run(t, new(EventsHandlerTestSuite))
}

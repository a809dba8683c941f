package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	register(func() DomainEvent { return &ReconciliationHasStarted{} })
	register(func() DomainEvent { return &OverallTotalsRecorded{} })
	register(func() DomainEvent { return &ReconciliationHasBeenLocallyAuthorised{} })
	register(func() DomainEvent { return &ReconciliationHasBeenLocallyDeclined{} })
	register(func() DomainEvent { return &ReconciliationHasCompleted{} })
}

// ReconciliationHasStarted opens a reconciliation's lifecycle.
type ReconciliationHasStarted struct {
	EstateID            uuid.UUID `json:"estateId"`
	MerchantID          uuid.UUID `json:"merchantId"`
	TransactionID       uuid.UUID `json:"transactionId"`
	TransactionDateTime time.Time `json:"transactionDateTime"`
}

func (e *ReconciliationHasStarted) EventType() string { return "ReconciliationHasStartedEvent" }

// OverallTotalsRecorded records the batch totals being verified.
type OverallTotalsRecorded struct {
	EstateID         uuid.UUID       `json:"estateId"`
	MerchantID       uuid.UUID       `json:"merchantId"`
	TransactionID    uuid.UUID       `json:"transactionId"`
	TransactionCount int             `json:"transactionCount"`
	TransactionValue decimal.Decimal `json:"transactionValue"`
}

func (e *OverallTotalsRecorded) EventType() string { return "OverallTotalsRecordedEvent" }

// ReconciliationHasBeenLocallyAuthorised records a successful verification.
type ReconciliationHasBeenLocallyAuthorised struct {
	EstateID      uuid.UUID `json:"estateId"`
	MerchantID    uuid.UUID `json:"merchantId"`
	TransactionID uuid.UUID `json:"transactionId"`
	ResponseCode  string    `json:"responseCode"`
}

func (e *ReconciliationHasBeenLocallyAuthorised) EventType() string {
	return "ReconciliationHasBeenLocallyAuthorisedEvent"
}

// ReconciliationHasBeenLocallyDeclined records a failed verification.
type ReconciliationHasBeenLocallyDeclined struct {
	EstateID      uuid.UUID `json:"estateId"`
	MerchantID    uuid.UUID `json:"merchantId"`
	TransactionID uuid.UUID `json:"transactionId"`
	ResponseCode  string    `json:"responseCode"`
}

func (e *ReconciliationHasBeenLocallyDeclined) EventType() string {
	return "ReconciliationHasBeenLocallyDeclinedEvent"
}

// ReconciliationHasCompleted closes a reconciliation's lifecycle.
type ReconciliationHasCompleted struct {
	EstateID      uuid.UUID `json:"estateId"`
	MerchantID    uuid.UUID `json:"merchantId"`
	TransactionID uuid.UUID `json:"transactionId"`
}

func (e *ReconciliationHasCompleted) EventType() string { return "ReconciliationHasCompletedEvent" }

package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	register(func() DomainEvent { return &TransactionHasStarted{} })
	register(func() DomainEvent { return &AdditionalRequestDataRecorded{} })
	register(func() DomainEvent { return &TransactionHasBeenLocallyAuthorised{} })
	register(func() DomainEvent { return &TransactionHasBeenLocallyDeclined{} })
	register(func() DomainEvent { return &TransactionAuthorisedByOperator{} })
	register(func() DomainEvent { return &TransactionDeclinedByOperator{} })
	register(func() DomainEvent { return &TransactionHasBeenCompleted{} })
	register(func() DomainEvent { return &ProductDetailsAddedToTransaction{} })
	register(func() DomainEvent { return &MerchantFeeAddedToTransaction{} })
	register(func() DomainEvent { return &ServiceProviderFeeAddedToTransaction{} })
}

// TransactionHasStarted opens a transaction's lifecycle.
type TransactionHasStarted struct {
	EstateID             uuid.UUID       `json:"estateId"`
	MerchantID           uuid.UUID       `json:"merchantId"`
	TransactionID        uuid.UUID       `json:"transactionId"`
	TransactionDateTime  time.Time       `json:"transactionDateTime"`
	TransactionNumber    string          `json:"transactionNumber"`
	TransactionType      string          `json:"transactionType"`
	TransactionReference string          `json:"transactionReference"`
	DeviceIdentifier     string          `json:"deviceIdentifier"`
	OperatorIdentifier   string          `json:"operatorIdentifier"`
	TransactionAmount    decimal.Decimal `json:"transactionAmount"`
}

func (e *TransactionHasStarted) EventType() string { return "TransactionHasStartedEvent" }

// AdditionalRequestDataRecorded carries the raw operator request data. The
// projector only needs the amount when the started event did not include one.
type AdditionalRequestDataRecorded struct {
	EstateID      uuid.UUID         `json:"estateId"`
	MerchantID    uuid.UUID         `json:"merchantId"`
	TransactionID uuid.UUID         `json:"transactionId"`
	RequestData   map[string]string `json:"additionalTransactionRequestMetadata"`
}

func (e *AdditionalRequestDataRecorded) EventType() string {
	return "AdditionalRequestDataRecordedEvent"
}

// TransactionHasBeenLocallyAuthorised records an authorisation decided inside
// the platform, without an operator round trip.
type TransactionHasBeenLocallyAuthorised struct {
	EstateID          uuid.UUID `json:"estateId"`
	MerchantID        uuid.UUID `json:"merchantId"`
	TransactionID     uuid.UUID `json:"transactionId"`
	AuthorisationCode string    `json:"authorisationCode"`
	ResponseCode      string    `json:"responseCode"`
	ResponseMessage   string    `json:"responseMessage"`
}

func (e *TransactionHasBeenLocallyAuthorised) EventType() string {
	return "TransactionHasBeenLocallyAuthorisedEvent"
}

// TransactionHasBeenLocallyDeclined records a decline decided inside the platform.
type TransactionHasBeenLocallyDeclined struct {
	EstateID        uuid.UUID `json:"estateId"`
	MerchantID      uuid.UUID `json:"merchantId"`
	TransactionID   uuid.UUID `json:"transactionId"`
	ResponseCode    string    `json:"responseCode"`
	ResponseMessage string    `json:"responseMessage"`
}

func (e *TransactionHasBeenLocallyDeclined) EventType() string {
	return "TransactionHasBeenLocallyDeclinedEvent"
}

// TransactionAuthorisedByOperator records an authorisation returned by the operator.
type TransactionAuthorisedByOperator struct {
	EstateID                uuid.UUID `json:"estateId"`
	MerchantID              uuid.UUID `json:"merchantId"`
	TransactionID           uuid.UUID `json:"transactionId"`
	OperatorIdentifier      string    `json:"operatorIdentifier"`
	AuthorisationCode       string    `json:"authorisationCode"`
	OperatorResponseCode    string    `json:"operatorResponseCode"`
	OperatorResponseMessage string    `json:"operatorResponseMessage"`
	OperatorTransactionID   string    `json:"operatorTransactionId"`
	ResponseCode            string    `json:"responseCode"`
	ResponseMessage         string    `json:"responseMessage"`
}

func (e *TransactionAuthorisedByOperator) EventType() string {
	return "TransactionAuthorisedByOperatorEvent"
}

// TransactionDeclinedByOperator records a decline returned by the operator.
type TransactionDeclinedByOperator struct {
	EstateID                uuid.UUID `json:"estateId"`
	MerchantID              uuid.UUID `json:"merchantId"`
	TransactionID           uuid.UUID `json:"transactionId"`
	OperatorIdentifier      string    `json:"operatorIdentifier"`
	OperatorResponseCode    string    `json:"operatorResponseCode"`
	OperatorResponseMessage string    `json:"operatorResponseMessage"`
	ResponseCode            string    `json:"responseCode"`
	ResponseMessage         string    `json:"responseMessage"`
}

func (e *TransactionDeclinedByOperator) EventType() string {
	return "TransactionDeclinedByOperatorEvent"
}

// TransactionHasBeenCompleted closes a transaction's lifecycle.
type TransactionHasBeenCompleted struct {
	EstateID          uuid.UUID       `json:"estateId"`
	MerchantID        uuid.UUID       `json:"merchantId"`
	TransactionID     uuid.UUID       `json:"transactionId"`
	ResponseCode      string          `json:"responseCode"`
	IsAuthorised      bool            `json:"isAuthorised"`
	CompletedDateTime time.Time       `json:"completedDateTime"`
	TransactionAmount decimal.Decimal `json:"transactionAmount"`
}

func (e *TransactionHasBeenCompleted) EventType() string { return "TransactionHasBeenCompletedEvent" }

// ProductDetailsAddedToTransaction links the transaction to the contract
// product it was priced under.
type ProductDetailsAddedToTransaction struct {
	EstateID      uuid.UUID `json:"estateId"`
	MerchantID    uuid.UUID `json:"merchantId"`
	TransactionID uuid.UUID `json:"transactionId"`
	ContractID    uuid.UUID `json:"contractId"`
	ProductID     uuid.UUID `json:"productId"`
}

func (e *ProductDetailsAddedToTransaction) EventType() string {
	return "ProductDetailsAddedToTransactionEvent"
}

// FeeDetails is the fee content shared by the two fee-added event shapes.
// The fee carries no natural unique identifier; the projector derives one
// from these fields.
type FeeDetails struct {
	EstateID              uuid.UUID       `json:"estateId"`
	MerchantID            uuid.UUID       `json:"merchantId"`
	TransactionID         uuid.UUID       `json:"transactionId"`
	CalculatedValue       decimal.Decimal `json:"calculatedValue"`
	FeeCalculationType    int             `json:"feeCalculationType"`
	FeeID                 uuid.UUID       `json:"feeId"`
	FeeValue              decimal.Decimal `json:"feeValue"`
	FeeCalculatedDateTime time.Time       `json:"feeCalculatedDateTime"`
}

// MerchantFeeAddedToTransaction records a merchant-side fee calculation.
type MerchantFeeAddedToTransaction struct {
	FeeDetails
}

func (e *MerchantFeeAddedToTransaction) EventType() string {
	return "MerchantFeeAddedToTransactionEvent"
}

// ServiceProviderFeeAddedToTransaction records a service-provider-side fee calculation.
type ServiceProviderFeeAddedToTransaction struct {
	FeeDetails
}

func (e *ServiceProviderFeeAddedToTransaction) EventType() string {
	return "ServiceProviderFeeAddedToTransactionEvent"
}

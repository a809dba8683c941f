package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionTypeSale is the only transaction type included in transaction
// reporting aggregates.
const TransactionTypeSale = "Sale"

// Transaction is the read-model row for one transaction's lifecycle.
// Created once on the started event; later lifecycle events fill fields in
// place, so anything not yet known is the zero value.
type Transaction struct {
	EstateID              uuid.UUID       `json:"estateID"`      // Composite key part
	MerchantID            uuid.UUID       `json:"merchantID"`    // Composite key part
	TransactionID         uuid.UUID       `json:"transactionID"` // Composite key part
	DeviceIdentifier      string          `json:"deviceIdentifier"`
	TransactionDateTime   time.Time       `json:"transactionDateTime"`
	TransactionType       string          `json:"transactionType"`
	TransactionReference  string          `json:"transactionReference"`
	TransactionAmount     decimal.Decimal `json:"transactionAmount"`
	OperatorIdentifier    string          `json:"operatorIdentifier"`
	IsAuthorised          bool            `json:"isAuthorised"`
	IsCompleted           bool            `json:"isCompleted"`
	ResponseCode          string          `json:"responseCode"`
	ResponseMessage       string          `json:"responseMessage"`
	AuthorisationCode     string          `json:"authorisationCode"`
	OperatorResponseCode  string          `json:"operatorResponseCode"`
	OperatorResponseText  string          `json:"operatorResponseText"`
	OperatorAuthorisation string          `json:"operatorAuthorisation"`
	ContractID            uuid.UUID       `json:"contractID"`
	ProductID             uuid.UUID       `json:"productID"`
}

// TransactionFee is a fee calculated for a transaction. FeeID and EventID are
// hash-derived from the fee content because the source event carries no
// natural identifier.
type TransactionFee struct {
	TransactionID   uuid.UUID       `json:"transactionID"` // Composite key part
	FeeID           uuid.UUID       `json:"feeID"`         // Composite key part
	EventID         uuid.UUID       `json:"eventID"`
	CalculatedValue decimal.Decimal `json:"calculatedValue"`
	CalculationType int             `json:"calculationType"`
	FeeType         int             `json:"feeType"`
	FeeValue        decimal.Decimal `json:"feeValue"`
}

// Reconciliation mirrors the Transaction lifecycle for batch total
// verification events. Keyed by the reconciliation's transaction id alone.
type Reconciliation struct {
	TransactionID       uuid.UUID       `json:"transactionID"` // Primary Key
	EstateID            uuid.UUID       `json:"estateID"`
	MerchantID          uuid.UUID       `json:"merchantID"`
	TransactionDateTime time.Time       `json:"transactionDateTime"`
	TransactionCount    int             `json:"transactionCount"`
	TransactionValue    decimal.Decimal `json:"transactionValue"`
	IsAuthorised        bool            `json:"isAuthorised"`
	IsCompleted         bool            `json:"isCompleted"`
	ResponseCode        string          `json:"responseCode"`
}

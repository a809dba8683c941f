package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Settlement is the read-model row for one settlement day of an estate.
// SettlementID is hash-derived from (estate, date) so repeated creation
// events for the same day land on the same row.
type Settlement struct {
	EstateID       uuid.UUID `json:"estateID"`     // Composite key part
	SettlementID   uuid.UUID `json:"settlementID"` // Composite key part
	SettlementDate time.Time `json:"settlementDate"`
	IsCompleted    bool      `json:"isCompleted"`
}

// MerchantSettlementFee is a merchant fee queued into a settlement.
// IsSettled transitions false to true on settlement completion and never
// reverts.
type MerchantSettlementFee struct {
	EstateID              uuid.UUID       `json:"estateID"`      // Composite key part
	SettlementID          uuid.UUID       `json:"settlementID"`  // Composite key part
	TransactionID         uuid.UUID       `json:"transactionID"` // Composite key part
	FeeID                 uuid.UUID       `json:"feeID"`         // Composite key part
	MerchantID            uuid.UUID       `json:"merchantID"`
	CalculatedValue       decimal.Decimal `json:"calculatedValue"`
	FeeValue              decimal.Decimal `json:"feeValue"`
	FeeCalculatedDateTime time.Time       `json:"feeCalculatedDateTime"`
	IsSettled             bool            `json:"isSettled"`
}

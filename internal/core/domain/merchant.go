package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettlementSchedule indicates how often a merchant's fees are settled.
type SettlementSchedule int

const (
	SettlementScheduleImmediate SettlementSchedule = iota
	SettlementScheduleWeekly
	SettlementScheduleMonthly
)

// Merchant is a business location under an estate.
type Merchant struct {
	EstateID               uuid.UUID          `json:"estateID"`   // Composite key part
	MerchantID             uuid.UUID          `json:"merchantID"` // Composite key part
	Name                   string             `json:"name"`
	Reference              string             `json:"reference"`
	SettlementSchedule     SettlementSchedule `json:"settlementSchedule"`
	LastStatementGenerated time.Time          `json:"lastStatementGenerated"`
	CreatedAt              time.Time          `json:"createdAt"`
}

// MerchantAddress is one of a merchant's registered addresses.
type MerchantAddress struct {
	MerchantID   uuid.UUID `json:"merchantID"`
	AddressID    uuid.UUID `json:"addressID"`
	EstateID     uuid.UUID `json:"estateID"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 string    `json:"addressLine2"`
	Town         string    `json:"town"`
	Region       string    `json:"region"`
	PostalCode   string    `json:"postalCode"`
	Country      string    `json:"country"`
}

// MerchantContact is one of a merchant's registered contacts.
type MerchantContact struct {
	MerchantID   uuid.UUID `json:"merchantID"`
	ContactID    uuid.UUID `json:"contactID"`
	EstateID     uuid.UUID `json:"estateID"`
	Name         string    `json:"name"`
	EmailAddress string    `json:"emailAddress"`
	PhoneNumber  string    `json:"phoneNumber"`
}

// MerchantDevice is a payment device registered to a merchant.
type MerchantDevice struct {
	MerchantID       uuid.UUID `json:"merchantID"`
	DeviceID         uuid.UUID `json:"deviceID"`
	EstateID         uuid.UUID `json:"estateID"`
	DeviceIdentifier string    `json:"deviceIdentifier"`
}

// MerchantOperator is an operator assignment for a merchant.
type MerchantOperator struct {
	MerchantID     uuid.UUID `json:"merchantID"`
	OperatorID     uuid.UUID `json:"operatorID"`
	EstateID       uuid.UUID `json:"estateID"`
	Name           string    `json:"name"`
	MerchantNumber string    `json:"merchantNumber"`
	TerminalNumber string    `json:"terminalNumber"`
}

// MerchantSecurityUser is a login associated with a merchant.
type MerchantSecurityUser struct {
	SecurityUserID uuid.UUID `json:"securityUserID"`
	MerchantID     uuid.UUID `json:"merchantID"`
	EstateID       uuid.UUID `json:"estateID"`
	EmailAddress   string    `json:"emailAddress"`
}

// MerchantBalanceHistory is one entry in a merchant's append-only balance ledger.
// Rows are only ever inserted, keyed by the originating event id.
type MerchantBalanceHistory struct {
	EventID          uuid.UUID       `json:"eventID"` // Primary Key and idempotency key
	EstateID         uuid.UUID       `json:"estateID"`
	MerchantID       uuid.UUID       `json:"merchantID"`
	TransactionID    uuid.UUID       `json:"transactionID"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	Balance          decimal.Decimal `json:"balance"`
	ChangeAmount     decimal.Decimal `json:"changeAmount"`
	Reference        string          `json:"reference"`
	EntryDateTime    time.Time       `json:"entryDateTime"`
}

package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	register(func() DomainEvent { return &VoucherGenerated{} })
	register(func() DomainEvent { return &VoucherIssued{} })
	register(func() DomainEvent { return &VoucherFullyRedeemed{} })
}

// VoucherGenerated creates the voucher row with its code and value.
type VoucherGenerated struct {
	VoucherID          uuid.UUID       `json:"voucherId"`
	EstateID           uuid.UUID       `json:"estateId"`
	TransactionID      uuid.UUID       `json:"transactionId"`
	VoucherCode        string          `json:"voucherCode"`
	OperatorIdentifier string          `json:"operatorIdentifier"`
	Value              decimal.Decimal `json:"value"`
	GeneratedDateTime  time.Time       `json:"generatedDateTime"`
	ExpiryDateTime     time.Time       `json:"expiryDateTime"`
}

func (e *VoucherGenerated) EventType() string { return "VoucherGeneratedEvent" }

// VoucherIssued marks the voucher as handed to a recipient.
type VoucherIssued struct {
	VoucherID       uuid.UUID `json:"voucherId"`
	EstateID        uuid.UUID `json:"estateId"`
	IssuedDateTime  time.Time `json:"issuedDateTime"`
	RecipientEmail  string    `json:"recipientEmail"`
	RecipientMobile string    `json:"recipientMobile"`
}

func (e *VoucherIssued) EventType() string { return "VoucherIssuedEvent" }

// VoucherFullyRedeemed marks the voucher's value as spent.
type VoucherFullyRedeemed struct {
	VoucherID        uuid.UUID `json:"voucherId"`
	EstateID         uuid.UUID `json:"estateId"`
	RedeemedDateTime time.Time `json:"redeemedDateTime"`
}

func (e *VoucherFullyRedeemed) EventType() string { return "VoucherFullyRedeemedEvent" }

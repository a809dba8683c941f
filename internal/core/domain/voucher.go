package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Voucher tracks a voucher through its generated, issued and redeemed stages.
// Each stage event sets its own flag and timestamp without touching the other
// two.
type Voucher struct {
	VoucherID          uuid.UUID       `json:"voucherID"` // Primary Key
	EstateID           uuid.UUID       `json:"estateID"`
	TransactionID      uuid.UUID       `json:"transactionID"`
	VoucherCode        string          `json:"voucherCode"`
	OperatorIdentifier string          `json:"operatorIdentifier"`
	Value              decimal.Decimal `json:"value"`
	IsGenerated        bool            `json:"isGenerated"`
	IsIssued           bool            `json:"isIssued"`
	IsRedeemed         bool            `json:"isRedeemed"`
	GenerateDateTime   time.Time       `json:"generateDateTime"`
	IssuedDateTime     time.Time       `json:"issuedDateTime"`
	RedeemedDateTime   time.Time       `json:"redeemedDateTime"`
	ExpiryDateTime     time.Time       `json:"expiryDateTime"`
	RecipientEmail     string          `json:"recipientEmail"`
	RecipientMobile    string          `json:"recipientMobile"`
}

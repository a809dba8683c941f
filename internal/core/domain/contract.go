package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductType distinguishes fixed-price products from variable-value ones.
type ProductType int

const (
	ProductTypeFixedValue ProductType = iota
	ProductTypeVariableValue
)

// Contract groups the priceable products an operator offers to an estate.
// Contracts are never deleted.
type Contract struct {
	EstateID    uuid.UUID `json:"estateID"`
	ContractID  uuid.UUID `json:"contractID"`
	OperatorID  uuid.UUID `json:"operatorID"`
	Description string    `json:"description"`
}

// ContractProduct is one product under a contract. Value is zero for
// variable-value products.
type ContractProduct struct {
	ContractID  uuid.UUID       `json:"contractID"`
	ProductID   uuid.UUID       `json:"productID"`
	ProductName string          `json:"productName"`
	DisplayText string          `json:"displayText"`
	Value       decimal.Decimal `json:"value"`
	ProductType ProductType     `json:"productType"`
}

// ContractProductTransactionFee is a fee rule attached to a contract product.
// Disabled fees are flagged, never removed.
type ContractProductTransactionFee struct {
	ContractID      uuid.UUID       `json:"contractID"`
	ProductID       uuid.UUID       `json:"productID"`
	FeeID           uuid.UUID       `json:"feeID"`
	Description     string          `json:"description"`
	CalculationType int             `json:"calculationType"`
	FeeType         int             `json:"feeType"`
	Value           decimal.Decimal `json:"value"`
	IsEnabled       bool            `json:"isEnabled"`
}

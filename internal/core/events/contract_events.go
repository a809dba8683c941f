package events

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	register(func() DomainEvent { return &ContractCreated{} })
	register(func() DomainEvent { return &FixedValueProductAddedToContract{} })
	register(func() DomainEvent { return &VariableValueProductAddedToContract{} })
	register(func() DomainEvent { return &TransactionFeeForProductAddedToContract{} })
	register(func() DomainEvent { return &TransactionFeeForProductDisabled{} })
}

// ContractCreated announces a new contract between an estate and an operator.
type ContractCreated struct {
	EstateID    uuid.UUID `json:"estateId"`
	ContractID  uuid.UUID `json:"contractId"`
	OperatorID  uuid.UUID `json:"operatorId"`
	Description string    `json:"description"`
}

func (e *ContractCreated) EventType() string { return "ContractCreatedEvent" }

// FixedValueProductAddedToContract adds a fixed-price product to a contract.
type FixedValueProductAddedToContract struct {
	EstateID    uuid.UUID       `json:"estateId"`
	ContractID  uuid.UUID       `json:"contractId"`
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	DisplayText string          `json:"displayText"`
	Value       decimal.Decimal `json:"value"`
}

func (e *FixedValueProductAddedToContract) EventType() string {
	return "FixedValueProductAddedToContractEvent"
}

// VariableValueProductAddedToContract adds a variable-value product to a contract.
type VariableValueProductAddedToContract struct {
	EstateID    uuid.UUID `json:"estateId"`
	ContractID  uuid.UUID `json:"contractId"`
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	DisplayText string    `json:"displayText"`
}

func (e *VariableValueProductAddedToContract) EventType() string {
	return "VariableValueProductAddedToContractEvent"
}

// TransactionFeeForProductAddedToContract attaches a fee rule to a contract product.
type TransactionFeeForProductAddedToContract struct {
	EstateID         uuid.UUID       `json:"estateId"`
	ContractID       uuid.UUID       `json:"contractId"`
	ProductID        uuid.UUID       `json:"productId"`
	TransactionFeeID uuid.UUID       `json:"transactionFeeId"`
	Description      string          `json:"description"`
	CalculationType  int             `json:"calculationType"`
	FeeType          int             `json:"feeType"`
	Value            decimal.Decimal `json:"value"`
}

func (e *TransactionFeeForProductAddedToContract) EventType() string {
	return "TransactionFeeForProductAddedToContractEvent"
}

// TransactionFeeForProductDisabled flags a contract product fee as disabled.
// The row is never deleted.
type TransactionFeeForProductDisabled struct {
	EstateID         uuid.UUID `json:"estateId"`
	ContractID       uuid.UUID `json:"contractId"`
	ProductID        uuid.UUID `json:"productId"`
	TransactionFeeID uuid.UUID `json:"transactionFeeId"`
}

func (e *TransactionFeeForProductDisabled) EventType() string {
	return "TransactionFeeForProductDisabledEvent"
}

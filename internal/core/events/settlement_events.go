package events

import (
	"time"

	"github.com/google/uuid"
)

func init() {
	register(func() DomainEvent { return &SettlementCreatedForDate{} })
	register(func() DomainEvent { return &MerchantFeeAddedPendingSettlement{} })
	register(func() DomainEvent { return &MerchantFeeSettled{} })
	register(func() DomainEvent { return &SettlementCompleted{} })
}

// SettlementCreatedForDate opens a settlement day for an estate. The
// settlement id is derived from (estate, date), so duplicates converge on
// the same row.
type SettlementCreatedForDate struct {
	EstateID       uuid.UUID `json:"estateId"`
	SettlementDate time.Time `json:"settlementDate"`
}

func (e *SettlementCreatedForDate) EventType() string { return "SettlementCreatedForDateEvent" }

// MerchantFeeAddedPendingSettlement queues a calculated merchant fee into a
// settlement day.
type MerchantFeeAddedPendingSettlement struct {
	FeeDetails
	SettlementDate time.Time `json:"settlementDate"`
}

func (e *MerchantFeeAddedPendingSettlement) EventType() string {
	return "MerchantFeeAddedPendingSettlementEvent"
}

// MerchantFeeSettled marks a queued fee as paid.
type MerchantFeeSettled struct {
	FeeDetails
	SettlementID uuid.UUID `json:"settlementId"`
}

func (e *MerchantFeeSettled) EventType() string { return "MerchantFeeSettledEvent" }

// SettlementCompleted marks a settlement day as done.
type SettlementCompleted struct {
	EstateID     uuid.UUID `json:"estateId"`
	SettlementID uuid.UUID `json:"settlementId"`
}

func (e *SettlementCompleted) EventType() string { return "SettlementCompletedEvent" }

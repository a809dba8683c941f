package events

import (
	"time"

	"github.com/google/uuid"
)

func init() {
	register(func() DomainEvent { return &EstateCreated{} })
	register(func() DomainEvent { return &EstateReferenceAllocated{} })
	register(func() DomainEvent { return &OperatorAddedToEstate{} })
	register(func() DomainEvent { return &SecurityUserAddedToEstate{} })
}

// EstateCreated announces a new estate.
type EstateCreated struct {
	EstateID   uuid.UUID `json:"estateId"`
	EstateName string    `json:"estateName"`
	CreatedAt  time.Time `json:"createdDateTime"`
}

func (e *EstateCreated) EventType() string { return "EstateCreatedEvent" }

// EstateReferenceAllocated backfills the estate's external reference.
type EstateReferenceAllocated struct {
	EstateID  uuid.UUID `json:"estateId"`
	Reference string    `json:"estateReference"`
}

func (e *EstateReferenceAllocated) EventType() string { return "EstateReferenceAllocatedEvent" }

// OperatorAddedToEstate enables an operator for an estate.
type OperatorAddedToEstate struct {
	EstateID                    uuid.UUID `json:"estateId"`
	OperatorID                  uuid.UUID `json:"operatorId"`
	Name                        string    `json:"name"`
	RequireCustomMerchantNumber bool      `json:"requireCustomMerchantNumber"`
	RequireCustomTerminalNumber bool      `json:"requireCustomTerminalNumber"`
}

func (e *OperatorAddedToEstate) EventType() string { return "OperatorAddedToEstateEvent" }

// SecurityUserAddedToEstate associates a login with an estate.
type SecurityUserAddedToEstate struct {
	EstateID       uuid.UUID `json:"estateId"`
	SecurityUserID uuid.UUID `json:"securityUserId"`
	EmailAddress   string    `json:"emailAddress"`
}

func (e *SecurityUserAddedToEstate) EventType() string { return "SecurityUserAddedToEstateEvent" }

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Estate is the top-level tenant scope; every other read-model row hangs off one.
type Estate struct {
	EstateID  uuid.UUID `json:"estateID"` // Primary Key
	Name      string    `json:"name"`
	Reference string    `json:"reference"` // Backfilled by the reference-allocated event
	CreatedAt time.Time `json:"createdAt"`
}

// EstateOperator is an operator enabled for an estate.
type EstateOperator struct {
	EstateID                    uuid.UUID `json:"estateID"`
	OperatorID                  uuid.UUID `json:"operatorID"`
	Name                        string    `json:"name"`
	RequireCustomMerchantNumber bool      `json:"requireCustomMerchantNumber"`
	RequireCustomTerminalNumber bool      `json:"requireCustomTerminalNumber"`
}

// EstateSecurityUser is a login associated with an estate. The event carries
// no timestamp; the store records its own insertion time.
type EstateSecurityUser struct {
	SecurityUserID uuid.UUID `json:"securityUserID"` // Primary Key
	EstateID       uuid.UUID `json:"estateID"`
	EmailAddress   string    `json:"emailAddress"`
}

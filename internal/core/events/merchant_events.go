package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	register(func() DomainEvent { return &MerchantCreated{} })
	register(func() DomainEvent { return &MerchantReferenceAllocated{} })
	register(func() DomainEvent { return &AddressAddedToMerchant{} })
	register(func() DomainEvent { return &ContactAddedToMerchant{} })
	register(func() DomainEvent { return &DeviceAddedToMerchant{} })
	register(func() DomainEvent { return &OperatorAssignedToMerchant{} })
	register(func() DomainEvent { return &SecurityUserAddedToMerchant{} })
	register(func() DomainEvent { return &SettlementScheduleChanged{} })
	register(func() DomainEvent { return &StatementGenerated{} })
	register(func() DomainEvent { return &MerchantBalanceChanged{} })
}

// MerchantCreated announces a new merchant under an estate.
type MerchantCreated struct {
	EstateID     uuid.UUID `json:"estateId"`
	MerchantID   uuid.UUID `json:"merchantId"`
	MerchantName string    `json:"merchantName"`
	CreatedAt    time.Time `json:"dateCreated"`
}

func (e *MerchantCreated) EventType() string { return "MerchantCreatedEvent" }

// MerchantReferenceAllocated backfills the merchant's external reference.
type MerchantReferenceAllocated struct {
	EstateID   uuid.UUID `json:"estateId"`
	MerchantID uuid.UUID `json:"merchantId"`
	Reference  string    `json:"merchantReference"`
}

func (e *MerchantReferenceAllocated) EventType() string { return "MerchantReferenceAllocatedEvent" }

// AddressAddedToMerchant records a merchant address.
type AddressAddedToMerchant struct {
	EstateID     uuid.UUID `json:"estateId"`
	MerchantID   uuid.UUID `json:"merchantId"`
	AddressID    uuid.UUID `json:"addressId"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 string    `json:"addressLine2"`
	Town         string    `json:"town"`
	Region       string    `json:"region"`
	PostalCode   string    `json:"postalCode"`
	Country      string    `json:"country"`
}

func (e *AddressAddedToMerchant) EventType() string { return "AddressAddedEvent" }

// ContactAddedToMerchant records a merchant contact.
type ContactAddedToMerchant struct {
	EstateID     uuid.UUID `json:"estateId"`
	MerchantID   uuid.UUID `json:"merchantId"`
	ContactID    uuid.UUID `json:"contactId"`
	ContactName  string    `json:"contactName"`
	EmailAddress string    `json:"contactEmailAddress"`
	PhoneNumber  string    `json:"contactPhoneNumber"`
}

func (e *ContactAddedToMerchant) EventType() string { return "ContactAddedEvent" }

// DeviceAddedToMerchant registers a payment device to a merchant.
type DeviceAddedToMerchant struct {
	EstateID         uuid.UUID `json:"estateId"`
	MerchantID       uuid.UUID `json:"merchantId"`
	DeviceID         uuid.UUID `json:"deviceId"`
	DeviceIdentifier string    `json:"deviceIdentifier"`
}

func (e *DeviceAddedToMerchant) EventType() string { return "DeviceAddedToMerchantEvent" }

// OperatorAssignedToMerchant assigns an operator to a merchant.
type OperatorAssignedToMerchant struct {
	EstateID       uuid.UUID `json:"estateId"`
	MerchantID     uuid.UUID `json:"merchantId"`
	OperatorID     uuid.UUID `json:"operatorId"`
	Name           string    `json:"name"`
	MerchantNumber string    `json:"merchantNumber"`
	TerminalNumber string    `json:"terminalNumber"`
}

func (e *OperatorAssignedToMerchant) EventType() string { return "OperatorAssignedToMerchantEvent" }

// SecurityUserAddedToMerchant associates a login with a merchant.
type SecurityUserAddedToMerchant struct {
	EstateID       uuid.UUID `json:"estateId"`
	MerchantID     uuid.UUID `json:"merchantId"`
	SecurityUserID uuid.UUID `json:"securityUserId"`
	EmailAddress   string    `json:"emailAddress"`
}

func (e *SecurityUserAddedToMerchant) EventType() string { return "SecurityUserAddedToMerchantEvent" }

// SettlementScheduleChanged updates how often the merchant's fees settle.
type SettlementScheduleChanged struct {
	EstateID           uuid.UUID `json:"estateId"`
	MerchantID         uuid.UUID `json:"merchantId"`
	SettlementSchedule int       `json:"settlementSchedule"`
}

func (e *SettlementScheduleChanged) EventType() string { return "SettlementScheduleChangedEvent" }

// StatementGenerated records when a merchant statement was last produced.
type StatementGenerated struct {
	EstateID      uuid.UUID `json:"estateId"`
	MerchantID    uuid.UUID `json:"merchantId"`
	StatementID   uuid.UUID `json:"merchantStatementId"`
	GeneratedDate time.Time `json:"dateGenerated"`
}

func (e *StatementGenerated) EventType() string { return "StatementGeneratedEvent" }

// MerchantBalanceChanged appends an entry to the merchant's balance ledger.
// The event's own id is the ledger row key, so no derivation is needed.
type MerchantBalanceChanged struct {
	EventID          uuid.UUID       `json:"eventId"`
	EstateID         uuid.UUID       `json:"estateId"`
	MerchantID       uuid.UUID       `json:"merchantId"`
	TransactionID    uuid.UUID       `json:"aggregateId"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	Balance          decimal.Decimal `json:"balance"`
	ChangeAmount     decimal.Decimal `json:"changeAmount"`
	Reference        string          `json:"reference"`
	EntryDateTime    time.Time       `json:"dateTime"`
}

func (e *MerchantBalanceChanged) EventType() string { return "MerchantBalanceChangedEvent" }

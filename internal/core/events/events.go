// Package events defines the closed set of domain event shapes the projector
// understands, and the registry that maps external event type names onto them.
package events

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/txnsuite/estate-reporting/internal/apperrors"
)

// DomainEvent is implemented by every concrete event shape.
type DomainEvent interface {
	// EventType returns the external type name the transport delivers the
	// event under.
	EventType() string
}

// Envelope is the wire shape delivered by the subscription transport.
type Envelope struct {
	EventID   uuid.UUID       `json:"eventId" binding:"required"`
	EventType string          `json:"eventType" binding:"required"`
	Payload   json.RawMessage `json:"payload" binding:"required"`
}

// registry maps external event type names to payload factories. Built
// statically in code so an unknown handler reference cannot exist at runtime.
var registry = map[string]func() DomainEvent{}

func register(factory func() DomainEvent) {
	ev := factory()
	registry[ev.EventType()] = factory
}

// Decode resolves the envelope's event type name and unmarshals the payload
// into the concrete event struct. An unknown type name yields
// apperrors.ErrUnhandledEventType.
func Decode(env Envelope) (DomainEvent, error) {
	factory, ok := registry[env.EventType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnhandledEventType, env.EventType)
	}
	ev := factory()
	if err := json.Unmarshal(env.Payload, ev); err != nil {
		return nil, apperrors.NewAppError(400, "failed to unmarshal "+env.EventType+" payload", err)
	}
	return ev, nil
}

// RegisteredTypes returns the sorted list of known event type names.
func RegisteredTypes() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package services

import (
	"context"

	"github.com/txnsuite/estate-reporting/internal/core/events"
)

// EventProjector applies one family of domain events to the read model.
// Implementations dispatch on the event's concrete type; an event outside the
// family yields apperrors.ErrUnhandledEventType.
type EventProjector interface {
	Apply(ctx context.Context, ev events.DomainEvent) error
}

// ProjectionService is the entry point the transport delivers envelopes to.
// It decodes the envelope, routes the event to its family projector and
// classifies the outcome for the caller: nil for applied or idempotent
// duplicate, a retryable error for out-of-order or store failures, and a
// non-retryable error for unknown types or conflicting payloads.
type ProjectionService interface {
	Apply(ctx context.Context, env events.Envelope) error
}

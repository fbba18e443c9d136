// Package store defines the record-store contracts consumed by the
// verification workflow and the payment bridge, so both can be exercised
// against an in-memory substitute in tests.
package store

import (
	"context"
	"errors"
	"time"

	"foundation_backend/model"
)

var ErrNotFound = errors.New("record not found")

type TicketStore interface {
	Create(ctx context.Context, t *model.Ticket) error
	FindByID(ctx context.Context, id string) (*model.Ticket, error)
	FindByTrackingID(ctx context.Context, trackingID string) (*model.Ticket, error)
	// Update applies the given fields to the ticket row. ErrNotFound when
	// no row matches.
	Update(ctx context.Context, id string, fields map[string]any) error
	// Delete removes every ticket whose id matches and reports how many
	// rows went away.
	Delete(ctx context.Context, ids []string) (int64, error)
	FindStalePending(ctx context.Context, olderThan time.Time) ([]model.Ticket, error)
}

type CardStore interface {
	FindByID(ctx context.Context, id string) (*model.InvitationCard, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}

type BatchStore interface {
	FindByCode(ctx context.Context, code string) (*model.Batch, error)
}

type EventStore interface {
	FindByID(ctx context.Context, id string) (*model.Event, error)
}

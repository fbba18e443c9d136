package helper

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"foundation_backend/constants"
	"foundation_backend/model"
	"foundation_backend/store"

	"github.com/redis/go-redis/v9"
)

// Verifier decides whether a ticket or invitation card may be redeemed and,
// on success, flips its used flag. The flip is best effort: once the caller
// has been told the record is valid, a failed write must not retract that.
type Verifier struct {
	Tickets store.TicketStore
	Cards   store.CardStore
	Batches store.BatchStore
	Events  store.EventStore
	Redis   *redis.Client
}

func (v *Verifier) LookupTicket(ctx context.Context, id string) (*model.VerificationResult, error) {
	ticket, err := v.Tickets.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return &model.VerificationResult{Valid: false, Reason: constants.ReasonNotFound}, nil
	}
	if err != nil {
		return nil, err
	}

	event, err := v.Events.FindByID(ctx, ticket.EventID)
	if err != nil {
		return nil, err
	}

	snapshot := &model.TicketSnapshot{
		ID:               ticket.ID,
		Event:            event.Summary(),
		BuyerName:        ticket.BuyerName,
		Phone:            ticket.Phone,
		Channel:          ticket.Channel,
		Used:             ticket.Used,
		ConfirmationCode: ticket.ConfirmationCode,
	}
	result := &model.VerificationResult{Ticket: snapshot}

	if ticket.Used {
		result.Reason = constants.ReasonAlreadyUsed
		return result, nil
	}

	if ticket.Channel == constants.ChannelPhysicalBatch {
		if !ticket.IsActive && ticket.BuyerName == "" {
			result.Reason = constants.ReasonNotActivated
			return result, nil
		}
		if ticket.BuyerName == "" && !v.batchActive(ctx, ticket.BatchCode) {
			result.Reason = constants.ReasonBatchDeactivated
			return result, nil
		}
	}

	result.Valid = true
	if err := v.Tickets.Update(ctx, ticket.ID, map[string]any{"used": true}); err != nil {
		log.Printf("mark ticket %s used: %v", ticket.ID, err)
	}
	v.publishCheckin(ctx, model.Checkin{
		Kind:       "ticket",
		ID:         ticket.ID,
		EventTitle: event.Title,
		BuyerName:  ticket.BuyerName,
		At:         time.Now().Unix(),
	})
	return result, nil
}

func (v *Verifier) LookupCard(ctx context.Context, id string) (*model.VerificationResult, error) {
	card, err := v.Cards.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return &model.VerificationResult{Valid: false, Reason: constants.ReasonNotFound}, nil
	}
	if err != nil {
		return nil, err
	}

	event, err := v.Events.FindByID(ctx, card.EventID)
	if err != nil {
		return nil, err
	}

	snapshot := &model.CardSnapshot{
		ID:        card.ID,
		Event:     event.Summary(),
		BatchCode: card.BatchCode,
		CardType:  card.CardType,
		Used:      card.IsUsed,
	}
	result := &model.VerificationResult{Card: snapshot}

	if card.IsUsed {
		result.Reason = constants.ReasonAlreadyUsed
		return result, nil
	}

	if !v.batchActive(ctx, card.BatchCode) {
		result.Reason = constants.ReasonBatchDeactivated
		return result, nil
	}

	result.Valid = true
	if err := v.Cards.Update(ctx, card.ID, map[string]any{"is_used": true}); err != nil {
		log.Printf("mark card %s used: %v", card.ID, err)
	}
	v.publishCheckin(ctx, model.Checkin{
		Kind:       "card",
		ID:         card.ID,
		EventTitle: event.Title,
		At:         time.Now().Unix(),
	})
	return result, nil
}

// batchActive reports whether the record's batch switch is on. A failed
// batch lookup is soft: it is logged and treated as a deactivated batch
// rather than failing the whole verification.
func (v *Verifier) batchActive(ctx context.Context, code string) bool {
	if code == "" {
		return true
	}
	batch, err := v.Batches.FindByCode(ctx, code)
	if err != nil {
		log.Printf("batch lookup %s: %v", code, err)
		return false
	}
	return batch.IsActive
}

func (v *Verifier) publishCheckin(ctx context.Context, checkin model.Checkin) {
	if v.Redis == nil {
		return
	}
	payload, err := json.Marshal(checkin)
	if err != nil {
		return
	}
	if err := v.Redis.Publish(ctx, constants.CheckinChannel, payload).Err(); err != nil {
		log.Printf("publish checkin: %v", err)
	}
}

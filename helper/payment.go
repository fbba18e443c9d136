package helper

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"foundation_backend/config"
	"foundation_backend/constants"
	"foundation_backend/model"
	"foundation_backend/store"

	"github.com/google/uuid"
)

// PaymentBridge exchanges a pending ticket for a hosted checkout redirect and
// later reconciles its outcome against the gateway.
type PaymentBridge struct {
	Tickets store.TicketStore
	Gateway *PesapalClient
}

func NewPaymentBridge(tickets store.TicketStore, gateway *PesapalClient) *PaymentBridge {
	return &PaymentBridge{Tickets: tickets, Gateway: gateway}
}

// Initiate creates the pending ticket row first, so a durable record exists
// even when the gateway call that follows fails, then submits the order and
// returns the hosted checkout URL.
func (b *PaymentBridge) Initiate(ctx context.Context, in model.InitiatePaymentInput) (redirectURL string, ticket *model.Ticket, err error) {
	ticket = &model.Ticket{
		EventID:          in.EventID,
		BuyerName:        in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		Quantity:         in.Quantity,
		Price:            in.Amount / int64(in.Quantity),
		Channel:          constants.ChannelOnline,
		Status:           constants.TicketPending,
		ConfirmationCode: confirmationCode(),
	}
	ticket.ID = uuid.NewString()

	if err := b.Tickets.Create(ctx, ticket); err != nil {
		return "", nil, fmt.Errorf("create ticket: %w", err)
	}

	token, err := b.Gateway.RequestToken(ctx)
	if err != nil {
		b.markFailed(ctx, ticket.ID, err)
		return "", ticket, err
	}

	cfg := b.Gateway.Config()
	order := model.PesapalOrderRequest{
		ID:             ticket.ID,
		Currency:       cfg.Currency,
		Amount:         float64(in.Amount),
		Description:    fmt.Sprintf("Event ticket x%d", in.Quantity),
		CallbackURL:    cfg.CallbackURL,
		NotificationID: cfg.NotificationID,
		BillingAddress: model.PesapalBillingAddress{
			EmailAddress: in.Email,
			PhoneNumber:  in.Phone,
			FirstName:    in.Name,
		},
	}

	resp, err := b.Gateway.SubmitOrder(ctx, token, order)
	if err != nil {
		b.markFailed(ctx, ticket.ID, err)
		return "", ticket, err
	}
	if resp.RedirectURL == "" {
		err := &GatewayError{Status: 200, Body: "no redirect_url in order response"}
		b.markFailed(ctx, ticket.ID, err)
		return "", ticket, err
	}

	if err := b.Tickets.Update(ctx, ticket.ID, map[string]any{
		"pesapal_transaction_id": resp.OrderTrackingID,
	}); err != nil {
		return "", ticket, fmt.Errorf("persist tracking id: %w", err)
	}
	ticket.PesapalTransactionID = resp.OrderTrackingID

	return resp.RedirectURL, ticket, nil
}

// Reconcile queries the gateway for the transaction's current state and
// persists the mapped status. A ticket already in a terminal state is left
// untouched, which also makes repeated notifications for the same outcome
// no-ops.
func (b *PaymentBridge) Reconcile(ctx context.Context, trackingID string) (string, error) {
	ticket, err := b.Tickets.FindByTrackingID(ctx, trackingID)
	if err != nil {
		return "", err
	}

	token, err := b.Gateway.RequestToken(ctx)
	if err != nil {
		return "", err
	}

	status, err := b.Gateway.TransactionStatus(ctx, token, trackingID)
	if err != nil {
		return "", err
	}

	mapped := config.MapPaymentStatus(status.PaymentStatusDescription)

	if ticket.Status == constants.TicketConfirmed || ticket.Status == constants.TicketFailed {
		return ticket.Status, nil
	}
	if mapped == ticket.Status {
		if status.PaymentStatusDescription == ticket.StatusDescription {
			return mapped, nil
		}
		// still pending at the gateway; keep the raw description current
		if err := b.Tickets.Update(ctx, ticket.ID, map[string]any{
			"status_description": status.PaymentStatusDescription,
		}); err != nil {
			return "", err
		}
		return mapped, nil
	}

	if err := b.Tickets.Update(ctx, ticket.ID, map[string]any{
		"status":             mapped,
		"status_description": status.PaymentStatusDescription,
	}); err != nil {
		return "", err
	}
	return mapped, nil
}

// ReconcileStale sweeps tickets stuck pending with a tracking id attached,
// covering gateways whose notification never arrived.
func (b *PaymentBridge) ReconcileStale(ctx context.Context, olderThan time.Duration) {
	tickets, err := b.Tickets.FindStalePending(ctx, time.Now().Add(-olderThan))
	if err != nil {
		log.Printf("stale ticket sweep: %v", err)
		return
	}
	for _, t := range tickets {
		if _, err := b.Reconcile(ctx, t.PesapalTransactionID); err != nil {
			log.Printf("reconcile ticket %s: %v", t.ID, err)
		}
	}
}

func (b *PaymentBridge) markFailed(ctx context.Context, ticketID string, cause error) {
	err := b.Tickets.Update(ctx, ticketID, map[string]any{
		"status":             constants.TicketFailed,
		"status_description": cause.Error(),
	})
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Printf("mark ticket %s failed: %v", ticketID, err)
	}
}

func confirmationCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

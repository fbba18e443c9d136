package helper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foundation_backend/config"
	"foundation_backend/constants"
	"foundation_backend/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gatewayOptions struct {
	denyAuth          bool
	rejectOrder       bool
	omitRedirect      bool
	trackingID        string
	statusDescription string
}

func newGateway(t *testing.T, opts gatewayOptions) *PesapalClient {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/Auth/RequestToken", func(w http.ResponseWriter, r *http.Request) {
		var auth model.PesapalAuthRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&auth))
		if opts.denyAuth {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(model.PesapalAuthResponse{Status: "401"})
			return
		}
		json.NewEncoder(w).Encode(model.PesapalAuthResponse{Token: "test-token", Status: "200"})
	})
	mux.HandleFunc("/api/Transactions/SubmitOrderRequest", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		var order model.PesapalOrderRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&order))
		if opts.rejectOrder {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"invalid merchant"}}`))
			return
		}
		resp := model.PesapalOrderResponse{
			OrderTrackingID:   opts.trackingID,
			MerchantReference: order.ID,
			Status:            "200",
		}
		if !opts.omitRedirect {
			resp.RedirectURL = "https://pay.pesapal.test/iframe/" + opts.trackingID
		}
		json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("/api/Transactions/GetTransactionStatus", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(model.PesapalStatusResponse{
			PaymentStatusDescription: opts.statusDescription,
			MerchantReference:        r.URL.Query().Get("orderTrackingId"),
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return NewPesapalClient(config.PesapalConfig{
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		BaseURL:        srv.URL,
		CallbackURL:    "https://example.org/payments/callback",
		NotificationID: "ipn-1",
		Currency:       "UGX",
		Timeout:        10 * time.Second,
	})
}

func paymentInput() model.InitiatePaymentInput {
	return model.InitiatePaymentInput{
		Name:     "Jane Doe",
		Email:    "j@x.com",
		Phone:    "+256700000000",
		Amount:   50000,
		EventID:  "E1",
		Quantity: 2,
	}
}

func TestInitiate_Success(t *testing.T) {
	tickets := newFakeTickets()
	bridge := NewPaymentBridge(tickets, newGateway(t, gatewayOptions{trackingID: "X1"}))

	redirectURL, ticket, err := bridge.Initiate(context.Background(), paymentInput())
	require.NoError(t, err)
	assert.Equal(t, "https://pay.pesapal.test/iframe/X1", redirectURL)

	require.Equal(t, 1, tickets.created)
	stored := tickets.get(ticket.ID)
	require.NotNil(t, stored)
	assert.Equal(t, int64(25000), stored.Price)
	assert.Equal(t, constants.TicketPending, stored.Status)
	assert.Equal(t, "X1", stored.PesapalTransactionID)
	assert.Equal(t, constants.ChannelOnline, stored.Channel)
	assert.NotEmpty(t, stored.ConfirmationCode)
}

func TestInitiate_AuthFailureLeavesFailedTicket(t *testing.T) {
	tickets := newFakeTickets()
	bridge := NewPaymentBridge(tickets, newGateway(t, gatewayOptions{denyAuth: true}))

	_, ticket, err := bridge.Initiate(context.Background(), paymentInput())
	require.ErrorIs(t, err, ErrGatewayAuth)

	require.Equal(t, 1, tickets.created)
	assert.Equal(t, constants.TicketFailed, tickets.get(ticket.ID).Status)
}

func TestInitiate_GatewayRejectionLeavesFailedTicket(t *testing.T) {
	tickets := newFakeTickets()
	bridge := NewPaymentBridge(tickets, newGateway(t, gatewayOptions{rejectOrder: true}))

	_, ticket, err := bridge.Initiate(context.Background(), paymentInput())

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusInternalServerError, gwErr.Status)

	stored := tickets.get(ticket.ID)
	assert.Equal(t, constants.TicketFailed, stored.Status)
	assert.Contains(t, stored.StatusDescription, "invalid merchant")
}

func TestInitiate_MissingRedirectURL(t *testing.T) {
	tickets := newFakeTickets()
	bridge := NewPaymentBridge(tickets, newGateway(t, gatewayOptions{trackingID: "X1", omitRedirect: true}))

	_, ticket, err := bridge.Initiate(context.Background(), paymentInput())

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, constants.TicketFailed, tickets.get(ticket.ID).Status)
}

func pendingTicket(id, trackingID string) *model.Ticket {
	tk := &model.Ticket{
		EventID:              "E1",
		Status:               constants.TicketPending,
		Channel:              constants.ChannelOnline,
		PesapalTransactionID: trackingID,
	}
	tk.ID = id
	tk.CreatedAt = time.Now().Add(-time.Hour)
	return tk
}

func TestReconcile_MapsAndPersists(t *testing.T) {
	tickets := newFakeTickets(pendingTicket("T1", "X1"))
	bridge := NewPaymentBridge(tickets, newGateway(t, gatewayOptions{statusDescription: "Transaction COMPLETED"}))

	status, err := bridge.Reconcile(context.Background(), "X1")
	require.NoError(t, err)
	assert.Equal(t, constants.TicketConfirmed, status)

	stored := tickets.get("T1")
	assert.Equal(t, constants.TicketConfirmed, stored.Status)
	assert.Equal(t, "Transaction COMPLETED", stored.StatusDescription)
}

// A second identical notification must not produce another write.
func TestReconcile_Idempotent(t *testing.T) {
	tickets := newFakeTickets(pendingTicket("T1", "X1"))
	bridge := NewPaymentBridge(tickets, newGateway(t, gatewayOptions{statusDescription: "Payment successful"}))

	first, err := bridge.Reconcile(context.Background(), "X1")
	require.NoError(t, err)
	writes := tickets.updates

	second, err := bridge.Reconcile(context.Background(), "X1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, writes, tickets.updates)
}

func TestReconcile_TerminalStatusNeverRegresses(t *testing.T) {
	tk := pendingTicket("T1", "X1")
	tk.Status = constants.TicketFailed
	tickets := newFakeTickets(tk)
	bridge := NewPaymentBridge(tickets, newGateway(t, gatewayOptions{statusDescription: "COMPLETED"}))

	status, err := bridge.Reconcile(context.Background(), "X1")
	require.NoError(t, err)
	assert.Equal(t, constants.TicketFailed, status)
	assert.Equal(t, constants.TicketFailed, tickets.get("T1").Status)
}

func TestReconcile_UnmappedDescriptionStaysPending(t *testing.T) {
	tickets := newFakeTickets(pendingTicket("T1", "X1"))
	bridge := NewPaymentBridge(tickets, newGateway(t, gatewayOptions{statusDescription: "Awaiting provider"}))

	status, err := bridge.Reconcile(context.Background(), "X1")
	require.NoError(t, err)
	assert.Equal(t, constants.TicketPending, status)
	assert.Equal(t, constants.TicketPending, tickets.get("T1").Status)
}

// A transaction still pending at the gateway keeps its raw description
// current, without rewriting when the description has not changed.
func TestReconcile_PendingDescriptionRefreshed(t *testing.T) {
	tickets := newFakeTickets(pendingTicket("T1", "X1"))
	bridge := NewPaymentBridge(tickets, newGateway(t, gatewayOptions{statusDescription: "Awaiting provider"}))

	status, err := bridge.Reconcile(context.Background(), "X1")
	require.NoError(t, err)
	assert.Equal(t, constants.TicketPending, status)
	assert.Equal(t, "Awaiting provider", tickets.get("T1").StatusDescription)

	writes := tickets.updates
	_, err = bridge.Reconcile(context.Background(), "X1")
	require.NoError(t, err)
	assert.Equal(t, writes, tickets.updates)
}

func TestReconcileStale_SweepsPendingTickets(t *testing.T) {
	stale := pendingTicket("T1", "X1")
	fresh := pendingTicket("T2", "X2")
	fresh.CreatedAt = time.Now()
	tickets := newFakeTickets(stale, fresh)
	bridge := NewPaymentBridge(tickets, newGateway(t, gatewayOptions{statusDescription: "Transaction cancelled by user"}))

	bridge.ReconcileStale(context.Background(), 30*time.Minute)

	assert.Equal(t, constants.TicketFailed, tickets.get("T1").Status)
	assert.Equal(t, constants.TicketPending, tickets.get("T2").Status)
}

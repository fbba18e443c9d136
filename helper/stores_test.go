package helper

import (
	"context"
	"errors"
	"sync"
	"time"

	"foundation_backend/model"
	"foundation_backend/store"
)

type fakeTickets struct {
	mu         sync.Mutex
	byID       map[string]*model.Ticket
	created    int
	updates    int
	failUpdate bool
}

func newFakeTickets(tickets ...*model.Ticket) *fakeTickets {
	f := &fakeTickets{byID: make(map[string]*model.Ticket)}
	for _, t := range tickets {
		f.byID[t.ID] = t
	}
	return f
}

func (f *fakeTickets) Create(_ context.Context, t *model.Ticket) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created++
	cp := *t
	f.byID[t.ID] = &cp
	return nil
}

func (f *fakeTickets) FindByID(_ context.Context, id string) (*model.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTickets) FindByTrackingID(_ context.Context, trackingID string) (*model.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.byID {
		if t.PesapalTransactionID == trackingID || t.ID == trackingID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeTickets) Update(_ context.Context, id string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return errors.New("update failed")
	}
	t, ok := f.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	f.updates++
	for k, v := range fields {
		switch k {
		case "used":
			t.Used = v.(bool)
		case "status":
			t.Status = v.(string)
		case "status_description":
			t.StatusDescription = v.(string)
		case "pesapal_transaction_id":
			t.PesapalTransactionID = v.(string)
		}
	}
	return nil
}

func (f *fakeTickets) Delete(_ context.Context, ids []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var deleted int64
	for _, id := range ids {
		if _, ok := f.byID[id]; ok {
			delete(f.byID, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeTickets) FindStalePending(_ context.Context, olderThan time.Time) ([]model.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Ticket
	for _, t := range f.byID {
		if t.Status == "pending" && t.PesapalTransactionID != "" && t.CreatedAt.Before(olderThan) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTickets) get(id string) *model.Ticket {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id]
}

func (f *fakeTickets) any() *model.Ticket {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.byID {
		return t
	}
	return nil
}

type fakeCards struct {
	mu         sync.Mutex
	byID       map[string]*model.InvitationCard
	failUpdate bool
}

func newFakeCards(cards ...*model.InvitationCard) *fakeCards {
	f := &fakeCards{byID: make(map[string]*model.InvitationCard)}
	for _, card := range cards {
		f.byID[card.ID] = card
	}
	return f
}

func (f *fakeCards) FindByID(_ context.Context, id string) (*model.InvitationCard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	card, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *card
	return &cp, nil
}

func (f *fakeCards) Update(_ context.Context, id string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return errors.New("update failed")
	}
	card, ok := f.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	if v, ok := fields["is_used"]; ok {
		card.IsUsed = v.(bool)
	}
	return nil
}

type fakeBatches struct {
	byCode map[string]*model.Batch
	err    error
}

func (f *fakeBatches) FindByCode(_ context.Context, code string) (*model.Batch, error) {
	if f.err != nil {
		return nil, f.err
	}
	batch, ok := f.byCode[code]
	if !ok {
		return nil, store.ErrNotFound
	}
	return batch, nil
}

type fakeEvents struct {
	byID map[string]*model.Event
}

func (f *fakeEvents) FindByID(_ context.Context, id string) (*model.Event, error) {
	event, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return event, nil
}

func singleEvent(id, title string) *fakeEvents {
	e := &model.Event{Title: title, Location: "Kampala", Organizer: "The Foundation"}
	e.ID = id
	return &fakeEvents{byID: map[string]*model.Event{id: e}}
}

package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"foundation_backend/model"
	"foundation_backend/store"
	"foundation_backend/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCards struct {
	byID map[string]*model.InvitationCard
}

func (s *stubCards) FindByID(_ context.Context, id string) (*model.InvitationCard, error) {
	card, ok := s.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return card, nil
}

func (s *stubCards) Update(_ context.Context, id string, fields map[string]any) error {
	card, ok := s.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	if v, ok := fields["is_used"]; ok {
		card.IsUsed = v.(bool)
	}
	return nil
}

func setCardUsedApp(cards *stubCards) *fiber.App {
	h := &Handler{Cards: cards}
	app := fiber.New()
	app.Put("/card/:cardId/used", validate.GetID("cardId"), validate.SetCardUsed(), h.SetCardUsed)
	return app
}

func TestSetCardUsed_TogglesFlag(t *testing.T) {
	card := &model.InvitationCard{EventID: "E1"}
	card.ID = "C1"
	cards := &stubCards{byID: map[string]*model.InvitationCard{"C1": card}}
	app := setCardUsedApp(cards)

	req := httptest.NewRequest(fiber.MethodPut, "/card/C1/used", strings.NewReader(`{"isUsed":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, card.IsUsed)
}

func TestSetCardUsed_UnknownCard(t *testing.T) {
	cards := &stubCards{byID: map[string]*model.InvitationCard{}}
	app := setCardUsedApp(cards)

	req := httptest.NewRequest(fiber.MethodPut, "/card/C9/used", strings.NewReader(`{"isUsed":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

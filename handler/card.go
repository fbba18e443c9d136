package handler

import (
	"errors"

	"foundation_backend/constants"
	"foundation_backend/model"
	"foundation_backend/store"
	"foundation_backend/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetCards(c *fiber.Ctx) error {
	filter := new(model.Pagination)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := h.CardsDB.Model(&model.InvitationCard{}).Order("created_at DESC")

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var cards []model.InvitationCard
	if err := db.Find(&cards).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       cards,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

// CreateCards provisions one or more cards into a batch.
func (h *Handler) CreateCards(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateCardInput)

	var event model.Event
	if err := h.DB.First(&event, "id = ?", input.EventID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "event not found", err)
	}

	count := input.Count
	if count == 0 {
		count = 1
	}

	cards := make([]model.InvitationCard, count)
	for i := range cards {
		cards[i] = model.InvitationCard{
			EventID:   input.EventID,
			BatchCode: input.BatchCode,
			CardType:  input.CardType,
		}
	}
	if err := h.CardsDB.Create(&cards).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "could not create cards", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "cards created",
		"data":    cards,
	})
}

func (h *Handler) DeleteCard(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayID)

	res := h.CardsDB.Where("id IN ?", input.IDs).Delete(&model.InvitationCard{})
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "could not delete cards", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("no matching cards"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "cards deleted",
		"deleted": res.RowsAffected,
	})
}

// VerifyCard runs the redemption decision tree for a scanned card.
func (h *Handler) VerifyCard(c *fiber.Ctx) error {
	result, err := h.Verifier.LookupCard(c.Context(), c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, err)
	}
	if !result.Valid && result.Reason == constants.ReasonNotFound {
		return c.Status(fiber.StatusNotFound).JSON(result)
	}
	return c.JSON(result)
}

// SetCardUsed is the administrative override: set is_used directly without
// running the decision tree.
func (h *Handler) SetCardUsed(c *fiber.Ctx) error {
	cardID := c.Locals("inputId").(string)
	input := c.Locals("input").(model.SetCardUsedInput)

	if err := h.Cards.Update(c.Context(), cardID, map[string]any{"is_used": input.IsUsed}); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "card updated",
		"isUsed":  input.IsUsed,
	})
}

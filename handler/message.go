package handler

import (
	"errors"
	"log"

	"foundation_backend/constants"
	"foundation_backend/model"
	"foundation_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// CreateMessage persists a contact-form submission, then forwards it by
// email. Delivery failure is logged only: the message is already stored.
func (h *Handler) CreateMessage(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateMessageInput)

	var msg model.ContactMessage
	copier.Copy(&msg, &input)

	if err := h.DB.Create(&msg).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "could not save message", err)
	}

	if err := utils.SendContactNotification(h.SMTP, msg); err != nil {
		log.Printf("contact notification for %s: %v", msg.ID, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "message received",
		"id":      msg.ID,
	})
}

func (h *Handler) GetMessages(c *fiber.Ctx) error {
	filter := new(model.FilterMessageInput)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := h.DB.Model(&model.ContactMessage{}).Order("created_at DESC")
	if filter.Unread != nil && *filter.Unread {
		db = db.Where("read = false")
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var messages []model.ContactMessage
	if err := db.Find(&messages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       messages,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func (h *Handler) MarkMessageRead(c *fiber.Ctx) error {
	res := h.DB.Model(&model.ContactMessage{}).
		Where("id = ?", c.Params("id")).
		Update("read", true)
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("message not found"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "marked read"})
}

func (h *Handler) DeleteMessage(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayID)

	res := h.DB.Where("id IN ?", input.IDs).Delete(&model.ContactMessage{})
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "could not delete messages", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("no matching messages"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "messages deleted",
		"deleted": res.RowsAffected,
	})
}

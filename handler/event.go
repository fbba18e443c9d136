package handler

import (
	"errors"
	"time"

	"foundation_backend/constants"
	"foundation_backend/helper"
	"foundation_backend/model"
	"foundation_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func (h *Handler) GetEvents(c *fiber.Ctx) error {
	filter := new(model.Pagination)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := h.DB.Model(&model.Event{}).Order("date DESC")

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var events []model.Event
	if err := db.Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       events,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

// GetUpcomingEvents backs the public programs page.
func (h *Handler) GetUpcomingEvents(c *fiber.Ctx) error {
	var events []model.Event
	err := h.DB.Where("date >= ?", time.Now().Truncate(24*time.Hour)).
		Order("date ASC").
		Find(&events).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, events)
}

func (h *Handler) GetEventBySlug(c *fiber.Ctx) error {
	var event model.Event
	if err := h.DB.First(&event, "slug = ?", c.Params("slug")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateEventInput)

	var event model.Event
	copier.Copy(&event, &input)
	event.Slug = helper.GenerateUniqueEventSlug(h.DB, input.Title)

	if err := h.DB.Create(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "could not create event", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "event created",
		"data":    event,
	})
}

func (h *Handler) EditEvent(c *fiber.Ctx) error {
	eventID := c.Locals("inputId").(string)

	var event model.Event
	if err := h.DB.First(&event, "id = ?", eventID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	input := c.Locals("input").(model.EditEventInput)
	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Date != nil {
		event.Date = *input.Date
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.Organizer != nil {
		event.Organizer = *input.Organizer
	}
	if input.OrganizerLogo != nil {
		event.OrganizerLogo = *input.OrganizerLogo
	}
	if input.SponsorLogos != nil {
		event.SponsorLogos = *input.SponsorLogos
	}

	if err := h.DB.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "could not update event", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "event updated",
		"data":    event,
	})
}

func (h *Handler) DeleteEvent(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayID)

	res := h.DB.Where("id IN ?", input.IDs).Delete(&model.Event{})
	if res.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "could not delete events", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("no matching events"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "events deleted",
		"deleted": res.RowsAffected,
	})
}

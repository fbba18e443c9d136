package handler

import (
	"errors"
	"fmt"
	"strings"

	"foundation_backend/config"
	"foundation_backend/constants"
	"foundation_backend/model"
	"foundation_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// GetTickets lists tickets joined to their events for the admin panel.
func (h *Handler) GetTickets(c *fiber.Ctx) error {
	filter := new(model.FilterTicketInput)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := h.DB.Model(&model.Ticket{}).Preload("Event").Order("created_at DESC")
	if filter.EventID != "" {
		db = db.Where("event_id = ?", filter.EventID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Channel != "" {
		db = db.Where("channel = ?", filter.Channel)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var tickets []model.Ticket
	if err := db.Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, err)
	}

	type row struct {
		model.Ticket
		EventTitle string `json:"eventTitle"`
	}
	rows := make([]row, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, row{Ticket: t, EventTitle: t.Event.Title})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       rows,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

// CreateTicket issues a ticket from the back office, typically for a
// physical batch.
func (h *Handler) CreateTicket(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTicketInput)

	var event model.Event
	if err := h.DB.First(&event, "id = ?", input.EventID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "event not found", err)
	}

	var ticket model.Ticket
	copier.Copy(&ticket, &input)
	ticket.Status = constants.TicketConfirmed
	ticket.ConfirmationCode = strings.ToUpper(uuid.NewString()[:8])

	if err := h.DB.Create(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "could not create ticket", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "ticket created",
		"data":    ticket,
	})
}

func (h *Handler) EditTicket(c *fiber.Ctx) error {
	ticketID := c.Locals("inputId").(string)

	var ticket model.Ticket
	if err := h.DB.First(&ticket, "id = ?", ticketID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	input := c.Locals("input").(model.EditTicketInput)
	if input.BuyerName != nil {
		ticket.BuyerName = *input.BuyerName
	}
	if input.Email != nil {
		ticket.Email = *input.Email
	}
	if input.Phone != nil {
		ticket.Phone = *input.Phone
	}
	if input.Status != nil {
		ticket.Status = *input.Status
	}
	if input.Used != nil {
		ticket.Used = *input.Used
	}
	if input.IsActive != nil {
		ticket.IsActive = *input.IsActive
	}

	if err := h.DB.Save(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "could not update ticket", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "ticket updated",
		"data":    ticket,
	})
}

func (h *Handler) DeleteTicket(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayID)

	deleted, err := h.Tickets.Delete(c.Context(), input.IDs)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "could not delete tickets", err)
	}
	if deleted == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("no matching tickets"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "tickets deleted",
		"deleted": deleted,
	})
}

// TicketQR renders a PNG QR code pointing at the ticket's verification URL.
func (h *Handler) TicketQR(c *fiber.Ctx) error {
	ticketID := c.Params("id")

	var ticket model.Ticket
	if err := h.DB.First(&ticket, "id = ?", ticketID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	content := fmt.Sprintf("%s/api/v1/verify/ticket/%s", config.Config("APP_URL"), ticket.ID)
	png, err := utils.GenerateQRCode(content, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}

// VerifyTicket runs the redemption decision tree for a scanned ticket.
func (h *Handler) VerifyTicket(c *fiber.Ctx) error {
	result, err := h.Verifier.LookupTicket(c.Context(), c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, err)
	}
	if !result.Valid && result.Reason == constants.ReasonNotFound {
		return c.Status(fiber.StatusNotFound).JSON(result)
	}
	return c.JSON(result)
}

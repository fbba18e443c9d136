package handler

import (
	"time"

	"foundation_backend/constants"
	"foundation_backend/model"
	"foundation_backend/utils"

	"github.com/gofiber/fiber/v2"
)

type eventSales struct {
	EventID     string `json:"eventId"`
	EventTitle  string `json:"eventTitle"`
	TicketCount int64  `json:"ticketCount"`
	Revenue     int64  `json:"revenue"`
}

// GetStatistics aggregates tickets joined to events for the admin dashboard.
func (h *Handler) GetStatistics(c *fiber.Ctx) error {
	var sales []eventSales
	err := h.DB.Table("tickets").
		Select("events.id AS event_id, events.title AS event_title, COUNT(tickets.id) AS ticket_count, COALESCE(SUM(tickets.price * tickets.quantity), 0) AS revenue").
		Joins("JOIN events ON events.id = tickets.event_id").
		Where("tickets.status = ?", constants.TicketConfirmed).
		Group("events.id, events.title").
		Order("revenue DESC").
		Scan(&sales).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, err)
	}

	var unreadMessages int64
	h.DB.Model(&model.ContactMessage{}).Where("read = false").Count(&unreadMessages)

	var upcomingEvents int64
	h.DB.Model(&model.Event{}).Where("date >= ?", time.Now()).Count(&upcomingEvents)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"sales":          sales,
		"unreadMessages": unreadMessages,
		"upcomingEvents": upcomingEvents,
	})
}

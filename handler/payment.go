package handler

import (
	"errors"
	"fmt"
	"log"

	"foundation_backend/config"
	"foundation_backend/constants"
	"foundation_backend/helper"
	"foundation_backend/model"
	"foundation_backend/store"
	"foundation_backend/utils"

	"github.com/gofiber/fiber/v2"
)

// CreatePayment is the public checkout entry point: a pending ticket is
// created, the order is submitted to Pesapal and the caller is handed the
// hosted payment page URL.
func (h *Handler) CreatePayment(c *fiber.Ctx) error {
	input := c.Locals("input").(model.InitiatePaymentInput)

	var event model.Event
	if err := h.DB.First(&event, "id = ?", input.EventID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "event not found", err)
	}

	redirectURL, ticket, err := h.Bridge.Initiate(c.Context(), input)
	if err != nil {
		var gwErr *helper.GatewayError
		switch {
		case errors.Is(err, helper.ErrGatewayAuth):
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "payment gateway authentication failed", err)
		case errors.As(err, &gwErr):
			return utils.ErrorResponse(c, fiber.StatusInternalServerError,
				fmt.Sprintf("payment gateway rejected the order (status %d)", gwErr.Status), err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPSTREAM, err)
		}
	}

	return c.JSON(fiber.Map{
		"message":     "payment initiated",
		"redirectUrl": redirectURL,
		"ticketId":    ticket.ID,
	})
}

// PaymentCallback is where Pesapal redirects the buyer after checkout. The
// status is reconciled immediately, then the buyer is sent back to the site.
func (h *Handler) PaymentCallback(c *fiber.Ctx) error {
	trackingID := c.Query("OrderTrackingId")
	if trackingID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT,
			errors.New("missing OrderTrackingId"))
	}

	status, err := h.Bridge.Reconcile(c.Context(), trackingID)
	if err != nil {
		log.Printf("callback reconcile %s: %v", trackingID, err)
		status = constants.TicketPending
	}

	return c.Redirect(fmt.Sprintf("%s/payment-result?status=%s", config.Config("SITE_URL"), status))
}

// PaymentIPN receives Pesapal's server-to-server notification. It performs
// the same idempotent status write as the callback path.
func (h *Handler) PaymentIPN(c *fiber.Ctx) error {
	var ipn model.PesapalIPN
	if c.Method() == fiber.MethodGet {
		if err := c.QueryParser(&ipn); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
	} else if err := c.BodyParser(&ipn); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if ipn.OrderTrackingID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT,
			errors.New("missing OrderTrackingId"))
	}

	ipnStatus := 200
	if _, err := h.Bridge.Reconcile(c.Context(), ipn.OrderTrackingID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		log.Printf("ipn reconcile %s: %v", ipn.OrderTrackingID, err)
		ipnStatus = 500
	}

	// Pesapal expects its own fields echoed back.
	return c.JSON(fiber.Map{
		"orderNotificationType":  ipn.OrderNotificationType,
		"orderTrackingId":        ipn.OrderTrackingID,
		"orderMerchantReference": ipn.OrderMerchantReference,
		"status":                 ipnStatus,
	})
}

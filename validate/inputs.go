package validate

import (
	"foundation_backend/model"

	"github.com/gofiber/fiber/v2"
)

func CreateEvent() fiber.Handler     { return body[model.CreateEventInput]() }
func EditEvent() fiber.Handler       { return body[model.EditEventInput]() }
func CreateTicket() fiber.Handler    { return body[model.CreateTicketInput]() }
func EditTicket() fiber.Handler      { return body[model.EditTicketInput]() }
func CreateCard() fiber.Handler      { return body[model.CreateCardInput]() }
func SetCardUsed() fiber.Handler     { return body[model.SetCardUsedInput]() }
func CreateBatch() fiber.Handler     { return body[model.CreateBatchInput]() }
func CreateMessage() fiber.Handler   { return body[model.CreateMessageInput]() }
func InitiatePayment() fiber.Handler { return body[model.InitiatePaymentInput]() }

package router

import (
	"foundation_backend/handler"
	"foundation_backend/middleware"
	"foundation_backend/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", h.Login)
	auth.Post("/logout", h.Logout)

	// Public site endpoints
	v1.Post("/contact", validate.CreateMessage(), h.CreateMessage)
	v1.Get("/gallery", h.GetGallery)
	v1.Get("/videos", h.GetVideos)
	v1.Get("/event/public", h.GetUpcomingEvents)
	v1.Get("/event/public/:slug", h.GetEventBySlug)

	// Back office
	event := v1.Group("/event")
	event.Get("/", middleware.Protected(), h.GetEvents)
	event.Post("/", middleware.Protected(), validate.CreateEvent(), h.CreateEvent)
	event.Put("/:eventId", middleware.Protected(), validate.GetID("eventId"), validate.EditEvent(), h.EditEvent)
	event.Delete("/", middleware.Protected(), validate.Delete(), h.DeleteEvent)

	ticket := v1.Group("/ticket")
	ticket.Get("/", middleware.Protected(), h.GetTickets)
	ticket.Post("/", middleware.Protected(), validate.CreateTicket(), h.CreateTicket)
	ticket.Put("/:ticketId", middleware.Protected(), validate.GetID("ticketId"), validate.EditTicket(), h.EditTicket)
	ticket.Delete("/", middleware.Protected(), validate.Delete(), h.DeleteTicket)
	ticket.Get("/:id/qr", middleware.Protected(), h.TicketQR)

	card := v1.Group("/card")
	card.Get("/", middleware.Protected(), h.GetCards)
	card.Post("/", middleware.Protected(), validate.CreateCard(), h.CreateCards)
	card.Delete("/", middleware.Protected(), validate.Delete(), h.DeleteCard)
	card.Put("/:cardId/used", middleware.Protected(), validate.GetID("cardId"), validate.SetCardUsed(), h.SetCardUsed)

	batch := v1.Group("/batch")
	batch.Get("/", middleware.Protected(), h.GetBatches)
	batch.Post("/", middleware.Protected(), validate.CreateBatch(), h.CreateBatch)
	batch.Patch("/:code/active/:isActive", middleware.Protected(), h.SetBatchActive)

	message := v1.Group("/message")
	message.Get("/", middleware.Protected(), h.GetMessages)
	message.Patch("/:id/read", middleware.Protected(), h.MarkMessageRead)
	message.Delete("/", middleware.Protected(), validate.Delete(), h.DeleteMessage)

	gallery := v1.Group("/gallery")
	gallery.Post("/", middleware.Protected(), h.UploadGalleryImages)
	gallery.Delete("/", middleware.Protected(), validate.Delete(), h.DeleteGalleryImage)

	verify := v1.Group("/verify")
	verify.Get("/ticket/:id", middleware.Protected(), h.VerifyTicket)
	verify.Get("/card/:id", middleware.Protected(), h.VerifyCard)

	v1.Get("/statistic", middleware.Protected(), h.GetStatistics)
	v1.Get("/checkins/live", middleware.Protected(), websocket.New(h.CheckinFeed))

	// Payment gateway surface (public, pre-registered with Pesapal)
	app.Post("/payments", validate.InitiatePayment(), h.CreatePayment)
	app.Get("/payments/callback", h.PaymentCallback)
	app.Post("/payments/ipn", h.PaymentIPN)
	app.Get("/payments/ipn", h.PaymentIPN)
}

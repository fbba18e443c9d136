package handler

import (
	"foundation_backend/config"
	"foundation_backend/helper"
	"foundation_backend/store"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Handler bundles every injected dependency the HTTP surface needs: the two
// database handles, redis, cloudinary and the payment gateway client.
type Handler struct {
	DB      *gorm.DB
	CardsDB *gorm.DB
	Redis   *redis.Client
	Cld     *cloudinary.Cloudinary

	Tickets store.TicketStore
	Cards   store.CardStore

	Bridge   *helper.PaymentBridge
	Verifier *helper.Verifier

	SMTP    config.SMTPConfig
	YouTube config.YouTubeConfig
}

func New(db, cardsDB *gorm.DB, rdb *redis.Client, cld *cloudinary.Cloudinary, gateway *helper.PesapalClient) *Handler {
	tickets := &store.GormTickets{DB: db}
	cards := &store.GormCards{DB: cardsDB}

	return &Handler{
		DB:      db,
		CardsDB: cardsDB,
		Redis:   rdb,
		Cld:     cld,
		Tickets: tickets,
		Cards:   cards,
		Bridge:  helper.NewPaymentBridge(tickets, gateway),
		Verifier: &helper.Verifier{
			Tickets: tickets,
			Cards:   cards,
			Batches: &store.GormBatches{DB: cardsDB},
			Events:  &store.GormEvents{DB: db},
			Redis:   rdb,
		},
		SMTP:    config.LoadSMTP(),
		YouTube: config.LoadYouTube(),
	}
}

package main

import (
	"log"

	"foundation_backend/config"
	"foundation_backend/database"
	"foundation_backend/handler"
	"foundation_backend/helper"
	"foundation_backend/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.Config("SITE_URL"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	pool := database.DefaultPool()
	db, err := database.ConnectMain(pool)
	if err != nil {
		log.Fatalf("main database: %v", err)
	}
	cardsDB, err := database.ConnectCards(pool)
	if err != nil {
		log.Fatalf("cards database: %v", err)
	}
	database.SeedCards(cardsDB)

	rdb := redis.NewClient(&redis.Options{Addr: config.Config("REDIS_ADDR")})
	cld := helper.InitCloudinary()
	gateway := helper.NewPesapalClient(config.LoadPesapal())

	h := handler.New(db, cardsDB, rdb, cld, gateway)

	helper.StartPaymentScheduler(h.Bridge)
	defer helper.StopPaymentScheduler()

	router.SetupRoutes(app, h)

	port := config.Config("PORT")
	if port == "" {
		port = "8002"
	}
	log.Fatal(app.Listen(":" + port))
}

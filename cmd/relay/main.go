package main

import (
	"log"
	"time"

	"printfolio/internal/config"
	"printfolio/internal/domain/fiber/handler"
	"printfolio/internal/middleware"
	"printfolio/internal/service"
	"printfolio/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	mistralConfig := config.LoadMistralConfig()
	relayConfig := config.LoadRelayConfig()

	app := fiber.New(fiber.Config{
		AppName: "printfolio-relay",
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New())
	app.Use(healthcheck.New())
	app.Use(middleware.RateLimiter(30, 1*time.Minute))

	mistral := service.NewMistralService()
	uc := usecase.NewRelayUsecase(mistral, mistralConfig.Models)
	relayHandler := handler.NewRelayHandler(uc)

	relayHandler.RegisterRoutes(app)

	log.Println("Relay listening on ", relayConfig.Port)
	if err := app.Listen(relayConfig.Port); err != nil {
		log.Fatal(err)
	}
}

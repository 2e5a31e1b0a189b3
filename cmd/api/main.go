package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/cloud"
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/config"
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/database"
	httpHandlers "github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/http"
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/reliability"
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	var snsClient *cloud.SNSClient
	if config.UseCloudServices() {
		snsClient, err = cloud.NewSNSClient(config.AWSRegion(), config.SNSTopicArn())
		if err != nil {
			log.Fatal().Err(err).Msg("sns client init failed")
		}
	}

	relClient := reliability.NewClient(config.ReliabilityURL(), config.ReliabilityTimeout())
	svcs := service.New(db, relClient, snsClient)

	app := fiber.New()
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	httpHandlers.Register(app, svcs)

	addr := config.APIAddr()
	log.Info().Str("addr", addr).Msg("api listening")
	log.Fatal().Err(app.Listen(addr)).Msg("server exit")
}

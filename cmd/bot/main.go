package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"kenangan-bot/internal/bot"
	"kenangan-bot/internal/config"
	"kenangan-bot/internal/logging"
	"kenangan-bot/internal/repository"
	"kenangan-bot/internal/service"
)

func main() {
	logging.Init()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if cfg.TelegramToken == "" {
		log.Fatal().Msg("TELEGRAM_TOKEN not found in environment variables")
	}

	// Missing backends degrade their feature to failure responses; only the
	// bot token is fatal.
	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("database unavailable, saving posts will not work")
		db = nil
	} else {
		defer db.Close()
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("storage unavailable, media upload will not work")
		minioClient = nil
	}

	var sessions repository.SessionStore = repository.NewMemorySessionStore()
	if cfg.RedisURL != "" {
		redisClient, err := config.NewRedisClient(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, falling back to in-memory sessions")
		} else {
			defer redisClient.Close()
			sessions = repository.NewRedisSessionStore(redisClient)
		}
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, minioClient, cfg)

	b, err := bot.New(cfg.TelegramToken, services, sessions)
	if err != nil {
		log.Fatal().Err(err).Msg("starting telegram bot")
	}

	go serveHealth(cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("bot stopped")
	}
	log.Info().Msg("bot shut down")
}

func serveHealth(port string) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if err := app.Listen(":" + port); err != nil {
		log.Warn().Err(err).Msg("health endpoint stopped")
	}
}

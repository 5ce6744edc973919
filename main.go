package main

import (
	"context"
	"log"
	"time"

	"referral-intake-server/handlers/referrals"
	"referral-intake-server/seed"
	"referral-intake-server/templates"
	"referral-intake-server/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	layout, err := utils.LoadSheetLayout(cfg.SheetLayout)
	if err != nil {
		logger.Fatal("Failed to load sheet layout", zap.Error(err))
	}

	ctx := context.Background()
	sheetsService, err := utils.NewSheetsService(ctx, cfg.GoogleCredentials)
	if err != nil {
		logger.Fatal("Failed to create sheets client", zap.Error(err))
	}
	sheet := utils.NewSheetWriter(sheetsService, cfg.SheetID, layout)

	if cfg.SeedSheetHeader {
		seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err := seed.SeedSheetHeader(seedCtx, sheet, logger)
		cancel()
		if err != nil {
			logger.Fatal("Failed to seed sheet header", zap.Error(err))
		}
	}

	service := referrals.NewService(sheet, utils.NewNotifier(cfg), cfg.Location, logger)
	handler := referrals.NewHandler(service, logger)

	tmpl, err := templates.Load()
	if err != nil {
		logger.Fatal("Failed to parse templates", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery(), utils.RequestLogger(logger))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowedOrigins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}
	r.SetHTMLTemplate(tmpl)

	referrals.RegisterReferralRoutes(r, handler)

	logger.Info("Referral form listening",
		zap.String("port", cfg.Port),
		zap.String("sheet_layout", layout.Name),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to run server", zap.Error(err))
	}
}

package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"psygen-api/internal/config"
	apihttp "psygen-api/internal/http"
	"psygen-api/internal/llm"
	"psygen-api/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if cfg.GroqAPIKey == "" {
		logger.Warn("groq api key not configured")
	}
	if cfg.MistralAPIKey == "" {
		logger.Warn("mistral api key not configured")
	}

	groqClient := llm.NewGroqClient(cfg.GroqBaseURL, cfg.GroqAPIKey, logger)
	visionClient := llm.NewMistralClient(cfg.MistralBaseURL, cfg.MistralAPIKey, logger)

	personalitySvc := service.NewPersonalityService(groqClient, service.Models{
		Analysis: cfg.AnalysisModel,
		Refine:   cfg.RefineModel,
	}, logger)
	screeningSvc := service.NewScreeningService(groqClient, cfg.AnalysisModel, logger)
	socialSvc := service.NewSocialService(visionClient, groqClient, service.SocialModels{
		Vision:   cfg.VisionModel,
		Analysis: cfg.AnalysisModel,
	}, logger)

	limiter := service.NewMemoryRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory rate limiter", zap.Error(err))
		} else {
			limiter = service.NewRedisRateLimiter(redisClient, cfg.RateLimitWindow, cfg.RateLimitMax)
		}
		cancel()
	}

	router := apihttp.NewRouter(
		logger,
		cfg.TrustedProxies,
		limiter,
		apihttp.NewPersonalityHandler(logger, personalitySvc),
		apihttp.NewScreeningHandler(logger, screeningSvc),
		apihttp.NewSocialHandler(logger, socialSvc),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

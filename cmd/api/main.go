package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"ayonne-skin/internal/catalog"
	"ayonne-skin/internal/config"
	"ayonne-skin/internal/db"
	apihttp "ayonne-skin/internal/http"
	"ayonne-skin/internal/repository"
	"ayonne-skin/internal/service"
	"ayonne-skin/internal/vision"

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

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatal("condition catalog load", zap.Error(err))
	}
	logger.Info("condition catalog loaded",
		zap.String("version", cat.Version()),
		zap.Int("conditions", cat.Len()),
	)

	analysisRepo := repository.NewPgAnalysisRepository(pool)
	settingsRepo := repository.NewPgSettingsRepository(pool)
	visionClient := vision.NewHTTPClient(cfg.VisionBaseURL, cfg.VisionAPIKey)

	var (
		forecastCache service.ForecastCache
		rateLimiter   service.AnalysisRateLimiter
		redisClient   *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			forecastCache = service.NewRedisForecastCache(redisClient)
			rateLimiter = service.NewRedisAnalysisRateLimiter(redisClient, cfg.AnalysisRateWindow, cfg.AnalysisRateMax)
		}
		cancel()
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, cfg.JWTAccessTTL)

	analysisSvc := service.NewAnalysisService(visionClient, analysisRepo, settingsRepo, cat, logger)
	forecastSvc := service.NewForecastService(analysisRepo, settingsRepo, cat, forecastCache, cfg.ForecastCacheTTL, logger)

	analysisHandler := apihttp.NewAnalysisHandler(logger, analysisSvc, rateLimiter)
	forecastHandler := apihttp.NewForecastHandler(logger, forecastSvc)
	settingsHandler := apihttp.NewSettingsHandler(logger, settingsRepo)
	router := apihttp.NewRouter(logger, jwtSvc, analysisHandler, forecastHandler, settingsHandler)

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

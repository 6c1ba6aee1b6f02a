package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"levelup-api/internal/config"
	"levelup-api/internal/corpus"
	apihttp "levelup-api/internal/http"
	"levelup-api/internal/retrieval"
	"levelup-api/internal/service"
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

	records, err := corpus.Load(cfg.CorpusPath)
	if err != nil {
		logger.Fatal("load corpus", zap.Error(err))
	}

	// El indice se construye una sola vez y se comparte en modo lectura entre
	// todos los requests.
	index := retrieval.BuildIndex(records)
	logger.Info("response index built", zap.Int("records", index.Len()))

	rateWindow := time.Duration(cfg.RateWindowSeconds) * time.Second
	limiter := service.NewMemoryRateLimiter(rateWindow, cfg.RateMaxRequests)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory rate limiter", zap.Error(err))
		} else {
			limiter = service.NewRedisRateLimiter(redisClient, rateWindow, cfg.RateMaxRequests)
		}
		cancel()
	}

	reflectionSvc := service.NewReflectionService(logger, index)
	reflectHandler := apihttp.NewReflectHandler(logger, reflectionSvc, limiter)
	router := apihttp.NewRouter(logger, reflectHandler)

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

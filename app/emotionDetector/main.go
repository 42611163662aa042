package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ardanlabs/conf/v3"
	"github.com/gin-gonic/gin"
	"github.com/superfeelapi/goEmotionDetector/app/emotionDetector/handlers"
	"github.com/superfeelapi/goEmotionDetector/business/emotion"
	"github.com/superfeelapi/goEmotionDetector/foundation/config"
	"github.com/superfeelapi/goEmotionDetector/foundation/external/emotionPredict"
	"github.com/superfeelapi/goEmotionDetector/foundation/logger"
	"github.com/superfeelapi/goEmotionDetector/foundation/redis"
	"go.uber.org/zap"
)

const service = "emotion-detector"

var (
	version   = "develop"
	buildTime string
)

func main() {
	// =================================================================================================================
	// Configuration

	cfg, help, err := config.Parse(version, buildTime, ".env")
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}

	// =================================================================================================================
	// Application Logger

	log, err := logger.New(cfg.Logger.LogDirectory, service, cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Errorw("shutdown", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, log *zap.SugaredLogger) error {
	log.Infow("startup", "version", version, "build time", buildTime)

	// =================================================================================================================
	// Configuration Stringify

	out, err := config.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =================================================================================================================
	// Emotion Detection

	client := emotionPredict.New(cfg.EmotionPredict.ApiEndpoint, cfg.EmotionPredict.ModelID, cfg.EmotionPredict.Timeout)
	detector := emotion.NewDetector(log, client)

	apiCfg := handlers.APIConfig{
		Log:      log,
		Analyzer: detector,
		Build:    version,
	}

	// =================================================================================================================
	// Redis

	if cfg.Redis.Address != "" {
		redisClient, err := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Channel, log)
		if err != nil {
			log.Errorw("startup", "status", "redis publisher disabled", "ERROR", err)
		} else {
			defer redisClient.Close()
			apiCfg.Publisher = redisClient
			log.Infow("startup", "status", "redis publisher enabled", "channel", cfg.Redis.Channel)
		}
	}

	// =================================================================================================================
	// Start API Service

	gin.SetMode(gin.ReleaseMode)

	api, err := handlers.API(apiCfg)
	if err != nil {
		return fmt.Errorf("constructing api: %w", err)
	}

	srv := http.Server{
		Addr:         cfg.Web.Host,
		Handler:      api,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		log.Infow("startup", "status", "api router started", "host", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	// Blocking main and waiting for shutdown.
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

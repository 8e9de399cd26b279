package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/jellomark/beautishop-scheduler/internal/config"
	dbpkg "github.com/jellomark/beautishop-scheduler/internal/db"
	"github.com/jellomark/beautishop-scheduler/internal/metrics"
	"github.com/jellomark/beautishop-scheduler/internal/routes"
)

func main() {

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log := zerolog.New(output).With().Timestamp().Logger()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, log)

	// Redis is optional: without it the availability cache degrades to
	// recomputing every request.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}

	metrics.Register()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

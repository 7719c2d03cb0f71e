// Command cleanup physically removes soft-deleted collections older than the
// configured retention period, together with their items, memberships, role
// events and follows. It is intended to be invoked by an external cron job,
// not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/InternationalRiversiders/discourse-collections/internal/adapter/postgres"
	"github.com/InternationalRiversiders/discourse-collections/internal/adapter/postgres/collection"
	"github.com/InternationalRiversiders/discourse-collections/internal/app"
	"github.com/InternationalRiversiders/discourse-collections/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := collection.New(pool)

	threshold := time.Now().AddDate(0, 0, -cfg.Collections.HardDeleteRetentionDays)

	purged, err := repo.PurgeDeletedBefore(ctx, threshold)
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int64("purged", purged),
		slog.Time("threshold", threshold),
	)
}

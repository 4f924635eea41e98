// Copyright (c) 2026 WTWR. All rights reserved.

/*
Package mongodb manages the MongoDB client lifecycle for the WTWR API.

It wraps the official driver with retrying connection logic and pool sizing
suitable for a small service, and exposes a Ping helper for readiness probes.
*/
package mongodb

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/wtwr-app/wtwr/internal/platform/config"
)

// ErrConnectFailed is returned when every connection attempt was exhausted.
var ErrConnectFailed = errors.New("mongodb: failed to connect")

// Connect establishes a MongoDB client and verifies connectivity.
//
// Transient startup failures (container orchestration races, Atlas cold
// starts) are retried with a fixed pause between attempts.
func Connect(ctx context.Context, cfg *config.Config, log *slog.Logger) (*mongo.Client, error) {
	attempts := cfg.MongoRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.MongoURL).
				SetConnectTimeout(cfg.MongoTimeout).
				SetMaxPoolSize(cfg.MongoMaxPool).
				SetMinPoolSize(cfg.MongoMinPool),
		)
		if err == nil {
			if err = client.Ping(ctx, nil); err == nil {
				log.Info("mongodb_connected", slog.Int("attempt", attempt))
				return client, nil
			}
			_ = client.Disconnect(ctx)
		}

		lastErr = err
		log.Warn("mongodb_connect_retry",
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		select {
		case <-time.After(cfg.MongoRetryPause):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, errors.Join(ErrConnectFailed, lastErr)
}

// Ping verifies the client can still reach the server. Used by /ready.
func Ping(ctx context.Context, client *mongo.Client) error {
	return client.Ping(ctx, nil)
}

// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package mongodb provides a managed MongoDB client for the Medira application.
//
// # Architecture
//
// This package is part of the Infrastructure layer. It manages the physical
// connection handle (one client shared by all requests) and the uniqueness
// indexes the business rules depend on.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Opinionated client settings for the Medira workload.
const (
	// maxPoolSize is the maximum number of pooled connections.
	maxPoolSize = 25
	// minPoolSize keeps a warm set of connections to avoid cold-start latency.
	minPoolSize = 5
	// connectTimeout is the maximum time allowed to establish the client.
	connectTimeout = 5 * time.Second
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
)

// NewClient creates and validates a new MongoDB client.
//
// # Parameters
//   - ctx: Context for the initial connection attempt.
//   - uri: A mongodb:// or mongodb+srv:// connection URI.
//   - logger: Structured logger for connection events.
func NewClient(ctx context.Context, uri string, logger *slog.Logger) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(maxPoolSize).
		SetMinPoolSize(minPoolSize).
		SetConnectTimeout(connectTimeout).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb: failed to connect: %w", err)
	}

	// Validate connectivity immediately at startup.
	if err := Ping(ctx, client); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("mongodb client connected",
		slog.Uint64("max_pool_size", maxPoolSize),
	)

	return client, nil
}

// Ping verifies that the MongoDB client is healthy.
func Ping(ctx context.Context, client *mongo.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb: ping failed: %w", err)
	}

	return nil
}

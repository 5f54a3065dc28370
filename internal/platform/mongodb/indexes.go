// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taibuivan/medira/internal/platform/constants"
)

// EnsureIndexes creates the uniqueness indexes the business rules rely on.
// Index creation is idempotent, so this runs on every startup.
//
// # Why these two indexes
//
// Both check-then-insert flows (first-login user registration and add-to-cart
// dedup) suspend between the read and the write, so two concurrent requests
// can both observe "absent" and both insert. The unique index turns the
// losing insert into a duplicate-key error that the services convert back
// into their idempotent success signal.
func EnsureIndexes(ctx context.Context, database *mongo.Database, logger *slog.Logger) error {
	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{
			// One user record per email; RegisterOrFetch re-reads on conflict.
			collection: constants.CollectionUsers,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email"),
			},
		},
		{
			// Cart dedup is keyed by medicine name GLOBALLY, not per owner.
			// That mirrors the observed marketplace behavior; see DESIGN.md
			// before "fixing" the key to (name, email).
			collection: constants.CollectionCarts,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "name", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_medicine_name"),
			},
		},
		{
			// Per-buyer aggregation path for /paymentForUser.
			collection: constants.CollectionPayments,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("idx_buyer_email"),
			},
		},
	}

	for _, index := range indexes {
		name, err := database.Collection(index.collection).Indexes().CreateOne(ctx, index.model)
		if err != nil {
			return fmt.Errorf("mongodb: failed to ensure index on %s: %w", index.collection, err)
		}
		logger.Info("index_ensured",
			slog.String("collection", index.collection),
			slog.String("index", name),
		)
	}

	return nil
}

// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/medira/internal/platform/constants"
	"github.com/taibuivan/medira/internal/platform/document"
)

type MongoRepository struct {
	documents *document.Repository[Entry]
}

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{
		documents: document.NewRepository[Entry](database.Collection(constants.CollectionCarts)),
	}
}

func (repository *MongoRepository) FindByMedicineName(ctx context.Context, name string) (*Entry, error) {
	return repository.documents.FindOne(ctx, bson.M{"name": name})
}

func (repository *MongoRepository) ListByOwner(ctx context.Context, email string) ([]Entry, error) {
	return repository.documents.List(ctx, bson.M{"email": email})
}

func (repository *MongoRepository) Insert(ctx context.Context, entry Entry) (string, error) {
	return repository.documents.Insert(ctx, entry)
}

func (repository *MongoRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	return repository.documents.DeleteByID(ctx, id)
}

func (repository *MongoRepository) DeleteByOwnerPattern(ctx context.Context, emailFragment string) (int64, error) {
	// Quote the fragment so addresses with regex metacharacters ("+", ".")
	// match literally instead of blowing up the query.
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(emailFragment)}
	return repository.documents.DeleteMany(ctx, bson.M{"email": bson.M{"$regex": pattern}})
}

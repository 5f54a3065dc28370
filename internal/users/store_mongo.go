// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/medira/internal/platform/constants"
	"github.com/taibuivan/medira/internal/platform/document"
)

// MongoRepository implements [Repository] on the users collection.
type MongoRepository struct {
	documents *document.Repository[User]
}

// NewMongoRepository binds the repository to the users collection.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{
		documents: document.NewRepository[User](database.Collection(constants.CollectionUsers)),
	}
}

func (repository *MongoRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return repository.documents.FindOne(ctx, bson.M{"email": email})
}

func (repository *MongoRepository) Insert(ctx context.Context, user User) (string, error) {
	return repository.documents.Insert(ctx, user)
}

func (repository *MongoRepository) UpdateRole(ctx context.Context, id, role string) (*document.WriteResult, error) {
	return repository.documents.UpdateByID(ctx, id, bson.M{"role": role}, false)
}

func (repository *MongoRepository) List(ctx context.Context) ([]User, error) {
	return repository.documents.List(ctx, nil)
}

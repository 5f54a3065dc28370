// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package document provides a thin, generic repository over a MongoDB collection.

It is the single place the Mongo driver's collection API is exercised; every
domain store composes a [Repository] instead of talking to the driver directly.

Architecture:

  - No schema validation: caller-provided fields pass through verbatim.
  - No referential checks and no transactions: each call is one atomic
    document operation. Multi-document consistency is the caller's problem.
  - Filters are plain bson documents so each store keeps full control over
    its query semantics (exact match, $regex, status values, ...).
*/
package document

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taibuivan/medira/internal/platform/apperr"
	"github.com/taibuivan/medira/internal/platform/dberr"
)

// WriteResult mirrors the store's update-result shape. It is surfaced to API
// clients verbatim inside the standard response envelope.
type WriteResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

// Repository is a generic data-access contract over a named collection.
//
// # Concurrency
//
// The underlying [*mongo.Collection] handle is safe for concurrent use and is
// shared by all requests; there is no per-request checkout discipline beyond
// what the driver's pool provides.
type Repository[T any] struct {
	collection *mongo.Collection
}

// NewRepository wraps a collection handle.
func NewRepository[T any](collection *mongo.Collection) *Repository[T] {
	return &Repository[T]{collection: collection}
}

// Collection exposes the raw handle for index bootstrap and aggregations.
func (repository *Repository[T]) Collection() *mongo.Collection {
	return repository.collection
}

// List returns every document matching the filter, unordered.
// A nil filter matches the whole collection.
func (repository *Repository[T]) List(ctx context.Context, filter interface{}) ([]T, error) {
	if filter == nil {
		filter = bson.D{}
	}

	cursor, err := repository.collection.Find(ctx, filter)
	if err != nil {
		return nil, dberr.Wrap(err, "list_documents")
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, dberr.Wrap(err, "decode_documents")
	}

	return results, nil
}

// FindOne returns the first document matching the filter.
//
// Returns [dberr.ErrNotFound] when nothing matches.
func (repository *Repository[T]) FindOne(ctx context.Context, filter interface{}) (*T, error) {
	result := new(T)
	if err := repository.collection.FindOne(ctx, filter).Decode(result); err != nil {
		return nil, dberr.Wrap(err, "find_one_document")
	}
	return result, nil
}

// GetByID returns the document with the given hex object id.
func (repository *Repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return repository.FindOne(ctx, bson.M{"_id": objectID})
}

// Insert appends a document as-is and returns the assigned id.
// No defaults are applied; caller-provided fields pass through verbatim.
func (repository *Repository[T]) Insert(ctx context.Context, doc interface{}) (string, error) {
	result, err := repository.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", dberr.Wrap(err, "insert_document")
	}

	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		return objectID.Hex(), nil
	}
	return "", nil
}

// UpdateByID applies a $set-style patch to the document with the given id.
//
// # Upsert
//
// Upsert is opt-in per call. Status and role mutations must pass upsert=false
// so a typo'd id surfaces as zero matched documents instead of silently
// creating a partial record.
func (repository *Repository[T]) UpdateByID(ctx context.Context, id string, patch interface{}, upsert bool) (*WriteResult, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": patch}
	result, err := repository.collection.UpdateByID(ctx, objectID, update, options.Update().SetUpsert(upsert))
	if err != nil {
		return nil, dberr.Wrap(err, "update_document")
	}

	return &WriteResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedID:    result.UpsertedID,
	}, nil
}

// DeleteByID removes the document with the given id and reports the count.
func (repository *Repository[T]) DeleteByID(ctx context.Context, id string) (int64, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	result, err := repository.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, dberr.Wrap(err, "delete_document")
	}
	return result.DeletedCount, nil
}

// DeleteMany removes every document matching the filter and reports the count.
func (repository *Repository[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	result, err := repository.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_documents")
	}
	return result.DeletedCount, nil
}

// parseObjectID converts a hex id from the URL into a driver ObjectID.
func parseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.ValidationError("Invalid document id")
	}
	return objectID, nil
}

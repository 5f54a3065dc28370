// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/medira/internal/platform/dberr"
)

// Service implements the cart workflow: deduplicated adds, owner-scoped
// listing, and the two removal paths (single entry, whole cart).
type Service struct {
	repository Repository
	logger     *slog.Logger
}

func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// AddResult reports what AddToCart did. AlreadyInCart is a normal outcome,
// not an error: the frontend toasts "already added" and moves on.
type AddResult struct {
	InsertedID    string `json:"insertedId,omitempty"`
	AlreadyInCart bool   `json:"alreadyInCart"`
}

// AddToCart inserts the entry unless a cart already holds the medicine.
//
// The read-then-insert is raced by concurrent adds of the same medicine; the
// unique index on "name" makes the insert itself the arbiter. A duplicate-key
// failure means somebody else won and is reported as AlreadyInCart, identical
// to the fast-path check.
func (service *Service) AddToCart(ctx context.Context, input Entry) (*AddResult, error) {
	existing, err := service.repository.FindByMedicineName(ctx, input.Name)
	if err != nil && !dberr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return &AddResult{AlreadyInCart: true}, nil
	}

	input.CreatedAt = time.Now().UTC()

	insertedID, err := service.repository.Insert(ctx, input)
	if err != nil {
		if dberr.IsDuplicate(err) {
			return &AddResult{AlreadyInCart: true}, nil
		}
		return nil, err
	}

	service.logger.Info("cart_entry_added",
		slog.String("medicine", input.Name),
		slog.String("owner", input.Email),
	)
	return &AddResult{InsertedID: insertedID}, nil
}

// ListForOwner returns the entries owned by the given buyer email.
func (service *Service) ListForOwner(ctx context.Context, email string) ([]Entry, error) {
	return service.repository.ListByOwner(ctx, email)
}

// RemoveByID deletes one entry. Removing an absent id reports zero deletions
// rather than failing, matching delete-anywhere semantics elsewhere.
func (service *Service) RemoveByID(ctx context.Context, id string) (int64, error) {
	return service.repository.DeleteByID(ctx, id)
}

// ClearForOwner empties a buyer's cart after checkout.
func (service *Service) ClearForOwner(ctx context.Context, email string) (int64, error) {
	deleted, err := service.repository.DeleteByOwnerPattern(ctx, email)
	if err != nil {
		return 0, err
	}

	service.logger.Info("cart_cleared",
		slog.String("owner", email),
		slog.Int64("deleted", deleted),
	)
	return deleted, nil
}

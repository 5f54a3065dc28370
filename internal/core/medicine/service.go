// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package medicine

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/medira/internal/platform/apperr"
)

// RoleResolver resolves the stored role for an email. The concrete
// implementation is the user directory; a local interface keeps this package
// decoupled and fake-able in tests.
type RoleResolver interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// adminRole is the only role allowed to delete listings it does not own.
const adminRole = "Admin"

type Service struct {
	repository Repository
	roles      RoleResolver
	logger     *slog.Logger
}

func NewService(repository Repository, roles RoleResolver, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		roles:      roles,
		logger:     logger,
	}
}

func (service *Service) List(ctx context.Context) ([]Medicine, error) {
	return service.repository.List(ctx)
}

func (service *Service) ListByCategory(ctx context.Context, categoryName string) ([]Medicine, error) {
	return service.repository.ListByCategory(ctx, categoryName)
}

func (service *Service) ListByAuthor(ctx context.Context, email string) ([]Medicine, error) {
	return service.repository.ListByAuthor(ctx, email)
}

func (service *Service) Get(ctx context.Context, id string) (*Medicine, error) {
	return service.repository.GetByID(ctx, id)
}

// Add inserts a new listing owned by the authenticated seller.
//
// The owning author always comes from the verified session, never from the
// payload — a seller cannot list on someone else's behalf.
func (service *Service) Add(ctx context.Context, input Medicine, authorEmail string) (string, error) {
	input.AuthorEmail = authorEmail
	input.CreatedAt = time.Now().UTC()

	insertedID, err := service.repository.Insert(ctx, input)
	if err != nil {
		return "", err
	}

	service.logger.Info("medicine_added",
		slog.String("name", input.Name),
		slog.String("author", authorEmail),
	)
	return insertedID, nil
}

// Delete removes a listing.
//
// # Authorization
//
// The owning seller may delete their own listing; an Admin may delete any.
// Everyone else is Forbidden. The ownership check reads the document first,
// so a missing id surfaces as NotFound rather than a silent zero-count.
func (service *Service) Delete(ctx context.Context, id, callerEmail string) (int64, error) {
	listing, err := service.repository.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	if listing.AuthorEmail != callerEmail {
		role, err := service.roles.RoleByEmail(ctx, callerEmail)
		if err != nil || role != adminRole {
			return 0, apperr.Forbidden("Only the owning seller or an Admin can delete a listing")
		}
	}

	deletedCount, err := service.repository.DeleteByID(ctx, id)
	if err != nil {
		return 0, err
	}

	service.logger.Info("medicine_deleted",
		slog.String("medicine_id", id),
		slog.String("deleted_by", callerEmail),
	)
	return deletedCount, nil
}

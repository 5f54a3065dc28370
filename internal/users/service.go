// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taibuivan/medira/internal/platform/dberr"
	"github.com/taibuivan/medira/internal/platform/document"
)

// Directory implements the user-directory use cases: idempotent registration
// and explicit role mutation.
type Directory struct {
	repository Repository
	logger     *slog.Logger
}

// NewDirectory constructs a [Directory] with its store dependency.
func NewDirectory(repository Repository, logger *slog.Logger) *Directory {
	return &Directory{
		repository: repository,
		logger:     logger,
	}
}

// RegisterOrFetch returns the stored record for the user's email, creating it
// on first login.
//
// # Idempotency
//
// A returning login never overwrites existing profile data or role: if the
// email is already registered, the stored record is returned unchanged and no
// insert happens. The boolean reports whether a record was created.
//
// # Concurrency
//
// Two concurrent first-logins for the same email race past the lookup. The
// unique index on email makes the losing insert fail with a duplicate key,
// which this method converts into a re-read of the winner's record — both
// callers observe the same stored user.
func (directory *Directory) RegisterOrFetch(ctx context.Context, input User) (*User, bool, error) {
	// ── 1. Fetch Existing ─────────────────────────────────────────────────

	existing, err := directory.repository.FindByEmail(ctx, input.Email)
	if err == nil {
		return existing, false, nil
	}
	if !dberr.IsNotFound(err) {
		return nil, false, fmt.Errorf("users_lookup_failed: %w", err)
	}

	// ── 2. First Login: Insert As-Is ──────────────────────────────────────

	// The caller-supplied document passes through verbatim; the role is
	// whatever the frontend sent, including absent.
	input.ID = primitive.NilObjectID
	input.CreatedAt = time.Now().UTC()

	insertedID, err := directory.repository.Insert(ctx, input)
	if err != nil {
		if dberr.IsDuplicate(err) {
			// Lost the first-login race: the winner's record is the truth.
			winner, lookupErr := directory.repository.FindByEmail(ctx, input.Email)
			if lookupErr != nil {
				return nil, false, fmt.Errorf("users_race_lookup_failed: %w", lookupErr)
			}
			return winner, false, nil
		}
		return nil, false, fmt.Errorf("users_register_failed: %w", err)
	}

	input.ID, _ = primitive.ObjectIDFromHex(insertedID)

	directory.logger.Info("user_registered", slog.String("email", input.Email))
	return &input, true, nil
}

// UpdateRole sets only the role field of the account with the given id.
//
// # No Upsert
//
// The original behavior upserted here, so a typo'd id silently created a
// partial user document. This implementation requires the account to exist
// and surfaces a missing id as NotFound.
//
// # Validation
//
// Any string is accepted as a role; later guard checks compare by exact
// string match, so an unrecognized role simply grants no privileges.
func (directory *Directory) UpdateRole(ctx context.Context, id, role string) (*document.WriteResult, error) {
	result, err := directory.repository.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		return nil, dberr.ErrNotFound
	}

	directory.logger.Info("user_role_updated",
		slog.String("user_id", id),
		slog.String("role", role),
	)
	return result, nil
}

// List returns every registered account.
func (directory *Directory) List(ctx context.Context) ([]User, error) {
	return directory.repository.List(ctx)
}

// RoleByEmail resolves the persisted role for an email. It satisfies
// [middleware.RoleLookup] for the role guard.
//
// An account stored without a role resolves to the empty string, which
// matches no allowed-role set.
func (directory *Directory) RoleByEmail(ctx context.Context, email string) (string, error) {
	user, err := directory.repository.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return string(user.Role), nil
}

// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users

import (
	"context"

	"github.com/taibuivan/medira/internal/platform/document"
)

// Repository defines the data access contract for user accounts.
//
// # Implementations
//
// The canonical implementation is the document store (see store_mongo.go).
// Tests substitute an in-memory fake.
type Repository interface {
	// FindByEmail returns the account with the given email.
	//
	// Returns [dberr.ErrNotFound] if no user is registered with this email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Insert persists a brand-new account as-is and returns the assigned id.
	//
	// Returns a duplicate-key error when the email is already registered —
	// callers convert that into the idempotent fetch path.
	Insert(ctx context.Context, user User) (string, error)

	// UpdateRole sets only the role field of the account with the given id.
	// It never upserts; a missing id yields zero matched documents.
	UpdateRole(ctx context.Context, id, role string) (*document.WriteResult, error)

	// List returns every registered account, unordered.
	List(ctx context.Context) ([]User, error)
}

// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import (
	"context"
)

type Repository interface {
	// FindByMedicineName returns the entry holding the medicine, regardless of
	// which buyer owns it. dberr.ErrNotFound when no cart holds it.
	FindByMedicineName(ctx context.Context, name string) (*Entry, error)

	ListByOwner(ctx context.Context, email string) ([]Entry, error)
	Insert(ctx context.Context, entry Entry) (string, error)
	DeleteByID(ctx context.Context, id string) (int64, error)

	// DeleteByOwnerPattern removes every entry whose owner email CONTAINS the
	// given fragment. Substring semantics are inherited behavior; callers pass
	// a full address in practice.
	DeleteByOwnerPattern(ctx context.Context, emailFragment string) (int64, error)
}

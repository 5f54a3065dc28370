// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package payment

import (
	"context"
)

type Repository interface {
	Insert(ctx context.Context, payment Payment) (string, error)

	// List returns payments matching the filter; a nil filter returns the
	// whole ledger.
	List(ctx context.Context, filter interface{}) ([]Payment, error)
}

// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import "context"

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	Insert(ctx context.Context, category Category) (string, error)
}

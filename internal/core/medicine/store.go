// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package medicine

import "context"

type Repository interface {
	List(ctx context.Context) ([]Medicine, error)
	ListByCategory(ctx context.Context, categoryName string) ([]Medicine, error)
	ListByAuthor(ctx context.Context, email string) ([]Medicine, error)
	GetByID(ctx context.Context, id string) (*Medicine, error)
	Insert(ctx context.Context, medicine Medicine) (string, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

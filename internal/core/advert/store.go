// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package advert

import (
	"context"

	"github.com/taibuivan/medira/internal/platform/document"
)

type Repository interface {
	ListByStatus(ctx context.Context, status string) ([]Advertisement, error)
	ListByAuthor(ctx context.Context, email string) ([]Advertisement, error)
	Insert(ctx context.Context, advertisement Advertisement) (string, error)

	// UpdateStatus sets only the status field. It never upserts; a missing id
	// yields zero matched documents.
	UpdateStatus(ctx context.Context, id, status string) (*document.WriteResult, error)
}

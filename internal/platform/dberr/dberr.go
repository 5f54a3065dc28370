// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level document-store errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/medira/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried document doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")

	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = apperr.Conflict("Resource already exists")
)

// Wrap inspects a store error and wraps it into a meaningful [apperr.AppError].
// It hides internal store details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	// 2. Unique index violations become Conflicts
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}

	// 3. Unknown store errors become Internal Server Errors
	return apperr.Internal(err)
}

// IsDuplicate reports whether err is a unique-index violation, either raw from
// the driver or already wrapped by [Wrap].
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate) || mongo.IsDuplicateKeyError(err)
}

// IsNotFound reports whether err represents a missing document.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, mongo.ErrNoDocuments)
}

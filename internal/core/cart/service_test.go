// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taibuivan/medira/internal/core/cart"
	"github.com/taibuivan/medira/internal/platform/dberr"
)

// fakeRepository is an in-memory [cart.Repository] enforcing the unique
// medicine-name constraint the real collection carries as an index.
type fakeRepository struct {
	entries      []cart.Entry
	raceOnInsert bool
}

func (repository *fakeRepository) FindByMedicineName(ctx context.Context, name string) (*cart.Entry, error) {
	for _, entry := range repository.entries {
		if entry.Name == name {
			copied := entry
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *fakeRepository) ListByOwner(ctx context.Context, email string) ([]cart.Entry, error) {
	owned := make([]cart.Entry, 0)
	for _, entry := range repository.entries {
		if entry.Email == email {
			owned = append(owned, entry)
		}
	}
	return owned, nil
}

func (repository *fakeRepository) Insert(ctx context.Context, entry cart.Entry) (string, error) {
	if repository.raceOnInsert {
		return "", dberr.ErrDuplicate
	}
	for _, existing := range repository.entries {
		if existing.Name == entry.Name {
			return "", dberr.ErrDuplicate
		}
	}
	entry.ID = primitive.NewObjectID()
	repository.entries = append(repository.entries, entry)
	return entry.ID.Hex(), nil
}

func (repository *fakeRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	for i, entry := range repository.entries {
		if entry.ID.Hex() == id {
			repository.entries = append(repository.entries[:i], repository.entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (repository *fakeRepository) DeleteByOwnerPattern(ctx context.Context, emailFragment string) (int64, error) {
	kept := repository.entries[:0]
	var deleted int64
	for _, entry := range repository.entries {
		if strings.Contains(entry.Email, emailFragment) {
			deleted++
			continue
		}
		kept = append(kept, entry)
	}
	repository.entries = kept
	return deleted, nil
}

func newTestService(repository cart.Repository) *cart.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return cart.NewService(repository, logger)
}

/*
TestService_AddToCart inserts a fresh medicine and verifies the entry lands
in the owner's cart.
*/
func TestService_AddToCart(t *testing.T) {
	repository := &fakeRepository{}
	service := newTestService(repository)

	result, err := service.AddToCart(context.Background(), cart.Entry{
		Name:  "Napa Extra",
		Email: "buyer@example.com",
		Price: 12.5,
	})

	require.NoError(t, err)
	assert.False(t, result.AlreadyInCart)
	assert.NotEmpty(t, result.InsertedID)

	entries, err := service.ListForOwner(context.Background(), "buyer@example.com")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Napa Extra", entries[0].Name)
}

/*
TestService_AddToCart_GlobalDedup verifies the medicine-name dedup crosses
owner boundaries: once any cart holds a medicine, every further add reports
AlreadyInCart and inserts nothing.
*/
func TestService_AddToCart_GlobalDedup(t *testing.T) {
	repository := &fakeRepository{}
	service := newTestService(repository)

	first, err := service.AddToCart(context.Background(), cart.Entry{
		Name:  "Napa Extra",
		Email: "alice@example.com",
	})
	require.NoError(t, err)
	require.False(t, first.AlreadyInCart)

	// A different buyer adding the same medicine.
	second, err := service.AddToCart(context.Background(), cart.Entry{
		Name:  "Napa Extra",
		Email: "bob@example.com",
	})
	require.NoError(t, err)
	assert.True(t, second.AlreadyInCart)
	assert.Empty(t, second.InsertedID)

	bobEntries, err := service.ListForOwner(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Empty(t, bobEntries)
}

/*
TestService_AddToCart_InsertRace verifies that losing the add race is
reported as AlreadyInCart, identical to the fast-path duplicate check.
*/
func TestService_AddToCart_InsertRace(t *testing.T) {
	repository := &fakeRepository{raceOnInsert: true}
	service := newTestService(repository)

	result, err := service.AddToCart(context.Background(), cart.Entry{
		Name:  "Seclo 20",
		Email: "buyer@example.com",
	})

	require.NoError(t, err)
	assert.True(t, result.AlreadyInCart)
}

/*
TestService_RemoveByID verifies single-entry removal and that removing an
absent id reports zero deletions without failing.
*/
func TestService_RemoveByID(t *testing.T) {
	repository := &fakeRepository{}
	service := newTestService(repository)

	added, err := service.AddToCart(context.Background(), cart.Entry{
		Name:  "Napa Extra",
		Email: "buyer@example.com",
	})
	require.NoError(t, err)

	deleted, err := service.RemoveByID(context.Background(), added.InsertedID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	deleted, err = service.RemoveByID(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted)
}

/*
TestService_ClearForOwner verifies the post-checkout clear removes only the
given buyer's entries.
*/
func TestService_ClearForOwner(t *testing.T) {
	repository := &fakeRepository{}
	service := newTestService(repository)

	for _, entry := range []cart.Entry{
		{Name: "Napa Extra", Email: "alice@example.com"},
		{Name: "Seclo 20", Email: "alice@example.com"},
		{Name: "Monas 10", Email: "bob@example.com"},
	} {
		_, err := service.AddToCart(context.Background(), entry)
		require.NoError(t, err)
	}

	deleted, err := service.ClearForOwner(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	remaining, err := service.ListForOwner(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

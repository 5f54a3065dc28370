// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package advert_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taibuivan/medira/internal/core/advert"
	"github.com/taibuivan/medira/internal/platform/dberr"
	"github.com/taibuivan/medira/internal/platform/document"
)

// fakeRepository is an in-memory [advert.Repository].
type fakeRepository struct {
	adverts []advert.Advertisement
}

func (repository *fakeRepository) ListByStatus(ctx context.Context, status string) ([]advert.Advertisement, error) {
	matched := make([]advert.Advertisement, 0)
	for _, stored := range repository.adverts {
		if stored.Status == status {
			matched = append(matched, stored)
		}
	}
	return matched, nil
}

func (repository *fakeRepository) ListByAuthor(ctx context.Context, email string) ([]advert.Advertisement, error) {
	matched := make([]advert.Advertisement, 0)
	for _, stored := range repository.adverts {
		if stored.AuthorEmail == email {
			matched = append(matched, stored)
		}
	}
	return matched, nil
}

func (repository *fakeRepository) Insert(ctx context.Context, advertisement advert.Advertisement) (string, error) {
	advertisement.ID = primitive.NewObjectID()
	repository.adverts = append(repository.adverts, advertisement)
	return advertisement.ID.Hex(), nil
}

func (repository *fakeRepository) UpdateStatus(ctx context.Context, id, status string) (*document.WriteResult, error) {
	for i, stored := range repository.adverts {
		if stored.ID.Hex() == id {
			repository.adverts[i].Status = status
			return &document.WriteResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &document.WriteResult{}, nil
}

func newTestService(repository advert.Repository) *advert.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return advert.NewService(repository, nil, logger)
}

/*
TestService_Create verifies the author comes from the session and a fresh
request starts without a status.
*/
func TestService_Create(t *testing.T) {
	repository := &fakeRepository{}
	service := newTestService(repository)

	insertedID, err := service.Create(context.Background(), advert.Advertisement{
		MedicineName: "Napa Extra",
		Description:  "Buy one get one",
		AuthorEmail:  "spoofed@example.com",
		Status:       advert.StatusAddToSlide,
	}, "seller@example.com")

	require.NoError(t, err)
	assert.NotEmpty(t, insertedID)

	require.Len(t, repository.adverts, 1)
	stored := repository.adverts[0]
	assert.Equal(t, "seller@example.com", stored.AuthorEmail)
	assert.Empty(t, stored.Status)
	assert.False(t, stored.CreatedAt.IsZero())
}

/*
TestService_SetStatus verifies a free-form status transition against an
existing advertisement.
*/
func TestService_SetStatus(t *testing.T) {
	repository := &fakeRepository{}
	service := newTestService(repository)

	insertedID, err := service.Create(context.Background(), advert.Advertisement{
		MedicineName: "Napa Extra",
	}, "seller@example.com")
	require.NoError(t, err)

	result, err := service.SetStatus(context.Background(), insertedID, advert.StatusAddToSlide)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.MatchedCount)
	assert.Equal(t, advert.StatusAddToSlide, repository.adverts[0].Status)

	// Transitions are not a fixed state machine; any string is accepted.
	result, err = service.SetStatus(context.Background(), insertedID, "Remove from Slide")
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.MatchedCount)
	assert.Equal(t, "Remove from Slide", repository.adverts[0].Status)
}

/*
TestService_SetStatus_UnknownID verifies a transition against a missing id
reports NotFound instead of creating a partial document.
*/
func TestService_SetStatus_UnknownID(t *testing.T) {
	service := newTestService(&fakeRepository{})

	result, err := service.SetStatus(context.Background(), primitive.NewObjectID().Hex(), advert.StatusAddToSlide)

	assert.Nil(t, result)
	assert.True(t, dberr.IsNotFound(err))
}

/*
TestService_ListForHome verifies only promoted advertisements reach the home
slider.
*/
func TestService_ListForHome(t *testing.T) {
	repository := &fakeRepository{}
	service := newTestService(repository)

	promotedID, err := service.Create(context.Background(), advert.Advertisement{MedicineName: "Napa Extra"}, "seller@example.com")
	require.NoError(t, err)
	_, err = service.Create(context.Background(), advert.Advertisement{MedicineName: "Seclo 20"}, "seller@example.com")
	require.NoError(t, err)

	_, err = service.SetStatus(context.Background(), promotedID, advert.StatusAddToSlide)
	require.NoError(t, err)

	promoted, err := service.ListForHome(context.Background())
	require.NoError(t, err)

	require.Len(t, promoted, 1)
	assert.Equal(t, "Napa Extra", promoted[0].MedicineName)
}

/*
TestService_ListForAuthor verifies the seller dashboard sees only their own
requests.
*/
func TestService_ListForAuthor(t *testing.T) {
	repository := &fakeRepository{}
	service := newTestService(repository)

	_, err := service.Create(context.Background(), advert.Advertisement{MedicineName: "Napa Extra"}, "alice@example.com")
	require.NoError(t, err)
	_, err = service.Create(context.Background(), advert.Advertisement{MedicineName: "Seclo 20"}, "bob@example.com")
	require.NoError(t, err)

	owned, err := service.ListForAuthor(context.Background(), "alice@example.com")
	require.NoError(t, err)

	require.Len(t, owned, 1)
	assert.Equal(t, "Napa Extra", owned[0].MedicineName)
}

// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package users_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taibuivan/medira/internal/platform/dberr"
	"github.com/taibuivan/medira/internal/platform/document"
	"github.com/taibuivan/medira/internal/users"
)

// fakeRepository is an in-memory [users.Repository] keyed by email, with a
// switch to simulate losing the first-login insert race.
type fakeRepository struct {
	byEmail      map[string]*users.User
	insertCalls  int
	raceOnInsert bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byEmail: make(map[string]*users.User)}
}

func (repository *fakeRepository) FindByEmail(ctx context.Context, email string) (*users.User, error) {
	user, ok := repository.byEmail[email]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (repository *fakeRepository) Insert(ctx context.Context, user users.User) (string, error) {
	repository.insertCalls++

	if repository.raceOnInsert {
		// Another registration won between the caller's lookup and this
		// insert; the unique index reports a duplicate key.
		repository.byEmail[user.Email] = &users.User{
			ID:    primitive.NewObjectID(),
			Email: user.Email,
			Name:  "winner",
		}
		return "", dberr.ErrDuplicate
	}

	if _, exists := repository.byEmail[user.Email]; exists {
		return "", dberr.ErrDuplicate
	}

	user.ID = primitive.NewObjectID()
	repository.byEmail[user.Email] = &user
	return user.ID.Hex(), nil
}

func (repository *fakeRepository) UpdateRole(ctx context.Context, id, role string) (*document.WriteResult, error) {
	for _, user := range repository.byEmail {
		if user.ID.Hex() == id {
			user.Role = users.Role(role)
			return &document.WriteResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &document.WriteResult{}, nil
}

func (repository *fakeRepository) List(ctx context.Context) ([]users.User, error) {
	accounts := make([]users.User, 0, len(repository.byEmail))
	for _, user := range repository.byEmail {
		accounts = append(accounts, *user)
	}
	return accounts, nil
}

func newTestDirectory(repository users.Repository) *users.Directory {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return users.NewDirectory(repository, logger)
}

/*
TestDirectory_RegisterOrFetch_FirstLogin verifies that an unknown email is
inserted and reported as created.
*/
func TestDirectory_RegisterOrFetch_FirstLogin(t *testing.T) {
	repository := newFakeRepository()
	directory := newTestDirectory(repository)

	user, created, err := directory.RegisterOrFetch(context.Background(), users.User{
		Email: "new@example.com",
		Name:  "New Buyer",
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "new@example.com", user.Email)
	assert.False(t, user.ID.IsZero())
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, 1, repository.insertCalls)
}

/*
TestDirectory_RegisterOrFetch_ReturningLogin verifies idempotency: a second
login returns the stored record unchanged, never overwriting profile or role.
*/
func TestDirectory_RegisterOrFetch_ReturningLogin(t *testing.T) {
	repository := newFakeRepository()
	directory := newTestDirectory(repository)

	first, created, err := directory.RegisterOrFetch(context.Background(), users.User{
		Email: "buyer@example.com",
		Name:  "Original Name",
		Role:  users.RoleSeller,
	})
	require.NoError(t, err)
	require.True(t, created)

	// Returning login sends different profile data.
	second, created, err := directory.RegisterOrFetch(context.Background(), users.User{
		Email: "buyer@example.com",
		Name:  "Changed Name",
		Role:  users.RoleAdmin,
	})
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Original Name", second.Name)
	assert.Equal(t, users.RoleSeller, second.Role)
	assert.Equal(t, 1, repository.insertCalls)
}

/*
TestDirectory_RegisterOrFetch_InsertRace verifies that losing the first-login
race surfaces the winner's record instead of an error.
*/
func TestDirectory_RegisterOrFetch_InsertRace(t *testing.T) {
	repository := newFakeRepository()
	repository.raceOnInsert = true
	directory := newTestDirectory(repository)

	user, created, err := directory.RegisterOrFetch(context.Background(), users.User{
		Email: "raced@example.com",
		Name:  "loser",
	})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "winner", user.Name)
}

/*
TestDirectory_UpdateRole verifies the role mutation plus its read-after-write
visibility through RoleByEmail.
*/
func TestDirectory_UpdateRole(t *testing.T) {
	repository := newFakeRepository()
	directory := newTestDirectory(repository)

	user, _, err := directory.RegisterOrFetch(context.Background(), users.User{
		Email: "promote@example.com",
	})
	require.NoError(t, err)

	// Before promotion the account holds no privileges.
	role, err := directory.RoleByEmail(context.Background(), "promote@example.com")
	require.NoError(t, err)
	assert.Empty(t, role)

	result, err := directory.UpdateRole(context.Background(), user.ID.Hex(), "Seller")
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.MatchedCount)

	// The guard sees the new role on the next lookup, not the next login.
	role, err = directory.RoleByEmail(context.Background(), "promote@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Seller", role)
}

/*
TestDirectory_UpdateRole_UnknownID verifies that a role update against a
missing account reports NotFound instead of creating a partial document.
*/
func TestDirectory_UpdateRole_UnknownID(t *testing.T) {
	repository := newFakeRepository()
	directory := newTestDirectory(repository)

	result, err := directory.UpdateRole(context.Background(), primitive.NewObjectID().Hex(), "Admin")

	assert.Nil(t, result)
	assert.True(t, dberr.IsNotFound(err))
}

/*
TestDirectory_RoleByEmail_Unregistered verifies that an unregistered email
propagates NotFound so the guard answers 403.
*/
func TestDirectory_RoleByEmail_Unregistered(t *testing.T) {
	directory := newTestDirectory(newFakeRepository())

	role, err := directory.RoleByEmail(context.Background(), "ghost@example.com")

	assert.Empty(t, role)
	assert.True(t, dberr.IsNotFound(err))
}

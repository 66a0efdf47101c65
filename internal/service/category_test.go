package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/msomdec/finance-tracker/internal/domain"
	"github.com/msomdec/finance-tracker/internal/repository/sqlite"
	"github.com/msomdec/finance-tracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerTestUser(t *testing.T, db *sqlite.DB, email string) *domain.User {
	t.Helper()
	auth := service.NewAuthService(db.Users(), testJWTSecret, time.Hour, 4)
	_, user, err := auth.Register(context.Background(), email, "password123", "Test", "User")
	require.NoError(t, err)
	return user
}

func TestCategoryService_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	categories := service.NewCategoryService(db.Categories())
	user := registerTestUser(t, db, "cat@example.com")
	ctx := context.Background()

	c := &domain.Category{Name: "Groceries", Description: "food", UserID: user.ID}
	require.NoError(t, categories.Create(ctx, c))
	assert.NotZero(t, c.ID)
	assert.Equal(t, "#000000", c.Color, "color should default")

	list, err := categories.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Groceries", list[0].Name)
}

func TestCategoryService_Create_InvalidName(t *testing.T) {
	db := newTestDB(t)
	categories := service.NewCategoryService(db.Categories())
	user := registerTestUser(t, db, "cat@example.com")

	err := categories.Create(context.Background(), &domain.Category{Name: "", UserID: user.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryService_ListScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	categories := service.NewCategoryService(db.Categories())
	alice := registerTestUser(t, db, "alice@example.com")
	bob := registerTestUser(t, db, "bob@example.com")
	ctx := context.Background()

	require.NoError(t, categories.Create(ctx, &domain.Category{Name: "Rent", UserID: alice.ID}))
	require.NoError(t, categories.Create(ctx, &domain.Category{Name: "Travel", UserID: bob.ID}))

	aliceList, err := categories.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceList, 1)
	assert.Equal(t, "Rent", aliceList[0].Name)
}

func TestCategoryService_Get_OtherUsersCategoryIsNotFound(t *testing.T) {
	db := newTestDB(t)
	categories := service.NewCategoryService(db.Categories())
	alice := registerTestUser(t, db, "alice@example.com")
	bob := registerTestUser(t, db, "bob@example.com")
	ctx := context.Background()

	c := &domain.Category{Name: "Rent", UserID: alice.ID}
	require.NoError(t, categories.Create(ctx, c))

	_, err := categories.GetByID(ctx, bob.ID, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryService_Update_OwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	categories := service.NewCategoryService(db.Categories())
	alice := registerTestUser(t, db, "alice@example.com")
	bob := registerTestUser(t, db, "bob@example.com")
	ctx := context.Background()

	c := &domain.Category{Name: "Rent", UserID: alice.ID}
	require.NoError(t, categories.Create(ctx, c))

	err := categories.Update(ctx, bob.ID, &domain.Category{ID: c.ID, Name: "Hijacked"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Owner can update.
	require.NoError(t, categories.Update(ctx, alice.ID, &domain.Category{ID: c.ID, Name: "Housing"}))
	got, err := categories.GetByID(ctx, alice.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Housing", got.Name)
}

func TestCategoryService_Delete_OwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	categories := service.NewCategoryService(db.Categories())
	alice := registerTestUser(t, db, "alice@example.com")
	bob := registerTestUser(t, db, "bob@example.com")
	ctx := context.Background()

	c := &domain.Category{Name: "Rent", UserID: alice.ID}
	require.NoError(t, categories.Create(ctx, c))

	assert.ErrorIs(t, categories.Delete(ctx, bob.ID, c.ID), domain.ErrUnauthorized)

	require.NoError(t, categories.Delete(ctx, alice.ID, c.ID))
	_, err := categories.GetByID(ctx, alice.ID, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

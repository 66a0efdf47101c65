package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/msomdec/finance-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, db, "tx@x.com")

	tx := &domain.Transaction{
		Amount:          42.50,
		Description:     "groceries",
		Type:            domain.TransactionTypeExpense,
		UserID:          user.ID,
		TransactionDate: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Transactions().Create(ctx, tx))
	assert.NotZero(t, tx.ID)

	got, err := db.Transactions().GetByID(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, 42.50, got.Amount)
	assert.Equal(t, domain.TransactionTypeExpense, got.Type)
	assert.Equal(t, user.ID, got.UserID)
	assert.Nil(t, got.CategoryID)
	assert.True(t, got.TransactionDate.Equal(tx.TransactionDate))

	got.Amount = 50
	got.Description = "groceries (corrected)"
	require.NoError(t, db.Transactions().Update(ctx, got))

	updated, err := db.Transactions().GetByID(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(50), updated.Amount)
	assert.Equal(t, "groceries (corrected)", updated.Description)

	require.NoError(t, db.Transactions().Delete(ctx, tx.ID))
	_, err = db.Transactions().GetByID(ctx, tx.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransactionRepository_ListByUser_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, db, "tx@x.com")
	other := createTestUser(t, db, "other@x.com")

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, desc := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, db.Transactions().Create(ctx, &domain.Transaction{
			Amount:          float64(i + 1),
			Description:     desc,
			Type:            domain.TransactionTypeExpense,
			UserID:          user.ID,
			TransactionDate: base.AddDate(0, 0, i),
		}))
	}
	require.NoError(t, db.Transactions().Create(ctx, &domain.Transaction{
		Amount:          99,
		Description:     "not mine",
		Type:            domain.TransactionTypeIncome,
		UserID:          other.ID,
		TransactionDate: base,
	}))

	list, err := db.Transactions().ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "newest", list[0].Description)
	assert.Equal(t, "oldest", list[2].Description)
}

func TestTransactionRepository_CategoryForeignKey(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, db, "tx@x.com")

	c := &domain.Category{Name: "Food", Color: "#000000", UserID: user.ID}
	require.NoError(t, db.Categories().Create(ctx, c))

	tx := &domain.Transaction{
		Amount:          10,
		Description:     "lunch",
		Type:            domain.TransactionTypeExpense,
		CategoryID:      &c.ID,
		UserID:          user.ID,
		TransactionDate: time.Now(),
	}
	require.NoError(t, db.Transactions().Create(ctx, tx))

	got, err := db.Transactions().GetByID(ctx, tx.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, c.ID, *got.CategoryID)

	// Foreign keys are enforced on the connection.
	missing := int64(9999)
	bad := &domain.Transaction{
		Amount:          1,
		Description:     "dangling",
		Type:            domain.TransactionTypeExpense,
		CategoryID:      &missing,
		UserID:          user.ID,
		TransactionDate: time.Now(),
	}
	assert.Error(t, db.Transactions().Create(ctx, bad))
}

func TestTransactionRepository_UpdateMissingIsNotFound(t *testing.T) {
	db := newTestDB(t)

	err := db.Transactions().Update(context.Background(), &domain.Transaction{
		ID:              9999,
		Amount:          1,
		Description:     "ghost",
		Type:            domain.TransactionTypeExpense,
		TransactionDate: time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, db.Transactions().Delete(context.Background(), 9999), domain.ErrNotFound)
}

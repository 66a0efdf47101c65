package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/finance-tracker/internal/domain"
)

// TransactionService handles transaction CRUD scoped to the owning user.
type TransactionService struct {
	transactions domain.TransactionRepository
	categories   domain.CategoryRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactions domain.TransactionRepository, categories domain.CategoryRepository) *TransactionService {
	return &TransactionService{transactions: transactions, categories: categories}
}

// Create creates a new transaction for the user set on it.
func (s *TransactionService) Create(ctx context.Context, tx *domain.Transaction) error {
	if err := s.validate(ctx, tx); err != nil {
		return err
	}

	if err := s.transactions.Create(ctx, tx); err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// GetByID returns a transaction if it belongs to the user.
func (s *TransactionService) GetByID(ctx context.Context, userID, id int64) (*domain.Transaction, error) {
	tx, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return tx, nil
}

// ListByUser returns all transactions for a user, newest first.
func (s *TransactionService) ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return s.transactions.ListByUser(ctx, userID)
}

// Update updates a transaction with validation and ownership check.
func (s *TransactionService) Update(ctx context.Context, userID int64, tx *domain.Transaction) error {
	existing, err := s.transactions.GetByID(ctx, tx.ID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrUnauthorized
	}
	tx.UserID = existing.UserID
	tx.CreatedAt = existing.CreatedAt

	if err := s.validate(ctx, tx); err != nil {
		return err
	}

	if err := s.transactions.Update(ctx, tx); err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Delete deletes a transaction with ownership check.
func (s *TransactionService) Delete(ctx context.Context, userID, id int64) error {
	existing, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrUnauthorized
	}

	return s.transactions.Delete(ctx, id)
}

func (s *TransactionService) validate(ctx context.Context, tx *domain.Transaction) error {
	if tx.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidInput)
	}
	if tx.Description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}
	if tx.Type != domain.TransactionTypeIncome && tx.Type != domain.TransactionTypeExpense {
		return fmt.Errorf("%w: type must be 'income' or 'expense'", domain.ErrInvalidInput)
	}
	if tx.TransactionDate.IsZero() {
		return fmt.Errorf("%w: transaction date is required", domain.ErrInvalidInput)
	}

	// A referenced category must exist and belong to the same user.
	if tx.CategoryID != nil {
		category, err := s.categories.GetByID(ctx, *tx.CategoryID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: category %d does not exist", domain.ErrInvalidInput, *tx.CategoryID)
			}
			return fmt.Errorf("get category: %w", err)
		}
		if category.UserID != tx.UserID {
			return fmt.Errorf("%w: category %d does not exist", domain.ErrInvalidInput, *tx.CategoryID)
		}
	}

	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/finance-tracker/internal/domain"
)

// BudgetService handles budget CRUD scoped to the owning user.
type BudgetService struct {
	budgets    domain.BudgetRepository
	categories domain.CategoryRepository
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgets domain.BudgetRepository, categories domain.CategoryRepository) *BudgetService {
	return &BudgetService{budgets: budgets, categories: categories}
}

// Create creates a new budget for the user set on it.
func (s *BudgetService) Create(ctx context.Context, budget *domain.Budget) error {
	if err := s.validate(ctx, budget); err != nil {
		return err
	}

	if err := s.budgets.Create(ctx, budget); err != nil {
		return fmt.Errorf("create budget: %w", err)
	}
	return nil
}

// GetByID returns a budget if it belongs to the user.
func (s *BudgetService) GetByID(ctx context.Context, userID, id int64) (*domain.Budget, error) {
	budget, err := s.budgets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if budget.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return budget, nil
}

// ListByUser returns all budgets for a user.
func (s *BudgetService) ListByUser(ctx context.Context, userID int64) ([]domain.Budget, error) {
	return s.budgets.ListByUser(ctx, userID)
}

// Update updates a budget with validation and ownership check.
func (s *BudgetService) Update(ctx context.Context, userID int64, budget *domain.Budget) error {
	existing, err := s.budgets.GetByID(ctx, budget.ID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrUnauthorized
	}
	budget.UserID = existing.UserID
	budget.CreatedAt = existing.CreatedAt

	if err := s.validate(ctx, budget); err != nil {
		return err
	}

	if err := s.budgets.Update(ctx, budget); err != nil {
		return fmt.Errorf("update budget: %w", err)
	}
	return nil
}

// Delete deletes a budget with ownership check.
func (s *BudgetService) Delete(ctx context.Context, userID, id int64) error {
	existing, err := s.budgets.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrUnauthorized
	}

	return s.budgets.Delete(ctx, id)
}

func (s *BudgetService) validate(ctx context.Context, budget *domain.Budget) error {
	if budget.Name == "" {
		return fmt.Errorf("%w: budget name is required", domain.ErrInvalidInput)
	}
	if budget.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidInput)
	}
	switch budget.Period {
	case domain.BudgetPeriodWeekly, domain.BudgetPeriodMonthly, domain.BudgetPeriodYearly:
	default:
		return fmt.Errorf("%w: period must be 'weekly', 'monthly', or 'yearly'", domain.ErrInvalidInput)
	}
	if budget.StartDate.IsZero() || budget.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", domain.ErrInvalidInput)
	}
	if !budget.EndDate.After(budget.StartDate) {
		return fmt.Errorf("%w: end date must be after start date", domain.ErrInvalidInput)
	}

	// A referenced category must exist and belong to the same user.
	if budget.CategoryID != nil {
		category, err := s.categories.GetByID(ctx, *budget.CategoryID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: category %d does not exist", domain.ErrInvalidInput, *budget.CategoryID)
			}
			return fmt.Errorf("get category: %w", err)
		}
		if category.UserID != budget.UserID {
			return fmt.Errorf("%w: category %d does not exist", domain.ErrInvalidInput, *budget.CategoryID)
		}
	}

	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/msomdec/finance-tracker/internal/domain"
)

// CategoryService handles category CRUD scoped to the owning user.
type CategoryService struct {
	categories domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories domain.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// Create creates a new category for the user set on it.
func (s *CategoryService) Create(ctx context.Context, category *domain.Category) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	if category.Color == "" {
		category.Color = "#000000"
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// GetByID returns a category if it belongs to the user. A category owned by
// someone else is reported as not found so existence never leaks.
func (s *CategoryService) GetByID(ctx context.Context, userID, id int64) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

// ListByUser returns all categories for a user.
func (s *CategoryService) ListByUser(ctx context.Context, userID int64) ([]domain.Category, error) {
	return s.categories.ListByUser(ctx, userID)
}

// Update updates a category with validation and ownership check.
func (s *CategoryService) Update(ctx context.Context, userID int64, category *domain.Category) error {
	existing, err := s.categories.GetByID(ctx, category.ID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrUnauthorized
	}

	if err := validateCategory(category); err != nil {
		return err
	}
	if category.Color == "" {
		category.Color = existing.Color
	}
	category.UserID = existing.UserID
	category.CreatedAt = existing.CreatedAt

	if err := s.categories.Update(ctx, category); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete deletes a category with ownership check.
func (s *CategoryService) Delete(ctx context.Context, userID, id int64) error {
	existing, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrUnauthorized
	}

	return s.categories.Delete(ctx, id)
}

func validateCategory(category *domain.Category) error {
	if category.Name == "" {
		return fmt.Errorf("%w: category name is required", domain.ErrInvalidInput)
	}
	if len(category.Name) > 100 {
		return fmt.Errorf("%w: category name must be at most 100 characters", domain.ErrInvalidInput)
	}
	return nil
}

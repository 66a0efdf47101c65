package domain

import (
	"context"
	"time"
)

// Category is a user-defined spending category.
type Category struct {
	ID          int64
	Name        string
	Description string
	Color       string
	UserID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id int64) (*Category, error)
	ListByUser(ctx context.Context, userID int64) ([]Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id int64) error
}

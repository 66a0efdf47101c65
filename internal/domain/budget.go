package domain

import (
	"context"
	"time"
)

// BudgetPeriod is the recurrence window a budget applies to.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget is a spending cap over a date range, optionally tied to a category.
type Budget struct {
	ID         int64
	Name       string
	Amount     float64
	Period     BudgetPeriod
	CategoryID *int64
	UserID     int64
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BudgetRepository defines persistence operations for budgets.
type BudgetRepository interface {
	Create(ctx context.Context, budget *Budget) error
	GetByID(ctx context.Context, id int64) (*Budget, error)
	ListByUser(ctx context.Context, userID int64) ([]Budget, error)
	Update(ctx context.Context, budget *Budget) error
	Delete(ctx context.Context, id int64) error
}

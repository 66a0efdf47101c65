package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/finance-tracker/internal/domain"
)

// BudgetRepository implements domain.BudgetRepository using SQLite.
type BudgetRepository struct {
	db *sql.DB
}

func (r *BudgetRepository) Create(ctx context.Context, budget *domain.Budget) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO budgets (name, amount, period, category_id, user_id, start_date, end_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		budget.Name, budget.Amount, budget.Period, budget.CategoryID, budget.UserID,
		budget.StartDate.UTC(), budget.EndDate.UTC(), now, now,
	)
	if err != nil {
		return fmt.Errorf("insert budget: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	budget.ID = id
	budget.CreatedAt = now
	budget.UpdatedAt = now
	return nil
}

func (r *BudgetRepository) GetByID(ctx context.Context, id int64) (*domain.Budget, error) {
	b := &domain.Budget{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, amount, period, category_id, user_id, start_date, end_date, created_at, updated_at
		 FROM budgets WHERE id = ?`, id,
	).Scan(&b.ID, &b.Name, &b.Amount, &b.Period, &b.CategoryID, &b.UserID,
		&b.StartDate, &b.EndDate, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query budget by id: %w", err)
	}
	return b, nil
}

func (r *BudgetRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, amount, period, category_id, user_id, start_date, end_date, created_at, updated_at
		 FROM budgets WHERE user_id = ? ORDER BY start_date DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		var b domain.Budget
		if err := rows.Scan(&b.ID, &b.Name, &b.Amount, &b.Period, &b.CategoryID, &b.UserID,
			&b.StartDate, &b.EndDate, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func (r *BudgetRepository) Update(ctx context.Context, budget *domain.Budget) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE budgets SET name = ?, amount = ?, period = ?, category_id = ?, start_date = ?, end_date = ?, updated_at = ?
		 WHERE id = ?`,
		budget.Name, budget.Amount, budget.Period, budget.CategoryID,
		budget.StartDate.UTC(), budget.EndDate.UTC(), now, budget.ID,
	)
	if err != nil {
		return fmt.Errorf("update budget: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	budget.UpdatedAt = now
	return nil
}

func (r *BudgetRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package handler

import (
	"time"

	"github.com/msomdec/finance-tracker/internal/domain"
)

// CategoryDTO is the JSON representation of a category.
type CategoryDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	UserID      int64  `json:"userId"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func toCategoryDTO(c *domain.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		UserID:      c.UserID,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

func toCategoryDTOs(categories []domain.Category) []CategoryDTO {
	dtos := make([]CategoryDTO, len(categories))
	for i := range categories {
		dtos[i] = toCategoryDTO(&categories[i])
	}
	return dtos
}

// TransactionDTO is the JSON representation of a transaction.
type TransactionDTO struct {
	ID              int64   `json:"id"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description"`
	Type            string  `json:"type"`
	CategoryID      *int64  `json:"categoryId"`
	UserID          int64   `json:"userId"`
	TransactionDate string  `json:"transactionDate"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

func toTransactionDTO(t *domain.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:              t.ID,
		Amount:          t.Amount,
		Description:     t.Description,
		Type:            string(t.Type),
		CategoryID:      t.CategoryID,
		UserID:          t.UserID,
		TransactionDate: t.TransactionDate.Format(time.RFC3339),
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       t.UpdatedAt.Format(time.RFC3339),
	}
}

func toTransactionDTOs(transactions []domain.Transaction) []TransactionDTO {
	dtos := make([]TransactionDTO, len(transactions))
	for i := range transactions {
		dtos[i] = toTransactionDTO(&transactions[i])
	}
	return dtos
}

// BudgetDTO is the JSON representation of a budget.
type BudgetDTO struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Period     string  `json:"period"`
	CategoryID *int64  `json:"categoryId"`
	UserID     int64   `json:"userId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

func toBudgetDTO(b *domain.Budget) BudgetDTO {
	return BudgetDTO{
		ID:         b.ID,
		Name:       b.Name,
		Amount:     b.Amount,
		Period:     string(b.Period),
		CategoryID: b.CategoryID,
		UserID:     b.UserID,
		StartDate:  b.StartDate.Format(time.RFC3339),
		EndDate:    b.EndDate.Format(time.RFC3339),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}

func toBudgetDTOs(budgets []domain.Budget) []BudgetDTO {
	dtos := make([]BudgetDTO, len(budgets))
	for i := range budgets {
		dtos[i] = toBudgetDTO(&budgets[i])
	}
	return dtos
}

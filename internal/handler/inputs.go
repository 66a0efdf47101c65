package handler

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Request bodies are explicit, validated structs; nothing loosely typed
// reaches the services.

// SignupInput is the request body for POST /api/auth/signup.
type SignupInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (in SignupInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required, validation.Length(0, 255), is.Email),
		validation.Field(&in.Password, validation.Required, validation.Length(8, 72)),
		validation.Field(&in.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&in.LastName, validation.Required, validation.Length(1, 100)),
	)
}

// SigninInput is the request body for POST /api/auth/signin.
type SigninInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in SigninInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Password, validation.Required),
	)
}

// CategoryInput is the request body for category create and update.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (in CategoryInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&in.Color, is.HexColor),
	)
}

// TransactionInput is the request body for transaction create and update.
// TransactionDate is RFC 3339 and defaults to now when omitted.
type TransactionInput struct {
	Amount          float64 `json:"amount"`
	Description     string  `json:"description"`
	Type            string  `json:"type"`
	CategoryID      *int64  `json:"categoryId"`
	TransactionDate string  `json:"transactionDate"`
}

func (in TransactionInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Amount, validation.Required, validation.Min(0.01)),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.Type, validation.Required, validation.In("income", "expense")),
		validation.Field(&in.CategoryID, validation.Min(int64(1))),
		validation.Field(&in.TransactionDate, validation.Date(time.RFC3339)),
	)
}

// ParsedDate returns the transaction date, defaulting to the current time.
// Call only after Validate has passed.
func (in TransactionInput) ParsedDate() time.Time {
	if in.TransactionDate == "" {
		return time.Now().UTC()
	}
	t, _ := time.Parse(time.RFC3339, in.TransactionDate)
	return t
}

// BudgetInput is the request body for budget create and update. Dates are
// RFC 3339 and required.
type BudgetInput struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Period     string  `json:"period"`
	CategoryID *int64  `json:"categoryId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
}

func (in BudgetInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&in.Amount, validation.Required, validation.Min(0.01)),
		validation.Field(&in.Period, validation.Required, validation.In("weekly", "monthly", "yearly")),
		validation.Field(&in.CategoryID, validation.Min(int64(1))),
		validation.Field(&in.StartDate, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&in.EndDate, validation.Required, validation.Date(time.RFC3339)),
	)
}

// ParsedDates returns the start and end dates. Call only after Validate has
// passed.
func (in BudgetInput) ParsedDates() (time.Time, time.Time) {
	start, _ := time.Parse(time.RFC3339, in.StartDate)
	end, _ := time.Parse(time.RFC3339, in.EndDate)
	return start, end
}

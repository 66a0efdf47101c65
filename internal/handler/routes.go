package handler

import (
	"net/http"

	"github.com/msomdec/finance-tracker/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Every resource
// route is wrapped in RequireAuth; auth and health routes are public.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	categories *service.CategoryService,
	transactions *service.TransactionService,
	budgets *service.BudgetService,
	cookies CookieOptions,
) {
	authHandler := NewAuthHandler(auth, cookies)
	categoryHandler := NewCategoryHandler(categories)
	transactionHandler := NewTransactionHandler(transactions)
	budgetHandler := NewBudgetHandler(budgets)

	protected := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(auth, h)
	}

	mux.HandleFunc("GET /api/health", HandleHealth)

	mux.HandleFunc("POST /api/auth/signup", authHandler.HandleSignup)
	mux.HandleFunc("POST /api/auth/signin", authHandler.HandleSignin)
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)

	mux.Handle("POST /api/categories", protected(categoryHandler.HandleCreate))
	mux.Handle("GET /api/categories", protected(categoryHandler.HandleList))
	mux.Handle("GET /api/categories/{id}", protected(categoryHandler.HandleGet))
	mux.Handle("PUT /api/categories/{id}", protected(categoryHandler.HandleUpdate))
	mux.Handle("DELETE /api/categories/{id}", protected(categoryHandler.HandleDelete))

	mux.Handle("POST /api/transactions", protected(transactionHandler.HandleCreate))
	mux.Handle("GET /api/transactions", protected(transactionHandler.HandleList))
	mux.Handle("GET /api/transactions/{id}", protected(transactionHandler.HandleGet))
	mux.Handle("PUT /api/transactions/{id}", protected(transactionHandler.HandleUpdate))
	mux.Handle("DELETE /api/transactions/{id}", protected(transactionHandler.HandleDelete))

	mux.Handle("POST /api/budgets", protected(budgetHandler.HandleCreate))
	mux.Handle("GET /api/budgets", protected(budgetHandler.HandleList))
	mux.Handle("GET /api/budgets/{id}", protected(budgetHandler.HandleGet))
	mux.Handle("PUT /api/budgets/{id}", protected(budgetHandler.HandleUpdate))
	mux.Handle("DELETE /api/budgets/{id}", protected(budgetHandler.HandleDelete))
}

package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/finance-tracker/internal/domain"
	"github.com/msomdec/finance-tracker/internal/service"
)

// BudgetHandler handles budget HTTP requests.
type BudgetHandler struct {
	budgets *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgets *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

// HandleCreate processes budget creation.
// POST /api/budgets
func (h *BudgetHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
		return
	}

	var in BudgetInput
	if err := readJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	start, end := in.ParsedDates()
	budget := &domain.Budget{
		Name:       in.Name,
		Amount:     in.Amount,
		Period:     domain.BudgetPeriod(in.Period),
		CategoryID: in.CategoryID,
		UserID:     identity.UserID,
		StartDate:  start,
		EndDate:    end,
	}

	if err := h.budgets.Create(r.Context(), budget); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create budget", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create budget")
		return
	}

	writeJSON(w, http.StatusCreated, toBudgetDTO(budget))
}

// HandleList returns all budgets owned by the caller.
// GET /api/budgets
func (h *BudgetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
		return
	}

	budgets, err := h.budgets.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		slog.Error("list budgets", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch budgets")
		return
	}

	writeJSON(w, http.StatusOK, toBudgetDTOs(budgets))
}

// HandleGet returns a single owned budget.
// GET /api/budgets/{id}
func (h *BudgetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid budget id")
		return
	}

	budget, err := h.budgets.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Budget not found")
			return
		}
		slog.Error("get budget", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch budget")
		return
	}

	writeJSON(w, http.StatusOK, toBudgetDTO(budget))
}

// HandleUpdate processes budget update with ownership check.
// PUT /api/budgets/{id}
func (h *BudgetHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid budget id")
		return
	}

	var in BudgetInput
	if err := readJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	start, end := in.ParsedDates()
	budget := &domain.Budget{
		ID:         id,
		Name:       in.Name,
		Amount:     in.Amount,
		Period:     domain.BudgetPeriod(in.Period),
		CategoryID: in.CategoryID,
		StartDate:  start,
		EndDate:    end,
	}

	if err := h.budgets.Update(r.Context(), identity.UserID, budget); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusNotFound, "Budget not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("update budget", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update budget")
		return
	}

	writeJSON(w, http.StatusOK, toBudgetDTO(budget))
}

// HandleDelete processes budget deletion with ownership check.
// DELETE /api/budgets/{id}
func (h *BudgetHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid budget id")
		return
	}

	if err := h.budgets.Delete(r.Context(), identity.UserID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusNotFound, "Budget not found")
			return
		}
		slog.Error("delete budget", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete budget")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

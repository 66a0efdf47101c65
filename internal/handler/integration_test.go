package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/msomdec/finance-tracker/internal/handler"
)

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func signupUser(t *testing.T, mux *http.ServeMux, email string) *http.Cookie {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":"pw123456","firstName":"Test","lastName":"User"}`, email)
	w := postJSON(t, mux, "/api/auth/signup", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup %s: expected 201, got %d: %s", email, w.Code, w.Body.String())
	}
	return tokenCookie(t, w)
}

func TestHealthEndpoint(t *testing.T) {
	mux, _, _ := newTestServer(t)

	w := doJSON(t, mux, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "OK" {
		t.Fatalf("expected status OK, got %q", body["status"])
	}
}

func TestProtectedRoutesRejectAnonymousRequests(t *testing.T) {
	mux, _, _ := newTestServer(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/categories"},
		{http.MethodPost, "/api/categories"},
		{http.MethodGet, "/api/transactions"},
		{http.MethodPost, "/api/transactions"},
		{http.MethodGet, "/api/budgets"},
		{http.MethodPost, "/api/budgets"},
	}

	for _, r := range routes {
		w := doJSON(t, mux, r.method, r.path, "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("%s %s: expected 403 without cookie, got %d", r.method, r.path, w.Code)
		}
	}
}

func TestCategoryLifecycle(t *testing.T) {
	mux, _, _ := newTestServer(t)
	cookie := signupUser(t, mux, "cat@x.com")

	// Create.
	w := doJSON(t, mux, http.MethodPost, "/api/categories",
		`{"name":"Groceries","description":"food shopping","color":"#22cc88"}`, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created handler.CategoryDTO
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created category: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected non-zero category id")
	}
	if created.Color != "#22cc88" {
		t.Fatalf("expected color #22cc88, got %q", created.Color)
	}

	// List.
	w = doJSON(t, mux, http.MethodGet, "/api/categories", "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var list []handler.CategoryDTO
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Groceries" {
		t.Fatalf("unexpected list %+v", list)
	}

	// Get by id.
	w = doJSON(t, mux, http.MethodGet, fmt.Sprintf("/api/categories/%d", created.ID), "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}

	// Update.
	w = doJSON(t, mux, http.MethodPut, fmt.Sprintf("/api/categories/%d", created.ID),
		`{"name":"Food","description":"renamed","color":"#ffffff"}`, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated handler.CategoryDTO
	json.Unmarshal(w.Body.Bytes(), &updated)
	if updated.Name != "Food" {
		t.Fatalf("expected updated name Food, got %q", updated.Name)
	}

	// Delete.
	w = doJSON(t, mux, http.MethodDelete, fmt.Sprintf("/api/categories/%d", created.ID), "", cookie)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}
	w = doJSON(t, mux, http.MethodGet, fmt.Sprintf("/api/categories/%d", created.ID), "", cookie)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", w.Code)
	}
}

func TestTransactionLifecycle(t *testing.T) {
	mux, _, _ := newTestServer(t)
	cookie := signupUser(t, mux, "tx@x.com")

	w := doJSON(t, mux, http.MethodPost, "/api/transactions",
		`{"amount":42.5,"description":"groceries","type":"expense","transactionDate":"2026-01-15T10:00:00Z"}`, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created handler.TransactionDTO
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created transaction: %v", err)
	}
	if created.Amount != 42.5 || created.Type != "expense" {
		t.Fatalf("unexpected transaction %+v", created)
	}
	if created.TransactionDate != "2026-01-15T10:00:00Z" {
		t.Fatalf("unexpected transaction date %q", created.TransactionDate)
	}

	// Date defaults to now when omitted.
	w = doJSON(t, mux, http.MethodPost, "/api/transactions",
		`{"amount":10,"description":"salary","type":"income"}`, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("create without date: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, mux, http.MethodGet, "/api/transactions", "", cookie)
	var list []handler.TransactionDTO
	json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(list))
	}

	w = doJSON(t, mux, http.MethodPut, fmt.Sprintf("/api/transactions/%d", created.ID),
		`{"amount":99.99,"description":"groceries (fixed)","type":"expense","transactionDate":"2026-01-15T10:00:00Z"}`, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated handler.TransactionDTO
	json.Unmarshal(w.Body.Bytes(), &updated)
	if updated.Amount != 99.99 {
		t.Fatalf("expected amount 99.99, got %v", updated.Amount)
	}

	w = doJSON(t, mux, http.MethodDelete, fmt.Sprintf("/api/transactions/%d", created.ID), "", cookie)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}
}

func TestTransaction_ValidationErrorsAre422(t *testing.T) {
	mux, _, _ := newTestServer(t)
	cookie := signupUser(t, mux, "tx@x.com")

	tests := []struct {
		name string
		body string
	}{
		{"zero amount", `{"amount":0,"description":"x","type":"expense"}`},
		{"negative amount", `{"amount":-5,"description":"x","type":"expense"}`},
		{"missing description", `{"amount":5,"type":"expense"}`},
		{"bad type", `{"amount":5,"description":"x","type":"transfer"}`},
		{"bad date", `{"amount":5,"description":"x","type":"expense","transactionDate":"yesterday"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, mux, http.MethodPost, "/api/transactions", tc.body, cookie)
			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestBudgetLifecycle(t *testing.T) {
	mux, _, _ := newTestServer(t)
	cookie := signupUser(t, mux, "budget@x.com")

	w := doJSON(t, mux, http.MethodPost, "/api/budgets",
		`{"name":"Food","amount":300,"period":"monthly","startDate":"2026-01-01T00:00:00Z","endDate":"2026-02-01T00:00:00Z"}`, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created handler.BudgetDTO
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created budget: %v", err)
	}
	if created.Period != "monthly" || created.Amount != 300 {
		t.Fatalf("unexpected budget %+v", created)
	}

	// End date must be after start date.
	w = doJSON(t, mux, http.MethodPost, "/api/budgets",
		`{"name":"Bad","amount":10,"period":"weekly","startDate":"2026-02-01T00:00:00Z","endDate":"2026-01-01T00:00:00Z"}`, cookie)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("inverted dates: expected 422, got %d", w.Code)
	}

	w = doJSON(t, mux, http.MethodPut, fmt.Sprintf("/api/budgets/%d", created.ID),
		`{"name":"Food","amount":500,"period":"monthly","startDate":"2026-01-01T00:00:00Z","endDate":"2026-02-01T00:00:00Z"}`, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, mux, http.MethodDelete, fmt.Sprintf("/api/budgets/%d", created.ID), "", cookie)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}
}

func TestCrossUserIsolation(t *testing.T) {
	mux, _, _ := newTestServer(t)
	alice := signupUser(t, mux, "alice@x.com")
	bob := signupUser(t, mux, "bob@x.com")

	w := doJSON(t, mux, http.MethodPost, "/api/transactions",
		`{"amount":42.5,"description":"alice only","type":"expense"}`, alice)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", w.Code)
	}
	var created handler.TransactionDTO
	json.Unmarshal(w.Body.Bytes(), &created)

	// Bob's list does not contain Alice's transaction.
	w = doJSON(t, mux, http.MethodGet, "/api/transactions", "", bob)
	var bobList []handler.TransactionDTO
	json.Unmarshal(w.Body.Bytes(), &bobList)
	if len(bobList) != 0 {
		t.Fatalf("expected empty list for bob, got %d items", len(bobList))
	}

	// Get, update and delete through Bob's session all read as 404, so the
	// resource's existence never leaks.
	path := fmt.Sprintf("/api/transactions/%d", created.ID)
	if w = doJSON(t, mux, http.MethodGet, path, "", bob); w.Code != http.StatusNotFound {
		t.Fatalf("get: expected 404 for bob, got %d", w.Code)
	}
	if w = doJSON(t, mux, http.MethodPut, path,
		`{"amount":1,"description":"hijack","type":"expense"}`, bob); w.Code != http.StatusNotFound {
		t.Fatalf("update: expected 404 for bob, got %d", w.Code)
	}
	if w = doJSON(t, mux, http.MethodDelete, path, "", bob); w.Code != http.StatusNotFound {
		t.Fatalf("delete: expected 404 for bob, got %d", w.Code)
	}

	// Alice still sees it untouched.
	w = doJSON(t, mux, http.MethodGet, path, "", alice)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200 for alice, got %d", w.Code)
	}
	var got handler.TransactionDTO
	json.Unmarshal(w.Body.Bytes(), &got)
	if got.Description != "alice only" {
		t.Fatalf("transaction was modified: %+v", got)
	}
}

func TestResourceRoutes_BadIDIs400(t *testing.T) {
	mux, _, _ := newTestServer(t)
	cookie := signupUser(t, mux, "badid@x.com")

	for _, path := range []string{"/api/categories/abc", "/api/transactions/abc", "/api/budgets/abc"} {
		w := doJSON(t, mux, http.MethodGet, path, "", cookie)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, w.Code)
		}
	}
}

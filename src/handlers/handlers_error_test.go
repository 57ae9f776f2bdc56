package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack-server/src/auth"
	"fintrack-server/src/handlers"
)

// unreachablePool parses lazily and only fails when a query checks out a
// connection, which is exactly the storage-outage shape the handlers must
// map to 500 rather than a client-fault status.
func unreachablePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	pool, err := pgxpool.New(context.Background(), "postgres://u:p@127.0.0.1:1/fintrack?connect_timeout=1")
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func authenticatedRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	return req.WithContext(context.WithValue(req.Context(), "user_id", int64(1)))
}

func TestCreateTransactionStorageFailureIs500(t *testing.T) {
	handler := handlers.CreateTransaction(unreachablePool(t))

	rec := httptest.NewRecorder()
	handler(rec, authenticatedRequest(http.MethodPost, "/transactions",
		`{"amount": 10, "category": "food", "type": "expense"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateTransactionBadInputIsStill400(t *testing.T) {
	handler := handlers.CreateTransaction(unreachablePool(t))

	rec := httptest.NewRecorder()
	handler(rec, authenticatedRequest(http.MethodPost, "/transactions",
		`{"amount": -10, "category": "food", "type": "expense"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetBudgetStorageFailureIs500(t *testing.T) {
	handler := handlers.SetBudget(unreachablePool(t))

	rec := httptest.NewRecorder()
	handler(rec, authenticatedRequest(http.MethodPost, "/budget", `{"budget_amount": 400}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoginStorageFailureIs500NotUnauthorized(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	handler := handlers.Login(unreachablePool(t), tokens)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email": "a@example.com", "password": "Passw0rd!"}`))
	handler(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

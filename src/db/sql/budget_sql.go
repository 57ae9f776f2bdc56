package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/apperr"
	"fintrack-server/src/db"
	"fintrack-server/src/models"
	"fintrack-server/src/util"
)

// GetCurrentBudget returns the budget row for the current month, or the
// zero-valued default when nothing has been written yet. Callers never see
// an absence signal.
func GetCurrentBudget(ctx context.Context, pool *pgxpool.Pool, userID int64) (*models.Budget, error) {
	month := util.CurrentMonth()

	if budget, ok := db.GetBudgetCache(userID, month); ok {
		return budget, nil
	}

	query := `
		SELECT budget_amount, current_spent, month
		FROM budgets
		WHERE user_id = $1 AND month = $2
	`
	budget := models.Budget{Month: month}
	err := pool.QueryRow(ctx, query, userID, month).
		Scan(&budget.BudgetAmount, &budget.CurrentSpent, &budget.Month)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Storage("get budget", err)
	}

	db.SetBudgetCache(userID, &budget)
	return &budget, nil
}

// SetBudgetCeiling upserts only budget_amount for the current month. The
// conflict branch leaves current_spent alone, so a ceiling update racing an
// expense insert can never clobber the running spend.
func SetBudgetCeiling(ctx context.Context, pool *pgxpool.Pool, userID int64, amount float64) (*models.Budget, error) {
	month := util.CurrentMonth()

	query := `
		INSERT INTO budgets (user_id, month, budget_amount, current_spent)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (user_id, month)
		DO UPDATE SET budget_amount = EXCLUDED.budget_amount
		RETURNING budget_amount, current_spent, month
	`
	var budget models.Budget
	err := pool.QueryRow(ctx, query, userID, month, amount).
		Scan(&budget.BudgetAmount, &budget.CurrentSpent, &budget.Month)
	if err != nil {
		return nil, apperr.Storage("set budget ceiling", err)
	}

	db.DelBudgetCache(userID, month)
	return &budget, nil
}

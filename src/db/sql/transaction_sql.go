package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/apperr"
	"fintrack-server/src/db"
	"fintrack-server/src/models"
	"fintrack-server/src/util"
)

// RecordTransaction appends a transaction and, for expenses, folds its
// amount into the current month's budget row in the same database
// transaction. Either both rows land or neither does.
//
// The fold is a single conflict-resolving upsert, not a read-then-write, so
// concurrent expenses for the same (user, month) both count: under ON
// CONFLICT the increments serialize on the unique (user_id, month) row.
func RecordTransaction(ctx context.Context, pool *pgxpool.Pool, userID int64, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, apperr.Storage("begin record transaction", err)
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO transactions (user_id, amount, category, type, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	t := models.Transaction{
		UserID:      userID,
		Amount:      req.Amount,
		Category:    req.Category,
		Type:        req.Type,
		Description: req.Description,
	}
	err = tx.QueryRow(ctx, insert, userID, req.Amount, req.Category, req.Type, req.Description).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, apperr.Storage("insert transaction", err)
	}

	// The month bucket comes from the server-assigned timestamp, never from
	// anything client-supplied.
	month := util.MonthBucket(t.CreatedAt)

	if t.Type == models.TransactionTypeExpense {
		upsert := `
			INSERT INTO budgets (user_id, month, budget_amount, current_spent)
			VALUES ($1, $2, 0, $3)
			ON CONFLICT (user_id, month)
			DO UPDATE SET current_spent = budgets.current_spent + EXCLUDED.current_spent
		`
		if _, err := tx.Exec(ctx, upsert, userID, month, t.Amount); err != nil {
			return nil, apperr.Storage("upsert budget spend", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperr.Storage("commit record transaction", err)
	}

	if t.Type == models.TransactionTypeExpense {
		db.DelBudgetCache(userID, month)
	}
	return &t, nil
}

func GetTransactions(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, category, type, description, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperr.Storage("list transactions", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Category, &t.Type, &t.Description, &t.CreatedAt)
		if err != nil {
			return nil, apperr.Storage("scan transaction", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list transactions", err)
	}
	return transactions, nil
}

// GetMonthlyTotals sums amounts by type over the current month's half-open
// interval. Months with no activity sum to zero, never null.
func GetMonthlyTotals(ctx context.Context, pool *pgxpool.Pool, userID int64) (*models.MonthlyTotals, error) {
	monthStart, nextMonthStart := util.MonthInterval(time.Now())

	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM transactions
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
	`
	var totals models.MonthlyTotals
	err := pool.QueryRow(ctx, query, userID, monthStart, nextMonthStart).
		Scan(&totals.TotalIncome, &totals.TotalExpenses)
	if err != nil {
		return nil, apperr.Storage("monthly totals", err)
	}
	return &totals, nil
}

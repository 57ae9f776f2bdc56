package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/apperr"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/util"
)

func GetBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		budget, err := db.GetCurrentBudget(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get budget for user %d: %v", userID, err)
			http.Error(w, "failed to get budget", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budget)
	}
}

func SetBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			BudgetAmount float64 `json:"budget_amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode set budget request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if !util.ValidateAmount(req.BudgetAmount) {
			log.Printf("ERROR: Negative budget amount %f for user %d", req.BudgetAmount, userID)
			http.Error(w, "budget_amount must be non-negative", http.StatusBadRequest)
			return
		}

		budget, err := db.SetBudgetCeiling(r.Context(), pool, userID, req.BudgetAmount)
		if err != nil {
			if apperr.IsValidation(err) {
				log.Printf("ERROR: Rejected budget ceiling for user %d: %v", userID, err)
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Printf("ERROR: Failed to set budget ceiling for user %d: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Set budget ceiling %.2f for user %d, month %s", budget.BudgetAmount, userID, budget.Month)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(budget)
	}
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	db "fintrack-server/src/db/sql"
)

func GetInsights(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		totals, err := db.GetMonthlyTotals(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get monthly totals for user %d: %v", userID, err)
			http.Error(w, "failed to get insights", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(totals)
	}
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/apperr"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"
)

func CreateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req models.CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if !util.ValidateAmount(req.Amount) {
			log.Printf("ERROR: Negative amount %f in transaction for user %d", req.Amount, userID)
			http.Error(w, "amount must be non-negative", http.StatusBadRequest)
			return
		}
		if !util.ValidateTransactionType(req.Type) {
			log.Printf("ERROR: Invalid transaction type %q for user %d", req.Type, userID)
			http.Error(w, "type must be income or expense", http.StatusBadRequest)
			return
		}

		created, err := db.RecordTransaction(r.Context(), pool, userID, &req)
		if err != nil {
			if apperr.IsValidation(err) {
				log.Printf("ERROR: Rejected transaction for user %d: %v", userID, err)
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Printf("ERROR: Failed to record transaction for user %d: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Recorded %s transaction id %d for user %d, amount %.2f", created.Type, created.ID, userID, created.Amount)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		transactions, err := db.GetTransactions(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for user %d: %v", userID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transactions)
	}
}

package db

import (
	"fmt"
	"log"
	"time"

	"github.com/dgraph-io/ristretto"

	"fintrack-server/src/models"
)

// Budget reads are cached per (user, month); the ledger engine and the
// ceiling upsert invalidate the key after commit. A read racing a write can
// still re-install the pre-commit value after the invalidation, so every
// entry carries a TTL to bound how long that stale value can be served.
var Cache *ristretto.Cache

var budgetCacheTTL = 30 * time.Second

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func budgetCacheKey(userID int64, month string) string {
	return fmt.Sprintf("budget:%d:%s", userID, month)
}

func GetBudgetCache(userID int64, month string) (*models.Budget, bool) {
	if Cache == nil {
		return nil, false
	}
	value, found := Cache.Get(budgetCacheKey(userID, month))
	if !found {
		return nil, false
	}
	budget, ok := value.(*models.Budget)
	return budget, ok
}

func SetBudgetCache(userID int64, budget *models.Budget) {
	if Cache == nil {
		return
	}
	Cache.SetWithTTL(budgetCacheKey(userID, budget.Month), budget, 1, budgetCacheTTL)
}

func DelBudgetCache(userID int64, month string) {
	if Cache == nil {
		return
	}
	Cache.Del(budgetCacheKey(userID, month))
}

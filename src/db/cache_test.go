package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack-server/src/models"
)

func TestBudgetCacheRoundTrip(t *testing.T) {
	InitCache()

	budget := &models.Budget{BudgetAmount: 100, CurrentSpent: 40, Month: "2026-08"}
	SetBudgetCache(7, budget)
	Cache.Wait()

	got, ok := GetBudgetCache(7, "2026-08")
	require.True(t, ok)
	assert.Equal(t, budget, got)

	_, ok = GetBudgetCache(7, "2026-07")
	assert.False(t, ok, "other months must not hit")
	_, ok = GetBudgetCache(8, "2026-08")
	assert.False(t, ok, "other users must not hit")

	DelBudgetCache(7, "2026-08")
	Cache.Wait()
	_, ok = GetBudgetCache(7, "2026-08")
	assert.False(t, ok, "deleted entry must not hit")
}

// A reader racing a writer can re-install a pre-commit value after the
// writer's invalidation; the TTL bounds how long such an entry survives.
func TestBudgetCacheEntriesExpire(t *testing.T) {
	oldTTL := budgetCacheTTL
	budgetCacheTTL = 25 * time.Millisecond
	defer func() { budgetCacheTTL = oldTTL }()

	InitCache()

	SetBudgetCache(9, &models.Budget{CurrentSpent: 0, Month: "2026-08"})
	Cache.Wait()

	_, ok := GetBudgetCache(9, "2026-08")
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)
	_, ok = GetBudgetCache(9, "2026-08")
	assert.False(t, ok, "entry should have expired")
}

func TestBudgetCacheNoopsBeforeInit(t *testing.T) {
	old := Cache
	Cache = nil
	defer func() { Cache = old }()

	SetBudgetCache(1, &models.Budget{Month: "2026-08"})
	DelBudgetCache(1, "2026-08")
	_, ok := GetBudgetCache(1, "2026-08")
	assert.False(t, ok)
}

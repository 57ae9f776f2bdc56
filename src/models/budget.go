package models

type Budget struct {
	BudgetAmount float64 `json:"budget_amount"`
	CurrentSpent float64 `json:"current_spent"`
	Month        string  `json:"month"`
}

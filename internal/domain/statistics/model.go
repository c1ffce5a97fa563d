package statistics

import (
	"time"

	"campus-finance-go/internal/domain/transactions"
)

type Summary struct {
	TotalIncome      float64   `json:"total_income"`
	TotalExpense     float64   `json:"total_expense"`
	NetBalance       float64   `json:"net_balance"`
	TransactionCount int64     `json:"transaction_count"`
	AvgTransaction   float64   `json:"avg_transaction"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
}

type CategoryStat struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
	Count      int64   `json:"count"`
}

type CategoryBreakdown struct {
	Year        int               `json:"year"`
	Month       int               `json:"month"`
	Kind        transactions.Kind `json:"type"`
	Categories  []CategoryStat    `json:"categories"`
	TotalAmount float64           `json:"total_amount"`
}

type TrendPoint struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

type Trend struct {
	Range   string       `json:"range"`
	Periods []TrendPoint `json:"periods"`
}

type Prediction struct {
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	PredictedIncome  float64 `json:"predicted_income"`
	PredictedExpense float64 `json:"predicted_expense"`
	PredictedBalance float64 `json:"predicted_balance"`
	Confidence       float64 `json:"confidence"`
}

type PredictionList struct {
	Predictions   []Prediction `json:"predictions"`
	BasedOnMonths int          `json:"based_on_months"`
}

type BudgetRecommendation struct {
	Category    string  `json:"category"`
	CurrentAvg  float64 `json:"current_avg"`
	Recommended float64 `json:"recommended"`
	Reason      string  `json:"reason"`
}

type SavingsAdvice struct {
	Advice string  `json:"advice"`
	Amount float64 `json:"amount"`
}

type FinancialHealth struct {
	Score                  int      `json:"score"`
	Level                  string   `json:"level"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
}

type Recommendations struct {
	BudgetRecommendations []BudgetRecommendation `json:"budget_recommendations"`
	SavingsAdvice         []SavingsAdvice        `json:"savings_advice"`
	FinancialHealth       FinancialHealth        `json:"financial_health"`
}

// CategoryTotal is one aggregation row from the store: totals per category for
// a kind and date range, ordered by total descending.
type CategoryTotal struct {
	Name  string
	Color string
	Total float64
	Count int64
	Avg   float64
}

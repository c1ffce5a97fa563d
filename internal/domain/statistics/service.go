package statistics

import (
	"context"
	"fmt"
	"math"
	"time"

	"campus-finance-go/internal/domain/transactions"
)

const (
	defaultSummaryDays   = 30
	historyMonths        = 6
	minHistoryForTrend   = 3
	recommendationDays   = 90
	topCategoriesCount   = 5
	defaultCategoryColor = "#808080"
)

var trendRanges = map[string]int{
	"1m": 1,
	"3m": 3,
	"6m": 6,
	"1y": 12,
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Summary(ctx context.Context, ownerID string, startDate, endDate *time.Time) (Summary, error) {
	end := s.today()
	if endDate != nil {
		end = *endDate
	}
	// The default start anchors on today, not on a caller-supplied end date.
	start := s.today().AddDate(0, 0, -defaultSummaryDays)
	if startDate != nil {
		start = *startDate
	}

	income, err := s.repo.SumAmount(ctx, ownerID, transactions.KindIncome, start, end)
	if err != nil {
		return Summary{}, err
	}

	expense, err := s.repo.SumAmount(ctx, ownerID, transactions.KindExpense, start, end)
	if err != nil {
		return Summary{}, err
	}

	count, err := s.repo.CountTransactions(ctx, ownerID, start, end)
	if err != nil {
		return Summary{}, err
	}

	avg := 0.0
	if count > 0 {
		avg = (income + expense) / float64(count)
	}

	return Summary{
		TotalIncome:      income,
		TotalExpense:     expense,
		NetBalance:       income - expense,
		TransactionCount: count,
		AvgTransaction:   avg,
		StartDate:        start,
		EndDate:          end,
	}, nil
}

func (s *Service) Categories(ctx context.Context, ownerID string, year, month int, kind transactions.Kind) (CategoryBreakdown, error) {
	if month < 1 || month > 12 {
		return CategoryBreakdown{}, fmt.Errorf("month must be between 1 and 12")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	rows, err := s.repo.CategoryTotals(ctx, ownerID, kind, start, end)
	if err != nil {
		return CategoryBreakdown{}, err
	}

	var total float64
	for _, row := range rows {
		total += row.Total
	}

	stats := make([]CategoryStat, 0, len(rows))
	for _, row := range rows {
		percentage := 0.0
		if total > 0 {
			percentage = round1(row.Total / total * 100)
		}

		color := row.Color
		if color == "" {
			color = defaultCategoryColor
		}

		stats = append(stats, CategoryStat{
			Name:       row.Name,
			Amount:     row.Total,
			Percentage: percentage,
			Color:      color,
			Count:      row.Count,
		})
	}

	return CategoryBreakdown{
		Year:        year,
		Month:       month,
		Kind:        kind,
		Categories:  stats,
		TotalAmount: total,
	}, nil
}

func (s *Service) Trend(ctx context.Context, ownerID, rangeName string) (Trend, error) {
	monthsBack, ok := trendRanges[rangeName]
	if !ok {
		monthsBack = trendRanges["3m"]
		rangeName = "3m"
	}

	history, _, err := s.monthlyHistory(ctx, ownerID, monthsBack)
	if err != nil {
		return Trend{}, err
	}

	return Trend{Range: rangeName, Periods: history}, nil
}

func (s *Service) Prediction(ctx context.Context, ownerID string, months int) (PredictionList, error) {
	if months <= 0 {
		months = 3
	}

	history, activeMonths, err := s.monthlyHistory(ctx, ownerID, historyMonths)
	if err != nil {
		return PredictionList{}, err
	}

	predictions := make([]Prediction, 0, months)
	current := monthStart(s.today())

	// The averages and the trend line run over every calendar month in the
	// window, zero months included. Only the degraded-mode gate looks at how
	// many of those months actually had transactions.
	if activeMonths >= minHistoryForTrend {
		var incomeSum, expenseSum float64
		for _, point := range history {
			incomeSum += point.Income
			expenseSum += point.Expense
		}
		n := float64(len(history))
		avgIncome := incomeSum / n
		avgExpense := expenseSum / n
		incomeTrend := (history[len(history)-1].Income - history[0].Income) / n
		expenseTrend := (history[len(history)-1].Expense - history[0].Expense) / n

		for i := 0; i < months; i++ {
			predDate := current.AddDate(0, 1, 0)

			predictedIncome := math.Max(0, avgIncome+incomeTrend*float64(i+1))
			predictedExpense := math.Max(0, avgExpense+expenseTrend*float64(i+1))

			predictions = append(predictions, Prediction{
				Year:             predDate.Year(),
				Month:            int(predDate.Month()),
				PredictedIncome:  round2(predictedIncome),
				PredictedExpense: round2(predictedExpense),
				PredictedBalance: round2(predictedIncome - predictedExpense),
				Confidence:       math.Max(0.5, 0.9-float64(i)*0.1),
			})

			current = predDate
		}
	} else {
		// Degraded mode: not enough history for a trend line. Zero-valued
		// predictions at floor confidence, deliberately not an error.
		for i := 0; i < months; i++ {
			predDate := current.AddDate(0, 1, 0)
			predictions = append(predictions, Prediction{
				Year:       predDate.Year(),
				Month:      int(predDate.Month()),
				Confidence: 0.5,
			})
			current = predDate
		}
	}

	return PredictionList{
		Predictions:   predictions,
		BasedOnMonths: activeMonths,
	}, nil
}

func (s *Service) Recommendations(ctx context.Context, ownerID string) (Recommendations, error) {
	end := s.today()
	start := monthStart(end).AddDate(0, 0, -recommendationDays)

	expenseRows, err := s.repo.CategoryTotals(ctx, ownerID, transactions.KindExpense, start, end)
	if err != nil {
		return Recommendations{}, err
	}

	budgetRecs := make([]BudgetRecommendation, 0, topCategoriesCount)
	for i, row := range expenseRows {
		if i >= topCategoriesCount {
			break
		}

		recommended := row.Avg
		reason := "Spending looks reasonable, keep it up"
		switch {
		case row.Avg > 1000:
			recommended = row.Avg * 0.9
			reason = "High spending, consider cutting back"
		case row.Avg > 500:
			recommended = row.Avg * 0.95
			reason = "Moderate spending, small optimizations possible"
		}

		budgetRecs = append(budgetRecs, BudgetRecommendation{
			Category:    row.Name,
			CurrentAvg:  row.Avg,
			Recommended: recommended,
			Reason:      reason,
		})
	}

	totalIncome, err := s.repo.SumAmount(ctx, ownerID, transactions.KindIncome, start, end)
	if err != nil {
		return Recommendations{}, err
	}

	totalExpense, err := s.repo.SumAmount(ctx, ownerID, transactions.KindExpense, start, end)
	if err != nil {
		return Recommendations{}, err
	}

	netBalance := totalIncome - totalExpense

	var savingsAdvice []SavingsAdvice
	if netBalance > 0 {
		savingsAdvice = append(savingsAdvice,
			SavingsAdvice{
				Advice: fmt.Sprintf("Estimated amount available to save: %.2f", netBalance),
				Amount: netBalance,
			},
			SavingsAdvice{
				Advice: "Consider putting 30% of the surplus into an emergency fund",
				Amount: netBalance * 0.3,
			},
		)
	} else {
		savingsAdvice = append(savingsAdvice, SavingsAdvice{
			Advice: "Spending exceeds income, consider cutting expenses",
			Amount: 0,
		})
	}

	health := healthScore(totalIncome, netBalance)
	health.ImprovementSuggestions = improvementSuggestions(totalIncome, totalExpense, netBalance, expenseRows)

	return Recommendations{
		BudgetRecommendations: budgetRecs,
		SavingsAdvice:         savingsAdvice,
		FinancialHealth:       health,
	}, nil
}

// monthlyHistory produces one point for every calendar month in the window,
// from the first of the month 30*monthsBack days before this month up to the
// current month. Months without any transactions still yield a zero-valued
// point; the second return value counts the months that had activity, which
// gates the prediction's degraded mode. The 30-day anchoring mirrors how the
// windows have always been computed here.
func (s *Service) monthlyHistory(ctx context.Context, ownerID string, monthsBack int) ([]TrendPoint, int, error) {
	end := s.today()
	anchor := monthStart(end).AddDate(0, 0, -defaultSummaryDays*monthsBack)
	current := monthStart(anchor)
	lastMonth := monthStart(end)

	var points []TrendPoint
	activeMonths := 0
	for !current.After(lastMonth) {
		monthEnd := current.AddDate(0, 1, -1)

		count, err := s.repo.CountTransactions(ctx, ownerID, current, monthEnd)
		if err != nil {
			return nil, 0, err
		}

		var income, expense float64
		if count > 0 {
			activeMonths++

			income, err = s.repo.SumAmount(ctx, ownerID, transactions.KindIncome, current, monthEnd)
			if err != nil {
				return nil, 0, err
			}

			expense, err = s.repo.SumAmount(ctx, ownerID, transactions.KindExpense, current, monthEnd)
			if err != nil {
				return nil, 0, err
			}
		}

		points = append(points, TrendPoint{
			Year:    current.Year(),
			Month:   int(current.Month()),
			Income:  income,
			Expense: expense,
			Balance: income - expense,
		})

		current = current.AddDate(0, 1, 0)
	}

	return points, activeMonths, nil
}

func healthScore(totalIncome, netBalance float64) FinancialHealth {
	if totalIncome <= 0 {
		return FinancialHealth{Score: 0, Level: "no income data"}
	}

	savingsRate := netBalance / totalIncome * 100
	switch {
	case savingsRate >= 30:
		return FinancialHealth{Score: 90, Level: "excellent"}
	case savingsRate >= 20:
		return FinancialHealth{Score: 80, Level: "good"}
	case savingsRate >= 10:
		return FinancialHealth{Score: 70, Level: "fair"}
	default:
		return FinancialHealth{Score: 50, Level: "needs improvement"}
	}
}

func improvementSuggestions(totalIncome, totalExpense, netBalance float64, expenseRows []CategoryTotal) []string {
	var suggestions []string

	if totalIncome > 0 {
		savingsRate := netBalance / totalIncome * 100
		if totalExpense > totalIncome {
			suggestions = append(suggestions, "Spending exceeds income, both sides need attention")
		} else if savingsRate > 0 && savingsRate < 10 {
			suggestions = append(suggestions, "Savings rate is low, grow income or trim spending")
		}
	}

	if len(expenseRows) > 0 && totalExpense > 0 {
		top := expenseRows[0]
		ratio := top.Total / totalExpense * 100
		if ratio > 40 {
			suggestions = append(suggestions, fmt.Sprintf("%s accounts for a large share of spending (%.1f%%)", top.Name, ratio))
		}
	}

	return suggestions
}

func (s *Service) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func monthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

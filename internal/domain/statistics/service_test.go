package statistics

import (
	"context"
	"math"
	"testing"
	"time"

	"campus-finance-go/internal/domain/transactions"
)

const statsOwnerID = "11111111-1111-1111-1111-111111111111"

type fakeTxRow struct {
	kind   transactions.Kind
	date   time.Time
	amount float64
}

type fakeStatsRepo struct {
	rows           []fakeTxRow
	categoryTotals []CategoryTotal
}

func (r *fakeStatsRepo) SumAmount(ctx context.Context, ownerID string, kind transactions.Kind, from, to time.Time) (float64, error) {
	var total float64
	for _, row := range r.rows {
		if row.kind != kind || row.date.Before(from) || row.date.After(to) {
			continue
		}
		total += row.amount
	}
	return total, nil
}

func (r *fakeStatsRepo) CountTransactions(ctx context.Context, ownerID string, from, to time.Time) (int64, error) {
	var count int64
	for _, row := range r.rows {
		if row.date.Before(from) || row.date.After(to) {
			continue
		}
		count++
	}
	return count, nil
}

func (r *fakeStatsRepo) CategoryTotals(ctx context.Context, ownerID string, kind transactions.Kind, from, to time.Time) ([]CategoryTotal, error) {
	return r.categoryTotals, nil
}

func newStatsService(repo Repository, today time.Time) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return today }
	return svc
}

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func TestSummaryAverage(t *testing.T) {
	repo := &fakeStatsRepo{rows: []fakeTxRow{
		{kind: transactions.KindIncome, date: day(2026, 6, 1), amount: 1000},
		{kind: transactions.KindExpense, date: day(2026, 6, 5), amount: 300},
		{kind: transactions.KindExpense, date: day(2026, 6, 10), amount: 200},
	}}
	svc := newStatsService(repo, day(2026, 6, 15))

	summary, err := svc.Summary(context.Background(), statsOwnerID, nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary.TotalIncome != 1000 || summary.TotalExpense != 500 {
		t.Fatalf("unexpected totals: income=%v expense=%v", summary.TotalIncome, summary.TotalExpense)
	}
	if summary.NetBalance != 500 {
		t.Fatalf("expected net balance 500, got %v", summary.NetBalance)
	}
	if summary.TransactionCount != 3 {
		t.Fatalf("expected 3 transactions, got %d", summary.TransactionCount)
	}
	if summary.AvgTransaction != 500 {
		t.Fatalf("expected average 500, got %v", summary.AvgTransaction)
	}
}

func TestSummaryEmptyWindow(t *testing.T) {
	svc := newStatsService(&fakeStatsRepo{}, day(2026, 6, 15))

	summary, err := svc.Summary(context.Background(), statsOwnerID, nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary.AvgTransaction != 0 {
		t.Fatalf("expected zero average on empty window, got %v", summary.AvgTransaction)
	}
}

func TestCategoriesPercentages(t *testing.T) {
	repo := &fakeStatsRepo{categoryTotals: []CategoryTotal{
		{Name: "Food", Color: "#ff0000", Total: 300, Count: 6, Avg: 50},
		{Name: "Books", Color: "", Total: 100, Count: 2, Avg: 50},
	}}
	svc := newStatsService(repo, day(2026, 6, 15))

	breakdown, err := svc.Categories(context.Background(), statsOwnerID, 2026, 6, transactions.KindExpense)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if breakdown.TotalAmount != 400 {
		t.Fatalf("expected total 400, got %v", breakdown.TotalAmount)
	}
	if breakdown.Categories[0].Percentage != 75.0 || breakdown.Categories[1].Percentage != 25.0 {
		t.Fatalf("unexpected percentages: %v / %v", breakdown.Categories[0].Percentage, breakdown.Categories[1].Percentage)
	}
	if breakdown.Categories[1].Color != defaultCategoryColor {
		t.Fatalf("expected default color, got %q", breakdown.Categories[1].Color)
	}
}

func TestCategoriesInvalidMonth(t *testing.T) {
	svc := newStatsService(&fakeStatsRepo{}, day(2026, 6, 15))

	if _, err := svc.Categories(context.Background(), statsOwnerID, 2026, 13, transactions.KindExpense); err == nil {
		t.Fatalf("expected error for month 13")
	}
}

func TestSummaryDefaultStartAnchorsOnToday(t *testing.T) {
	repo := &fakeStatsRepo{rows: []fakeTxRow{
		{kind: transactions.KindIncome, date: day(2026, 5, 20), amount: 100},
	}}
	svc := newStatsService(repo, day(2026, 6, 15))

	end := day(2026, 6, 30)
	summary, err := svc.Summary(context.Background(), statsOwnerID, nil, &end)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !summary.StartDate.Equal(day(2026, 5, 16)) {
		t.Fatalf("expected default start 2026-05-16, got %v", summary.StartDate)
	}
	if summary.TotalIncome != 100 {
		t.Fatalf("expected income inside the default window, got %v", summary.TotalIncome)
	}
}

func TestTrendUnknownRangeFallsBack(t *testing.T) {
	svc := newStatsService(&fakeStatsRepo{}, day(2026, 6, 15))

	trend, err := svc.Trend(context.Background(), statsOwnerID, "bogus")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if trend.Range != "3m" {
		t.Fatalf("expected fallback range 3m, got %q", trend.Range)
	}
}

func TestTrendEmitsEveryCalendarMonth(t *testing.T) {
	repo := &fakeStatsRepo{rows: []fakeTxRow{
		{kind: transactions.KindExpense, date: day(2026, 4, 10), amount: 100},
		{kind: transactions.KindExpense, date: day(2026, 6, 10), amount: 50},
	}}
	svc := newStatsService(repo, day(2026, 6, 15))

	trend, err := svc.Trend(context.Background(), statsOwnerID, "3m")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(trend.Periods) != 4 {
		t.Fatalf("expected 4 periods for Mar-Jun, got %d: %+v", len(trend.Periods), trend.Periods)
	}

	var may *TrendPoint
	for i := range trend.Periods {
		if trend.Periods[i].Year == 2026 && trend.Periods[i].Month == 5 {
			may = &trend.Periods[i]
		}
	}
	if may == nil {
		t.Fatalf("May 2026 missing from trend periods: %+v", trend.Periods)
	}
	if may.Income != 0 || may.Expense != 0 || may.Balance != 0 {
		t.Fatalf("expected zero-valued point for empty May, got %+v", may)
	}
}

func TestPredictionDegradedWithoutHistory(t *testing.T) {
	svc := newStatsService(&fakeStatsRepo{}, day(2026, 6, 15))

	result, err := svc.Prediction(context.Background(), statsOwnerID, 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.BasedOnMonths != 0 {
		t.Fatalf("expected no history months, got %d", result.BasedOnMonths)
	}
	if len(result.Predictions) != 3 {
		t.Fatalf("expected 3 predictions, got %d", len(result.Predictions))
	}
	for _, prediction := range result.Predictions {
		if prediction.PredictedIncome != 0 || prediction.PredictedExpense != 0 {
			t.Fatalf("expected zero-valued prediction, got %+v", prediction)
		}
		if prediction.Confidence != 0.5 {
			t.Fatalf("expected floor confidence 0.5, got %v", prediction.Confidence)
		}
	}
}

func TestPredictionConfidenceDecreases(t *testing.T) {
	repo := &fakeStatsRepo{rows: []fakeTxRow{
		{kind: transactions.KindIncome, date: day(2026, 4, 10), amount: 1000},
		{kind: transactions.KindIncome, date: day(2026, 5, 10), amount: 1100},
		{kind: transactions.KindIncome, date: day(2026, 6, 10), amount: 1200},
	}}
	svc := newStatsService(repo, day(2026, 6, 15))

	result, err := svc.Prediction(context.Background(), statsOwnerID, 6)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.BasedOnMonths != 3 {
		t.Fatalf("expected 3 history months, got %d", result.BasedOnMonths)
	}

	expected := []float64{0.9, 0.8, 0.7, 0.6, 0.5, 0.5}
	for i, prediction := range result.Predictions {
		if math.Abs(prediction.Confidence-expected[i]) > 1e-9 {
			t.Fatalf("prediction %d: expected confidence %v, got %v", i, expected[i], prediction.Confidence)
		}
	}

	first := result.Predictions[0]
	if first.Year != 2026 || first.Month != 7 {
		t.Fatalf("expected first prediction for 2026-07, got %d-%d", first.Year, first.Month)
	}
	if first.PredictedIncome <= 0 {
		t.Fatalf("expected positive predicted income, got %v", first.PredictedIncome)
	}
	if first.PredictedBalance != round2(first.PredictedIncome-first.PredictedExpense) {
		t.Fatalf("balance does not match income-expense")
	}
}

func TestPredictionAveragesIncludeEmptyMonths(t *testing.T) {
	repo := &fakeStatsRepo{rows: []fakeTxRow{
		{kind: transactions.KindIncome, date: day(2026, 4, 10), amount: 700},
		{kind: transactions.KindIncome, date: day(2026, 5, 10), amount: 700},
		{kind: transactions.KindIncome, date: day(2026, 6, 10), amount: 700},
	}}
	svc := newStatsService(repo, day(2026, 6, 15))

	result, err := svc.Prediction(context.Background(), statsOwnerID, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.BasedOnMonths != 3 {
		t.Fatalf("expected 3 active months, got %d", result.BasedOnMonths)
	}

	// The history window spans Dec 2025 through Jun 2026: seven calendar
	// months, four of them empty. avg = 2100/7 = 300, trend = (700-0)/7 = 100,
	// so the first prediction is 300 + 100.
	first := result.Predictions[0]
	if first.PredictedIncome != 400 {
		t.Fatalf("expected predicted income 400, got %v", first.PredictedIncome)
	}
	if first.PredictedExpense != 0 {
		t.Fatalf("expected predicted expense 0, got %v", first.PredictedExpense)
	}
}

func TestRecommendationsSpendingBands(t *testing.T) {
	repo := &fakeStatsRepo{
		rows: []fakeTxRow{
			{kind: transactions.KindIncome, date: day(2026, 5, 1), amount: 5000},
			{kind: transactions.KindExpense, date: day(2026, 5, 2), amount: 3000},
		},
		categoryTotals: []CategoryTotal{
			{Name: "Rent", Total: 2400, Count: 2, Avg: 1200},
			{Name: "Food", Total: 1200, Count: 2, Avg: 600},
			{Name: "Books", Total: 200, Count: 2, Avg: 100},
		},
	}
	svc := newStatsService(repo, day(2026, 6, 15))

	result, err := svc.Recommendations(context.Background(), statsOwnerID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(result.BudgetRecommendations) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(result.BudgetRecommendations))
	}
	if result.BudgetRecommendations[0].Recommended != 1200*0.9 {
		t.Fatalf("expected 10%% cut for high spending, got %v", result.BudgetRecommendations[0].Recommended)
	}
	if result.BudgetRecommendations[1].Recommended != 600*0.95 {
		t.Fatalf("expected 5%% cut for moderate spending, got %v", result.BudgetRecommendations[1].Recommended)
	}
	if result.BudgetRecommendations[2].Recommended != 100 {
		t.Fatalf("expected unchanged recommendation, got %v", result.BudgetRecommendations[2].Recommended)
	}

	if len(result.SavingsAdvice) == 0 || result.SavingsAdvice[0].Amount != 2000 {
		t.Fatalf("expected surplus advice for 2000, got %+v", result.SavingsAdvice)
	}
}

func TestHealthScoreBands(t *testing.T) {
	cases := []struct {
		income  float64
		net     float64
		score   int
		level   string
	}{
		{0, 0, 0, "no income data"},
		{1000, 350, 90, "excellent"},
		{1000, 250, 80, "good"},
		{1000, 150, 70, "fair"},
		{1000, 50, 50, "needs improvement"},
	}

	for _, tc := range cases {
		health := healthScore(tc.income, tc.net)
		if health.Score != tc.score || health.Level != tc.level {
			t.Fatalf("income=%v net=%v: expected %d/%q, got %d/%q",
				tc.income, tc.net, tc.score, tc.level, health.Score, health.Level)
		}
	}
}

func TestImprovementSuggestionTopCategory(t *testing.T) {
	rows := []CategoryTotal{{Name: "Rent", Total: 450}}
	suggestions := improvementSuggestions(1000, 1000, 0, rows)

	found := false
	for _, suggestion := range suggestions {
		if suggestion == "Rent accounts for a large share of spending (45.0%)" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected top-category suggestion, got %v", suggestions)
	}
}

package alerts

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"campus-finance-go/internal/domain/transactions"
	"campus-finance-go/pkg/logger"
)

const (
	ownerID1    = "11111111-1111-1111-1111-111111111111"
	categoryID1 = "22222222-2222-2222-2222-222222222222"
	budgetID1   = "33333333-3333-3333-3333-333333333333"
)

type fakeAlertsRepo struct {
	alerts map[string]*Alert
}

func newFakeAlertsRepo() *fakeAlertsRepo {
	return &fakeAlertsRepo{alerts: make(map[string]*Alert)}
}

func dedupKey(alert *Alert) string {
	return strings.Join([]string{
		alert.OwnerID, string(alert.Type), string(alert.Priority),
		alert.Title, alert.Message, alert.RelatedID,
	}, "|")
}

func (r *fakeAlertsRepo) GetOrCreate(ctx context.Context, alert *Alert) (bool, error) {
	key := dedupKey(alert)
	for _, existing := range r.alerts {
		if dedupKey(existing) == key {
			*alert = *existing
			return false, nil
		}
	}
	stored := *alert
	r.alerts[alert.ID] = &stored
	return true, nil
}

func (r *fakeAlertsRepo) List(ctx context.Context, ownerID string, filter ListFilter) ([]Alert, error) {
	var result []Alert
	for _, alert := range r.alerts {
		if alert.OwnerID != ownerID || !alert.IsActive {
			continue
		}
		if filter.UnreadOnly && alert.IsRead {
			continue
		}
		result = append(result, *alert)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeAlertsRepo) GetByID(ctx context.Context, ownerID, alertID string) (*Alert, error) {
	alert, ok := r.alerts[alertID]
	if !ok || alert.OwnerID != ownerID {
		return nil, ErrAlertNotFound
	}
	return alert, nil
}

func (r *fakeAlertsRepo) MarkRead(ctx context.Context, ownerID, alertID string) (bool, error) {
	alert, ok := r.alerts[alertID]
	if !ok || alert.OwnerID != ownerID {
		return false, nil
	}
	alert.IsRead = true
	return true, nil
}

func (r *fakeAlertsRepo) MarkAllRead(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	for _, alert := range r.alerts {
		if alert.OwnerID == ownerID && !alert.IsRead {
			alert.IsRead = true
			count++
		}
	}
	return count, nil
}

func (r *fakeAlertsRepo) Deactivate(ctx context.Context, ownerID, alertID string) (bool, error) {
	alert, ok := r.alerts[alertID]
	if !ok || alert.OwnerID != ownerID || !alert.IsActive {
		return false, nil
	}
	alert.IsActive = false
	return true, nil
}

func (r *fakeAlertsRepo) CountActive(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	for _, alert := range r.alerts {
		if alert.OwnerID == ownerID && alert.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *fakeAlertsRepo) CountUnread(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	for _, alert := range r.alerts {
		if alert.OwnerID == ownerID && alert.IsActive && !alert.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeAlertsRepo) CountByType(ctx context.Context, ownerID string) (map[Type]int64, error) {
	result := make(map[Type]int64)
	for _, alert := range r.alerts {
		if alert.OwnerID == ownerID && alert.IsActive {
			result[alert.Type]++
		}
	}
	return result, nil
}

func (r *fakeAlertsRepo) CountByPriority(ctx context.Context, ownerID string) (map[Priority]int64, error) {
	result := make(map[Priority]int64)
	for _, alert := range r.alerts {
		if alert.OwnerID == ownerID && alert.IsActive {
			result[alert.Priority]++
		}
	}
	return result, nil
}

type fakeBudgetSource struct {
	budgets  []transactions.Budget
	spent    float64
	category *transactions.Category
}

func (s *fakeBudgetSource) ListActiveBudgets(ctx context.Context, ownerID, categoryID string, date time.Time) ([]transactions.Budget, error) {
	return s.budgets, nil
}

func (s *fakeBudgetSource) SumExpenses(ctx context.Context, ownerID, categoryID string, from, to time.Time) (float64, error) {
	return s.spent, nil
}

func (s *fakeBudgetSource) GetCategoryByID(ctx context.Context, ownerID, categoryID string) (*transactions.Category, error) {
	if s.category == nil {
		return nil, transactions.ErrCategoryNotFound
	}
	return s.category, nil
}

func testLogger() logger.Logger {
	return logger.New(io.Discard, slog.LevelError, "text")
}

func testBudget(amount float64) transactions.Budget {
	return transactions.Budget{
		ID:         budgetID1,
		OwnerID:    ownerID1,
		CategoryID: categoryID1,
		Amount:     amount,
		Period:     transactions.PeriodMonthly,
		StartDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		IsActive:   true,
	}
}

func expenseTransaction(amount float64) transactions.Transaction {
	return transactions.Transaction{
		ID:         "tx-1",
		OwnerID:    ownerID1,
		CategoryID: categoryID1,
		Amount:     amount,
		Kind:       transactions.KindExpense,
		Date:       time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestEvaluateTransactionWarningBand(t *testing.T) {
	repo := newFakeAlertsRepo()
	source := &fakeBudgetSource{
		budgets:  []transactions.Budget{testBudget(100)},
		spent:    91,
		category: &transactions.Category{ID: categoryID1, Name: "Food"},
	}
	svc := NewService(repo, source, testLogger())
	evaluatedAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return evaluatedAt }

	svc.EvaluateTransaction(context.Background(), expenseTransaction(40))

	if len(repo.alerts) != 1 {
		t.Fatalf("expected one alert, got %d", len(repo.alerts))
	}
	for _, alert := range repo.alerts {
		if alert.Priority != PriorityHigh {
			t.Fatalf("expected high priority, got %q", alert.Priority)
		}
		if alert.Title != "Budget warning - Food" {
			t.Fatalf("unexpected title %q", alert.Title)
		}
		if alert.Message != "Budget usage has reached 91.0%, remaining amount 9.00" {
			t.Fatalf("unexpected message %q", alert.Message)
		}
		if alert.ExpiresAt == nil || !alert.ExpiresAt.Equal(evaluatedAt.Add(7*24*time.Hour)) {
			t.Fatalf("unexpected expiry %v", alert.ExpiresAt)
		}
		if alert.RelatedID != budgetID1 || alert.RelatedType != "budget" {
			t.Fatalf("unexpected relation %q/%q", alert.RelatedID, alert.RelatedType)
		}
	}
}

func TestEvaluateTransactionIdempotent(t *testing.T) {
	repo := newFakeAlertsRepo()
	source := &fakeBudgetSource{
		budgets:  []transactions.Budget{testBudget(100)},
		spent:    91,
		category: &transactions.Category{ID: categoryID1, Name: "Food"},
	}
	svc := NewService(repo, source, testLogger())
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }

	svc.EvaluateTransaction(context.Background(), expenseTransaction(40))
	svc.EvaluateTransaction(context.Background(), expenseTransaction(40))

	if len(repo.alerts) != 1 {
		t.Fatalf("expected one alert after re-evaluation, got %d", len(repo.alerts))
	}
}

func TestEvaluateTransactionExceededBand(t *testing.T) {
	repo := newFakeAlertsRepo()
	source := &fakeBudgetSource{
		budgets:  []transactions.Budget{testBudget(100)},
		spent:    105,
		category: &transactions.Category{ID: categoryID1, Name: "Food"},
	}
	svc := NewService(repo, source, testLogger())
	evaluatedAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return evaluatedAt }

	svc.EvaluateTransaction(context.Background(), expenseTransaction(50))

	if len(repo.alerts) != 1 {
		t.Fatalf("expected one alert, got %d", len(repo.alerts))
	}
	for _, alert := range repo.alerts {
		if alert.Priority != PriorityUrgent {
			t.Fatalf("expected urgent priority, got %q", alert.Priority)
		}
		if alert.Title != "Budget exceeded - Food" {
			t.Fatalf("unexpected title %q", alert.Title)
		}
		if alert.Message != "Budget exceeded by 5.00, please review your spending" {
			t.Fatalf("unexpected message %q", alert.Message)
		}
		if alert.ExpiresAt == nil || !alert.ExpiresAt.Equal(evaluatedAt.Add(3*24*time.Hour)) {
			t.Fatalf("unexpected expiry %v", alert.ExpiresAt)
		}
	}
}

func TestEvaluateTransactionBelowThreshold(t *testing.T) {
	repo := newFakeAlertsRepo()
	source := &fakeBudgetSource{
		budgets:  []transactions.Budget{testBudget(100)},
		spent:    89.9,
		category: &transactions.Category{ID: categoryID1, Name: "Food"},
	}
	svc := NewService(repo, source, testLogger())

	svc.EvaluateTransaction(context.Background(), expenseTransaction(10))

	if len(repo.alerts) != 0 {
		t.Fatalf("expected no alerts below threshold, got %d", len(repo.alerts))
	}
}

func TestEvaluateTransactionIgnoresIncome(t *testing.T) {
	repo := newFakeAlertsRepo()
	source := &fakeBudgetSource{
		budgets:  []transactions.Budget{testBudget(100)},
		spent:    95,
		category: &transactions.Category{ID: categoryID1, Name: "Food"},
	}
	svc := NewService(repo, source, testLogger())

	income := expenseTransaction(95)
	income.Kind = transactions.KindIncome
	svc.EvaluateTransaction(context.Background(), income)

	if len(repo.alerts) != 0 {
		t.Fatalf("expected no alerts for income, got %d", len(repo.alerts))
	}
}

func TestEvaluateTransactionSkipsZeroAmountBudget(t *testing.T) {
	repo := newFakeAlertsRepo()
	source := &fakeBudgetSource{
		budgets:  []transactions.Budget{testBudget(0)},
		spent:    50,
		category: &transactions.Category{ID: categoryID1, Name: "Food"},
	}
	svc := NewService(repo, source, testLogger())

	svc.EvaluateTransaction(context.Background(), expenseTransaction(50))

	if len(repo.alerts) != 0 {
		t.Fatalf("expected zero-amount budget to be skipped, got %d alerts", len(repo.alerts))
	}
}

func TestMarkReadNotFound(t *testing.T) {
	repo := newFakeAlertsRepo()
	svc := NewService(repo, &fakeBudgetSource{}, testLogger())

	err := svc.MarkRead(context.Background(), ownerID1, "missing")
	if err != ErrAlertNotFound {
		t.Fatalf("expected ErrAlertNotFound, got %v", err)
	}
}

func TestStatisticsFillsAllBuckets(t *testing.T) {
	repo := newFakeAlertsRepo()
	repo.alerts["a-1"] = &Alert{ID: "a-1", OwnerID: ownerID1, Type: TypeBudget, Priority: PriorityHigh, IsActive: true}
	repo.alerts["a-2"] = &Alert{ID: "a-2", OwnerID: ownerID1, Type: TypeBudget, Priority: PriorityUrgent, IsActive: true, IsRead: true}
	svc := NewService(repo, &fakeBudgetSource{}, testLogger())

	stats, err := svc.Statistics(context.Background(), ownerID1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.TotalCount != 2 || stats.UnreadCount != 1 {
		t.Fatalf("unexpected counts: total=%d unread=%d", stats.TotalCount, stats.UnreadCount)
	}
	if stats.TypeStats[TypeBudget] != 2 {
		t.Fatalf("expected 2 budget alerts, got %d", stats.TypeStats[TypeBudget])
	}
	for _, alertType := range AllTypes {
		if _, ok := stats.TypeStats[alertType]; !ok {
			t.Fatalf("missing type bucket %q", alertType)
		}
	}
	for _, priority := range AllPriorities {
		if _, ok := stats.PriorityStats[priority]; !ok {
			t.Fatalf("missing priority bucket %q", priority)
		}
	}
}

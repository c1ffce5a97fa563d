package alerts

import (
	"context"
	"fmt"
	"time"

	"campus-finance-go/internal/domain/transactions"
	"campus-finance-go/pkg/logger"
	"github.com/google/uuid"
)

const (
	warningThreshold  = 90
	exceededThreshold = 100

	warningTTL  = 7 * 24 * time.Hour
	exceededTTL = 3 * 24 * time.Hour
)

// BudgetSource exposes the slice of the ledger the engine reads: budgets
// covering a transaction and expense sums inside a budget window. The
// transactions repository satisfies it directly.
type BudgetSource interface {
	ListActiveBudgets(ctx context.Context, ownerID, categoryID string, date time.Time) ([]transactions.Budget, error)
	SumExpenses(ctx context.Context, ownerID, categoryID string, from, to time.Time) (float64, error)
	GetCategoryByID(ctx context.Context, ownerID, categoryID string) (*transactions.Category, error)
}

type Service struct {
	repo    Repository
	budgets BudgetSource
	log     logger.Logger
	now     func() time.Time
}

func NewService(repo Repository, budgets BudgetSource, log logger.Logger) *Service {
	return &Service{
		repo:    repo,
		budgets: budgets,
		log:     log,
		now:     time.Now,
	}
}

// EvaluateTransaction checks every active budget covering the transaction and
// materializes at most one alert per threshold band not already recorded.
// It is fire-and-forget: every failure is logged and swallowed so the
// triggering write never observes an evaluation error.
func (s *Service) EvaluateTransaction(ctx context.Context, transaction transactions.Transaction) {
	if transaction.Kind != transactions.KindExpense {
		return
	}

	budgets, err := s.budgets.ListActiveBudgets(ctx, transaction.OwnerID, transaction.CategoryID, transaction.Date)
	if err != nil {
		s.log.InternalError("alerts: list budgets failed", err,
			"owner_id", transaction.OwnerID, "category_id", transaction.CategoryID)
		return
	}

	for _, budget := range budgets {
		if err := s.evaluateBudget(ctx, transaction, budget); err != nil {
			s.log.InternalError("alerts: budget evaluation failed", err,
				"owner_id", transaction.OwnerID, "budget_id", budget.ID)
		}
	}
}

func (s *Service) evaluateBudget(ctx context.Context, transaction transactions.Transaction, budget transactions.Budget) error {
	if budget.Amount <= 0 {
		return fmt.Errorf("budget %s has non-positive amount %.2f", budget.ID, budget.Amount)
	}

	spent, err := s.budgets.SumExpenses(ctx, budget.OwnerID, budget.CategoryID, budget.StartDate, budget.EndDate)
	if err != nil {
		return fmt.Errorf("sum expenses: %w", err)
	}

	percentage := spent / budget.Amount * 100
	if percentage < warningThreshold {
		return nil
	}

	category, err := s.budgets.GetCategoryByID(ctx, budget.OwnerID, budget.CategoryID)
	if err != nil {
		return fmt.Errorf("load category: %w", err)
	}

	now := s.now().UTC()
	alert := Alert{
		ID:          uuid.NewString(),
		OwnerID:     budget.OwnerID,
		Type:        TypeBudget,
		RelatedID:   budget.ID,
		RelatedType: "budget",
		IsActive:    true,
	}

	if percentage >= exceededThreshold {
		expires := now.Add(exceededTTL)
		alert.Priority = PriorityUrgent
		alert.Title = "Budget exceeded - " + category.Name
		alert.Message = fmt.Sprintf("Budget exceeded by %.2f, please review your spending", spent-budget.Amount)
		alert.ExpiresAt = &expires
	} else {
		expires := now.Add(warningTTL)
		alert.Priority = PriorityHigh
		alert.Title = "Budget warning - " + category.Name
		alert.Message = fmt.Sprintf("Budget usage has reached %.1f%%, remaining amount %.2f", percentage, budget.Amount-spent)
		alert.ExpiresAt = &expires
	}

	created, err := s.repo.GetOrCreate(ctx, &alert)
	if err != nil {
		return fmt.Errorf("get or create alert: %w", err)
	}
	if created {
		s.log.Info("alerts: alert created",
			"owner_id", alert.OwnerID, "budget_id", budget.ID, "priority", alert.Priority)
	}

	return nil
}

func (s *Service) List(ctx context.Context, ownerID string, filter ListFilter) ([]Alert, error) {
	return s.repo.List(ctx, ownerID, filter)
}

func (s *Service) Unread(ctx context.Context, ownerID string) ([]Alert, error) {
	return s.repo.List(ctx, ownerID, ListFilter{UnreadOnly: true})
}

func (s *Service) MarkRead(ctx context.Context, ownerID, alertID string) error {
	updated, err := s.repo.MarkRead(ctx, ownerID, alertID)
	if err != nil {
		return err
	}
	if !updated {
		return ErrAlertNotFound
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, ownerID string) (int64, error) {
	return s.repo.MarkAllRead(ctx, ownerID)
}

func (s *Service) Deactivate(ctx context.Context, ownerID, alertID string) error {
	updated, err := s.repo.Deactivate(ctx, ownerID, alertID)
	if err != nil {
		return err
	}
	if !updated {
		return ErrAlertNotFound
	}
	return nil
}

func (s *Service) Statistics(ctx context.Context, ownerID string) (Statistics, error) {
	total, err := s.repo.CountActive(ctx, ownerID)
	if err != nil {
		return Statistics{}, err
	}

	unread, err := s.repo.CountUnread(ctx, ownerID)
	if err != nil {
		return Statistics{}, err
	}

	byType, err := s.repo.CountByType(ctx, ownerID)
	if err != nil {
		return Statistics{}, err
	}

	byPriority, err := s.repo.CountByPriority(ctx, ownerID)
	if err != nil {
		return Statistics{}, err
	}

	typeStats := make(map[Type]int64, len(AllTypes))
	for _, alertType := range AllTypes {
		typeStats[alertType] = byType[alertType]
	}

	priorityStats := make(map[Priority]int64, len(AllPriorities))
	for _, priority := range AllPriorities {
		priorityStats[priority] = byPriority[priority]
	}

	return Statistics{
		TotalCount:    total,
		UnreadCount:   unread,
		TypeStats:     typeStats,
		PriorityStats: priorityStats,
	}, nil
}

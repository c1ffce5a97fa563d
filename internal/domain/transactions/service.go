package transactions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campus-finance-go/pkg/logger"
	"github.com/google/uuid"
)

// AlertEvaluator is invoked once per persisted transaction. Implementations
// must swallow their own errors; evaluation is a side effect of the write,
// never its outcome.
type AlertEvaluator interface {
	EvaluateTransaction(ctx context.Context, transaction Transaction)
}

type Service struct {
	repo      Repository
	evaluator AlertEvaluator
	log       logger.Logger
	now       func() time.Time
}

func NewService(repo Repository, evaluator AlertEvaluator, log logger.Logger) *Service {
	return &Service{
		repo:      repo,
		evaluator: evaluator,
		log:       log,
		now:       time.Now,
	}
}

func (s *Service) ListTransactions(ctx context.Context, ownerID string, filter ListFilter) ([]Transaction, int64, error) {
	if filter.Kind != "" && !filter.Kind.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown transaction kind %q", ErrValidation, filter.Kind)
	}
	return s.repo.ListTransactions(ctx, ownerID, filter)
}

func (s *Service) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*Transaction, error) {
	if err := s.validateTransactionInput(input.Amount, input.Kind, input.Date); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetCategoryByID(ctx, input.OwnerID, input.CategoryID); err != nil {
		return nil, err
	}

	transaction := Transaction{
		ID:          uuid.NewString(),
		OwnerID:     input.OwnerID,
		CategoryID:  input.CategoryID,
		Amount:      input.Amount,
		Kind:        input.Kind,
		Date:        input.Date,
		Description: strings.TrimSpace(input.Description),
	}

	if err := s.repo.CreateTransaction(ctx, &transaction); err != nil {
		return nil, err
	}

	// Threshold evaluation happens exactly once per persisted transaction,
	// never on updates or deletes. Stale alerts from edited transactions are
	// a known property of the current behavior.
	if s.evaluator != nil {
		s.evaluator.EvaluateTransaction(ctx, transaction)
	}

	return &transaction, nil
}

func (s *Service) UpdateTransaction(ctx context.Context, input UpdateTransactionInput) (*Transaction, error) {
	if err := s.validateTransactionInput(input.Amount, input.Kind, input.Date); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetCategoryByID(ctx, input.OwnerID, input.CategoryID); err != nil {
		return nil, err
	}

	transaction, err := s.repo.GetTransactionByID(ctx, input.OwnerID, input.ID)
	if err != nil {
		return nil, err
	}

	transaction.CategoryID = input.CategoryID
	transaction.Amount = input.Amount
	transaction.Kind = input.Kind
	transaction.Date = input.Date
	transaction.Description = strings.TrimSpace(input.Description)
	transaction.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	deleted, err := s.repo.DeleteTransaction(ctx, ownerID, transactionID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTransactionNotFound
	}
	return nil
}

func (s *Service) ListCategories(ctx context.Context, ownerID string) ([]Category, error) {
	return s.repo.ListCategories(ctx, ownerID)
}

func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !input.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown category kind %q", ErrValidation, input.Kind)
	}

	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = "#1890ff"
	}

	category := Category{
		ID:       uuid.NewString(),
		OwnerID:  input.OwnerID,
		Name:     name,
		Kind:     input.Kind,
		Icon:     strings.TrimSpace(input.Icon),
		Color:    color,
		IsActive: true,
	}

	if err := s.repo.CreateCategory(ctx, &category); err != nil {
		return nil, err
	}

	return &category, nil
}

func (s *Service) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	category, err := s.repo.GetCategoryByID(ctx, input.OwnerID, input.ID)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if icon := strings.TrimSpace(input.Icon); icon != "" {
		category.Icon = icon
	}
	if color := strings.TrimSpace(input.Color); color != "" {
		category.Color = color
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	category.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, ownerID, categoryID string) error {
	deleted, err := s.repo.DeleteCategory(ctx, ownerID, categoryID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *Service) ListBudgets(ctx context.Context, ownerID string) ([]Budget, error) {
	return s.repo.ListBudgets(ctx, ownerID)
}

func (s *Service) CreateBudget(ctx context.Context, input CreateBudgetInput) (*Budget, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: budget amount must be positive", ErrValidation)
	}
	if !input.Period.Valid() {
		return nil, fmt.Errorf("%w: unknown budget period %q", ErrValidation, input.Period)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: start_date must be before or equal to end_date", ErrValidation)
	}

	if _, err := s.repo.GetCategoryByID(ctx, input.OwnerID, input.CategoryID); err != nil {
		return nil, err
	}

	budget := Budget{
		ID:         uuid.NewString(),
		OwnerID:    input.OwnerID,
		CategoryID: input.CategoryID,
		Amount:     input.Amount,
		Period:     input.Period,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		IsActive:   true,
	}

	if err := s.repo.CreateBudget(ctx, &budget); err != nil {
		return nil, err
	}

	return &budget, nil
}

func (s *Service) UpdateBudget(ctx context.Context, input UpdateBudgetInput) (*Budget, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: budget amount must be positive", ErrValidation)
	}
	if !input.Period.Valid() {
		return nil, fmt.Errorf("%w: unknown budget period %q", ErrValidation, input.Period)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: start_date must be before or equal to end_date", ErrValidation)
	}

	budget, err := s.repo.GetBudgetByID(ctx, input.OwnerID, input.ID)
	if err != nil {
		return nil, err
	}

	budget.Amount = input.Amount
	budget.Period = input.Period
	budget.StartDate = input.StartDate
	budget.EndDate = input.EndDate
	if input.IsActive != nil {
		budget.IsActive = *input.IsActive
	}
	budget.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateBudget(ctx, budget); err != nil {
		return nil, err
	}

	return budget, nil
}

func (s *Service) DeleteBudget(ctx context.Context, ownerID, budgetID string) error {
	deleted, err := s.repo.DeleteBudget(ctx, ownerID, budgetID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBudgetNotFound
	}
	return nil
}

func (s *Service) ListGoals(ctx context.Context, ownerID string) ([]Goal, error) {
	return s.repo.ListGoals(ctx, ownerID)
}

func (s *Service) CreateGoal(ctx context.Context, input CreateGoalInput) (*Goal, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !input.GoalType.Valid() {
		return nil, fmt.Errorf("%w: unknown goal type %q", ErrValidation, input.GoalType)
	}
	if input.TargetAmount <= 0 {
		return nil, fmt.Errorf("%w: target_amount must be positive", ErrValidation)
	}

	goal := Goal{
		ID:           uuid.NewString(),
		OwnerID:      input.OwnerID,
		Name:         name,
		GoalType:     input.GoalType,
		TargetAmount: input.TargetAmount,
		Deadline:     input.Deadline,
		IsActive:     true,
	}

	if err := s.repo.CreateGoal(ctx, &goal); err != nil {
		return nil, err
	}

	return &goal, nil
}

func (s *Service) UpdateGoal(ctx context.Context, input UpdateGoalInput) (*Goal, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.TargetAmount <= 0 {
		return nil, fmt.Errorf("%w: target_amount must be positive", ErrValidation)
	}
	if input.CurrentAmount < 0 {
		return nil, fmt.Errorf("%w: current_amount must not be negative", ErrValidation)
	}

	goal, err := s.repo.GetGoalByID(ctx, input.OwnerID, input.ID)
	if err != nil {
		return nil, err
	}

	goal.Name = name
	goal.TargetAmount = input.TargetAmount
	goal.CurrentAmount = input.CurrentAmount
	goal.Deadline = input.Deadline
	if input.IsActive != nil {
		goal.IsActive = *input.IsActive
	}
	goal.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateGoal(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *Service) DeleteGoal(ctx context.Context, ownerID, goalID string) error {
	deleted, err := s.repo.DeleteGoal(ctx, ownerID, goalID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGoalNotFound
	}
	return nil
}

func (s *Service) validateTransactionInput(amount float64, kind Kind, date time.Time) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown transaction kind %q", ErrValidation, kind)
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if date.After(today) {
		return fmt.Errorf("%w: date must not be in the future", ErrValidation)
	}
	return nil
}

package transactions

import (
	"context"
	"errors"
	"time"

	txdomain "campus-finance-go/internal/domain/transactions"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListTransactions(ctx context.Context, ownerID string, filter txdomain.ListFilter) ([]txdomain.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&txdomain.Transaction{}).Where("owner_id = ?", ownerID)
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("date desc, created_at desc")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var items []txdomain.Transaction
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *PostgresRepository) GetTransactionByID(ctx context.Context, ownerID, transactionID string) (*txdomain.Transaction, error) {
	var transaction txdomain.Transaction
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, transactionID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, txdomain.ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *PostgresRepository) CreateTransaction(ctx context.Context, transaction *txdomain.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *PostgresRepository) UpdateTransaction(ctx context.Context, transaction *txdomain.Transaction) error {
	return r.db.WithContext(ctx).
		Model(&txdomain.Transaction{}).
		Where("id = ? AND owner_id = ?", transaction.ID, transaction.OwnerID).
		Updates(map[string]interface{}{
			"category_id": transaction.CategoryID,
			"amount":      transaction.Amount,
			"kind":        transaction.Kind,
			"date":        transaction.Date,
			"description": transaction.Description,
			"updated_at":  transaction.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) DeleteTransaction(ctx context.Context, ownerID, transactionID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&txdomain.Transaction{}, "owner_id = ? AND id = ?", ownerID, transactionID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListCategories(ctx context.Context, ownerID string) ([]txdomain.Category, error) {
	var categories []txdomain.Category
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PostgresRepository) GetCategoryByID(ctx context.Context, ownerID, categoryID string) (*txdomain.Category, error) {
	var category txdomain.Category
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, categoryID).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, txdomain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *txdomain.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, category *txdomain.Category) error {
	return r.db.WithContext(ctx).
		Model(&txdomain.Category{}).
		Where("id = ? AND owner_id = ?", category.ID, category.OwnerID).
		Updates(map[string]interface{}{
			"name":       category.Name,
			"icon":       category.Icon,
			"color":      category.Color,
			"is_active":  category.IsActive,
			"updated_at": category.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, ownerID, categoryID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&txdomain.Category{}, "owner_id = ? AND id = ?", ownerID, categoryID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListBudgets(ctx context.Context, ownerID string) ([]txdomain.Budget, error) {
	var budgets []txdomain.Budget
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *PostgresRepository) GetBudgetByID(ctx context.Context, ownerID, budgetID string) (*txdomain.Budget, error) {
	var budget txdomain.Budget
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, budgetID).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, txdomain.ErrBudgetNotFound
		}
		return nil, err
	}
	return &budget, nil
}

func (r *PostgresRepository) CreateBudget(ctx context.Context, budget *txdomain.Budget) error {
	return r.db.WithContext(ctx).Create(budget).Error
}

func (r *PostgresRepository) UpdateBudget(ctx context.Context, budget *txdomain.Budget) error {
	return r.db.WithContext(ctx).
		Model(&txdomain.Budget{}).
		Where("id = ? AND owner_id = ?", budget.ID, budget.OwnerID).
		Updates(map[string]interface{}{
			"amount":     budget.Amount,
			"period":     budget.Period,
			"start_date": budget.StartDate,
			"end_date":   budget.EndDate,
			"is_active":  budget.IsActive,
			"updated_at": budget.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) DeleteBudget(ctx context.Context, ownerID, budgetID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&txdomain.Budget{}, "owner_id = ? AND id = ?", ownerID, budgetID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListActiveBudgets(ctx context.Context, ownerID, categoryID string, date time.Time) ([]txdomain.Budget, error) {
	var budgets []txdomain.Budget
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND category_id = ? AND is_active = ? AND start_date <= ? AND end_date >= ?",
			ownerID, categoryID, true, date, date).
		Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *PostgresRepository) SumExpenses(ctx context.Context, ownerID, categoryID string, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&txdomain.Transaction{}).
		Where("owner_id = ? AND category_id = ? AND kind = ? AND date >= ? AND date <= ?",
			ownerID, categoryID, txdomain.KindExpense, from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *PostgresRepository) ListGoals(ctx context.Context, ownerID string) ([]txdomain.Goal, error) {
	var goals []txdomain.Goal
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *PostgresRepository) GetGoalByID(ctx context.Context, ownerID, goalID string) (*txdomain.Goal, error) {
	var goal txdomain.Goal
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, goalID).
		First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, txdomain.ErrGoalNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (r *PostgresRepository) CreateGoal(ctx context.Context, goal *txdomain.Goal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *PostgresRepository) UpdateGoal(ctx context.Context, goal *txdomain.Goal) error {
	return r.db.WithContext(ctx).
		Model(&txdomain.Goal{}).
		Where("id = ? AND owner_id = ?", goal.ID, goal.OwnerID).
		Updates(map[string]interface{}{
			"name":           goal.Name,
			"target_amount":  goal.TargetAmount,
			"current_amount": goal.CurrentAmount,
			"deadline":       goal.Deadline,
			"is_active":      goal.IsActive,
			"updated_at":     goal.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) DeleteGoal(ctx context.Context, ownerID, goalID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&txdomain.Goal{}, "owner_id = ? AND id = ?", ownerID, goalID)
	return result.RowsAffected > 0, result.Error
}

package transactions

import (
	"context"
	"time"
)

type Repository interface {
	ListTransactions(ctx context.Context, ownerID string, filter ListFilter) ([]Transaction, int64, error)
	GetTransactionByID(ctx context.Context, ownerID, transactionID string) (*Transaction, error)
	CreateTransaction(ctx context.Context, transaction *Transaction) error
	UpdateTransaction(ctx context.Context, transaction *Transaction) error
	DeleteTransaction(ctx context.Context, ownerID, transactionID string) (bool, error)

	ListCategories(ctx context.Context, ownerID string) ([]Category, error)
	GetCategoryByID(ctx context.Context, ownerID, categoryID string) (*Category, error)
	CreateCategory(ctx context.Context, category *Category) error
	UpdateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, ownerID, categoryID string) (bool, error)

	ListBudgets(ctx context.Context, ownerID string) ([]Budget, error)
	GetBudgetByID(ctx context.Context, ownerID, budgetID string) (*Budget, error)
	CreateBudget(ctx context.Context, budget *Budget) error
	UpdateBudget(ctx context.Context, budget *Budget) error
	DeleteBudget(ctx context.Context, ownerID, budgetID string) (bool, error)
	ListActiveBudgets(ctx context.Context, ownerID, categoryID string, date time.Time) ([]Budget, error)
	SumExpenses(ctx context.Context, ownerID, categoryID string, from, to time.Time) (float64, error)

	ListGoals(ctx context.Context, ownerID string) ([]Goal, error)
	GetGoalByID(ctx context.Context, ownerID, goalID string) (*Goal, error)
	CreateGoal(ctx context.Context, goal *Goal) error
	UpdateGoal(ctx context.Context, goal *Goal) error
	DeleteGoal(ctx context.Context, ownerID, goalID string) (bool, error)
}

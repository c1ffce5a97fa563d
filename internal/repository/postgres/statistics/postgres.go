package statistics

import (
	"context"
	"time"

	statsdomain "campus-finance-go/internal/domain/statistics"
	txdomain "campus-finance-go/internal/domain/transactions"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) SumAmount(ctx context.Context, ownerID string, kind txdomain.Kind, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&txdomain.Transaction{}).
		Where("owner_id = ? AND kind = ? AND date >= ? AND date <= ?", ownerID, kind, from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *PostgresRepository) CountTransactions(ctx context.Context, ownerID string, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&txdomain.Transaction{}).
		Where("owner_id = ? AND date >= ? AND date <= ?", ownerID, from, to).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CategoryTotals(ctx context.Context, ownerID string, kind txdomain.Kind, from, to time.Time) ([]statsdomain.CategoryTotal, error) {
	var rows []struct {
		Name  string  `gorm:"column:name"`
		Color string  `gorm:"column:color"`
		Total float64 `gorm:"column:total"`
		Count int64   `gorm:"column:count"`
		Avg   float64 `gorm:"column:avg"`
	}

	err := r.db.WithContext(ctx).
		Table("transactions").
		Select("categories.name as name, categories.color as color, SUM(transactions.amount) as total, COUNT(transactions.id) as count, AVG(transactions.amount) as avg").
		Joins("join categories on categories.id = transactions.category_id").
		Where("transactions.owner_id = ? AND transactions.kind = ? AND transactions.date >= ? AND transactions.date <= ?",
			ownerID, kind, from, to).
		Group("categories.name, categories.color").
		Order("total desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]statsdomain.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, statsdomain.CategoryTotal{
			Name:  row.Name,
			Color: row.Color,
			Total: row.Total,
			Count: row.Count,
			Avg:   row.Avg,
		})
	}
	return totals, nil
}

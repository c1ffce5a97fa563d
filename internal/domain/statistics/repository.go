package statistics

import (
	"context"
	"time"

	"campus-finance-go/internal/domain/transactions"
)

type Repository interface {
	SumAmount(ctx context.Context, ownerID string, kind transactions.Kind, from, to time.Time) (float64, error)
	CountTransactions(ctx context.Context, ownerID string, from, to time.Time) (int64, error)
	CategoryTotals(ctx context.Context, ownerID string, kind transactions.Kind, from, to time.Time) ([]CategoryTotal, error)
}

package fees

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	ListCategories(ctx context.Context) ([]FeeCategory, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*FeeCategory, error)
	CreateCategory(ctx context.Context, category *FeeCategory) error
	UpdateCategory(ctx context.Context, category *FeeCategory) error
	DeleteCategory(ctx context.Context, categoryID string) (bool, error)

	ListRecords(ctx context.Context, filter RecordListFilter) ([]FeeRecord, int64, error)
	GetRecordByID(ctx context.Context, recordID string) (*FeeRecord, error)
	CreateRecord(ctx context.Context, record *FeeRecord) error
	UpdateRecord(ctx context.Context, record *FeeRecord) error

	ListPayments(ctx context.Context, feeRecordID string) ([]Payment, error)
	CreatePayment(ctx context.Context, payment *Payment) error

	CountRecordsByStatus(ctx context.Context, status RecordStatus) (int64, error)
	CountRecords(ctx context.Context) (int64, error)
	SumRecordAmount(ctx context.Context, status RecordStatus) (float64, error)
	SumPaidAmount(ctx context.Context) (float64, error)
	SumTotalAmount(ctx context.Context) (float64, error)
}

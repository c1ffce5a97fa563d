package fees

import (
	"context"
	"errors"

	feesdomain "campus-finance-go/internal/domain/fees"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(feesdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]feesdomain.FeeCategory, error) {
	var categories []feesdomain.FeeCategory
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PostgresRepository) GetCategoryByID(ctx context.Context, categoryID string) (*feesdomain.FeeCategory, error) {
	var category feesdomain.FeeCategory
	if err := r.db.WithContext(ctx).
		Where("id = ?", categoryID).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, feesdomain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *feesdomain.FeeCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, category *feesdomain.FeeCategory) error {
	return r.db.WithContext(ctx).
		Model(&feesdomain.FeeCategory{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{
			"name":        category.Name,
			"description": category.Description,
			"amount":      category.Amount,
			"is_active":   category.IsActive,
			"updated_at":  category.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, categoryID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&feesdomain.FeeCategory{}).
		Where("id = ? AND is_active = ?", categoryID, true).
		Update("is_active", false)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) ListRecords(ctx context.Context, filter feesdomain.RecordListFilter) ([]feesdomain.FeeRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&feesdomain.FeeRecord{})
	if filter.StudentID != "" {
		query = query.Where("student_id = ?", filter.StudentID)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at desc")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var records []feesdomain.FeeRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *PostgresRepository) GetRecordByID(ctx context.Context, recordID string) (*feesdomain.FeeRecord, error) {
	var record feesdomain.FeeRecord
	if err := r.db.WithContext(ctx).
		Where("id = ?", recordID).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, feesdomain.ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) CreateRecord(ctx context.Context, record *feesdomain.FeeRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *PostgresRepository) UpdateRecord(ctx context.Context, record *feesdomain.FeeRecord) error {
	return r.db.WithContext(ctx).
		Model(&feesdomain.FeeRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]interface{}{
			"paid_amount": record.PaidAmount,
			"paid_date":   record.PaidDate,
			"status":      record.Status,
			"description": record.Description,
			"updated_at":  record.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) ListPayments(ctx context.Context, feeRecordID string) ([]feesdomain.Payment, error) {
	var payments []feesdomain.Payment
	if err := r.db.WithContext(ctx).
		Where("fee_record_id = ?", feeRecordID).
		Order("payment_date desc").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PostgresRepository) CreatePayment(ctx context.Context, payment *feesdomain.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *PostgresRepository) CountRecordsByStatus(ctx context.Context, status feesdomain.RecordStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&feesdomain.FeeRecord{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountRecords(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&feesdomain.FeeRecord{}).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) SumRecordAmount(ctx context.Context, status feesdomain.RecordStatus) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&feesdomain.FeeRecord{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *PostgresRepository) SumPaidAmount(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&feesdomain.FeeRecord{}).
		Where("status = ?", feesdomain.RecordStatusPaid).
		Select("COALESCE(SUM(paid_amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *PostgresRepository) SumTotalAmount(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&feesdomain.FeeRecord{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

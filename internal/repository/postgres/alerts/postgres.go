package alerts

import (
	"context"
	"errors"

	alertsdomain "campus-finance-go/internal/domain/alerts"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetOrCreate relies on the unique index over the dedup key. The insert uses
// ON CONFLICT DO NOTHING, so concurrent evaluations of the same threshold
// collapse into a single row at the store level.
func (r *PostgresRepository) GetOrCreate(ctx context.Context, alert *alertsdomain.Alert) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(alert)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	var existing alertsdomain.Alert
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND type = ? AND priority = ? AND title = ? AND message = ? AND related_id = ?",
			alert.OwnerID, alert.Type, alert.Priority, alert.Title, alert.Message, alert.RelatedID).
		First(&existing).Error
	if err != nil {
		return false, err
	}

	*alert = existing
	return false, nil
}

func (r *PostgresRepository) List(ctx context.Context, ownerID string, filter alertsdomain.ListFilter) ([]alertsdomain.Alert, error) {
	query := r.db.WithContext(ctx).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("created_at desc")
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var alerts []alertsdomain.Alert
	if err := query.Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, ownerID, alertID string) (*alertsdomain.Alert, error) {
	var alert alertsdomain.Alert
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, alertID).
		First(&alert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, alertsdomain.ErrAlertNotFound
		}
		return nil, err
	}
	return &alert, nil
}

func (r *PostgresRepository) MarkRead(ctx context.Context, ownerID, alertID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&alertsdomain.Alert{}).
		Where("owner_id = ? AND id = ?", ownerID, alertID).
		Update("is_read", true)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) MarkAllRead(ctx context.Context, ownerID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&alertsdomain.Alert{}).
		Where("owner_id = ? AND is_active = ? AND is_read = ?", ownerID, true, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (r *PostgresRepository) Deactivate(ctx context.Context, ownerID, alertID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&alertsdomain.Alert{}).
		Where("owner_id = ? AND id = ?", ownerID, alertID).
		Update("is_active", false)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountActive(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&alertsdomain.Alert{}).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountUnread(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&alertsdomain.Alert{}).
		Where("owner_id = ? AND is_active = ? AND is_read = ?", ownerID, true, false).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountByType(ctx context.Context, ownerID string) (map[alertsdomain.Type]int64, error) {
	var rows []struct {
		Type  alertsdomain.Type `gorm:"column:type"`
		Count int64             `gorm:"column:count"`
	}

	err := r.db.WithContext(ctx).
		Model(&alertsdomain.Alert{}).
		Select("type, COUNT(1) as count").
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Group("type").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[alertsdomain.Type]int64, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Count
	}
	return counts, nil
}

func (r *PostgresRepository) CountByPriority(ctx context.Context, ownerID string) (map[alertsdomain.Priority]int64, error) {
	var rows []struct {
		Priority alertsdomain.Priority `gorm:"column:priority"`
		Count    int64                 `gorm:"column:count"`
	}

	err := r.db.WithContext(ctx).
		Model(&alertsdomain.Alert{}).
		Select("priority, COUNT(1) as count").
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Group("priority").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[alertsdomain.Priority]int64, len(rows))
	for _, row := range rows {
		counts[row.Priority] = row.Count
	}
	return counts, nil
}

package exports

import (
	"context"
	"errors"

	exportsdomain "campus-finance-go/internal/domain/exports"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *exportsdomain.ExportTask) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, ownerID, taskID string) (*exportsdomain.ExportTask, error) {
	var task exportsdomain.ExportTask
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, taskID).
		First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exportsdomain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *PostgresRepository) List(ctx context.Context, ownerID string, limit int) ([]exportsdomain.ExportTask, error) {
	query := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var tasks []exportsdomain.ExportTask
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateStatus guards the transition with the expected current status in the
// WHERE clause, so a racing transition loses cleanly instead of overwriting.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, taskID string, from, to exportsdomain.Status, fields map[string]interface{}) (bool, error) {
	updates := map[string]interface{}{"status": to}
	for column, value := range fields {
		updates[column] = value
	}

	result := r.db.WithContext(ctx).
		Model(&exportsdomain.ExportTask{}).
		Where("id = ? AND status = ?", taskID, from).
		Updates(updates)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CountByStatus(ctx context.Context, ownerID string) (map[exportsdomain.Status]int64, error) {
	var rows []struct {
		Status exportsdomain.Status `gorm:"column:status"`
		Count  int64                `gorm:"column:count"`
	}

	err := r.db.WithContext(ctx).
		Model(&exportsdomain.ExportTask{}).
		Select("status, COUNT(1) as count").
		Where("owner_id = ?", ownerID).
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[exportsdomain.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *PostgresRepository) CountByFormat(ctx context.Context, ownerID string) (map[exportsdomain.Format]int64, error) {
	var rows []struct {
		Format exportsdomain.Format `gorm:"column:format"`
		Count  int64                `gorm:"column:count"`
	}

	err := r.db.WithContext(ctx).
		Model(&exportsdomain.ExportTask{}).
		Select("format, COUNT(1) as count").
		Where("owner_id = ?", ownerID).
		Group("format").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[exportsdomain.Format]int64, len(rows))
	for _, row := range rows {
		counts[row.Format] = row.Count
	}
	return counts, nil
}

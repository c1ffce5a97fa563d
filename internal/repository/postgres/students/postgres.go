package students

import (
	"context"
	"errors"

	studentsdomain "campus-finance-go/internal/domain/students"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, filter studentsdomain.ListFilter) ([]studentsdomain.Student, int64, error) {
	query := r.db.WithContext(ctx).Model(&studentsdomain.Student{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR student_number ILIKE ?", pattern, pattern)
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

	var students []studentsdomain.Student
	if err := query.Find(&students).Error; err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, studentID string) (*studentsdomain.Student, error) {
	var student studentsdomain.Student
	if err := r.db.WithContext(ctx).
		Where("id = ?", studentID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, studentsdomain.ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*studentsdomain.Student, error) {
	var student studentsdomain.Student
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, studentsdomain.ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (r *PostgresRepository) CountByStudentNumber(ctx context.Context, studentNumber, excludeID string) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&studentsdomain.Student{}).
		Where("student_number = ?", studentNumber)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *PostgresRepository) Create(ctx context.Context, student *studentsdomain.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *PostgresRepository) Update(ctx context.Context, student *studentsdomain.Student) error {
	return r.db.WithContext(ctx).
		Model(&studentsdomain.Student{}).
		Where("id = ?", student.ID).
		Updates(map[string]interface{}{
			"name":       student.Name,
			"phone":      student.Phone,
			"email":      student.Email,
			"address":    student.Address,
			"major":      student.Major,
			"grade":      student.Grade,
			"class_name": student.ClassName,
			"status":     student.Status,
			"updated_at": student.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, studentID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&studentsdomain.Student{}, "id = ?", studentID)
	return result.RowsAffected > 0, result.Error
}

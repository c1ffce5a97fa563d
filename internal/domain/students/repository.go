package students

import "context"

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Student, int64, error)
	GetByID(ctx context.Context, studentID string) (*Student, error)
	GetByUserID(ctx context.Context, userID string) (*Student, error)
	CountByStudentNumber(ctx context.Context, studentNumber, excludeID string) (int64, error)
	Create(ctx context.Context, student *Student) error
	Update(ctx context.Context, student *Student) error
	Delete(ctx context.Context, studentID string) (bool, error)
}

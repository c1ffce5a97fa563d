package students

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Student, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, studentID string) (*Student, error) {
	return s.repo.GetByID(ctx, studentID)
}

func (s *Service) GetByUser(ctx context.Context, userID string) (*Student, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Student, error) {
	studentNumber := strings.TrimSpace(input.StudentNumber)
	if studentNumber == "" {
		return nil, fmt.Errorf("%w: student_number is required", ErrValidation)
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !input.Gender.Valid() {
		return nil, fmt.Errorf("%w: unknown gender %q", ErrValidation, input.Gender)
	}

	taken, err := s.repo.CountByStudentNumber(ctx, studentNumber, "")
	if err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, ErrStudentNumberTaken
	}

	student := Student{
		ID:             uuid.NewString(),
		UserID:         input.UserID,
		StudentNumber:  studentNumber,
		Name:           name,
		Gender:         input.Gender,
		BirthDate:      input.BirthDate,
		Phone:          strings.TrimSpace(input.Phone),
		Email:          strings.TrimSpace(input.Email),
		Address:        strings.TrimSpace(input.Address),
		Major:          strings.TrimSpace(input.Major),
		Grade:          strings.TrimSpace(input.Grade),
		ClassName:      strings.TrimSpace(input.ClassName),
		EnrollmentDate: input.EnrollmentDate,
		Status:         "active",
	}

	if err := s.repo.Create(ctx, &student); err != nil {
		return nil, err
	}

	return &student, nil
}

func (s *Service) Update(ctx context.Context, input UpdateInput) (*Student, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	student, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	student.Name = name
	student.Phone = strings.TrimSpace(input.Phone)
	student.Email = strings.TrimSpace(input.Email)
	student.Address = strings.TrimSpace(input.Address)
	student.Major = strings.TrimSpace(input.Major)
	student.Grade = strings.TrimSpace(input.Grade)
	student.ClassName = strings.TrimSpace(input.ClassName)
	if status := strings.TrimSpace(input.Status); status != "" {
		student.Status = status
	}
	student.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

func (s *Service) Delete(ctx context.Context, studentID string) error {
	deleted, err := s.repo.Delete(ctx, studentID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrStudentNotFound
	}
	return nil
}

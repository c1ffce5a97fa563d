package students

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
)

const userID1 = "11111111-1111-1111-1111-111111111111"

type fakeStudentsRepo struct {
	students map[string]*Student
}

func newFakeStudentsRepo() *fakeStudentsRepo {
	return &fakeStudentsRepo{students: make(map[string]*Student)}
}

func (r *fakeStudentsRepo) List(ctx context.Context, filter ListFilter) ([]Student, int64, error) {
	var items []Student
	for _, student := range r.students {
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(student.Name), search) &&
				!strings.Contains(strings.ToLower(student.StudentNumber), search) {
				continue
			}
		}
		items = append(items, *student)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, int64(len(items)), nil
}

func (r *fakeStudentsRepo) GetByID(ctx context.Context, studentID string) (*Student, error) {
	student, ok := r.students[studentID]
	if !ok {
		return nil, ErrStudentNotFound
	}
	return student, nil
}

func (r *fakeStudentsRepo) GetByUserID(ctx context.Context, userID string) (*Student, error) {
	for _, student := range r.students {
		if student.UserID == userID {
			return student, nil
		}
	}
	return nil, ErrStudentNotFound
}

func (r *fakeStudentsRepo) CountByStudentNumber(ctx context.Context, studentNumber, excludeID string) (int64, error) {
	var count int64
	for _, student := range r.students {
		if excludeID != "" && student.ID == excludeID {
			continue
		}
		if student.StudentNumber == studentNumber {
			count++
		}
	}
	return count, nil
}

func (r *fakeStudentsRepo) Create(ctx context.Context, student *Student) error {
	r.students[student.ID] = student
	return nil
}

func (r *fakeStudentsRepo) Update(ctx context.Context, student *Student) error {
	if _, ok := r.students[student.ID]; !ok {
		return ErrStudentNotFound
	}
	r.students[student.ID] = student
	return nil
}

func (r *fakeStudentsRepo) Delete(ctx context.Context, studentID string) (bool, error) {
	if _, ok := r.students[studentID]; !ok {
		return false, nil
	}
	delete(r.students, studentID)
	return true, nil
}

func TestCreateStudentSuccess(t *testing.T) {
	repo := newFakeStudentsRepo()
	svc := NewService(repo)

	student, err := svc.Create(context.Background(), CreateInput{
		UserID:        userID1,
		StudentNumber: " S2026001 ",
		Name:          " Alice ",
		Gender:        GenderFemale,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if student.StudentNumber != "S2026001" || student.Name != "Alice" {
		t.Fatalf("expected trimmed fields, got %q/%q", student.StudentNumber, student.Name)
	}
	if student.Status != "active" {
		t.Fatalf("expected active status, got %q", student.Status)
	}
}

func TestCreateStudentDuplicateNumber(t *testing.T) {
	repo := newFakeStudentsRepo()
	repo.students["stu-1"] = &Student{ID: "stu-1", UserID: "other", StudentNumber: "S2026001"}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{
		UserID:        userID1,
		StudentNumber: "S2026001",
		Name:          "Alice",
		Gender:        GenderFemale,
	})
	if !errors.Is(err, ErrStudentNumberTaken) {
		t.Fatalf("expected ErrStudentNumberTaken, got %v", err)
	}
}

func TestCreateStudentInvalidGender(t *testing.T) {
	svc := NewService(newFakeStudentsRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		UserID:        userID1,
		StudentNumber: "S2026001",
		Name:          "Alice",
		Gender:        "X",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUpdateStudentNotFound(t *testing.T) {
	svc := NewService(newFakeStudentsRepo())

	_, err := svc.Update(context.Background(), UpdateInput{ID: "missing", Name: "Alice"})
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestDeleteStudentNotFound(t *testing.T) {
	svc := NewService(newFakeStudentsRepo())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

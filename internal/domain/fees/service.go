package fees

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

func (s *Service) ListCategories(ctx context.Context) ([]FeeCategory, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*FeeCategory, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	category := FeeCategory{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		IsActive:    true,
	}

	if err := s.repo.CreateCategory(ctx, &category); err != nil {
		return nil, err
	}

	return &category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, categoryID string) error {
	deleted, err := s.repo.DeleteCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *Service) ListRecords(ctx context.Context, filter RecordListFilter) ([]FeeRecord, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown status %q", ErrValidation, filter.Status)
	}
	return s.repo.ListRecords(ctx, filter)
}

func (s *Service) GetRecord(ctx context.Context, recordID string) (*FeeRecord, error) {
	return s.repo.GetRecordByID(ctx, recordID)
}

func (s *Service) CreateRecord(ctx context.Context, input CreateRecordInput) (*FeeRecord, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	if _, err := s.repo.GetCategoryByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	record := FeeRecord{
		ID:          uuid.NewString(),
		StudentID:   input.StudentID,
		CategoryID:  input.CategoryID,
		Amount:      input.Amount,
		DueDate:     input.DueDate,
		Status:      RecordStatusPending,
		Description: strings.TrimSpace(input.Description),
		CreatedBy:   input.CreatedBy,
	}

	if err := s.repo.CreateRecord(ctx, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// RecordPayment stores a payment and rolls it up into the fee record: the
// paid amount accumulates and the record flips to paid once fully covered.
func (s *Service) RecordPayment(ctx context.Context, input RecordPaymentInput) (*Payment, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !input.Method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, input.Method)
	}

	payment := Payment{
		ID:            uuid.NewString(),
		FeeRecordID:   input.FeeRecordID,
		Amount:        input.Amount,
		Method:        input.Method,
		TransactionID: strings.TrimSpace(input.TransactionID),
		Notes:         strings.TrimSpace(input.Notes),
		ProcessedBy:   input.ProcessedBy,
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		record, err := tx.GetRecordByID(ctx, input.FeeRecordID)
		if err != nil {
			return err
		}
		if record.Status == RecordStatusCancelled || record.Status == RecordStatusPaid {
			return fmt.Errorf("%w: record status is %q", ErrRecordClosed, record.Status)
		}

		if err := tx.CreatePayment(ctx, &payment); err != nil {
			return err
		}

		record.PaidAmount += input.Amount
		if record.PaidAmount >= record.Amount {
			record.Status = RecordStatusPaid
			paidDate := s.now().UTC()
			record.PaidDate = &paidDate
		}
		record.UpdatedAt = s.now().UTC()

		return tx.UpdateRecord(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func (s *Service) ListPayments(ctx context.Context, feeRecordID string) ([]Payment, error) {
	return s.repo.ListPayments(ctx, feeRecordID)
}

func (s *Service) Statistics(ctx context.Context) (Statistics, error) {
	total, err := s.repo.CountRecords(ctx)
	if err != nil {
		return Statistics{}, err
	}

	pending, err := s.repo.CountRecordsByStatus(ctx, RecordStatusPending)
	if err != nil {
		return Statistics{}, err
	}

	paid, err := s.repo.CountRecordsByStatus(ctx, RecordStatusPaid)
	if err != nil {
		return Statistics{}, err
	}

	totalAmount, err := s.repo.SumTotalAmount(ctx)
	if err != nil {
		return Statistics{}, err
	}

	paidAmount, err := s.repo.SumPaidAmount(ctx)
	if err != nil {
		return Statistics{}, err
	}

	pendingAmount, err := s.repo.SumRecordAmount(ctx, RecordStatusPending)
	if err != nil {
		return Statistics{}, err
	}

	collectionRate := 0.0
	if totalAmount > 0 {
		collectionRate = paidAmount / totalAmount * 100
	}

	return Statistics{
		TotalRecords:   total,
		PendingRecords: pending,
		PaidRecords:    paid,
		TotalAmount:    totalAmount,
		PaidAmount:     paidAmount,
		PendingAmount:  pendingAmount,
		CollectionRate: collectionRate,
	}, nil
}

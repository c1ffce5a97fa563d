package fees

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

const (
	studentID1     = "11111111-1111-1111-1111-111111111111"
	feeCategoryID1 = "22222222-2222-2222-2222-222222222222"
	processorID1   = "33333333-3333-3333-3333-333333333333"
)

type fakeFeesRepo struct {
	categories map[string]*FeeCategory
	records    map[string]*FeeRecord
	payments   map[string]*Payment
}

func newFakeFeesRepo() *fakeFeesRepo {
	return &fakeFeesRepo{
		categories: make(map[string]*FeeCategory),
		records:    make(map[string]*FeeRecord),
		payments:   make(map[string]*Payment),
	}
}

func (r *fakeFeesRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeFeesRepo) ListCategories(ctx context.Context) ([]FeeCategory, error) {
	var items []FeeCategory
	for _, category := range r.categories {
		if category.IsActive {
			items = append(items, *category)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *fakeFeesRepo) GetCategoryByID(ctx context.Context, categoryID string) (*FeeCategory, error) {
	category, ok := r.categories[categoryID]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeFeesRepo) CreateCategory(ctx context.Context, category *FeeCategory) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeFeesRepo) UpdateCategory(ctx context.Context, category *FeeCategory) error {
	if _, ok := r.categories[category.ID]; !ok {
		return ErrCategoryNotFound
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeFeesRepo) DeleteCategory(ctx context.Context, categoryID string) (bool, error) {
	category, ok := r.categories[categoryID]
	if !ok || !category.IsActive {
		return false, nil
	}
	category.IsActive = false
	return true, nil
}

func (r *fakeFeesRepo) ListRecords(ctx context.Context, filter RecordListFilter) ([]FeeRecord, int64, error) {
	var items []FeeRecord
	for _, record := range r.records {
		if filter.StudentID != "" && record.StudentID != filter.StudentID {
			continue
		}
		if filter.CategoryID != "" && record.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Status != "" && record.Status != filter.Status {
			continue
		}
		items = append(items, *record)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, int64(len(items)), nil
}

func (r *fakeFeesRepo) GetRecordByID(ctx context.Context, recordID string) (*FeeRecord, error) {
	record, ok := r.records[recordID]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return record, nil
}

func (r *fakeFeesRepo) CreateRecord(ctx context.Context, record *FeeRecord) error {
	r.records[record.ID] = record
	return nil
}

func (r *fakeFeesRepo) UpdateRecord(ctx context.Context, record *FeeRecord) error {
	if _, ok := r.records[record.ID]; !ok {
		return ErrRecordNotFound
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeFeesRepo) ListPayments(ctx context.Context, feeRecordID string) ([]Payment, error) {
	var items []Payment
	for _, payment := range r.payments {
		if payment.FeeRecordID == feeRecordID {
			items = append(items, *payment)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *fakeFeesRepo) CreatePayment(ctx context.Context, payment *Payment) error {
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakeFeesRepo) CountRecordsByStatus(ctx context.Context, status RecordStatus) (int64, error) {
	var count int64
	for _, record := range r.records {
		if record.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeFeesRepo) CountRecords(ctx context.Context) (int64, error) {
	return int64(len(r.records)), nil
}

func (r *fakeFeesRepo) SumRecordAmount(ctx context.Context, status RecordStatus) (float64, error) {
	var total float64
	for _, record := range r.records {
		if record.Status == status {
			total += record.Amount
		}
	}
	return total, nil
}

func (r *fakeFeesRepo) SumPaidAmount(ctx context.Context) (float64, error) {
	var total float64
	for _, record := range r.records {
		if record.Status == RecordStatusPaid {
			total += record.PaidAmount
		}
	}
	return total, nil
}

func (r *fakeFeesRepo) SumTotalAmount(ctx context.Context) (float64, error) {
	var total float64
	for _, record := range r.records {
		total += record.Amount
	}
	return total, nil
}

func newFeesService(repo Repository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC) }
	return svc
}

func seedRecord(repo *fakeFeesRepo, id string, amount, paid float64, status RecordStatus) *FeeRecord {
	record := &FeeRecord{
		ID:         id,
		StudentID:  studentID1,
		CategoryID: feeCategoryID1,
		Amount:     amount,
		PaidAmount: paid,
		DueDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:     status,
	}
	repo.records[id] = record
	return record
}

func TestRecordPaymentPartialKeepsPending(t *testing.T) {
	repo := newFakeFeesRepo()
	seedRecord(repo, "rec-1", 1000, 0, RecordStatusPending)
	svc := newFeesService(repo)

	payment, err := svc.RecordPayment(context.Background(), RecordPaymentInput{
		FeeRecordID: "rec-1",
		Amount:      400,
		Method:      PaymentMethodCash,
		ProcessedBy: processorID1,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.payments[payment.ID] == nil {
		t.Fatalf("payment not stored")
	}

	record := repo.records["rec-1"]
	if record.PaidAmount != 400 {
		t.Fatalf("expected paid amount 400, got %v", record.PaidAmount)
	}
	if record.Status != RecordStatusPending {
		t.Fatalf("expected record still pending, got %q", record.Status)
	}
	if record.PaidDate != nil {
		t.Fatalf("paid date must not be set on partial payment")
	}
}

func TestRecordPaymentFullFlipsToPaid(t *testing.T) {
	repo := newFakeFeesRepo()
	seedRecord(repo, "rec-1", 1000, 600, RecordStatusPending)
	svc := newFeesService(repo)

	_, err := svc.RecordPayment(context.Background(), RecordPaymentInput{
		FeeRecordID: "rec-1",
		Amount:      400,
		Method:      PaymentMethodAlipay,
		ProcessedBy: processorID1,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	record := repo.records["rec-1"]
	if record.Status != RecordStatusPaid {
		t.Fatalf("expected record paid, got %q", record.Status)
	}
	if record.PaidAmount != 1000 {
		t.Fatalf("expected paid amount 1000, got %v", record.PaidAmount)
	}
	if record.PaidDate == nil {
		t.Fatalf("expected paid date to be set")
	}
}

func TestRecordPaymentOnClosedRecord(t *testing.T) {
	repo := newFakeFeesRepo()
	seedRecord(repo, "rec-paid", 100, 100, RecordStatusPaid)
	seedRecord(repo, "rec-cancelled", 100, 0, RecordStatusCancelled)
	svc := newFeesService(repo)

	for _, id := range []string{"rec-paid", "rec-cancelled"} {
		_, err := svc.RecordPayment(context.Background(), RecordPaymentInput{
			FeeRecordID: id,
			Amount:      50,
			Method:      PaymentMethodCash,
		})
		if !errors.Is(err, ErrRecordClosed) {
			t.Fatalf("expected ErrRecordClosed for %s, got %v", id, err)
		}
	}
	if len(repo.payments) != 0 {
		t.Fatalf("no payments should be stored against closed records")
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	svc := newFeesService(newFakeFeesRepo())

	_, err := svc.RecordPayment(context.Background(), RecordPaymentInput{
		FeeRecordID: "rec-1", Amount: 0, Method: PaymentMethodCash,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for zero amount, got %v", err)
	}

	_, err = svc.RecordPayment(context.Background(), RecordPaymentInput{
		FeeRecordID: "rec-1", Amount: 10, Method: "cheque",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown method, got %v", err)
	}
}

func TestCreateRecordUnknownCategory(t *testing.T) {
	svc := newFeesService(newFakeFeesRepo())

	_, err := svc.CreateRecord(context.Background(), CreateRecordInput{
		StudentID:  studentID1,
		CategoryID: feeCategoryID1,
		Amount:     500,
		DueDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestStatisticsCollectionRate(t *testing.T) {
	repo := newFakeFeesRepo()
	seedRecord(repo, "rec-1", 600, 600, RecordStatusPaid)
	seedRecord(repo, "rec-2", 400, 0, RecordStatusPending)
	svc := newFeesService(repo)

	stats, err := svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.TotalRecords != 2 || stats.PaidRecords != 1 || stats.PendingRecords != 1 {
		t.Fatalf("unexpected counts %+v", stats)
	}
	if stats.TotalAmount != 1000 || stats.PaidAmount != 600 || stats.PendingAmount != 400 {
		t.Fatalf("unexpected amounts %+v", stats)
	}
	if stats.CollectionRate != 60 {
		t.Fatalf("expected collection rate 60, got %v", stats.CollectionRate)
	}
}

func TestStatisticsEmpty(t *testing.T) {
	svc := newFeesService(newFakeFeesRepo())

	stats, err := svc.Statistics(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.CollectionRate != 0 {
		t.Fatalf("expected zero collection rate, got %v", stats.CollectionRate)
	}
}

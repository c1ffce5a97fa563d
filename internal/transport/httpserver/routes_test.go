package httpserver

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campus-finance-go/internal/config"
	feesdomain "campus-finance-go/internal/domain/fees"
	statsdomain "campus-finance-go/internal/domain/statistics"
	"campus-finance-go/internal/domain/transactions"
	"campus-finance-go/internal/transport/httpserver/handler"
	"campus-finance-go/pkg/logger"
)

const (
	routeFeeRecordID = "44444444-4444-4444-4444-444444444444"
	routeCategoryID  = "55555555-5555-5555-5555-555555555555"
)

type stubStatsRepo struct{}

func (stubStatsRepo) SumAmount(ctx context.Context, ownerID string, kind transactions.Kind, from, to time.Time) (float64, error) {
	return 0, nil
}

func (stubStatsRepo) CountTransactions(ctx context.Context, ownerID string, from, to time.Time) (int64, error) {
	return 0, nil
}

func (stubStatsRepo) CategoryTotals(ctx context.Context, ownerID string, kind transactions.Kind, from, to time.Time) ([]statsdomain.CategoryTotal, error) {
	return []statsdomain.CategoryTotal{{Name: "Scholarship", Total: 500, Count: 1, Avg: 500}}, nil
}

type stubFeesRepo struct {
	records  map[string]*feesdomain.FeeRecord
	payments []feesdomain.Payment
}

func newStubFeesRepo() *stubFeesRepo {
	return &stubFeesRepo{records: make(map[string]*feesdomain.FeeRecord)}
}

func (r *stubFeesRepo) Transaction(ctx context.Context, fn func(feesdomain.Repository) error) error {
	return fn(r)
}

func (r *stubFeesRepo) ListCategories(ctx context.Context) ([]feesdomain.FeeCategory, error) {
	return nil, nil
}

func (r *stubFeesRepo) GetCategoryByID(ctx context.Context, categoryID string) (*feesdomain.FeeCategory, error) {
	return nil, feesdomain.ErrCategoryNotFound
}

func (r *stubFeesRepo) CreateCategory(ctx context.Context, category *feesdomain.FeeCategory) error {
	return nil
}

func (r *stubFeesRepo) UpdateCategory(ctx context.Context, category *feesdomain.FeeCategory) error {
	return nil
}

func (r *stubFeesRepo) DeleteCategory(ctx context.Context, categoryID string) (bool, error) {
	return false, nil
}

func (r *stubFeesRepo) ListRecords(ctx context.Context, filter feesdomain.RecordListFilter) ([]feesdomain.FeeRecord, int64, error) {
	return nil, 0, nil
}

func (r *stubFeesRepo) GetRecordByID(ctx context.Context, recordID string) (*feesdomain.FeeRecord, error) {
	record, ok := r.records[recordID]
	if !ok {
		return nil, feesdomain.ErrRecordNotFound
	}
	return record, nil
}

func (r *stubFeesRepo) CreateRecord(ctx context.Context, record *feesdomain.FeeRecord) error {
	r.records[record.ID] = record
	return nil
}

func (r *stubFeesRepo) UpdateRecord(ctx context.Context, record *feesdomain.FeeRecord) error {
	r.records[record.ID] = record
	return nil
}

func (r *stubFeesRepo) ListPayments(ctx context.Context, feeRecordID string) ([]feesdomain.Payment, error) {
	var result []feesdomain.Payment
	for _, payment := range r.payments {
		if payment.FeeRecordID == feeRecordID {
			result = append(result, payment)
		}
	}
	return result, nil
}

func (r *stubFeesRepo) CreatePayment(ctx context.Context, payment *feesdomain.Payment) error {
	r.payments = append(r.payments, *payment)
	return nil
}

func (r *stubFeesRepo) CountRecordsByStatus(ctx context.Context, status feesdomain.RecordStatus) (int64, error) {
	return 0, nil
}

func (r *stubFeesRepo) CountRecords(ctx context.Context) (int64, error) {
	return int64(len(r.records)), nil
}

func (r *stubFeesRepo) SumRecordAmount(ctx context.Context, status feesdomain.RecordStatus) (float64, error) {
	return 0, nil
}

func (r *stubFeesRepo) SumPaidAmount(ctx context.Context) (float64, error) {
	return 0, nil
}

func (r *stubFeesRepo) SumTotalAmount(ctx context.Context) (float64, error) {
	return 0, nil
}

func newTestRouter(feesRepo feesdomain.Repository) http.Handler {
	log := logger.New(io.Discard, slog.LevelError, "text")
	cfg := config.Config{
		Auth: config.AuthConfig{
			SkipAuth:   true,
			MockUserID: "00000000-0000-0000-0000-000000000001",
		},
	}

	handlers := handler.New(
		nil,
		nil,
		nil,
		statsdomain.NewService(stubStatsRepo{}),
		nil,
		feesdomain.NewService(feesRepo),
		log,
	)

	return NewRouter(cfg, handlers, log)
}

func TestCategoryBreakdownAcceptsTypeParam(t *testing.T) {
	router := newTestRouter(newStubFeesRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/statistics/categories?year=2026&month=6&type=income", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"type":"income"`) {
		t.Fatalf("expected income breakdown, got %s", rec.Body.String())
	}
}

func TestFeePaymentRoutes(t *testing.T) {
	repo := newStubFeesRepo()
	repo.records[routeFeeRecordID] = &feesdomain.FeeRecord{
		ID:         routeFeeRecordID,
		StudentID:  "66666666-6666-6666-6666-666666666666",
		CategoryID: routeCategoryID,
		Amount:     500,
		Status:     feesdomain.RecordStatusPending,
	}
	router := newTestRouter(repo)

	body := `{"fee_record_id":"` + routeFeeRecordID + `","amount":200,"method":"cash"}`
	req := httptest.NewRequest(http.MethodPost, "/api/fees/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/fees/payments?fee_record_id="+routeFeeRecordID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), routeFeeRecordID) {
		t.Fatalf("expected payment for record in body, got %s", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/fees/records/statistics", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from records statistics, got %d: %s", rec.Code, rec.Body.String())
	}
}

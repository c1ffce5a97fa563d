package exports

import (
	"context"
	"fmt"
	"time"

	"campus-finance-go/pkg/logger"
	"github.com/google/uuid"
)

const recentTasksLimit = 10

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*ExportTask, error) {
	if !input.ExportType.Valid() {
		return nil, fmt.Errorf("%w: unknown export type %q", ErrValidation, input.ExportType)
	}
	if !input.Format.Valid() {
		return nil, fmt.Errorf("%w: unknown format %q", ErrValidation, input.Format)
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, fmt.Errorf("%w: start_date must be before or equal to end_date", ErrValidation)
	}

	filters := input.Filters
	if filters == nil {
		filters = map[string]any{}
	}

	task := ExportTask{
		ID:         uuid.NewString(),
		OwnerID:    input.OwnerID,
		ExportType: input.ExportType,
		Status:     StatusPending,
		Format:     input.Format,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Filters:    filters,
	}

	if err := s.repo.Create(ctx, &task); err != nil {
		return nil, err
	}

	s.log.Info("exports: task created", "task_id", task.ID, "export_type", task.ExportType, "format", task.Format)
	return &task, nil
}

func (s *Service) Get(ctx context.Context, ownerID, taskID string) (*ExportTask, error) {
	return s.repo.GetByID(ctx, ownerID, taskID)
}

func (s *Service) List(ctx context.Context, ownerID string, limit int) ([]ExportTask, error) {
	return s.repo.List(ctx, ownerID, limit)
}

// Retry moves a failed task back to pending. Only the failed state may be
// retried, and the transition is CAS-guarded so a racing worker completion
// cannot be lost. Previous file metadata is kept for audit.
func (s *Service) Retry(ctx context.Context, ownerID, taskID string) (*ExportTask, error) {
	task, err := s.repo.GetByID(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status != StatusFailed {
		return nil, fmt.Errorf("%w: cannot retry task in status %q", ErrIllegalTransition, task.Status)
	}

	ok, err := s.repo.UpdateStatus(ctx, task.ID, StatusFailed, StatusPending, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: task is no longer failed", ErrIllegalTransition)
	}

	task.Status = StatusPending
	return task, nil
}

func (s *Service) Download(ctx context.Context, ownerID, taskID string) (DownloadInfo, error) {
	task, err := s.repo.GetByID(ctx, ownerID, taskID)
	if err != nil {
		return DownloadInfo{}, err
	}

	if task.Status != StatusCompleted {
		return DownloadInfo{}, fmt.Errorf("%w: task status is %q", ErrTaskNotCompleted, task.Status)
	}
	if task.FileURL == "" {
		return DownloadInfo{}, ErrFileMissing
	}
	if task.ExpiresAt != nil && task.ExpiresAt.Before(s.now()) {
		return DownloadInfo{}, ErrLinkExpired
	}

	return DownloadInfo{
		FileName: task.FileName,
		FileURL:  task.FileURL,
		FileSize: task.FileSize,
	}, nil
}

// Start, Complete and Fail are the worker-facing transitions. Each is CAS on
// the expected current status.

func (s *Service) Start(ctx context.Context, taskID string) error {
	ok, err := s.repo.UpdateStatus(ctx, taskID, StatusPending, StatusProcessing, nil)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: task is not pending", ErrIllegalTransition)
	}
	return nil
}

func (s *Service) Complete(ctx context.Context, taskID string, result CompleteInput) error {
	completedAt := s.now().UTC()
	fields := map[string]interface{}{
		"file_name":    result.FileName,
		"file_url":     result.FileURL,
		"file_size":    result.FileSize,
		"completed_at": completedAt,
		"expires_at":   result.ExpiresAt,
	}

	ok, err := s.repo.UpdateStatus(ctx, taskID, StatusProcessing, StatusCompleted, fields)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: task is not processing", ErrIllegalTransition)
	}
	return nil
}

func (s *Service) Fail(ctx context.Context, taskID string) error {
	ok, err := s.repo.UpdateStatus(ctx, taskID, StatusProcessing, StatusFailed, nil)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: task is not processing", ErrIllegalTransition)
	}
	return nil
}

func (s *Service) Statistics(ctx context.Context, ownerID string) (Statistics, error) {
	byStatus, err := s.repo.CountByStatus(ctx, ownerID)
	if err != nil {
		return Statistics{}, err
	}

	byFormat, err := s.repo.CountByFormat(ctx, ownerID)
	if err != nil {
		return Statistics{}, err
	}

	recent, err := s.repo.List(ctx, ownerID, recentTasksLimit)
	if err != nil {
		return Statistics{}, err
	}

	statusStats := make(map[Status]int64, len(AllStatuses))
	var total int64
	for _, status := range AllStatuses {
		statusStats[status] = byStatus[status]
		total += byStatus[status]
	}

	formatStats := make(map[Format]int64, len(AllFormats))
	for _, format := range AllFormats {
		formatStats[format] = byFormat[format]
	}

	return Statistics{
		TotalCount:  total,
		StatusStats: statusStats,
		FormatStats: formatStats,
		RecentTasks: recent,
	}, nil
}

func (s *Service) Options() Options {
	return Options{
		ExportTypes: []Option{
			{Value: string(ExportTypeTransactions), Name: "Transactions"},
			{Value: string(ExportTypeBudgets), Name: "Budgets"},
			{Value: string(ExportTypeGoals), Name: "Goals"},
			{Value: string(ExportTypeAlerts), Name: "Alerts"},
			{Value: string(ExportTypeSavings), Name: "Savings"},
		},
		FormatOptions: []Option{
			{Value: string(FormatCSV), Name: "CSV file"},
			{Value: string(FormatExcel), Name: "Excel file"},
			{Value: string(FormatPDF), Name: "PDF file"},
		},
		DateRangeOptions: []Option{
			{Value: "7d", Name: "Last 7 days"},
			{Value: "30d", Name: "Last 30 days"},
			{Value: "90d", Name: "Last 90 days"},
			{Value: "1y", Name: "Last year"},
			{Value: "all", Name: "All time"},
		},
	}
}

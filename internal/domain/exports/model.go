package exports

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

var AllStatuses = []Status{StatusPending, StatusProcessing, StatusCompleted, StatusFailed}

type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

var AllFormats = []Format{FormatCSV, FormatExcel, FormatPDF}

func (f Format) Valid() bool {
	for _, format := range AllFormats {
		if f == format {
			return true
		}
	}
	return false
}

type ExportType string

const (
	ExportTypeTransactions ExportType = "transactions"
	ExportTypeBudgets      ExportType = "budgets"
	ExportTypeGoals        ExportType = "goals"
	ExportTypeAlerts       ExportType = "alerts"
	ExportTypeSavings      ExportType = "savings"
)

var AllExportTypes = []ExportType{
	ExportTypeTransactions,
	ExportTypeBudgets,
	ExportTypeGoals,
	ExportTypeAlerts,
	ExportTypeSavings,
}

func (t ExportType) Valid() bool {
	for _, exportType := range AllExportTypes {
		if t == exportType {
			return true
		}
	}
	return false
}

// ExportTask carries the parameters of one export request through the
// pending -> processing -> completed/failed lifecycle. File fields are set
// only on completion; the file-producing worker lives outside this module.
type ExportTask struct {
	ID         string         `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID    string         `gorm:"type:uuid;index;not null" json:"owner_id"`
	ExportType ExportType     `gorm:"size:20;not null" json:"export_type"`
	Status     Status         `gorm:"size:15;not null;default:pending" json:"status"`
	Format     Format         `gorm:"size:10;not null" json:"format"`
	StartDate  *time.Time     `gorm:"type:date" json:"start_date"`
	EndDate    *time.Time     `gorm:"type:date" json:"end_date"`
	Filters    map[string]any `gorm:"serializer:json" json:"filters"`
	FileName   string         `gorm:"size:255" json:"file_name"`
	FileURL    string         `json:"file_url"`
	FileSize   int64          `json:"file_size"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	CompletedAt *time.Time    `json:"completed_at"`
	ExpiresAt   *time.Time    `json:"expires_at"`
}

type CreateInput struct {
	OwnerID    string
	ExportType ExportType
	Format     Format
	StartDate  *time.Time
	EndDate    *time.Time
	Filters    map[string]any
}

type CompleteInput struct {
	FileName  string
	FileURL   string
	FileSize  int64
	ExpiresAt *time.Time
}

type DownloadInfo struct {
	FileName string `json:"file_name"`
	FileURL  string `json:"file_url"`
	FileSize int64  `json:"file_size"`
}

type Statistics struct {
	TotalCount  int64             `json:"total_count"`
	StatusStats map[Status]int64  `json:"status_stats"`
	FormatStats map[Format]int64  `json:"format_stats"`
	RecentTasks []ExportTask      `json:"recent_tasks"`
}

type Option struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

type Options struct {
	ExportTypes      []Option `json:"export_types"`
	FormatOptions    []Option `json:"format_options"`
	DateRangeOptions []Option `json:"date_range_options"`
}

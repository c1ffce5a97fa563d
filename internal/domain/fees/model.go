package fees

import "time"

type RecordStatus string

const (
	RecordStatusPending   RecordStatus = "pending"
	RecordStatusPaid      RecordStatus = "paid"
	RecordStatusOverdue   RecordStatus = "overdue"
	RecordStatusCancelled RecordStatus = "cancelled"
)

func (s RecordStatus) Valid() bool {
	switch s {
	case RecordStatusPending, RecordStatusPaid, RecordStatusOverdue, RecordStatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodAlipay       PaymentMethod = "alipay"
	PaymentMethodWechat       PaymentMethod = "wechat"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodAlipay, PaymentMethodWechat, PaymentMethodBankTransfer:
		return true
	}
	return false
}

type FeeCategory struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `json:"description"`
	Amount      float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type FeeRecord struct {
	ID          string       `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID   string       `gorm:"type:uuid;index;not null" json:"student_id"`
	CategoryID  string       `gorm:"type:uuid;index;not null" json:"category_id"`
	Amount      float64      `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaidAmount  float64      `gorm:"type:numeric(12,2);not null;default:0" json:"paid_amount"`
	DueDate     time.Time    `gorm:"type:date;not null" json:"due_date"`
	PaidDate    *time.Time   `json:"paid_date"`
	Status      RecordStatus `gorm:"size:20;not null;default:pending" json:"status"`
	Description string       `json:"description"`
	CreatedBy   string       `gorm:"type:uuid" json:"created_by"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

type Payment struct {
	ID            string        `gorm:"type:uuid;primaryKey" json:"id"`
	FeeRecordID   string        `gorm:"type:uuid;index;not null" json:"fee_record_id"`
	Amount        float64       `gorm:"type:numeric(12,2);not null" json:"amount"`
	Method        PaymentMethod `gorm:"size:20;not null" json:"method"`
	PaymentDate   time.Time     `gorm:"autoCreateTime" json:"payment_date"`
	TransactionID string        `gorm:"size:100" json:"transaction_id"`
	Notes         string        `json:"notes"`
	ProcessedBy   string        `gorm:"type:uuid" json:"processed_by"`
}

type CreateCategoryInput struct {
	Name        string
	Description string
	Amount      float64
}

type CreateRecordInput struct {
	StudentID   string
	CategoryID  string
	Amount      float64
	DueDate     time.Time
	Description string
	CreatedBy   string
}

type RecordPaymentInput struct {
	FeeRecordID   string
	Amount        float64
	Method        PaymentMethod
	TransactionID string
	Notes         string
	ProcessedBy   string
}

type RecordListFilter struct {
	StudentID  string
	CategoryID string
	Status     RecordStatus
	Limit      int
	Offset     int
}

type Statistics struct {
	TotalRecords   int64   `json:"total_records"`
	PendingRecords int64   `json:"pending_records"`
	PaidRecords    int64   `json:"paid_records"`
	TotalAmount    float64 `json:"total_amount"`
	PaidAmount     float64 `json:"paid_amount"`
	PendingAmount  float64 `json:"pending_amount"`
	CollectionRate float64 `json:"collection_rate"`
}

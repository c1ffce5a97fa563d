package alerts

import "time"

type Type string

const (
	TypeBudget  Type = "budget"
	TypeGoal    Type = "goal"
	TypeSaving  Type = "saving"
	TypeExpense Type = "expense"
	TypeIncome  Type = "income"
)

var AllTypes = []Type{TypeBudget, TypeGoal, TypeSaving, TypeExpense, TypeIncome}

type Priority string

const (
	PriorityInfo   Priority = "info"
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var AllPriorities = []Priority{PriorityInfo, PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Alert is a materialized notification. The tuple (owner, type, priority,
// title, message, related_id) is the dedup key: re-evaluation that produces an
// identical message finds the existing row instead of inserting a new one.
// Only IsRead and IsActive are ever mutated after creation.
type Alert struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     string     `gorm:"type:uuid;index;not null" json:"owner_id"`
	Type        Type       `gorm:"size:20;not null" json:"type"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Message     string     `gorm:"not null" json:"message"`
	Priority    Priority   `gorm:"size:10;not null" json:"priority"`
	RelatedID   string     `gorm:"type:uuid" json:"related_id"`
	RelatedType string     `gorm:"size:50" json:"related_type"`
	IsRead      bool       `gorm:"not null;default:false" json:"is_read"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type ListFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

type TypeCount struct {
	Type  Type  `json:"type"`
	Count int64 `json:"count"`
}

type PriorityCount struct {
	Priority Priority `json:"priority"`
	Count    int64    `json:"count"`
}

type Statistics struct {
	TotalCount    int64              `json:"total_count"`
	UnreadCount   int64              `json:"unread_count"`
	TypeStats     map[Type]int64     `json:"type_stats"`
	PriorityStats map[Priority]int64 `json:"priority_stats"`
}

package transactions

import "time"

type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

func (p Period) Valid() bool {
	return p == PeriodMonthly || p == PeriodYearly
}

type GoalType string

const (
	GoalTypeSavings      GoalType = "savings"
	GoalTypeExpenseLimit GoalType = "expense_limit"
)

func (t GoalType) Valid() bool {
	return t == GoalTypeSavings || t == GoalTypeExpenseLimit
}

type Category struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   string    `gorm:"type:uuid;index;not null" json:"owner_id"`
	Name      string    `gorm:"not null" json:"name"`
	Kind      Kind      `gorm:"size:10;not null" json:"kind"`
	Icon      string    `gorm:"size:50" json:"icon"`
	Color     string    `gorm:"size:7" json:"color"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Transaction struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     string    `gorm:"type:uuid;index;not null" json:"owner_id"`
	CategoryID  string    `gorm:"type:uuid;index;not null" json:"category_id"`
	Amount      float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Kind        Kind      `gorm:"size:10;not null" json:"kind"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Budget caps expense spending for one category inside the closed window
// [StartDate, EndDate]. Overlapping active budgets for the same category are
// allowed; each one is evaluated on its own.
type Budget struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID    string    `gorm:"type:uuid;index;not null" json:"owner_id"`
	CategoryID string    `gorm:"type:uuid;index;not null" json:"category_id"`
	Amount     float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Period     Period    `gorm:"size:10;not null" json:"period"`
	StartDate  time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time `gorm:"type:date;not null" json:"end_date"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Goal struct {
	ID            string     `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID       string     `gorm:"type:uuid;index;not null" json:"owner_id"`
	Name          string     `gorm:"not null" json:"name"`
	GoalType      GoalType   `gorm:"size:20;not null" json:"goal_type"`
	TargetAmount  float64    `gorm:"type:numeric(12,2);not null" json:"target_amount"`
	CurrentAmount float64    `gorm:"type:numeric(12,2);not null;default:0" json:"current_amount"`
	Deadline      *time.Time `gorm:"type:date" json:"deadline"`
	IsActive      bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (g Goal) ProgressPercentage() float64 {
	if g.TargetAmount == 0 {
		return 0
	}
	pct := g.CurrentAmount / g.TargetAmount * 100
	if pct > 100 {
		return 100
	}
	return pct
}

type ListFilter struct {
	From       *time.Time
	To         *time.Time
	CategoryID string
	Kind       Kind
	Limit      int
	Offset     int
}

type CreateTransactionInput struct {
	OwnerID     string
	CategoryID  string
	Amount      float64
	Kind        Kind
	Date        time.Time
	Description string
}

type UpdateTransactionInput struct {
	ID          string
	OwnerID     string
	CategoryID  string
	Amount      float64
	Kind        Kind
	Date        time.Time
	Description string
}

type CreateCategoryInput struct {
	OwnerID string
	Name    string
	Kind    Kind
	Icon    string
	Color   string
}

type UpdateCategoryInput struct {
	ID       string
	OwnerID  string
	Name     string
	Icon     string
	Color    string
	IsActive *bool
}

type CreateBudgetInput struct {
	OwnerID    string
	CategoryID string
	Amount     float64
	Period     Period
	StartDate  time.Time
	EndDate    time.Time
}

type UpdateBudgetInput struct {
	ID        string
	OwnerID   string
	Amount    float64
	Period    Period
	StartDate time.Time
	EndDate   time.Time
	IsActive  *bool
}

type CreateGoalInput struct {
	OwnerID      string
	Name         string
	GoalType     GoalType
	TargetAmount float64
	Deadline     *time.Time
}

type UpdateGoalInput struct {
	ID            string
	OwnerID       string
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	Deadline      *time.Time
	IsActive      *bool
}

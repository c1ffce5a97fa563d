package students

import "time"

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

type Student struct {
	ID             string     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         string     `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	StudentNumber  string     `gorm:"size:20;uniqueIndex;not null" json:"student_number"`
	Name           string     `gorm:"size:50;not null" json:"name"`
	Gender         Gender     `gorm:"size:1;not null" json:"gender"`
	BirthDate      *time.Time `gorm:"type:date" json:"birth_date"`
	Phone          string     `gorm:"size:20" json:"phone"`
	Email          string     `json:"email"`
	Address        string     `json:"address"`
	Major          string     `gorm:"size:100" json:"major"`
	Grade          string     `gorm:"size:20" json:"grade"`
	ClassName      string     `gorm:"size:50" json:"class_name"`
	EnrollmentDate *time.Time `gorm:"type:date" json:"enrollment_date"`
	Status         string     `gorm:"size:20;not null;default:active" json:"status"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type CreateInput struct {
	UserID         string
	StudentNumber  string
	Name           string
	Gender         Gender
	BirthDate      *time.Time
	Phone          string
	Email          string
	Address        string
	Major          string
	Grade          string
	ClassName      string
	EnrollmentDate *time.Time
}

type UpdateInput struct {
	ID             string
	Name           string
	Phone          string
	Email          string
	Address        string
	Major          string
	Grade          string
	ClassName      string
	Status         string
}

type ListFilter struct {
	Search string
	Limit  int
	Offset int
}

package department

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Department struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"size:255;not null;uniqueIndex"`
	// Nil means no incentive configured yet; payroll treats that as 0%.
	IncentivePercentage *decimal.Decimal `gorm:"type:numeric(5,2)"`
	IncentiveSetDate    *time.Time       `gorm:"type:date"`
	CreatedAt           time.Time        `gorm:"autoCreateTime"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime"`
}

func (Department) TableName() string {
	return "departments"
}

// IncentiveHistory is append-only: every incentive change writes a row here
// in the same transaction as the department update.
type IncentiveHistory struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DepartmentID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	IncentivePercentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	SetDate             time.Time       `gorm:"type:date;not null"`
	CreatedAt           time.Time
}

func (IncentiveHistory) TableName() string {
	return "department_incentive_histories"
}

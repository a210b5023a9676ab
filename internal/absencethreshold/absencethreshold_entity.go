package absencethreshold

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AbsenceThreshold maps a range of absence days in a month to a pay
// adjustment percentage. Negative percentages deduct pay. MaxDays nil means
// the threshold is open-ended.
type AbsenceThreshold struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MinDays              int             `gorm:"not null"`
	MaxDays              *int            `gorm:""`
	AdjustmentPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	IsActive             bool            `gorm:"not null;default:true"`
	CreatedAt            time.Time       `gorm:"autoCreateTime"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime"`
}

func (AbsenceThreshold) TableName() string {
	return "absence_thresholds"
}

func (t AbsenceThreshold) Contains(days int) bool {
	if days < t.MinDays {
		return false
	}
	if t.MaxDays != nil && days > *t.MaxDays {
		return false
	}
	return true
}

func (t AbsenceThreshold) Overlaps(other AbsenceThreshold) bool {
	if t.MaxDays != nil && other.MinDays > *t.MaxDays {
		return false
	}
	if other.MaxDays != nil && t.MinDays > *other.MaxDays {
		return false
	}
	return true
}

package servicebracket

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceBracket maps whole years of service to a bonus percentage.
// MaxYears nil means the bracket is open-ended.
type ServiceBracket struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MinYears   int             `gorm:"not null"`
	MaxYears   *int            `gorm:""`
	Percentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	IsActive   bool            `gorm:"not null;default:true"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime"`
}

func (ServiceBracket) TableName() string {
	return "service_brackets"
}

// Contains reports whether the bracket covers the given years of service.
func (b ServiceBracket) Contains(years int) bool {
	if years < b.MinYears {
		return false
	}
	if b.MaxYears != nil && years > *b.MaxYears {
		return false
	}
	return true
}

// Overlaps reports whether two brackets share any year. Open-ended brackets
// extend to infinity on the max side.
func (b ServiceBracket) Overlaps(other ServiceBracket) bool {
	if b.MaxYears != nil && other.MinYears > *b.MaxYears {
		return false
	}
	if other.MaxYears != nil && b.MinYears > *other.MaxYears {
		return false
	}
	return true
}

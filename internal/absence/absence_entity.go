package absence

import (
	"time"

	"github.com/google/uuid"
)

// AbsenceRecord holds the absence day count for one employee in one month.
// One row per (employee, year, month); recording again replaces the count.
type AbsenceRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_absence_employee_period"`
	Year       int       `gorm:"not null;uniqueIndex:uq_absence_employee_period"`
	Month      int       `gorm:"not null;uniqueIndex:uq_absence_employee_period"`
	Days       int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (AbsenceRecord) TableName() string {
	return "absence_records"
}

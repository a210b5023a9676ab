package salaryrecord

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SalaryRecord struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_salary_record_effective"`
	BaseSalary    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	EffectiveDate time.Time       `gorm:"type:date;not null;uniqueIndex:uq_salary_record_effective"`
	Notes         string          `gorm:"size:500"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime"`
}

func (SalaryRecord) TableName() string {
	return "salary_records"
}

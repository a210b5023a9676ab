package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollSnapshot is the persisted result of one gross-pay calculation for
// one employee in one month. Regenerating a period replaces the row in place,
// so the table always reflects the latest run.
type PayrollSnapshot struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_snapshot_employee_period"`
	Year       int       `gorm:"not null;uniqueIndex:uq_snapshot_employee_period"`
	Month      int       `gorm:"not null;uniqueIndex:uq_snapshot_employee_period"`

	EmployeeName   string `gorm:"size:255;not null"`
	EmployeeNumber string `gorm:"size:50;not null"`
	DepartmentName string `gorm:"size:255"`

	BaseSalary     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	YearsOfService int             `gorm:"not null"`

	IncentivePercentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	IncentiveAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	BracketPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	BracketAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	AbsenceDays          int             `gorm:"not null"`
	AdjustmentPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	AdjustmentAmount     decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	GrossPay decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	GeneratedBy string    `gorm:"size:255"`
	GeneratedAt time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (PayrollSnapshot) TableName() string {
	return "payroll_snapshots"
}

// SnapshotEmployee is the slice of the employees table payroll needs for
// calculation.
type SnapshotEmployee struct {
	ID               uuid.UUID
	FullName         string
	EmployeeNumber   string
	HireDate         time.Time
	EmploymentStatus string
	DepartmentID     *uuid.UUID
}

func (SnapshotEmployee) TableName() string {
	return "employees"
}

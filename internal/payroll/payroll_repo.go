package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/scope"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	// UpsertSnapshot inserts or replaces the row for (employee, year, month).
	UpsertSnapshot(ctx context.Context, snapshot *PayrollSnapshot) error
	FindSnapshot(ctx context.Context, employeeID string, year, month int) (*PayrollSnapshot, error)
	FindSnapshotsByPeriod(ctx context.Context, year, month int) ([]PayrollSnapshot, error)
	FindSnapshotsByEmployee(ctx context.Context, employeeID string, year int) ([]PayrollSnapshot, error)

	FindActiveEmployees(ctx context.Context) ([]SnapshotEmployee, error)
	FindEmployeeByID(ctx context.Context, id string) (*SnapshotEmployee, error)

	// FindCurrentBaseSalary resolves the salary in force on asOf, meaning the
	// record with the latest effective date not after asOf.
	FindCurrentBaseSalary(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error)
	FindDepartmentIncentive(ctx context.Context, departmentID string) (*decimal.Decimal, error)
	FindDepartmentName(ctx context.Context, departmentID string) (string, error)
	FindBracketPercentage(ctx context.Context, years int) (decimal.Decimal, error)
	FindThresholdAdjustment(ctx context.Context, days int) (decimal.Decimal, error)
	FindAbsenceDays(ctx context.Context, employeeID string, year, month int) (int, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) UpsertSnapshot(ctx context.Context, snapshot *PayrollSnapshot) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "employee_id"},
				{Name: "year"},
				{Name: "month"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"employee_name",
				"employee_number",
				"department_name",
				"base_salary",
				"years_of_service",
				"incentive_percentage",
				"incentive_amount",
				"bracket_percentage",
				"bracket_amount",
				"absence_days",
				"adjustment_percentage",
				"adjustment_amount",
				"gross_pay",
				"generated_by",
				"generated_at",
				"updated_at",
			}),
		}).
		Create(snapshot).Error
}

func (r *repository) FindSnapshot(
	ctx context.Context,
	employeeID string,
	year, month int,
) (*PayrollSnapshot, error) {
	var snapshot PayrollSnapshot
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		Where("month = ?", month).
		First(&snapshot).Error
	return &snapshot, err
}

func (r *repository) FindSnapshotsByPeriod(ctx context.Context, year, month int) ([]PayrollSnapshot, error) {
	var snapshots []PayrollSnapshot
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Where("month = ?", month).
		Order("employee_number ASC").
		Find(&snapshots).Error
	return snapshots, err
}

func (r *repository) FindSnapshotsByEmployee(ctx context.Context, employeeID string, year int) ([]PayrollSnapshot, error) {
	var snapshots []PayrollSnapshot
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		Order("month ASC").
		Find(&snapshots).Error
	return snapshots, err
}

func (r *repository) FindActiveEmployees(ctx context.Context) ([]SnapshotEmployee, error) {
	var employees []SnapshotEmployee
	err := r.db.WithContext(ctx).
		Scopes(scope.ActiveEmployees).
		Order("employee_number ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindEmployeeByID(ctx context.Context, id string) (*SnapshotEmployee, error) {
	var employee SnapshotEmployee
	err := r.db.WithContext(ctx).
		First(&employee, "id = ?", id).Error
	return &employee, err
}

func (r *repository) FindCurrentBaseSalary(
	ctx context.Context,
	employeeID string,
	asOf time.Time,
) (decimal.Decimal, error) {
	var row struct {
		BaseSalary decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Table("salary_records").
		Select("base_salary").
		Where("employee_id = ?", employeeID).
		Where("effective_date <= ?", asOf.Format("2006-01-02")).
		Order("effective_date DESC").
		Take(&row).Error
	return row.BaseSalary, err
}

func (r *repository) FindDepartmentIncentive(ctx context.Context, departmentID string) (*decimal.Decimal, error) {
	var row struct {
		IncentivePercentage *decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Table("departments").
		Select("incentive_percentage").
		Where("id = ?", departmentID).
		Take(&row).Error
	return row.IncentivePercentage, err
}

func (r *repository) FindDepartmentName(ctx context.Context, departmentID string) (string, error) {
	var row struct {
		Name string
	}
	err := r.db.WithContext(ctx).
		Table("departments").
		Select("name").
		Where("id = ?", departmentID).
		Take(&row).Error
	return row.Name, err
}

func (r *repository) FindBracketPercentage(ctx context.Context, years int) (decimal.Decimal, error) {
	var row struct {
		Percentage decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Table("service_brackets").
		Select("percentage").
		Where("is_active = ?", true).
		Where("min_years <= ?", years).
		Where("max_years IS NULL OR max_years >= ?", years).
		Take(&row).Error
	return row.Percentage, err
}

func (r *repository) FindThresholdAdjustment(ctx context.Context, days int) (decimal.Decimal, error) {
	var row struct {
		AdjustmentPercentage decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Table("absence_thresholds").
		Select("adjustment_percentage").
		Where("is_active = ?", true).
		Where("min_days <= ?", days).
		Where("max_days IS NULL OR max_days >= ?", days).
		Take(&row).Error
	return row.AdjustmentPercentage, err
}

func (r *repository) FindAbsenceDays(ctx context.Context, employeeID string, year, month int) (int, error) {
	var row struct {
		Days int
	}
	err := r.db.WithContext(ctx).
		Table("absence_records").
		Select("days").
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		Where("month = ?", month).
		Take(&row).Error
	return row.Days, err
}

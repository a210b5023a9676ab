package payroll_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePayrollRepository struct {
	withTxFn                  func(tx *sql.Tx) payroll.Repository
	upsertSnapshotFn          func(ctx context.Context, snapshot *payroll.PayrollSnapshot) error
	findSnapshotFn            func(ctx context.Context, employeeID string, year, month int) (*payroll.PayrollSnapshot, error)
	findSnapshotsByPeriodFn   func(ctx context.Context, year, month int) ([]payroll.PayrollSnapshot, error)
	findSnapshotsByEmployeeFn func(ctx context.Context, employeeID string, year int) ([]payroll.PayrollSnapshot, error)
	findActiveEmployeesFn     func(ctx context.Context) ([]payroll.SnapshotEmployee, error)
	findEmployeeByIDFn        func(ctx context.Context, id string) (*payroll.SnapshotEmployee, error)
	findCurrentBaseSalaryFn   func(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error)
	findDepartmentIncentiveFn func(ctx context.Context, departmentID string) (*decimal.Decimal, error)
	findDepartmentNameFn      func(ctx context.Context, departmentID string) (string, error)
	findBracketPercentageFn   func(ctx context.Context, years int) (decimal.Decimal, error)
	findThresholdAdjustmentFn func(ctx context.Context, days int) (decimal.Decimal, error)
	findAbsenceDaysFn         func(ctx context.Context, employeeID string, year, month int) (int, error)
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) payroll.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePayrollRepository) UpsertSnapshot(ctx context.Context, snapshot *payroll.PayrollSnapshot) error {
	if f.upsertSnapshotFn != nil {
		return f.upsertSnapshotFn(ctx, snapshot)
	}
	return nil
}

func (f *fakePayrollRepository) FindSnapshot(ctx context.Context, employeeID string, year, month int) (*payroll.PayrollSnapshot, error) {
	if f.findSnapshotFn != nil {
		return f.findSnapshotFn(ctx, employeeID, year, month)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) FindSnapshotsByPeriod(ctx context.Context, year, month int) ([]payroll.PayrollSnapshot, error) {
	if f.findSnapshotsByPeriodFn != nil {
		return f.findSnapshotsByPeriodFn(ctx, year, month)
	}
	return nil, nil
}

func (f *fakePayrollRepository) FindSnapshotsByEmployee(ctx context.Context, employeeID string, year int) ([]payroll.PayrollSnapshot, error) {
	if f.findSnapshotsByEmployeeFn != nil {
		return f.findSnapshotsByEmployeeFn(ctx, employeeID, year)
	}
	return nil, nil
}

func (f *fakePayrollRepository) FindActiveEmployees(ctx context.Context) ([]payroll.SnapshotEmployee, error) {
	if f.findActiveEmployeesFn != nil {
		return f.findActiveEmployeesFn(ctx)
	}
	return nil, nil
}

func (f *fakePayrollRepository) FindEmployeeByID(ctx context.Context, id string) (*payroll.SnapshotEmployee, error) {
	if f.findEmployeeByIDFn != nil {
		return f.findEmployeeByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) FindCurrentBaseSalary(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error) {
	if f.findCurrentBaseSalaryFn != nil {
		return f.findCurrentBaseSalaryFn(ctx, employeeID, asOf)
	}
	return decimal.Zero, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) FindDepartmentIncentive(ctx context.Context, departmentID string) (*decimal.Decimal, error) {
	if f.findDepartmentIncentiveFn != nil {
		return f.findDepartmentIncentiveFn(ctx, departmentID)
	}
	return nil, nil
}

func (f *fakePayrollRepository) FindDepartmentName(ctx context.Context, departmentID string) (string, error) {
	if f.findDepartmentNameFn != nil {
		return f.findDepartmentNameFn(ctx, departmentID)
	}
	return "", gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) FindBracketPercentage(ctx context.Context, years int) (decimal.Decimal, error) {
	if f.findBracketPercentageFn != nil {
		return f.findBracketPercentageFn(ctx, years)
	}
	return decimal.Zero, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) FindThresholdAdjustment(ctx context.Context, days int) (decimal.Decimal, error) {
	if f.findThresholdAdjustmentFn != nil {
		return f.findThresholdAdjustmentFn(ctx, days)
	}
	return decimal.Zero, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) FindAbsenceDays(ctx context.Context, employeeID string, year, month int) (int, error) {
	if f.findAbsenceDaysFn != nil {
		return f.findAbsenceDaysFn(ctx, employeeID, year, month)
	}
	return 0, gorm.ErrRecordNotFound
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func activeEmployee(hireDate time.Time) payroll.SnapshotEmployee {
	deptID := uuid.New()
	return payroll.SnapshotEmployee{
		ID:               uuid.New(),
		FullName:         "Ayu Lestari",
		EmployeeNumber:   "EMP-000001",
		HireDate:         hireDate,
		EmploymentStatus: "ACTIVE",
		DepartmentID:     &deptID,
	}
}

func TestPeriodEnd(t *testing.T) {
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), payroll.PeriodEnd(2026, 2))
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), payroll.PeriodEnd(2024, 2))
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), payroll.PeriodEnd(2026, 12))
}

func TestYearsOfService(t *testing.T) {
	hire := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)

	// Day before the anniversary the year has not completed yet.
	assert.Equal(t, 5, payroll.YearsOfService(hire, time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 6, payroll.YearsOfService(hire, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, payroll.YearsOfService(hire, time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestCalculator_GrossPayBreakdown(t *testing.T) {
	ctx := context.Background()
	employee := activeEmployee(time.Date(2015, 3, 1, 0, 0, 0, 0, time.UTC))

	incentive := dec("5")
	repo := &fakePayrollRepository{
		findCurrentBaseSalaryFn: func(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error) {
			assert.Equal(t, time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC), asOf)
			return dec("50000"), nil
		},
		findDepartmentIncentiveFn: func(ctx context.Context, departmentID string) (*decimal.Decimal, error) {
			return &incentive, nil
		},
		findBracketPercentageFn: func(ctx context.Context, years int) (decimal.Decimal, error) {
			assert.Equal(t, 11, years)
			return dec("10"), nil
		},
		findAbsenceDaysFn: func(ctx context.Context, employeeID string, year, month int) (int, error) {
			return 4, nil
		},
		findThresholdAdjustmentFn: func(ctx context.Context, days int) (decimal.Decimal, error) {
			assert.Equal(t, 4, days)
			return dec("-2"), nil
		},
	}

	comp, err := payroll.NewCalculator(repo).Calculate(ctx, employee, 2026, 7)

	assert.NoError(t, err)
	assert.Equal(t, "2500.00", comp.IncentiveAmount.StringFixed(2))
	assert.Equal(t, "5000.00", comp.BracketAmount.StringFixed(2))
	assert.Equal(t, "-1000.00", comp.AdjustmentAmount.StringFixed(2))
	assert.Equal(t, "56500.00", comp.GrossPay.StringFixed(2))
	assert.Equal(t, 11, comp.YearsOfService)
	assert.Equal(t, 4, comp.AbsenceDays)
}

func TestCalculator_MissingAbsenceRecordMeansZeroDays(t *testing.T) {
	ctx := context.Background()
	employee := activeEmployee(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

	repo := &fakePayrollRepository{
		findCurrentBaseSalaryFn: func(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error) {
			return dec("40000"), nil
		},
		findBracketPercentageFn: func(ctx context.Context, years int) (decimal.Decimal, error) {
			return dec("3"), nil
		},
		findAbsenceDaysFn: func(ctx context.Context, employeeID string, year, month int) (int, error) {
			return 0, gorm.ErrRecordNotFound
		},
		findThresholdAdjustmentFn: func(ctx context.Context, days int) (decimal.Decimal, error) {
			assert.Equal(t, 0, days)
			return dec("0"), nil
		},
	}

	comp, err := payroll.NewCalculator(repo).Calculate(ctx, employee, 2026, 3)

	assert.NoError(t, err)
	assert.Equal(t, 0, comp.AbsenceDays)
	assert.Equal(t, "41200.00", comp.GrossPay.StringFixed(2))
}

func TestCalculator_NoIncentiveConfiguredMeansZero(t *testing.T) {
	ctx := context.Background()
	employee := activeEmployee(time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC))

	repo := &fakePayrollRepository{
		findCurrentBaseSalaryFn: func(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error) {
			return dec("30000"), nil
		},
		findDepartmentIncentiveFn: func(ctx context.Context, departmentID string) (*decimal.Decimal, error) {
			return nil, nil
		},
		findBracketPercentageFn: func(ctx context.Context, years int) (decimal.Decimal, error) {
			return dec("0"), nil
		},
		findThresholdAdjustmentFn: func(ctx context.Context, days int) (decimal.Decimal, error) {
			return dec("0"), nil
		},
	}

	comp, err := payroll.NewCalculator(repo).Calculate(ctx, employee, 2026, 1)

	assert.NoError(t, err)
	assert.True(t, comp.IncentivePercentage.IsZero())
	assert.Equal(t, "30000.00", comp.GrossPay.StringFixed(2))
}

func TestCalculator_NoSalaryHistory(t *testing.T) {
	ctx := context.Background()
	employee := activeEmployee(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	repo := &fakePayrollRepository{}

	_, err := payroll.NewCalculator(repo).Calculate(ctx, employee, 2026, 4)

	assert.ErrorIs(t, err, payrollerrors.ErrNoSalaryHistory)
}

func TestCalculator_NoBracketForServiceYears(t *testing.T) {
	ctx := context.Background()
	employee := activeEmployee(time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC))

	repo := &fakePayrollRepository{
		findCurrentBaseSalaryFn: func(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error) {
			return dec("50000"), nil
		},
		findBracketPercentageFn: func(ctx context.Context, years int) (decimal.Decimal, error) {
			return decimal.Zero, gorm.ErrRecordNotFound
		},
	}

	_, err := payroll.NewCalculator(repo).Calculate(ctx, employee, 2026, 6)

	assert.ErrorIs(t, err, payrollerrors.ErrNoServiceBracket)
}

func TestCalculator_NoThresholdForAbsenceDays(t *testing.T) {
	ctx := context.Background()
	employee := activeEmployee(time.Date(2015, 3, 1, 0, 0, 0, 0, time.UTC))

	repo := &fakePayrollRepository{
		findCurrentBaseSalaryFn: func(ctx context.Context, employeeID string, asOf time.Time) (decimal.Decimal, error) {
			return dec("50000"), nil
		},
		findBracketPercentageFn: func(ctx context.Context, years int) (decimal.Decimal, error) {
			return dec("10"), nil
		},
		findAbsenceDaysFn: func(ctx context.Context, employeeID string, year, month int) (int, error) {
			return 4, nil
		},
		findThresholdAdjustmentFn: func(ctx context.Context, days int) (decimal.Decimal, error) {
			return decimal.Zero, gorm.ErrRecordNotFound
		},
	}

	_, err := payroll.NewCalculator(repo).Calculate(ctx, employee, 2026, 7)

	assert.ErrorIs(t, err, payrollerrors.ErrNoAbsenceThreshold)
}

func TestCalculator_HiredAfterPeriod(t *testing.T) {
	ctx := context.Background()
	employee := activeEmployee(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	repo := &fakePayrollRepository{}

	_, err := payroll.NewCalculator(repo).Calculate(ctx, employee, 2026, 8)

	assert.ErrorIs(t, err, payrollerrors.ErrHiredAfterPeriod)
}

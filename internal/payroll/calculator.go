package payroll

import (
	"context"
	"errors"
	"time"

	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var oneHundred = decimal.NewFromInt(100)

// Computation is the full breakdown of one gross-pay calculation.
type Computation struct {
	Employee SnapshotEmployee
	Year     int
	Month    int
	AsOf     time.Time

	BaseSalary     decimal.Decimal
	YearsOfService int

	IncentivePercentage decimal.Decimal
	IncentiveAmount     decimal.Decimal

	BracketPercentage decimal.Decimal
	BracketAmount     decimal.Decimal

	AbsenceDays          int
	AdjustmentPercentage decimal.Decimal
	AdjustmentAmount     decimal.Decimal

	GrossPay decimal.Decimal
}

// Calculator resolves all inputs for a period and produces the gross pay:
//
//	gross = base + base*incentive% + base*bracket% + base*adjustment%
//
// Every component is evaluated as of the last day of the target month.
type Calculator struct {
	repo Repository
}

func NewCalculator(repo Repository) *Calculator {
	return &Calculator{repo: repo}
}

// PeriodEnd returns the last day of the given month, the evaluation date for
// salary, incentive and service-years resolution.
func PeriodEnd(year, month int) time.Time {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
}

// YearsOfService counts whole years between hire date and asOf.
func YearsOfService(hireDate, asOf time.Time) int {
	years := asOf.Year() - hireDate.Year()
	anniversary := hireDate.AddDate(years, 0, 0)
	if anniversary.After(asOf) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

func (c *Calculator) Calculate(
	ctx context.Context,
	employee SnapshotEmployee,
	year, month int,
) (Computation, error) {

	asOf := PeriodEnd(year, month)

	if employee.HireDate.After(asOf) {
		return Computation{}, payrollerrors.ErrHiredAfterPeriod
	}

	baseSalary, err := c.repo.FindCurrentBaseSalary(ctx, employee.ID.String(), asOf)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Computation{}, payrollerrors.ErrNoSalaryHistory
		}
		return Computation{}, err
	}

	incentivePct := decimal.Zero
	if employee.DepartmentID != nil {
		pct, err := c.repo.FindDepartmentIncentive(ctx, employee.DepartmentID.String())
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return Computation{}, err
		}
		if pct != nil {
			incentivePct = *pct
		}
	}

	yearsOfService := YearsOfService(employee.HireDate, asOf)

	bracketPct, err := c.repo.FindBracketPercentage(ctx, yearsOfService)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Computation{}, payrollerrors.ErrNoServiceBracket
		}
		return Computation{}, err
	}

	// No absence record means zero absence days, not an error.
	absenceDays, err := c.repo.FindAbsenceDays(ctx, employee.ID.String(), year, month)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return Computation{}, err
		}
		absenceDays = 0
	}

	// A missing threshold is a configuration gap, same as a missing bracket.
	adjustmentPct, err := c.repo.FindThresholdAdjustment(ctx, absenceDays)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Computation{}, payrollerrors.ErrNoAbsenceThreshold
		}
		return Computation{}, err
	}

	incentiveAmount := percentageOf(baseSalary, incentivePct)
	bracketAmount := percentageOf(baseSalary, bracketPct)
	adjustmentAmount := percentageOf(baseSalary, adjustmentPct)

	grossPay := baseSalary.
		Add(incentiveAmount).
		Add(bracketAmount).
		Add(adjustmentAmount)

	return Computation{
		Employee:             employee,
		Year:                 year,
		Month:                month,
		AsOf:                 asOf,
		BaseSalary:           baseSalary,
		YearsOfService:       yearsOfService,
		IncentivePercentage:  incentivePct,
		IncentiveAmount:      incentiveAmount,
		BracketPercentage:    bracketPct,
		BracketAmount:        bracketAmount,
		AbsenceDays:          absenceDays,
		AdjustmentPercentage: adjustmentPct,
		AdjustmentAmount:     adjustmentAmount,
		GrossPay:             grossPay,
	}, nil
}

func percentageOf(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(oneHundred).Round(2)
}

package payroll

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
)

// ExportPeriodCSV renders all snapshots of one period as a CSV document,
// one row per employee, ordered by employee number.
func (s *service) ExportPeriodCSV(ctx context.Context, year, month int) ([]byte, error) {
	snapshots, err := s.GetSnapshotsByPeriod(ctx, year, month)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"employee_number",
		"employee_name",
		"department",
		"year",
		"month",
		"base_salary",
		"years_of_service",
		"incentive_pct",
		"incentive_amount",
		"bracket_pct",
		"bracket_amount",
		"absence_days",
		"adjustment_pct",
		"adjustment_amount",
		"gross_pay",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, snap := range snapshots {
		record := []string{
			snap.EmployeeNumber,
			snap.EmployeeName,
			snap.DepartmentName,
			strconv.Itoa(snap.Year),
			strconv.Itoa(snap.Month),
			snap.BaseSalary,
			strconv.Itoa(snap.YearsOfService),
			snap.IncentivePercentage,
			snap.IncentiveAmount,
			snap.BracketPercentage,
			snap.BracketAmount,
			strconv.Itoa(snap.AbsenceDays),
			snap.AdjustmentPercentage,
			snap.AdjustmentAmount,
			snap.GrossPay,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Payslip renders the persisted snapshot of one employee as a single-page
// PDF document.
func (s *service) Payslip(ctx context.Context, employeeID string, year, month int) ([]byte, error) {
	snap, err := s.GetSnapshot(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	lines := []string{
		fmt.Sprintf("Payslip %04d-%02d", snap.Year, snap.Month),
		"",
		fmt.Sprintf("Employee: %s (%s)", snap.EmployeeName, snap.EmployeeNumber),
	}
	if snap.DepartmentName != "" {
		lines = append(lines, fmt.Sprintf("Department: %s", snap.DepartmentName))
	}
	lines = append(lines,
		fmt.Sprintf("Years of service: %d", snap.YearsOfService),
		"",
		fmt.Sprintf("Base salary: %s", snap.BaseSalary),
		fmt.Sprintf("Department incentive (%s%%): %s", snap.IncentivePercentage, snap.IncentiveAmount),
		fmt.Sprintf("Service bonus (%s%%): %s", snap.BracketPercentage, snap.BracketAmount),
		fmt.Sprintf("Absence adjustment (%d days, %s%%): %s", snap.AbsenceDays, snap.AdjustmentPercentage, snap.AdjustmentAmount),
		"",
		fmt.Sprintf("Gross pay: %s", snap.GrossPay),
	)

	return buildSimplePayslipPDF(lines)
}

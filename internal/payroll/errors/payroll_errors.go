package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotActive = apperror.New(
		apperror.CodeBusinessRuleViolation,
		"employee is not active",
		http.StatusBadRequest,
	)
	ErrHiredAfterPeriod = apperror.New(
		apperror.CodeBusinessRuleViolation,
		"employee was hired after the requested payroll period",
		http.StatusBadRequest,
	)
	ErrNoSalaryHistory = apperror.New(
		apperror.CodeNotFound,
		"employee has no salary record effective in the requested period",
		http.StatusNotFound,
	)
	ErrNoServiceBracket = apperror.New(
		apperror.CodeBusinessRuleViolation,
		"no active service bracket covers the employee's years of service",
		http.StatusBadRequest,
	)
	ErrNoAbsenceThreshold = apperror.New(
		apperror.CodeBusinessRuleViolation,
		"no active absence threshold covers the employee's absence days",
		http.StatusBadRequest,
	)
	ErrSnapshotNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll snapshot not found",
		http.StatusNotFound,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"year must be between 2000 and 2100 and month between 1 and 12",
		http.StatusBadRequest,
	)
)

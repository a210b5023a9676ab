package salaryrecorderrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrSalaryRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary record not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not exist",
		http.StatusBadRequest,
	)
	ErrNegativeSalary = apperror.New(
		apperror.CodeInvalidInput,
		"base salary must be zero or greater",
		http.StatusBadRequest,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"base salary must be a valid decimal number",
		http.StatusBadRequest,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"effective date must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrDuplicateEffectiveDate = apperror.New(
		apperror.CodeConflict,
		"a salary record already exists for this employee on this effective date",
		http.StatusConflict,
	)
)

package departmenterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"department not found",
		http.StatusNotFound,
	)
	ErrDepartmentNameTaken = apperror.New(
		apperror.CodeConflict,
		"a department with this name already exists",
		http.StatusConflict,
	)
	ErrDepartmentHasEmployees = apperror.New(
		apperror.CodeBusinessRuleViolation,
		"department still has active employees assigned",
		http.StatusBadRequest,
	)
	ErrInvalidIncentive = apperror.New(
		apperror.CodeInvalidInput,
		"invalid incentive percentage",
		http.StatusBadRequest,
	)
)

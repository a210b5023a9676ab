package jobgradeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrJobGradeNotFound = apperror.New(
		apperror.CodeNotFound,
		"job grade not found",
		http.StatusNotFound,
	)
	ErrJobGradeCodeTaken = apperror.New(
		apperror.CodeConflict,
		"a job grade with this code already exists",
		http.StatusConflict,
	)
	ErrJobGradeHasEmployees = apperror.New(
		apperror.CodeBusinessRuleViolation,
		"job grade still has active employees assigned",
		http.StatusBadRequest,
	)
)

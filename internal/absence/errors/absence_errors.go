package absenceerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrAbsenceNotFound = apperror.New(
		apperror.CodeNotFound,
		"absence record not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not exist",
		http.StatusBadRequest,
	)
	ErrDaysExceedMonth = apperror.New(
		apperror.CodeInvalidInput,
		"absence days exceed the number of days in the month",
		http.StatusBadRequest,
	)
)

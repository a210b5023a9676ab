package servicebracketerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrBracketNotFound = apperror.New(
		apperror.CodeNotFound,
		"service bracket not found",
		http.StatusNotFound,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"max years must be greater than or equal to min years",
		http.StatusBadRequest,
	)
	ErrInvalidPercentage = apperror.New(
		apperror.CodeInvalidInput,
		"percentage must be a valid decimal number",
		http.StatusBadRequest,
	)
	ErrOverlappingBracket = apperror.New(
		apperror.CodeBusinessRuleViolation,
		"bracket range overlaps an existing active bracket",
		http.StatusBadRequest,
	)
)

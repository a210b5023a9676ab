package absencethresholderrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrThresholdNotFound = apperror.New(
		apperror.CodeNotFound,
		"absence threshold not found",
		http.StatusNotFound,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"max days must be greater than or equal to min days",
		http.StatusBadRequest,
	)
	ErrInvalidPercentage = apperror.New(
		apperror.CodeInvalidInput,
		"adjustment percentage must be a valid decimal number",
		http.StatusBadRequest,
	)
	ErrOverlappingThreshold = apperror.New(
		apperror.CodeBusinessRuleViolation,
		"threshold range overlaps an existing active threshold",
		http.StatusBadRequest,
	)
)

package employeeerrors

import (
	"go-employee/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidRequestBody = apperror.New(
		apperror.CodeInvalidInput,
		"Request body is not a valid employee",
		http.StatusBadRequest,
	)
	ErrStoreUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Employee store is unavailable",
		http.StatusServiceUnavailable,
	)
)

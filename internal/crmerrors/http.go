package crmerrors

import (
	"errors"
	"net/http"
)

// HTTPStatus traduce la taxonomía de errores del CRM a códigos HTTP.
func HTTPStatus(err error) int {
	var ve *ValidationError
	var te *InvalidTransitionError

	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &te):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

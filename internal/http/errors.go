package http

import (
	"errors"
	"net/http"

	"github.com/needsomevibe/passcard/pass-service/internal/http/dto"
	"github.com/needsomevibe/passcard/pass-service/internal/service"
)

// MapError переводит доменные/DTO ошибки в HTTP статус и тело APIError
func MapError(err error) (int, APIError) {
	switch {
	// DTO validation
	case errors.Is(err, dto.ErrTicketRequired):
		return http.StatusBadRequest, APIError{Code: "invalid_request", Message: "Ticket data is required"}

	// Service errors
	case errors.Is(err, service.ErrInvalidSerial):
		return http.StatusBadRequest, APIError{Code: "invalid_request", Message: "invalid serial number"}
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, APIError{Code: "not_found", Message: "Pass not found"}
	}
	return http.StatusInternalServerError, APIError{Code: "internal", Message: "internal error"}
}

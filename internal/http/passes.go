package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/needsomevibe/passcard/pass-service/internal/http/dto"
	issvc "github.com/needsomevibe/passcard/pass-service/internal/service"
)

// CreatePass — выпуск нового пасса
// @Summary     Создать пасс
// @Tags        passes
// @Accept      json
// @Produce     application/vnd.apple.pkpass
// @Param       request body dto.CreatePassRequest true "Ticket + images"
// @Success     200 {file} binary
// @Failure     400 {object} APIError
// @Failure     500 {object} APIError
// @Router      /api/passes/create [post]
func CreatePass(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreatePassRequest
		if err := c.Bind(&req); err != nil {
			return writeJSON(c, http.StatusBadRequest, APIError{Code: "invalid_request", Message: "malformed"})
		}
		if err := req.Validate(); err != nil {
			status, apiErr := MapError(err)
			return writeJSON(c, status, apiErr)
		}

		serial, data, err := svc.Create(c.Request().Context(), req.Ticket.ToTicket(), req.ToImages())
		if err != nil {
			status, apiErr := MapError(err)
			return writeJSON(c, status, apiErr)
		}
		return writePkpass(c, serial, data, true)
	}
}

// GetPass — байты существующего пасса
// @Summary     Получить пасс
// @Tags        passes
// @Produce     application/vnd.apple.pkpass
// @Param       serial path string true "Serial number"
// @Success     200 {file} binary
// @Failure     404 {object} APIError
// @Router      /api/passes/{serial} [get]
func GetPass(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		serial := strings.TrimSpace(c.Param("serial"))
		data, err := svc.Get(c.Request().Context(), serial)
		if err != nil {
			status, apiErr := MapError(err)
			return writeJSON(c, status, apiErr)
		}
		return writePkpass(c, serial, data, false)
	}
}

// UpdatePass — перегенерация пасса под тем же серийником (upsert)
// @Summary     Обновить пасс
// @Tags        passes
// @Accept      json
// @Produce     application/vnd.apple.pkpass
// @Param       serial path string true "Serial number"
// @Param       request body dto.CreatePassRequest true "Ticket + images"
// @Success     200 {file} binary
// @Failure     400 {object} APIError
// @Failure     500 {object} APIError
// @Router      /api/passes/{serial} [put]
func UpdatePass(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		serial := strings.TrimSpace(c.Param("serial"))
		var req dto.CreatePassRequest
		if err := c.Bind(&req); err != nil {
			return writeJSON(c, http.StatusBadRequest, APIError{Code: "invalid_request", Message: "malformed"})
		}
		if err := req.Validate(); err != nil {
			status, apiErr := MapError(err)
			return writeJSON(c, status, apiErr)
		}

		data, err := svc.Update(c.Request().Context(), serial, req.Ticket.ToTicket(), req.ToImages())
		if err != nil {
			status, apiErr := MapError(err)
			return writeJSON(c, status, apiErr)
		}
		return writePkpass(c, serial, data, true)
	}
}

// DeletePass — идемпотентное удаление
// @Summary     Удалить пасс
// @Tags        passes
// @Produce     json
// @Param       serial path string true "Serial number"
// @Success     200 {object} map[string]bool
// @Router      /api/passes/{serial} [delete]
func DeletePass(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		serial := strings.TrimSpace(c.Param("serial"))
		if err := svc.Delete(c.Request().Context(), serial); err != nil {
			status, apiErr := MapError(err)
			return writeJSON(c, status, apiErr)
		}
		return writeJSON(c, http.StatusOK, map[string]bool{"success": true})
	}
}

// ListPasses — сводки пассов из кэша в памяти
// @Summary     Список пассов
// @Tags        passes
// @Produce     json
// @Success     200 {array} dto.PassSummaryResponse
// @Router      /api/passes [get]
func ListPasses(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		return writeJSON(c, http.StatusOK, dto.FromSummaries(svc.List(c.Request().Context())))
	}
}

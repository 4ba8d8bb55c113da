package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/needsomevibe/passcard/pass-service/internal/http/dto"
	issvc "github.com/needsomevibe/passcard/pass-service/internal/service"
)

// Стабы Apple Wallet Web Service: устройства регистрируются и
// опрашиваются с корректными статусами, но push-обновления не
// реализованы.

// RegisterDevice — регистрация устройства для обновлений
// @Summary     Регистрация устройства (стаб)
// @Tags        webservice
// @Success     201
// @Router      /api/passes/v1/devices/{deviceID}/registrations/{passTypeID}/{serial} [post]
func RegisterDevice(log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		log.Info("device registration",
			zap.String("device", c.Param("deviceID")),
			zap.String("serial", c.Param("serial")))
		return c.NoContent(http.StatusCreated)
	}
}

// UnregisterDevice — отмена регистрации
// @Summary     Отмена регистрации устройства (стаб)
// @Tags        webservice
// @Success     200
// @Router      /api/passes/v1/devices/{deviceID}/registrations/{passTypeID}/{serial} [delete]
func UnregisterDevice(log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		log.Info("device unregistration",
			zap.String("device", c.Param("deviceID")),
			zap.String("serial", c.Param("serial")))
		return c.NoContent(http.StatusOK)
	}
}

// UpdatedPasses — список серийников обновлённых пассов; всегда пуст
// @Summary     Обновлённые пассы устройства (стаб)
// @Tags        webservice
// @Produce     json
// @Success     200 {object} dto.UpdatedPassesResponse
// @Router      /api/passes/v1/devices/{deviceID}/registrations/{passTypeID} [get]
func UpdatedPasses() echo.HandlerFunc {
	return func(c echo.Context) error {
		return writeJSON(c, http.StatusOK, dto.UpdatedPassesResponse{
			LastUpdated:   time.Now().UTC().Format(time.RFC3339),
			SerialNumbers: []string{},
		})
	}
}

// PassForUpdate — свежая версия пасса для устройства: 200 с байтами
// из памяти, иначе 304
// @Summary     Пасс для обновления на устройстве
// @Tags        webservice
// @Produce     application/vnd.apple.pkpass
// @Success     200 {file} binary
// @Success     304
// @Router      /api/passes/v1/passes/{passTypeID}/{serial} [get]
func PassForUpdate(svc *issvc.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		serial := c.Param("serial")
		entry, ok := svc.PassForDevice(c.Request().Context(), serial)
		if !ok {
			return c.NoContent(http.StatusNotModified)
		}
		c.Response().Header().Set("Last-Modified", entry.CreatedAt.UTC().Format(http.TimeFormat))
		return c.Blob(http.StatusOK, mimePkpass, entry.Data)
	}
}

// DeviceLog — приём логов ошибок от устройств
// @Summary     Логи устройства (стаб)
// @Tags        webservice
// @Accept      json
// @Success     200
// @Router      /api/passes/v1/log [post]
func DeviceLog(log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body map[string]any
		if err := c.Bind(&body); err == nil && len(body) > 0 {
			log.Info("device log", zap.Any("body", body))
		}
		return c.NoContent(http.StatusOK)
	}
}

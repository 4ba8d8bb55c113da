package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// MIME-тип пакета Apple Wallet
const mimePkpass = "application/vnd.apple.pkpass"

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func writeJSON(c echo.Context, status int, v any) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.JSON(status, v)
}

// writePkpass отдаёт байты пасса как attachment; X-Serial-Number
// ставится на create/update, где клиент серийник ещё не знает
func writePkpass(c echo.Context, serial string, data []byte, withSerialHeader bool) error {
	h := c.Response().Header()
	h.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", serial+".pkpass"))
	if withSerialHeader {
		h.Set("X-Serial-Number", serial)
	}
	return c.Blob(http.StatusOK, mimePkpass, data)
}

func DefaultHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if he, ok := err.(*echo.HTTPError); ok {
		_ = writeJSON(c, he.Code, map[string]any{
			"code":    http.StatusText(he.Code),
			"message": he.Message,
		})
		return
	}
	_ = writeJSON(c, http.StatusInternalServerError, APIError{Code: "internal", Message: "internal error"})
}

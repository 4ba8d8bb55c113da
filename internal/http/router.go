package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/needsomevibe/passcard/pass-service/internal/config"
	issvc "github.com/needsomevibe/passcard/pass-service/internal/service"
)

func Router(svc *issvc.Service, cfg config.Config, log *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(requestLogger(log))
	e.Binder = StrictJSONBinder{}
	e.HTTPErrorHandler = DefaultHTTPErrorHandler

	// Swagger UI (включается флагом ENABLE_SWAGGER=true)
	if cfg.EnableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	e.GET("/health", Health(cfg))

	api := e.Group("/api")
	api.POST("/passes/create", CreatePass(svc))
	api.GET("/passes", ListPasses(svc))
	api.GET("/passes/:serial", GetPass(svc))
	api.PUT("/passes/:serial", UpdatePass(svc))
	api.DELETE("/passes/:serial", DeletePass(svc))

	// Apple Wallet Web Service (стабы)
	ws := api.Group("/passes/v1")
	ws.POST("/devices/:deviceID/registrations/:passTypeID/:serial", RegisterDevice(log))
	ws.DELETE("/devices/:deviceID/registrations/:passTypeID/:serial", UnregisterDevice(log))
	ws.GET("/devices/:deviceID/registrations/:passTypeID", UpdatedPasses())
	ws.GET("/passes/:passTypeID/:serial", PassForUpdate(svc))
	ws.POST("/log", DeviceLog(log))

	return e
}

// requestLogger пишет метод/путь/статус/длительность через zap
func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}

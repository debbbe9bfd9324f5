package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/bookkeep/lending-service/audit/internal/model"
	md "github.com/bookkeep/lending-service/pkg/middleware"
)

type AuditService interface {
	PatronActivity(ctx context.Context, patronID string) (model.PatronActivity, error)
}

type Handler struct {
	auditSvc AuditService
	log      *zap.Logger
}

func New(auditSvc AuditService, log *zap.Logger) *Handler {
	return &Handler{
		auditSvc: auditSvc,
		log:      log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const apiRPS = 100
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))

	e.GET("/manage/health", h.Health)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/patrons/:patronId/activity", h.PatronActivity)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) PatronActivity(c echo.Context) error {
	activity, err := h.auditSvc.PatronActivity(c.Request().Context(), c.Param("patronId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, activity)
}

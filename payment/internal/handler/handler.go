package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	md "github.com/bookkeep/lending-service/pkg/middleware"
	"github.com/bookkeep/lending-service/pkg/validate"

	"github.com/bookkeep/lending-service/payment/internal/model"
	"github.com/bookkeep/lending-service/payment/internal/service"
)

type PaymentService interface {
	ProcessPayment(req model.PaymentRequest) model.PaymentResponse
	RefundPayment(req model.RefundRequest) model.RefundResponse
}

var _ PaymentService = (*service.Service)(nil)

type Handler struct {
	paymentSvc PaymentService
	log        *zap.Logger
}

func New(paymentSvc PaymentService, log *zap.Logger) *Handler {
	return &Handler{
		paymentSvc: paymentSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/payments", h.ProcessPayment)
	api.POST("/refunds", h.RefundPayment)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ProcessPayment(c echo.Context) error {
	var req model.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.paymentSvc.ProcessPayment(req))
}

func (h *Handler) RefundPayment(c echo.Context) error {
	var req model.RefundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.paymentSvc.RefundPayment(req))
}

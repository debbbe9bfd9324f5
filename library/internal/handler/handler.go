package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	md "github.com/bookkeep/lending-service/pkg/middleware"
	"github.com/bookkeep/lending-service/pkg/validate"

	"github.com/bookkeep/lending-service/library/internal/model"
)

type Handler struct {
	librarySvc LibraryService
	log        *zap.Logger
}

func New(librarySvc LibraryService, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
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
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/books", h.AddBook)
	api.GET("/books", h.SearchBooks)

	api.POST("/loans", h.BorrowBook)
	api.POST("/loans/return", h.ReturnBook)

	api.GET("/patrons/:patronId/late-fees", h.CalculateLateFee)
	api.POST("/patrons/:patronId/late-fees/pay", h.PayLateFees)
	api.POST("/refunds", h.RefundLateFeePayment)

	api.GET("/patrons/:patronId/report", h.PatronStatusReport)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) AddBook(c echo.Context) error {
	var req model.AddBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.librarySvc.AddBook(c.Request().Context(), req)
	return c.JSON(opStatus(res), res)
}

func (h *Handler) SearchBooks(c echo.Context) error {
	term := c.QueryParam("q")
	field := model.SearchField(c.QueryParam("type"))
	books, err := h.librarySvc.SearchBooks(c.Request().Context(), term, field)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

type loanRequest struct {
	PatronID string `json:"patronId"`
	BookID   int    `json:"bookId"`
}

func (h *Handler) BorrowBook(c echo.Context) error {
	var req loanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.librarySvc.BorrowBook(c.Request().Context(), req.PatronID, req.BookID)
	return c.JSON(opStatus(res), res)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	var req loanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.librarySvc.ReturnBook(c.Request().Context(), req.PatronID, req.BookID)
	return c.JSON(opStatus(res), res)
}

func (h *Handler) CalculateLateFee(c echo.Context) error {
	patronID := c.Param("patronId")
	bookID, err := strconv.Atoi(c.QueryParam("bookId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bookId is invalid")
	}
	res := h.librarySvc.CalculateLateFee(c.Request().Context(), patronID, bookID)
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) PayLateFees(c echo.Context) error {
	type payRequest struct {
		BookID int `json:"bookId"`
	}
	var req payRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.librarySvc.PayLateFees(c.Request().Context(), c.Param("patronId"), req.BookID)
	code := http.StatusOK
	if !res.Success {
		code = http.StatusBadRequest
	}
	return c.JSON(code, res)
}

func (h *Handler) RefundLateFeePayment(c echo.Context) error {
	type refundRequest struct {
		TransactionID string  `json:"transactionId"`
		Amount        float64 `json:"amount"`
	}
	var req refundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.librarySvc.RefundLateFeePayment(c.Request().Context(), req.TransactionID, req.Amount)
	return c.JSON(opStatus(res), res)
}

func (h *Handler) PatronStatusReport(c echo.Context) error {
	res := h.librarySvc.PatronStatusReport(c.Request().Context(), c.Param("patronId"))
	if !res.Success {
		return echo.NewHTTPError(http.StatusBadRequest, res.Message)
	}
	return c.JSON(http.StatusOK, res.Report)
}

func opStatus(res model.OpResult) int {
	if res.Success {
		return http.StatusOK
	}
	return http.StatusBadRequest
}

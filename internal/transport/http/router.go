package rest

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/kakeibo/expenses/internal/domain"
	"github.com/kakeibo/expenses/internal/ports"
	"github.com/kakeibo/expenses/pkg/httpx"
	"github.com/kakeibo/expenses/pkg/validate"
)

// Handler — HTTP-обработчики поверх ports.PaymentService.
type Handler struct {
	service ports.PaymentService
	log     ports.Logger
	timeout time.Duration // таймаут на обработку одного запроса; 0 — без таймаута
}

// NewHandler — конструктор.
func NewHandler(service ports.PaymentService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

// NewRouter — собирает роутер с прод-набором middleware.
// serviceName != "" включает otelgin-трассировку.
func NewRouter(h *Handler, staticDir, serviceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if serviceName != "" {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", h.aggregatedTotals)
	r.GET("/register", h.registerSchema)
	r.POST("/register", h.registerPayment)
	r.POST("/expenses", h.checkPayment)
	r.GET("/table", h.listPayments)
	r.GET("/delete-confirm/:id", h.getPaymentJSON)
	r.POST("/delete/:id", h.deletePayment)
	r.GET("/edit/:id", h.getPaymentForEdit)
	r.POST("/update/:id", h.updatePayment)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/favicon.ico", filepath.Join(staticDir, "favicon.ico"))
	}

	return r
}

// reqCtx — контекст запроса с таймаутом обработчика (если задан).
func (h *Handler) reqCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// submissionFrom — извлекает поля платежа из формы или JSON-тела.
// Форма — исходный контракт, JSON — для программных клиентов.
func submissionFrom(c *gin.Context) (map[string]string, bool) {
	if c.ContentType() == gin.MIMEJSON {
		var sub validate.Submission
		if err := c.ShouldBindJSON(&sub); err != nil {
			return nil, false
		}
		return sub.Map(), true
	}
	return map[string]string{
		validate.FieldAccountCategory: c.PostForm(validate.FieldAccountCategory),
		validate.FieldPayee:           c.PostForm(validate.FieldPayee),
		validate.FieldAmount:          c.PostForm(validate.FieldAmount),
		validate.FieldPaymentMonth:    c.PostForm(validate.FieldPaymentMonth),
		validate.FieldPaymentMethod:   c.PostForm(validate.FieldPaymentMethod),
	}, true
}

// GET / — итоги по (месяц, категория).
func (h *Handler) aggregatedTotals(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	totals, err := h.service.Aggregated(ctx)
	if err != nil {
		h.log.Errorf(ctx, "Aggregated failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if totals == nil {
		totals = []domain.AggregatedTotal{}
	}
	c.JSON(http.StatusOK, gin.H{"totals": totals})
}

// GET /register — схема формы: имена полей и допустимые значения справочников.
func (h *Handler) registerSchema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{
			validate.FieldAccountCategory,
			validate.FieldPayee,
			validate.FieldAmount,
			validate.FieldPaymentMonth,
			validate.FieldPaymentMethod,
		},
		"account_categories": domain.AccountCategories(),
		"payment_methods":    domain.PaymentMethods(),
	})
}

// POST /register — валидация + запись; 303 на /table как в исходной системе.
func (h *Handler) registerPayment(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	raw, ok := submissionFrom(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	_, fieldErrs, err := h.service.Register(ctx, raw)
	if err != nil {
		h.log.Errorf(ctx, "Register failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}

	c.Redirect(http.StatusSeeOther, "/table")
}

// POST /expenses — только проверка, записи нет.
func (h *Handler) checkPayment(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	raw, ok := submissionFrom(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	if fieldErrs := h.service.Check(ctx, raw); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "valid payment"})
}

// GET /table — все платежи, новые первыми.
func (h *Handler) listPayments(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	payments, err := h.service.List(ctx)
	if err != nil {
		h.log.Errorf(ctx, "List failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// GET /delete-confirm/:id — платёж перед удалением; 404 JSON, если записи нет.
func (h *Handler) getPaymentJSON(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	payment, err := h.service.Get(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "Get failed id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if payment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
		return
	}
	c.JSON(http.StatusOK, payment)
}

// GET /edit/:id — платёж для редактирования; при отсутствии — plain-text 404,
// поведение унаследовано от исходной системы.
func (h *Handler) getPaymentForEdit(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	payment, err := h.service.Get(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "Get failed id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if payment == nil {
		c.String(http.StatusNotFound, "payment not found")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// POST /delete/:id — удаление; отсутствие записи не меняет ответ.
func (h *Handler) deletePayment(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		h.log.Errorf(ctx, "Delete failed id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/table")
}

// POST /update/:id — валидация + полная замена полей; отсутствие записи — no-op.
func (h *Handler) updatePayment(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	raw, ok := submissionFrom(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	fieldErrs, err := h.service.Update(ctx, id, raw)
	if err != nil {
		h.log.Errorf(ctx, "Update failed id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}
	c.Redirect(http.StatusSeeOther, "/table")
}

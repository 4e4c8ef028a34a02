package rest

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/wc_altek/internal/domain"
	"github.com/Gunvolt24/wc_altek/internal/ports"
	"github.com/Gunvolt24/wc_altek/internal/usecase"
	"github.com/Gunvolt24/wc_altek/pkg/httpx"
)

const defaultExportTimeout = 30 * time.Second

// Handler — HTTP-слой поверх сервиса выгрузки.
type Handler struct {
	service       ports.ExportService
	log           ports.Logger
	exportTimeout time.Duration
}

// NewHandler — конструктор; exportTimeout <= 0 заменяется дефолтом.
func NewHandler(service ports.ExportService, log ports.Logger, exportTimeout time.Duration) *Handler {
	if exportTimeout <= 0 {
		exportTimeout = defaultExportTimeout
	}
	return &Handler{service: service, log: log, exportTimeout: exportTimeout}
}

// NewRouter — маршруты и middleware. otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.POST("/orders/:id/export", h.exportOrder)
	api.POST("/orders/export", h.exportOrders)

	return r
}

// exportResponse — тело ответа по одному заказу.
type exportResponse struct {
	OrderID int64              `json:"order_id"`
	Result  string             `json:"result"`
	Failure domain.FailureKind `json:"failure,omitempty"`
	AltekID int64              `json:"altek_id,omitempty"`
	Message string             `json:"message"`
}

func (h *Handler) exportOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || orderID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	ctx, cancel := httpx.ContextWithTimeout(c.Request.Context(), h.exportTimeout)
	defer cancel()

	out, err := h.service.ExportOrder(ctx, orderID)
	if err != nil && errors.Is(err, usecase.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	resp := exportResponse{
		OrderID: orderID,
		Result:  string(out.Kind),
		Failure: out.Failure,
		AltekID: out.AltekID,
		Message: out.Message,
	}

	switch {
	case err == nil:
		c.JSON(http.StatusOK, resp)
	case out.Failed():
		// Отказ с известной классификацией (исход и ошибка совпадают).
		c.JSON(statusForFailure(out.Failure), resp)
	default:
		// Транспорт не настроен/недоступен или внутренний сбой до транзакции.
		h.log.Errorf(c.Request.Context(), "export failed order_id=%d err=%v", orderID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "export failed"})
	}
}

// statusForFailure — HTTP-статус по классификации отказа:
// постоянные отказы заказа → 422, проблемы выгрузки/настройки → 5xx.
func statusForFailure(kind domain.FailureKind) int {
	switch kind {
	case domain.FailureAllExcluded, domain.FailureResolution:
		return http.StatusUnprocessableEntity
	case domain.FailureConfig:
		return http.StatusServiceUnavailable
	case domain.FailureConnectivity, domain.FailureWrite:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// bulkRequest — тело списочной выгрузки.
type bulkRequest struct {
	OrderIDs []int64 `json:"order_ids" binding:"required,min=1,max=100,dive,gt=0"`
}

// bulkResponse — итог по списку: id с успехом и ошибки per-id.
type bulkResponse struct {
	Sent   []int64          `json:"sent"`
	Failed map[int64]string `json:"failed,omitempty"`
}

func (h *Handler) exportOrders(c *gin.Context) {
	var req bulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// Общий таймаут на весь список.
	ctx, cancel := httpx.ContextWithTimeout(c.Request.Context(), h.exportTimeout*time.Duration(len(req.OrderIDs)))
	defer cancel()

	failures := h.service.ExportOrders(ctx, req.OrderIDs)

	resp := bulkResponse{Sent: make([]int64, 0, len(req.OrderIDs))}
	if len(failures) > 0 {
		resp.Failed = make(map[int64]string, len(failures))
	}
	for _, id := range req.OrderIDs {
		if ferr, ok := failures[id]; ok {
			resp.Failed[id] = ferr.Error()
			continue
		}
		resp.Sent = append(resp.Sent, id)
	}

	status := http.StatusOK
	if len(resp.Failed) > 0 {
		// Частичный успех отдаём как 207, полный провал — 422.
		status = http.StatusMultiStatus
		if len(resp.Sent) == 0 {
			status = http.StatusUnprocessableEntity
		}
	}
	c.JSON(status, resp)
}

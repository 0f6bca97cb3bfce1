package handler

import (
	"talentboard/internal/pkg/response"
	"talentboard/internal/service"
	"talentboard/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	trace            *telemetry.Trace
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(trace *telemetry.Trace, analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{trace: trace, analyticsService: analyticsService}
}

// Dashboard 整份分析儀表板：摘要、部門統計、評分直方圖、趨勢
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	response.Success(c, h.analyticsService.Compute(ctx))
}

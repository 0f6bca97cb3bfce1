package cron

import (
	"context"

	"talentboard/internal/service"
	"talentboard/internal/telemetry"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

type Cron struct {
	logger           *zap.Logger
	metric           *telemetry.Metric
	analyticsService *service.AnalyticsService
	server           *cron.Cron
}

// NewCron .
func NewCron(
	logger *zap.Logger,
	metric *telemetry.Metric,
	analyticsService *service.AnalyticsService,
) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger:           logger,
		metric:           metric,
		analyticsService: analyticsService,
		server:           server,
	}
}

func (c *Cron) Run() error {
	// 每 10 分鐘輸出一次分析快照，順便校正 gauge
	if _, err := c.server.AddFunc("0 */10 * * * *", c.analyticsSnapshot); err != nil {
		return err
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	c.server.Stop()
	return nil
}

func (c *Cron) analyticsSnapshot() {
	analytics := c.analyticsService.Compute(context.Background())
	summary := analytics.Summary

	c.logger.Info("analytics snapshot",
		zap.Int("totalEmployees", summary.TotalEmployees),
		zap.Float64("averageRating", summary.AverageRating),
		zap.Int("topPerformers", summary.TopPerformers),
		zap.Int("bookmarked", summary.BookmarkedCount),
		zap.Float64("bookmarkRate", summary.BookmarkRate),
	)

	if c.metric.EmployeesGauge != nil {
		c.metric.EmployeesGauge.Set(float64(summary.TotalEmployees))
	}
	if c.metric.BookmarkedGauge != nil {
		c.metric.BookmarkedGauge.Set(float64(summary.BookmarkedCount))
	}
}

package telemetry

import (
	"talentboard/config"
	"talentboard/internal/core"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Wire 依賴提供
var ProviderSet = wire.NewSet(NewTrace, NewMetric)

// Metric struct
type Metric struct {
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec
	DirectoryLoadTotal  *prometheus.CounterVec
	BookmarkToggleTotal prometheus.Counter
	PromotionTotal      prometheus.Counter
	EmployeesGauge      prometheus.Gauge
	BookmarkedGauge     prometheus.Gauge
	config              *config.Configuration
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	return &Metric{
		config: config,
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    config.App.Name + "_" + string(core.MetricHttpRequestDuration),
				Help:    "Request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		DirectoryLoadTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricDirectoryLoadTotal),
				Help: "Directory bootstrap load attempts by result",
			},
			labelNames(core.MetricLabelResult),
		),
		BookmarkToggleTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricBookmarkToggleTotal),
				Help: "Bookmark toggle operations",
			},
		),
		PromotionTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricPromotionTotal),
				Help: "Employee promotion operations",
			},
		),
		EmployeesGauge: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: config.App.Name + "_" + string(core.MetricEmployeesGauge),
				Help: "Employees currently loaded in the store",
			},
		),
		BookmarkedGauge: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: config.App.Name + "_" + string(core.MetricBookmarkedGauge),
				Help: "Employees currently bookmarked",
			},
		),
	}
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}

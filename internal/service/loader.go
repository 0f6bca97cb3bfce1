package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"talentboard/config"
	"talentboard/internal/core"
	"talentboard/internal/store"
	"talentboard/internal/telemetry"

	"go.uber.org/zap"
)

// LoadFailureMessage 載入失敗時寫進 State.Error 的固定訊息
const LoadFailureMessage = "Failed to fetch employees"

const defaultSourceURL = "https://dummyjson.com/users"
const defaultLoadLimit = 20

// 來源 API 的回應外層
type usersEnvelope struct {
	Users []core.Employee `json:"users"`
}

// LoaderService 在啟動時向外部名單來源抓一次員工資料，
// 經過 Enricher 補齊合成欄位後灌進 Store。一次性 bootstrap：
// 失敗不重試、成功後也沒有週期性刷新。
type LoaderService struct {
	logger     *zap.Logger
	trace      *telemetry.Trace
	metric     *telemetry.Metric
	conf       *config.Configuration
	httpClient *http.Client
	enricher   *Enricher
	store      *store.Store
}

func NewLoaderService(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	conf *config.Configuration,
	httpClient *http.Client,
	enricher *Enricher,
	store *store.Store,
) *LoaderService {
	return &LoaderService{
		logger:     logger,
		trace:      trace,
		metric:     metric,
		conf:       conf,
		httpClient: httpClient,
		enricher:   enricher,
		store:      store,
	}
}

// Load 執行啟動載入。任何失敗（連線、狀態碼、解碼）都只發
// SetError 並回傳原因；Store 在載入期間照常接受其他動作。
func (s *LoaderService) Load(ctx context.Context) (returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanDirectoryLoad))
	defer func() { end(returnedError) }()

	s.store.Dispatch(ctx, store.SetLoading{Loading: true})

	sourceURL := s.conf.Directory.SourceURL
	if sourceURL == "" {
		sourceURL = defaultSourceURL
	}
	limit := s.conf.Directory.Limit
	if limit <= 0 {
		limit = defaultLoadLimit
	}

	if s.conf.Directory.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.conf.Directory.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	meta := core.TraceDirectoryLoadMeta{SourceURL: sourceURL, Limit: limit}

	employees, err := s.fetch(ctx, fmt.Sprintf("%s?limit=%d", sourceURL, limit))
	if err != nil {
		meta.Error = err.Error()
		s.trace.ApplyTraceAttributes(span, meta)
		s.logger.Error("directory load failed", zap.String("source", sourceURL), zap.Error(err))
		if s.metric.DirectoryLoadTotal != nil {
			s.metric.DirectoryLoadTotal.WithLabelValues("fail").Inc()
		}
		s.store.Dispatch(ctx, store.SetError{Message: LoadFailureMessage})
		returnedError = err
		return returnedError
	}

	meta.Loaded = len(employees)
	s.trace.ApplyTraceAttributes(span, meta)
	s.logger.Info("directory loaded", zap.Int("employees", len(employees)))
	if s.metric.DirectoryLoadTotal != nil {
		s.metric.DirectoryLoadTotal.WithLabelValues("success").Inc()
	}
	if s.metric.EmployeesGauge != nil {
		s.metric.EmployeesGauge.Set(float64(len(employees)))
	}

	s.store.Dispatch(ctx, store.SetEmployees{Employees: employees})
	return nil
}

func (s *LoaderService) fetch(ctx context.Context, url string) ([]core.Employee, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	response, err := s.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("directory source returned status %d", response.StatusCode)
	}

	var envelope usersEnvelope
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return nil, err
	}

	employees := make([]core.Employee, len(envelope.Users))
	for i, raw := range envelope.Users {
		employees[i] = s.enricher.Enrich(raw)
	}
	return employees, nil
}

package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"talentboard/config"
	"talentboard/internal/store"
	"talentboard/internal/telemetry"

	"go.uber.org/zap"
)

func newTestLoader(t *testing.T, sourceURL string) (*LoaderService, *store.Store) {
	t.Helper()

	conf := &config.Configuration{}
	conf.Directory.SourceURL = sourceURL
	conf.Directory.Limit = 5

	trace, err := telemetry.NewTrace(conf)
	if err != nil {
		t.Fatalf("NewTrace: %v", err)
	}
	metric := telemetry.NewMetric(conf)
	s := store.NewStore(zap.NewNop(), nil)

	loader := NewLoaderService(
		zap.NewNop(),
		trace,
		metric,
		conf,
		&http.Client{Timeout: 5 * time.Second},
		NewSeededEnricher(1, time.Now),
		s,
	)
	return loader, s
}

func TestLoadSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("limit query = %q, want 5", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"users":[
			{"id":1,"firstName":"Amy","lastName":"Chen","email":"amy@corp.com","company":{"department":"Engineering"}},
			{"id":2,"firstName":"Bob","lastName":"Smith","email":"bob@corp.com","company":{"department":"Sales"}}
		]}`))
	}))
	defer server.Close()

	loader, s := newTestLoader(t, server.URL)

	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	state := s.State()
	if state.Loading {
		t.Error("loading flag should be cleared after success")
	}
	if state.Error != "" {
		t.Errorf("error = %q, want empty", state.Error)
	}
	if len(state.Employees) != 2 {
		t.Fatalf("employees = %d, want 2", len(state.Employees))
	}
	// 合成欄位必須補齊
	for _, employee := range state.Employees {
		if employee.Rating < 1.0 || employee.Rating > 5.0 {
			t.Errorf("employee %d rating = %v", employee.ID, employee.Rating)
		}
		if len(employee.Projects) == 0 || len(employee.PerformanceHistory) != 6 {
			t.Errorf("employee %d not enriched", employee.ID)
		}
	}
	// 來源欄位原樣保留
	if state.Employees[0].FirstName != "Amy" || state.Employees[1].Company.Department != "Sales" {
		t.Error("source fields lost during enrichment")
	}
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"non-2xx status",
			func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) },
		},
		{
			"malformed body",
			func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"users": [{]`)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			loader, s := newTestLoader(t, server.URL)

			if err := loader.Load(context.Background()); err == nil {
				t.Fatal("Load should return the failure cause")
			}

			state := s.State()
			if state.Error != LoadFailureMessage {
				t.Errorf("state error = %q, want %q", state.Error, LoadFailureMessage)
			}
			if state.Loading {
				t.Error("loading flag should be cleared after failure")
			}
			if len(state.Employees) != 0 {
				t.Errorf("employees = %d, want 0", len(state.Employees))
			}
		})
	}
}

func TestLoadConnectionRefused(t *testing.T) {
	// 先關掉 server 模擬連不上
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	loader, s := newTestLoader(t, url)

	if err := loader.Load(context.Background()); err == nil {
		t.Fatal("Load should fail when the source is unreachable")
	}
	if s.State().Error != LoadFailureMessage {
		t.Errorf("state error = %q, want %q", s.State().Error, LoadFailureMessage)
	}
}

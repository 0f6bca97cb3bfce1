package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest        TraceSpanName = "http_request"
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanResponseMiddleware TraceSpanName = "response_middleware"
	SpanSessionMiddleware  TraceSpanName = "session_middleware"
	SpanDirectoryLoad      TraceSpanName = "directory_load"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal   MetricName = "requests_total"
	MetricHttpRequestDuration MetricName = "request_duration_seconds"
	MetricDirectoryLoadTotal  MetricName = "directory_load_total"
	MetricBookmarkToggleTotal MetricName = "bookmark_toggle_total"
	MetricPromotionTotal      MetricName = "promotion_total"
	MetricEmployeesGauge      MetricName = "employees"
	MetricBookmarkedGauge     MetricName = "bookmarked_employees"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelResult   MetricLabelName = "result"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TraceHttpServerMeta struct {
	// request side
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanKind          string `trace:"span.kind"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

// 供員工列表查詢使用
type TraceDirectoryListMeta struct {
	SearchTerm    string   `trace:"directory.search_term,omitempty"`
	Departments   []string `trace:"directory.department_filter,omitempty"`
	FilteredCount int      `trace:"directory.filtered_count"`
	TotalCount    int      `trace:"directory.total_count"`
}

// 供單次載入（bootstrap fetch）使用
type TraceDirectoryLoadMeta struct {
	SourceURL string `trace:"load.source_url"`
	Limit     int    `trace:"load.limit"`
	Loaded    int    `trace:"load.loaded_count"`
	Error     string `trace:"load.error"`
}

// 供書籤切換 / 晉升操作使用
type TraceEmployeeActionMeta struct {
	EmployeeID int    `trace:"employee.id"`
	Op         string `trace:"employee.op"` // "bookmark" / "promote"
	Known      bool   `trace:"employee.known"`
	Bookmarked bool   `trace:"employee.bookmarked,omitempty"`
}

// 供分析儀表板使用
type TraceAnalyticsMeta struct {
	TotalEmployees  int     `trace:"analytics.total_employees"`
	DepartmentCount int     `trace:"analytics.department_count"`
	AverageRating   float64 `trace:"analytics.average_rating"`
}

type TraceSessionMeta struct {
	Path   string `trace:"http.path"`
	Status string `trace:"auth.status"`
	Name   string `trace:"auth.name,omitempty"`
}

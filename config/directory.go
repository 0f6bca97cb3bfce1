package config

type Directory struct {
	// 員工名單來源 API（dummyjson 相容格式）
	SourceURL string `mapstructure:"SOURCE_URL" json:"source_url" yaml:"source_url"`
	// 單次載入的人數上限
	Limit int `mapstructure:"LIMIT" json:"limit" yaml:"limit"`
	// 載入請求逾時（毫秒，0 = 不設限）
	TimeoutMs int64 `mapstructure:"TIMEOUT_MS" json:"timeout_ms" yaml:"timeout_ms"`
}

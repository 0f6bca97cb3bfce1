package config

type Session struct {
	// Secret Key 用於簽發/驗證 session token
	SecretKey string `mapstructure:"SECRET_KEY" json:"secret_key" yaml:"secret_key"`
	// Session 有效時間（分鐘）
	TTLMinutes int `mapstructure:"TTL_MINUTES" json:"ttl_minutes" yaml:"ttl_minutes"`
	// 是否只在 HTTPS 下發 __Secure- cookie
	SecureCookie bool `mapstructure:"SECURE_COOKIE" json:"secure_cookie" yaml:"secure_cookie"`
}

package core

// ─── Database Types ────────────────────────────────────────────────────────────

// DatabaseType defines the type of database
type DatabaseType string

const (
	Redis   DatabaseType = "redis"
	Fluentd DatabaseType = "fluentd"
)

type RedisKey string
type FluentdSubTag string

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	// RedisKeyBookmarks 書籤持久化的固定 key，值為整數 id 的 JSON 陣列
	RedisKeyBookmarks  RedisKey = "talentboard:bookmarkedIds"
	RedisKeyServerName RedisKey = "talentboard" // 伺服器名稱
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
)

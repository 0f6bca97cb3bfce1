package service

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"talentboard/internal/core"
)

// 合成資料的固定目錄；projects 依目錄順序取前綴、不洗牌
var projectCatalog = []string{
	"Website Redesign",
	"Mobile App Development",
	"Database Migration",
	"API Integration",
	"Security Audit",
	"Performance Optimization",
	"User Experience Research",
	"Marketing Campaign",
	"Training Program",
}

var feedbackAuthors = []string{"John Manager", "Sarah Lead", "Mike Director", "Lisa VP"}

var feedbackComments = []string{
	"Excellent work on the recent project. Shows great leadership skills.",
	"Consistently delivers high-quality work and meets deadlines.",
	"Great team player and always willing to help colleagues.",
	"Shows initiative and brings creative solutions to problems.",
	"Strong technical skills and attention to detail.",
}

var performanceMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// Enricher 將來源 API 的原始員工資料補上合成的評分、專案、
// 回饋與績效欄位。亂數來源可注入，測試可固定 seed 驗證輸出；
// 正式環境維持不固定 seed。
type Enricher struct {
	rng *rand.Rand
	now func() time.Time
}

func NewEnricher() *Enricher {
	return NewSeededEnricher(time.Now().UnixNano(), time.Now)
}

// NewSeededEnricher 測試用：固定亂數 seed 與時鐘
func NewSeededEnricher(seed int64, now func() time.Time) *Enricher {
	return &Enricher{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Enrich 補齊合成欄位後回傳完整 Employee；raw 其餘欄位原樣保留
func (e *Enricher) Enrich(raw core.Employee) core.Employee {
	raw.Rating = roundOneDecimal(e.rng.Float64()*4 + 1)
	raw.Projects = e.projects()
	raw.Feedback = e.feedback()
	raw.PerformanceHistory = e.performanceHistory()
	return raw
}

func (e *Enricher) projects() []string {
	count := e.rng.Intn(4) + 1
	return append([]string(nil), projectCatalog[:count]...)
}

func (e *Enricher) feedback() []core.Feedback {
	count := e.rng.Intn(3) + 1
	entries := make([]core.Feedback, count)
	for i := range entries {
		// 過去 90 天內的隨機日期
		offset := time.Duration(e.rng.Float64() * 90 * 24 * float64(time.Hour))
		entries[i] = core.Feedback{
			ID:      fmt.Sprintf("feedback-%d", i),
			Author:  feedbackAuthors[e.rng.Intn(len(feedbackAuthors))],
			Comment: feedbackComments[e.rng.Intn(len(feedbackComments))],
			Date:    e.now().Add(-offset).UTC().Format("2006-01-02"),
			Rating:  e.rng.Intn(2) + 4,
		}
	}
	return entries
}

func (e *Enricher) performanceHistory() []core.PerformanceRecord {
	records := make([]core.PerformanceRecord, len(performanceMonths))
	for i, month := range performanceMonths {
		records[i] = core.PerformanceRecord{
			Month:     month,
			Rating:    roundOneDecimal(e.rng.Float64()*2 + 3),
			Goals:     e.rng.Intn(5) + 3,
			Completed: e.rng.Intn(5) + 2,
		}
	}
	return records
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

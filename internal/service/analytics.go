package service

import (
	"context"

	"talentboard/internal/core"
	"talentboard/internal/dto"
	"talentboard/internal/store"
	"talentboard/internal/telemetry"
	"talentboard/internal/view"
)

// 趨勢圖的前五個月為固定展示資料（與儀表板一致），
// 六月帶入目前的實際書籤數
var trendBaseline = []dto.TrendPointDto{
	{Month: "Jan", AvgRating: 3.8, Bookmarks: 5},
	{Month: "Feb", AvgRating: 4.0, Bookmarks: 8},
	{Month: "Mar", AvgRating: 4.1, Bookmarks: 12},
	{Month: "Apr", AvgRating: 4.2, Bookmarks: 15},
	{Month: "May", AvgRating: 4.3, Bookmarks: 18},
	{Month: "Jun", AvgRating: 4.4},
}

// AnalyticsService 從完整（未篩選）的員工集合計算部門統計、
// 評分直方圖與摘要數字。
type AnalyticsService struct {
	trace *telemetry.Trace
	store *store.Store
}

func NewAnalyticsService(trace *telemetry.Trace, store *store.Store) *AnalyticsService {
	return &AnalyticsService{trace: trace, store: store}
}

// Compute 產出整份儀表板資料
func (s *AnalyticsService) Compute(ctx context.Context) *dto.AnalyticsResponseDto {
	_, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	state := s.store.State()
	summary := Summary(state)
	departmentStats := DepartmentStats(state.Employees)

	s.trace.ApplyTraceAttributes(span, core.TraceAnalyticsMeta{
		TotalEmployees:  summary.TotalEmployees,
		DepartmentCount: len(departmentStats),
		AverageRating:   summary.AverageRating,
	})

	return &dto.AnalyticsResponseDto{
		Summary:           summary,
		DepartmentStats:   departmentStats,
		RatingHistogram:   RatingHistogram(state.Employees),
		PerformanceTrends: performanceTrends(len(state.BookmarkedIDs)),
	}
}

// DepartmentStats 依部門首次出現順序統計人數與平均評分。
// 平均用逐員工遞增的 running mean 更新，結果與 sum/count 一致。
func DepartmentStats(employees []core.Employee) []dto.DepartmentStatDto {
	index := make(map[string]int, len(employees))
	stats := make([]dto.DepartmentStatDto, 0, len(employees))

	for _, employee := range employees {
		department := employee.Company.Department
		i, ok := index[department]
		if !ok {
			i = len(stats)
			index[department] = i
			stats = append(stats, dto.DepartmentStatDto{Department: department})
		}
		stat := &stats[i]
		stat.EmployeeCount++
		stat.AverageRating += (employee.Rating - stat.AverageRating) / float64(stat.EmployeeCount)
	}
	return stats
}

// RatingHistogram 固定輸出 bucket 1–5；5.0 落在 bucket 5
func RatingHistogram(employees []core.Employee) []dto.RatingBucketDto {
	buckets := make([]dto.RatingBucketDto, 5)
	for i := range buckets {
		buckets[i].Bucket = i + 1
	}
	for _, employee := range employees {
		bucket := view.RatingBucket(employee.Rating)
		if bucket >= 1 && bucket <= 5 {
			buckets[bucket-1].Count++
		}
	}
	return buckets
}

// Summary 摘要數字；空集合時平均與書籤率為 0，不做除以零
func Summary(state *core.State) dto.AnalyticsSummaryDto {
	summary := dto.AnalyticsSummaryDto{
		TotalEmployees:  len(state.Employees),
		BookmarkedCount: len(state.BookmarkedIDs),
	}

	if summary.TotalEmployees == 0 {
		return summary
	}

	var sum float64
	for _, employee := range state.Employees {
		sum += employee.Rating
		if employee.Rating >= 4.5 {
			summary.TopPerformers++
		}
	}
	summary.AverageRating = sum / float64(summary.TotalEmployees)
	summary.BookmarkRate = float64(summary.BookmarkedCount) / float64(summary.TotalEmployees) * 100
	return summary
}

func performanceTrends(bookmarked int) []dto.TrendPointDto {
	trends := append([]dto.TrendPointDto(nil), trendBaseline...)
	trends[len(trends)-1].Bookmarks = bookmarked
	return trends
}

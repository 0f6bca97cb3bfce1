package dto

// 部門統計，依部門首次出現順序排列
type DepartmentStatDto struct {
	Department    string  `json:"department"`
	EmployeeCount int     `json:"employeeCount"`
	AverageRating float64 `json:"averageRating"`
}

// 評分直方圖的一格：bucket = floor(rating)，1–5
type RatingBucketDto struct {
	Bucket int `json:"bucket"`
	Count  int `json:"count"`
}

// 儀表板月趨勢資料點
type TrendPointDto struct {
	Month     string  `json:"month"`
	AvgRating float64 `json:"avgRating"`
	Bookmarks int     `json:"bookmarks"`
}

type AnalyticsSummaryDto struct {
	TotalEmployees  int     `json:"totalEmployees"`
	AverageRating   float64 `json:"averageRating"`
	TopPerformers   int     `json:"topPerformers"`
	BookmarkedCount int     `json:"bookmarkedCount"`
	BookmarkRate    float64 `json:"bookmarkRate"`
}

type AnalyticsResponseDto struct {
	Summary           AnalyticsSummaryDto `json:"summary"`
	DepartmentStats   []DepartmentStatDto `json:"departmentStats"`
	RatingHistogram   []RatingBucketDto   `json:"ratingHistogram"`
	PerformanceTrends []TrendPointDto     `json:"performanceTrends"`
}

package service

import (
	"math"
	"testing"

	"talentboard/internal/core"
)

func analyticsEmployees() []core.Employee {
	return []core.Employee{
		{ID: 1, Company: core.Company{Department: "Engineering"}, Rating: 4.6},
		{ID: 2, Company: core.Company{Department: "Engineering"}, Rating: 3.0},
		{ID: 3, Company: core.Company{Department: "Sales"}, Rating: 4.9},
	}
}

func TestDepartmentStats(t *testing.T) {
	stats := DepartmentStats(analyticsEmployees())

	if len(stats) != 2 {
		t.Fatalf("stats = %d departments, want 2", len(stats))
	}
	// 依首次出現順序
	if stats[0].Department != "Engineering" || stats[1].Department != "Sales" {
		t.Fatalf("department order = [%s %s]", stats[0].Department, stats[1].Department)
	}
	if stats[0].EmployeeCount != 2 {
		t.Errorf("Engineering count = %d, want 2", stats[0].EmployeeCount)
	}
	if math.Abs(stats[0].AverageRating-3.8) > 1e-9 {
		t.Errorf("Engineering average = %v, want 3.8", stats[0].AverageRating)
	}
	if stats[1].EmployeeCount != 1 || math.Abs(stats[1].AverageRating-4.9) > 1e-9 {
		t.Errorf("Sales = {%d %v}, want {1 4.9}", stats[1].EmployeeCount, stats[1].AverageRating)
	}
}

// running mean 的結果必須與 sum/count 一致
func TestDepartmentStatsMatchesSumOverCount(t *testing.T) {
	employees := make([]core.Employee, 0, 100)
	ratings := []float64{1.1, 2.7, 3.3, 4.9, 5.0, 2.2, 3.8}
	var sum float64
	for i := 0; i < 100; i++ {
		r := ratings[i%len(ratings)]
		sum += r
		employees = append(employees, core.Employee{ID: i, Company: core.Company{Department: "Ops"}, Rating: r})
	}

	stats := DepartmentStats(employees)

	if len(stats) != 1 {
		t.Fatalf("stats = %d, want 1", len(stats))
	}
	want := sum / 100
	if math.Abs(stats[0].AverageRating-want) > 1e-9 {
		t.Errorf("running mean = %v, sum/count = %v", stats[0].AverageRating, want)
	}
}

func TestRatingHistogram(t *testing.T) {
	employees := []core.Employee{
		{Rating: 1.0}, {Rating: 1.9},
		{Rating: 3.5},
		{Rating: 4.0}, {Rating: 4.99},
		{Rating: 5.0},
	}

	buckets := RatingHistogram(employees)

	if len(buckets) != 5 {
		t.Fatalf("buckets = %d, want 5 (always all five)", len(buckets))
	}
	wantCounts := []int{2, 0, 1, 2, 1}
	for i, want := range wantCounts {
		if buckets[i].Bucket != i+1 {
			t.Errorf("buckets[%d].Bucket = %d, want %d", i, buckets[i].Bucket, i+1)
		}
		if buckets[i].Count != want {
			t.Errorf("bucket %d count = %d, want %d", i+1, buckets[i].Count, want)
		}
	}
}

func TestSummary(t *testing.T) {
	state := core.NewInitialState()
	state.Employees = analyticsEmployees()
	state.BookmarkedIDs = []int{1}

	summary := Summary(state)

	if summary.TotalEmployees != 3 {
		t.Errorf("TotalEmployees = %d", summary.TotalEmployees)
	}
	if math.Abs(summary.AverageRating-(4.6+3.0+4.9)/3) > 1e-9 {
		t.Errorf("AverageRating = %v", summary.AverageRating)
	}
	// 門檻為 >= 4.5
	if summary.TopPerformers != 2 {
		t.Errorf("TopPerformers = %d, want 2", summary.TopPerformers)
	}
	if summary.BookmarkedCount != 1 {
		t.Errorf("BookmarkedCount = %d, want 1", summary.BookmarkedCount)
	}
	if math.Abs(summary.BookmarkRate-100.0/3) > 1e-9 {
		t.Errorf("BookmarkRate = %v, want %v", summary.BookmarkRate, 100.0/3)
	}
}

func TestSummaryEmptyState(t *testing.T) {
	summary := Summary(core.NewInitialState())

	if summary.AverageRating != 0 || summary.BookmarkRate != 0 {
		t.Errorf("empty state must not divide by zero: %+v", summary)
	}
	if summary.TotalEmployees != 0 || summary.TopPerformers != 0 {
		t.Errorf("empty state summary = %+v", summary)
	}
}

func TestPerformanceTrends(t *testing.T) {
	trends := performanceTrends(21)

	if len(trends) != 6 {
		t.Fatalf("trends = %d points, want 6", len(trends))
	}
	if trends[0].Month != "Jan" || trends[0].AvgRating != 3.8 || trends[0].Bookmarks != 5 {
		t.Errorf("Jan = %+v", trends[0])
	}
	last := trends[len(trends)-1]
	if last.Month != "Jun" || last.Bookmarks != 21 {
		t.Errorf("Jun should carry the live bookmark count, got %+v", last)
	}

	// 底稿不能被覆寫
	if trendBaseline[len(trendBaseline)-1].Bookmarks != 0 {
		t.Error("baseline mutated by performanceTrends")
	}
}

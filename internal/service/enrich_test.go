package service

import (
	"testing"
	"time"

	"talentboard/internal/core"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func TestEnrichRanges(t *testing.T) {
	enricher := NewSeededEnricher(42, fixedNow)

	for i := 0; i < 200; i++ {
		employee := enricher.Enrich(core.Employee{ID: i, FirstName: "Test"})

		if employee.Rating < 1.0 || employee.Rating > 5.0 {
			t.Fatalf("rating %v out of [1, 5]", employee.Rating)
		}
		// 評分固定一位小數
		if employee.Rating != float64(int(employee.Rating*10+0.5))/10 {
			t.Errorf("rating %v not rounded to one decimal", employee.Rating)
		}

		if len(employee.Projects) < 1 || len(employee.Projects) > 4 {
			t.Fatalf("projects = %d, want 1..4", len(employee.Projects))
		}
		// 專案必須是目錄的前綴，順序固定
		for j, project := range employee.Projects {
			if project != projectCatalog[j] {
				t.Fatalf("projects[%d] = %q, want catalog prefix %q", j, project, projectCatalog[j])
			}
		}

		if len(employee.Feedback) < 1 || len(employee.Feedback) > 3 {
			t.Fatalf("feedback = %d, want 1..3", len(employee.Feedback))
		}
		for _, fb := range employee.Feedback {
			if fb.Rating < 4 || fb.Rating > 5 {
				t.Errorf("feedback rating = %d, want 4 or 5", fb.Rating)
			}
			date, err := time.Parse("2006-01-02", fb.Date)
			if err != nil {
				t.Fatalf("feedback date %q: %v", fb.Date, err)
			}
			if date.After(fixedNow()) || fixedNow().Sub(date) > 91*24*time.Hour {
				t.Errorf("feedback date %q outside the last 90 days", fb.Date)
			}
		}

		if len(employee.PerformanceHistory) != 6 {
			t.Fatalf("performance history = %d months, want 6", len(employee.PerformanceHistory))
		}
		for j, record := range employee.PerformanceHistory {
			if record.Month != performanceMonths[j] {
				t.Errorf("month[%d] = %q, want %q", j, record.Month, performanceMonths[j])
			}
			if record.Rating < 3.0 || record.Rating > 5.0 {
				t.Errorf("history rating %v out of [3, 5]", record.Rating)
			}
			if record.Goals < 3 || record.Goals > 7 {
				t.Errorf("goals = %d, want 3..7", record.Goals)
			}
			if record.Completed < 2 || record.Completed > 6 {
				t.Errorf("completed = %d, want 2..6", record.Completed)
			}
		}
	}
}

func TestEnrichKeepsSourceFields(t *testing.T) {
	enricher := NewSeededEnricher(1, fixedNow)
	raw := core.Employee{
		ID:        12,
		FirstName: "Amy",
		LastName:  "Chen",
		Email:     "amy@corp.com",
		Company:   core.Company{Department: "Engineering", Title: "Engineer"},
	}

	enriched := enricher.Enrich(raw)

	if enriched.ID != 12 || enriched.FirstName != "Amy" || enriched.Email != "amy@corp.com" {
		t.Errorf("source identity fields changed: %+v", enriched)
	}
	if enriched.Company.Department != "Engineering" {
		t.Errorf("department changed to %q", enriched.Company.Department)
	}
}

func TestEnrichDeterministicWithSeed(t *testing.T) {
	a := NewSeededEnricher(7, fixedNow).Enrich(core.Employee{ID: 1})
	b := NewSeededEnricher(7, fixedNow).Enrich(core.Employee{ID: 1})

	if a.Rating != b.Rating {
		t.Errorf("same seed produced different ratings: %v vs %v", a.Rating, b.Rating)
	}
	if len(a.Projects) != len(b.Projects) || len(a.Feedback) != len(b.Feedback) {
		t.Error("same seed produced different shapes")
	}
}

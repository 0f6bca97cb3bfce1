package view

import (
	"testing"

	"talentboard/internal/core"
)

func sampleState() *core.State {
	state := core.NewInitialState()
	state.Loading = false
	state.Employees = []core.Employee{
		{ID: 1, FirstName: "Amy", LastName: "Chen", Email: "amy@corp.com", Company: core.Company{Department: "Engineering"}, Rating: 4.6},
		{ID: 2, FirstName: "Bob", LastName: "Smith", Email: "bob@corp.com", Company: core.Company{Department: "Sales"}, Rating: 3.0},
		{ID: 3, FirstName: "Cara", LastName: "Jones", Email: "cara@corp.com", Company: core.Company{Department: "Engineering"}, Rating: 2.4},
		{ID: 4, FirstName: "Dan", LastName: "Ames", Email: "dan@corp.com", Company: core.Company{Department: "Marketing"}, Rating: 5.0},
	}
	return state
}

func ids(employees []core.Employee) []int {
	out := make([]int, len(employees))
	for i, e := range employees {
		out[i] = e.ID
	}
	return out
}

func TestComputeFiltering(t *testing.T) {
	tests := []struct {
		name        string
		searchTerm  string
		departments []string
		ratings     []int
		wantIDs     []int
	}{
		{"no filters returns everyone", "", nil, nil, []int{1, 2, 3, 4}},
		{"search by first name", "amy", nil, nil, []int{1}},
		{"search is case-insensitive", "AMY", nil, nil, []int{1}},
		{"search matches email", "bob@", nil, nil, []int{2}},
		{"search matches department", "engineering", nil, nil, []int{1, 3}},
		{"department filter", "", []string{"Engineering"}, nil, []int{1, 3}},
		{"multi department filter", "", []string{"Sales", "Marketing"}, nil, []int{2, 4}},
		{"rating filter floors values", "", nil, []int{4}, []int{1}},
		{"rating five includes exact 5.0", "", nil, []int{5}, []int{4}},
		{"filters are conjunctive", "a", []string{"Engineering"}, []int{2}, []int{3}},
		{"no match", "zzz", nil, nil, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := sampleState()
			state.SearchTerm = tt.searchTerm
			state.DepartmentFilter = tt.departments
			state.RatingFilter = tt.ratings

			result := NewEngine().Compute(state)

			got := ids(result.FilteredEmployees)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("filtered ids = %v, want %v", got, tt.wantIDs)
			}
			for i := range got {
				if got[i] != tt.wantIDs[i] {
					t.Fatalf("filtered ids = %v, want %v", got, tt.wantIDs)
				}
			}
			if result.FilteredCount != len(tt.wantIDs) {
				t.Errorf("FilteredCount = %d, want %d", result.FilteredCount, len(tt.wantIDs))
			}
			if result.TotalEmployees != 4 {
				t.Errorf("TotalEmployees = %d, want 4", result.TotalEmployees)
			}
		})
	}
}

func TestComputeDepartmentsIgnoreFilters(t *testing.T) {
	state := sampleState()
	state.DepartmentFilter = []string{"Sales"}

	result := NewEngine().Compute(state)

	want := []string{"Engineering", "Sales", "Marketing"}
	if len(result.Departments) != len(want) {
		t.Fatalf("departments = %v, want %v", result.Departments, want)
	}
	for i := range want {
		if result.Departments[i] != want[i] {
			t.Errorf("departments[%d] = %q, want %q (first-seen order)", i, result.Departments[i], want[i])
		}
	}
}

func TestComputeMemoization(t *testing.T) {
	engine := NewEngine()
	state := sampleState()
	state.SearchTerm = "a"

	first := engine.Compute(state)
	second := engine.Compute(state)

	// 輸入未變：回傳的 slice 必須是同一個
	if len(first.FilteredEmployees) == 0 || &first.FilteredEmployees[0] != &second.FilteredEmployees[0] {
		t.Error("unchanged inputs should hit the cache")
	}
	if &first.Departments[0] != &second.Departments[0] {
		t.Error("departments cache missed with unchanged employees")
	}

	// 換搜尋字串：filtered 重算、departments 快取不動
	changed := *state
	changed.SearchTerm = "bob"
	third := engine.Compute(&changed)
	if len(third.FilteredEmployees) != 1 || third.FilteredEmployees[0].ID != 2 {
		t.Fatalf("recompute after input change failed, ids = %v", ids(third.FilteredEmployees))
	}
	if &third.Departments[0] != &first.Departments[0] {
		t.Error("departments should stay cached when only the search term changes")
	}
}

func TestRatingBucket(t *testing.T) {
	tests := []struct {
		rating float64
		want   int
	}{
		{1.0, 1},
		{1.9, 1},
		{3.999, 3},
		{4.5, 4},
		{5.0, 5},
	}
	for _, tt := range tests {
		if got := RatingBucket(tt.rating); got != tt.want {
			t.Errorf("RatingBucket(%v) = %d, want %d", tt.rating, got, tt.want)
		}
	}
}

package store

import (
	"testing"

	"talentboard/internal/core"
)

func testEmployees() []core.Employee {
	return []core.Employee{
		{ID: 1, FirstName: "Amy", Company: core.Company{Department: "Engineering"}, Rating: 4.8},
		{ID: 2, FirstName: "Bob", Company: core.Company{Department: "Sales"}, Rating: 3.0},
		{ID: 3, FirstName: "Cara", Company: core.Company{Department: "Engineering"}, Rating: 2.4},
	}
}

func TestApplySetEmployees(t *testing.T) {
	state := core.NewInitialState()
	employees := testEmployees()

	next := apply(state, SetEmployees{Employees: employees})

	if next.Loading {
		t.Error("SetEmployees should clear loading")
	}
	if len(next.Employees) != 3 {
		t.Fatalf("employees = %d, want 3", len(next.Employees))
	}
	if len(state.Employees) != 0 {
		t.Error("previous snapshot must not be mutated")
	}
}

func TestApplySetError(t *testing.T) {
	state := core.NewInitialState()

	next := apply(state, SetError{Message: "Failed to fetch employees"})

	if next.Error != "Failed to fetch employees" {
		t.Errorf("error = %q", next.Error)
	}
	if next.Loading {
		t.Error("SetError should clear loading")
	}

	cleared := apply(next, SetError{Message: ""})
	if cleared.Error != "" {
		t.Errorf("empty message should clear error, got %q", cleared.Error)
	}
}

func TestApplyToggleBookmark(t *testing.T) {
	state := core.NewInitialState()

	on := apply(state, ToggleBookmark{EmployeeID: 7})
	if !on.IsBookmarked(7) {
		t.Fatal("first toggle should add the id")
	}

	off := apply(on, ToggleBookmark{EmployeeID: 7})
	if off.IsBookmarked(7) {
		t.Fatal("second toggle should remove the id")
	}
	if len(off.BookmarkedIDs) != 0 {
		t.Errorf("BookmarkedIDs = %v, want empty", off.BookmarkedIDs)
	}

	// 名單載入前也允許收藏
	if !on.IsBookmarked(7) {
		t.Error("earlier snapshot changed by later toggle")
	}
}

func TestApplyToggleBookmarkKeepsOrder(t *testing.T) {
	state := core.NewInitialState()
	for _, id := range []int{3, 1, 2} {
		state = apply(state, ToggleBookmark{EmployeeID: id})
	}

	state = apply(state, ToggleBookmark{EmployeeID: 1})

	want := []int{3, 2}
	if len(state.BookmarkedIDs) != len(want) {
		t.Fatalf("BookmarkedIDs = %v, want %v", state.BookmarkedIDs, want)
	}
	for i, id := range want {
		if state.BookmarkedIDs[i] != id {
			t.Errorf("BookmarkedIDs[%d] = %d, want %d", i, state.BookmarkedIDs[i], id)
		}
	}
}

func TestApplyPromoteEmployee(t *testing.T) {
	tests := []struct {
		name       string
		id         int
		wantRating float64
	}{
		{"normal increment", 2, 3.5},
		{"clamped at five", 1, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := apply(core.NewInitialState(), SetEmployees{Employees: testEmployees()})

			next := apply(state, PromoteEmployee{EmployeeID: tt.id})

			employee := next.FindEmployee(tt.id)
			if employee == nil {
				t.Fatal("employee disappeared after promotion")
			}
			if employee.Rating != tt.wantRating {
				t.Errorf("rating = %v, want %v", employee.Rating, tt.wantRating)
			}

			prev := state.FindEmployee(tt.id)
			if prev.Rating == employee.Rating {
				t.Error("previous snapshot rating changed")
			}
		})
	}
}

func TestApplyPromoteUnknownIDIsNoop(t *testing.T) {
	state := apply(core.NewInitialState(), SetEmployees{Employees: testEmployees()})

	next := apply(state, PromoteEmployee{EmployeeID: 99})

	// 未知 id 不得換掉 Employees 的底層陣列，view 快取才不會失效
	if &next.Employees[0] != &state.Employees[0] {
		t.Error("unknown id should leave the employees slice identity unchanged")
	}
}

func TestApplyFilterActions(t *testing.T) {
	state := core.NewInitialState()

	state = apply(state, SetSearchTerm{Term: "  Amy "})
	if state.SearchTerm != "  Amy " {
		t.Errorf("search term must be stored verbatim, got %q", state.SearchTerm)
	}

	departments := []string{"Engineering"}
	state = apply(state, SetDepartmentFilter{Departments: departments})
	if len(state.DepartmentFilter) != 1 || state.DepartmentFilter[0] != "Engineering" {
		t.Errorf("department filter = %v", state.DepartmentFilter)
	}

	state = apply(state, SetRatingFilter{Ratings: []int{4, 5}})
	if len(state.RatingFilter) != 2 {
		t.Errorf("rating filter = %v", state.RatingFilter)
	}

	// 整組替換成空集合 = 清除篩選
	state = apply(state, SetDepartmentFilter{Departments: []string{}})
	if len(state.DepartmentFilter) != 0 {
		t.Errorf("department filter should be cleared, got %v", state.DepartmentFilter)
	}
}

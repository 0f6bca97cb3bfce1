package store

import (
	"math"

	"talentboard/internal/core"
)

// apply 為純轉移函式 (State, Action) → State：永遠回傳全新快照，
// 不就地修改輸入。未被動作觸及的 slice 沿用原本的底層陣列，
// 下游（view 套件）因此能以 slice identity 判斷「有沒有變」。
func apply(state *core.State, action Action) *core.State {
	next := *state

	switch a := action.(type) {
	case SetEmployees:
		next.Employees = a.Employees
		next.Loading = false

	case SetLoading:
		next.Loading = a.Loading

	case SetError:
		next.Error = a.Message
		next.Loading = false

	case ToggleBookmark:
		if state.IsBookmarked(a.EmployeeID) {
			ids := make([]int, 0, len(state.BookmarkedIDs))
			for _, id := range state.BookmarkedIDs {
				if id != a.EmployeeID {
					ids = append(ids, id)
				}
			}
			next.BookmarkedIDs = ids
		} else {
			ids := make([]int, len(state.BookmarkedIDs), len(state.BookmarkedIDs)+1)
			copy(ids, state.BookmarkedIDs)
			next.BookmarkedIDs = append(ids, a.EmployeeID)
		}

	case SetSearchTerm:
		next.SearchTerm = a.Term

	case SetDepartmentFilter:
		next.DepartmentFilter = a.Departments

	case SetRatingFilter:
		next.RatingFilter = a.Ratings

	case PromoteEmployee:
		for i := range state.Employees {
			if state.Employees[i].ID != a.EmployeeID {
				continue
			}
			employees := make([]core.Employee, len(state.Employees))
			copy(employees, state.Employees)
			employees[i].Rating = math.Min(5.0, employees[i].Rating+0.5)
			next.Employees = employees
			break
		}
	}

	return &next
}

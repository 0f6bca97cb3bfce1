// Package view 由目前的 State 推導畫面要用的資料：
// 符合搜尋/篩選條件的員工子集合，以及部門清單。
// 結果對輸入做 memoization：reducer 整組替換 slice，
// 所以 slice identity 沒變就代表輸入沒變，直接回傳快取。
package view

import (
	"math"
	"strings"
	"sync"

	"talentboard/internal/core"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(NewEngine)

// Result 為一次推導的完整輸出
type Result struct {
	FilteredEmployees []core.Employee
	Departments       []string
	TotalEmployees    int
	FilteredCount     int
}

type Engine struct {
	mu sync.Mutex

	// filtered 快取與其輸入
	lastEmployees   []core.Employee
	lastSearchTerm  string
	lastDepartments []string
	lastRatings     []int
	filtered        []core.Employee
	filteredValid   bool

	// departments 只依賴員工名單
	depEmployees []core.Employee
	departments  []string
	depValid     bool
}

func NewEngine() *Engine {
	return &Engine{}
}

// Compute 是目前 State 的純函式：同一組輸入永遠得到同一個輸出，
// 且輸入沒變時回傳的 slice 與上次完全相同（快取命中）。
func (e *Engine) Compute(state *core.State) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.filteredValid ||
		!sameEmployees(e.lastEmployees, state.Employees) ||
		e.lastSearchTerm != state.SearchTerm ||
		!sameStrings(e.lastDepartments, state.DepartmentFilter) ||
		!sameInts(e.lastRatings, state.RatingFilter) {
		e.filtered = filterEmployees(state)
		e.lastEmployees = state.Employees
		e.lastSearchTerm = state.SearchTerm
		e.lastDepartments = state.DepartmentFilter
		e.lastRatings = state.RatingFilter
		e.filteredValid = true
	}

	if !e.depValid || !sameEmployees(e.depEmployees, state.Employees) {
		e.departments = distinctDepartments(state.Employees)
		e.depEmployees = state.Employees
		e.depValid = true
	}

	return Result{
		FilteredEmployees: e.filtered,
		Departments:       e.departments,
		TotalEmployees:    len(state.Employees),
		FilteredCount:     len(e.filtered),
	}
}

// filterEmployees 三個條件取交集，保留原本的載入順序
func filterEmployees(state *core.State) []core.Employee {
	term := strings.ToLower(state.SearchTerm)
	result := make([]core.Employee, 0, len(state.Employees))

	for _, employee := range state.Employees {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(employee.FirstName), term) ||
			strings.Contains(strings.ToLower(employee.LastName), term) ||
			strings.Contains(strings.ToLower(employee.Email), term) ||
			strings.Contains(strings.ToLower(employee.Company.Department), term)
		if !matchesSearch {
			continue
		}

		if len(state.DepartmentFilter) > 0 && !containsString(state.DepartmentFilter, employee.Company.Department) {
			continue
		}

		if len(state.RatingFilter) > 0 && !containsInt(state.RatingFilter, RatingBucket(employee.Rating)) {
			continue
		}

		result = append(result, employee)
	}
	return result
}

// distinctDepartments 取全部員工（不套篩選）的部門，依首次出現順序
func distinctDepartments(employees []core.Employee) []string {
	seen := make(map[string]struct{}, len(employees))
	departments := make([]string, 0, len(employees))
	for _, employee := range employees {
		department := employee.Company.Department
		if _, ok := seen[department]; ok {
			continue
		}
		seen[department] = struct{}{}
		departments = append(departments, department)
	}
	return departments
}

// RatingBucket 評分的整數 floor：5.0 落在 bucket 5，1.0–1.999… 落在 bucket 1
func RatingBucket(rating float64) int {
	return int(math.Floor(rating))
}

func containsString(haystack []string, needle string) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

func containsInt(haystack []int, needle int) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

// reducer 整組替換 slice，identity 相同即輸入未變
func sameEmployees(a, b []core.Employee) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

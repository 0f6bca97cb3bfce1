package store

import "talentboard/internal/core"

// Action 為狀態轉移的封閉集合；State 只能經由 reducer 套用這些動作改變。
// 所有動作都不會失敗：不認得的員工 id 一律靜默忽略。
type Action interface {
	isAction()
}

// SetEmployees 整批替換員工名單並結束 loading
type SetEmployees struct {
	Employees []core.Employee
}

// SetLoading 設定載入旗標
type SetLoading struct {
	Loading bool
}

// SetError 設定載入錯誤訊息並結束 loading；空字串 = 清除
type SetError struct {
	Message string
}

// ToggleBookmark 嚴格切換：在集合內就移除，不在就加入
type ToggleBookmark struct {
	EmployeeID int
}

// SetSearchTerm 原樣替換搜尋字串（不 trim、不正規化）
type SetSearchTerm struct {
	Term string
}

// SetDepartmentFilter 整組替換部門篩選
type SetDepartmentFilter struct {
	Departments []string
}

// SetRatingFilter 整組替換評分篩選（整數 1–5）
type SetRatingFilter struct {
	Ratings []int
}

// PromoteEmployee 將指定員工評分 +0.5，上限 5.0；id 不存在時為 no-op
type PromoteEmployee struct {
	EmployeeID int
}

func (SetEmployees) isAction()        {}
func (SetLoading) isAction()          {}
func (SetError) isAction()            {}
func (ToggleBookmark) isAction()      {}
func (SetSearchTerm) isAction()       {}
func (SetDepartmentFilter) isAction() {}
func (SetRatingFilter) isAction()     {}
func (PromoteEmployee) isAction()     {}

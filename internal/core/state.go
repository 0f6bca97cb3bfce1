package core

// State 為整個儀表板的應用狀態，唯一持有者是 store.Store。
// 每次 dispatch 都會產生全新的 State 快照，舊快照不再被寫入，
// 讀取端因此永遠看到完整一致的內容。
type State struct {
	// Employees 依載入順序排列
	Employees []Employee
	// BookmarkedIDs 以加入順序保存，語意上是集合（無重複）
	BookmarkedIDs []int
	// Loading 只在初始載入期間為 true
	Loading bool
	// Error 載入失敗訊息，空字串代表沒有錯誤
	Error string
	// SearchTerm 原樣保存，不做 trim / 正規化
	SearchTerm string
	// DepartmentFilter 空集合 = 不過濾
	DepartmentFilter []string
	// RatingFilter 整數 1–5，空集合 = 不過濾
	RatingFilter []int
}

// NewInitialState 應用啟動時的狀態：集合全空、Loading=true
func NewInitialState() *State {
	return &State{
		Employees:        []Employee{},
		BookmarkedIDs:    []int{},
		Loading:          true,
		DepartmentFilter: []string{},
		RatingFilter:     []int{},
	}
}

// IsBookmarked 回報 id 是否在書籤集合內
func (s *State) IsBookmarked(id int) bool {
	for _, bookmarked := range s.BookmarkedIDs {
		if bookmarked == id {
			return true
		}
	}
	return false
}

// FindEmployee 依 id 取得員工；找不到回傳 nil
func (s *State) FindEmployee(id int) *Employee {
	for i := range s.Employees {
		if s.Employees[i].ID == id {
			return &s.Employees[i]
		}
	}
	return nil
}

package dto

import "talentboard/internal/core"

// 員工列表（含目前篩選結果與部門清單）
type DirectoryResponseDto struct {
	Employees      []EmployeeResponseDto `json:"employees"`
	Departments    []string              `json:"departments"`
	TotalEmployees int                   `json:"totalEmployees"`
	FilteredCount  int                   `json:"filteredCount"`
	Loading        bool                  `json:"loading"`
	Error          string                `json:"error,omitempty"`
}

type EmployeeResponseDto struct {
	ID                 int                      `json:"id"`
	FirstName          string                   `json:"firstName"`
	LastName           string                   `json:"lastName"`
	Email              string                   `json:"email"`
	Age                int                      `json:"age"`
	Phone              string                   `json:"phone"`
	Address            core.Address             `json:"address"`
	Company            core.Company             `json:"company"`
	Image              string                   `json:"image"`
	Rating             float64                  `json:"rating"`
	Bookmarked         bool                     `json:"bookmarked"`
	Projects           []string                 `json:"projects"`
	Feedback           []core.Feedback          `json:"feedback"`
	PerformanceHistory []core.PerformanceRecord `json:"performanceHistory"`
}

// 整組替換搜尋字串與篩選條件；nil 欄位代表不更動
type UpdateFiltersDto struct {
	SearchTerm       *string   `json:"searchTerm,omitempty"`
	DepartmentFilter *[]string `json:"departmentFilter,omitempty"`
	RatingFilter     *[]int    `json:"ratingFilter,omitempty" binding:"omitempty,dive,min=1,max=5"`
}

// 書籤切換結果
type BookmarkResponseDto struct {
	EmployeeID    int   `json:"employeeId"`
	Bookmarked    bool  `json:"bookmarked"`
	BookmarkedIDs []int `json:"bookmarkedIds"`
}

// EmployeeFromCore 轉換為回應 DTO 並標記書籤狀態
func EmployeeFromCore(employee core.Employee, bookmarked bool) EmployeeResponseDto {
	return EmployeeResponseDto{
		ID:                 employee.ID,
		FirstName:          employee.FirstName,
		LastName:           employee.LastName,
		Email:              employee.Email,
		Age:                employee.Age,
		Phone:              employee.Phone,
		Address:            employee.Address,
		Company:            employee.Company,
		Image:              employee.Image,
		Rating:             employee.Rating,
		Bookmarked:         bookmarked,
		Projects:           employee.Projects,
		Feedback:           employee.Feedback,
		PerformanceHistory: employee.PerformanceHistory,
	}
}

package service

import (
	"context"

	"talentboard/internal/core"
	"talentboard/internal/dto"
	"talentboard/internal/store"
	"talentboard/internal/telemetry"
	"talentboard/internal/view"

	cErr "talentboard/internal/pkg/error"
)

// DirectoryService 是員工名錄操作的入口：查詢走 view 引擎的
// 推導結果，變更一律轉成 Store 動作。
type DirectoryService struct {
	trace      *telemetry.Trace
	metric     *telemetry.Metric
	store      *store.Store
	viewEngine *view.Engine
}

func NewDirectoryService(
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	store *store.Store,
	viewEngine *view.Engine,
) *DirectoryService {
	return &DirectoryService{
		trace:      trace,
		metric:     metric,
		store:      store,
		viewEngine: viewEngine,
	}
}

// Overview 目前狀態下的篩選結果與部門清單
func (s *DirectoryService) Overview(ctx context.Context) *dto.DirectoryResponseDto {
	_, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	state := s.store.State()
	result := s.viewEngine.Compute(state)

	s.trace.ApplyTraceAttributes(span, core.TraceDirectoryListMeta{
		SearchTerm:    state.SearchTerm,
		Departments:   state.DepartmentFilter,
		FilteredCount: result.FilteredCount,
		TotalCount:    result.TotalEmployees,
	})

	employees := make([]dto.EmployeeResponseDto, len(result.FilteredEmployees))
	for i, employee := range result.FilteredEmployees {
		employees[i] = dto.EmployeeFromCore(employee, state.IsBookmarked(employee.ID))
	}

	return &dto.DirectoryResponseDto{
		Employees:      employees,
		Departments:    result.Departments,
		TotalEmployees: result.TotalEmployees,
		FilteredCount:  result.FilteredCount,
		Loading:        state.Loading,
		Error:          state.Error,
	}
}

// Employee 依 id 取單一員工；不存在回 not-found
func (s *DirectoryService) Employee(ctx context.Context, id int) (*dto.EmployeeResponseDto, error) {
	_, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	state := s.store.State()
	employee := state.FindEmployee(id)
	if employee == nil {
		return nil, cErr.NotFound("employee not found")
	}
	response := dto.EmployeeFromCore(*employee, state.IsBookmarked(id))
	return &response, nil
}

// Departments 全部員工（不套篩選）的部門清單，首次出現順序
func (s *DirectoryService) Departments(ctx context.Context) []string {
	_, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	return s.viewEngine.Compute(s.store.State()).Departments
}

// Bookmarked 目前被書籤的員工，依載入順序
func (s *DirectoryService) Bookmarked(ctx context.Context) []dto.EmployeeResponseDto {
	_, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	state := s.store.State()
	employees := make([]dto.EmployeeResponseDto, 0, len(state.BookmarkedIDs))
	for _, employee := range state.Employees {
		if state.IsBookmarked(employee.ID) {
			employees = append(employees, dto.EmployeeFromCore(employee, true))
		}
	}
	return employees
}

// ToggleBookmark 嚴格切換書籤。id 不存在照樣切換（寬鬆策略：
// 動作不會失敗，名單載入完成前也允許先收藏）。
func (s *DirectoryService) ToggleBookmark(ctx context.Context, id int) *dto.BookmarkResponseDto {
	_, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	next := s.store.Dispatch(ctx, store.ToggleBookmark{EmployeeID: id})
	bookmarked := next.IsBookmarked(id)

	s.trace.ApplyTraceAttributes(span, core.TraceEmployeeActionMeta{
		EmployeeID: id,
		Op:         "bookmark",
		Known:      next.FindEmployee(id) != nil,
		Bookmarked: bookmarked,
	})
	if s.metric.BookmarkToggleTotal != nil {
		s.metric.BookmarkToggleTotal.Inc()
	}
	if s.metric.BookmarkedGauge != nil {
		s.metric.BookmarkedGauge.Set(float64(len(next.BookmarkedIDs)))
	}

	return &dto.BookmarkResponseDto{
		EmployeeID:    id,
		Bookmarked:    bookmarked,
		BookmarkedIDs: next.BookmarkedIDs,
	}
}

// Promote 評分 +0.5、上限 5.0；id 不存在時靜默忽略並回傳 nil
func (s *DirectoryService) Promote(ctx context.Context, id int) *dto.EmployeeResponseDto {
	_, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	next := s.store.Dispatch(ctx, store.PromoteEmployee{EmployeeID: id})
	employee := next.FindEmployee(id)

	s.trace.ApplyTraceAttributes(span, core.TraceEmployeeActionMeta{
		EmployeeID: id,
		Op:         "promote",
		Known:      employee != nil,
	})
	if s.metric.PromotionTotal != nil {
		s.metric.PromotionTotal.Inc()
	}

	if employee == nil {
		return nil
	}
	response := dto.EmployeeFromCore(*employee, next.IsBookmarked(id))
	return &response
}

// UpdateFilters 整組替換搜尋字串與篩選條件；nil 欄位不更動
func (s *DirectoryService) UpdateFilters(ctx context.Context, update *dto.UpdateFiltersDto) *dto.DirectoryResponseDto {
	_, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if update.SearchTerm != nil {
		s.store.Dispatch(ctx, store.SetSearchTerm{Term: *update.SearchTerm})
	}
	if update.DepartmentFilter != nil {
		s.store.Dispatch(ctx, store.SetDepartmentFilter{Departments: *update.DepartmentFilter})
	}
	if update.RatingFilter != nil {
		s.store.Dispatch(ctx, store.SetRatingFilter{Ratings: *update.RatingFilter})
	}

	return s.Overview(ctx)
}

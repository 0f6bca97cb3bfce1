package handler

import (
	"talentboard/internal/dto"
	"talentboard/internal/pkg/response"
	"talentboard/internal/service"
	"talentboard/internal/telemetry"
	"talentboard/utils/validate"

	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	trace            *telemetry.Trace
	directoryService *service.DirectoryService
}

func NewDirectoryHandler(trace *telemetry.Trace, directoryService *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{trace: trace, directoryService: directoryService}
}

// List 員工列表（已套用目前的搜尋與篩選條件）
func (h *DirectoryHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	response.Success(c, h.directoryService.Overview(ctx))
}

// Get 單一員工
func (h *DirectoryHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseEmployeeID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	employee, err := h.directoryService.Employee(ctx, id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, employee)
}

// Promote 晉升：評分 +0.5，上限 5.0
func (h *DirectoryHandler) Promote(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseEmployeeID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	employee := h.directoryService.Promote(ctx, id)
	if employee == nil {
		// id 不存在是寬鬆 no-op，回傳空資料而非錯誤
		response.Success(c, gin.H{"message": "employee not loaded, promotion ignored"})
		return
	}
	response.Success(c, employee)
}

// Bookmark 切換書籤
func (h *DirectoryHandler) Bookmark(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseEmployeeID(c, "employeeID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	response.Success(c, h.directoryService.ToggleBookmark(ctx, id))
}

// Bookmarked 目前被書籤的員工
func (h *DirectoryHandler) Bookmarked(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	response.Success(c, h.directoryService.Bookmarked(ctx))
}

// Departments 部門清單
func (h *DirectoryHandler) Departments(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	response.Success(c, h.directoryService.Departments(ctx))
}

// UpdateFilters 整組更新搜尋字串與篩選條件
func (h *DirectoryHandler) UpdateFilters(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.UpdateFiltersDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	response.Success(c, h.directoryService.UpdateFilters(ctx, &req))
}

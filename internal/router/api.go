package router

import (
	"talentboard/internal/handler"

	"github.com/gin-gonic/gin"
)

type ApiRouter struct {
	directoryHandler *handler.DirectoryHandler
	analyticsHandler *handler.AnalyticsHandler
	sessionHandler   *handler.SessionHandler
}

func NewApiRouter(
	directoryHandler *handler.DirectoryHandler,
	analyticsHandler *handler.AnalyticsHandler,
	sessionHandler *handler.SessionHandler,
) *ApiRouter {
	return &ApiRouter{
		directoryHandler: directoryHandler,
		analyticsHandler: analyticsHandler,
		sessionHandler:   sessionHandler,
	}
}

func (ar *ApiRouter) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/employees", ar.directoryHandler.List)
		api.GET("/employees/:employeeID", ar.directoryHandler.Get)
		api.POST("/employees/:employeeID/promote", ar.directoryHandler.Promote)
		api.POST("/employees/:employeeID/bookmark", ar.directoryHandler.Bookmark)
		api.GET("/bookmarks", ar.directoryHandler.Bookmarked)
		api.GET("/departments", ar.directoryHandler.Departments)
		api.PUT("/filters", ar.directoryHandler.UpdateFilters)
		api.GET("/analytics", ar.analyticsHandler.Dashboard)
		api.GET("/session", ar.sessionHandler.Session)
	}
}

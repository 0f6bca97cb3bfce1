package router

import (
	"talentboard/internal/handler"

	"github.com/gin-gonic/gin"
)

type AuthRouter struct {
	sessionHandler *handler.SessionHandler
}

func NewAuthRouter(
	sessionHandler *handler.SessionHandler,
) *AuthRouter {
	return &AuthRouter{
		sessionHandler: sessionHandler,
	}
}

func (ar *AuthRouter) RegisterRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", ar.sessionHandler.Login)
		auth.POST("/logout", ar.sessionHandler.Logout)
	}
}

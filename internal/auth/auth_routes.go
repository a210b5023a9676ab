package auth

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", handler.Login)
		authGroup.POST(
			"/register",
			middleware.AuthMiddleware(),
			middleware.RBACAuthorize(rbacService, "user", "write"),
			handler.Register,
		)
	}
}

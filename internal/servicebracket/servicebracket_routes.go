package servicebracket

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	brackets := r.Group("/service-brackets")
	brackets.Use(middleware.AuthMiddleware())
	{
		brackets.GET("", middleware.RBACAuthorize(rbacService, "service_bracket", "read"), handler.GetAll)
		brackets.GET("/:id", middleware.RBACAuthorize(rbacService, "service_bracket", "read"), handler.GetById)
		brackets.POST("", middleware.RBACAuthorize(rbacService, "service_bracket", "write"), handler.Create)
		brackets.PUT("/:id", middleware.RBACAuthorize(rbacService, "service_bracket", "write"), handler.Update)
		brackets.DELETE("/:id", middleware.RBACAuthorize(rbacService, "service_bracket", "delete"), handler.Delete)
	}
}

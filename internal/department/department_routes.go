package department

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	{
		departments.GET("", middleware.RBACAuthorize(rbacService, "department", "read"), handler.GetAll)
		departments.GET("/:id", middleware.RBACAuthorize(rbacService, "department", "read"), handler.GetById)
		departments.GET("/:id/incentive-history", middleware.RBACAuthorize(rbacService, "department", "read"), handler.GetIncentiveHistory)
		departments.POST("", middleware.RBACAuthorize(rbacService, "department", "write"), handler.Create)
		departments.PUT("/:id", middleware.RBACAuthorize(rbacService, "department", "write"), handler.Update)
		departments.PUT("/:id/incentive", middleware.RBACAuthorize(rbacService, "department", "write"), handler.SetIncentive)
		departments.DELETE("/:id", middleware.RBACAuthorize(rbacService, "department", "delete"), handler.Delete)
	}
}

package salaryrecord

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	records := r.Group("/salary-records")
	records.Use(middleware.AuthMiddleware())
	{
		records.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "salary_record", "read"), handler.GetByEmployee)
		records.GET("/employee/:employeeId/current", middleware.RBACAuthorize(rbacService, "salary_record", "read"), handler.GetCurrent)
		records.POST("", middleware.RBACAuthorize(rbacService, "salary_record", "write"), handler.Create)
		records.DELETE("/:id", middleware.RBACAuthorize(rbacService, "salary_record", "delete"), handler.Delete)
	}
}

package absence

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	absences := r.Group("/absences")
	absences.Use(middleware.AuthMiddleware())
	{
		absences.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "absence", "read"), handler.GetByEmployee)
		absences.GET("/employee/:employeeId/period", middleware.RBACAuthorize(rbacService, "absence", "read"), handler.GetByEmployeeAndPeriod)
		absences.POST("", middleware.RBACAuthorize(rbacService, "absence", "write"), handler.Record)
		absences.DELETE("/:id", middleware.RBACAuthorize(rbacService, "absence", "delete"), handler.Delete)
	}
}

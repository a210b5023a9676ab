package jobgrade

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	grades := r.Group("/job-grades")
	grades.Use(middleware.AuthMiddleware())
	{
		grades.GET("", middleware.RBACAuthorize(rbacService, "job_grade", "read"), handler.GetAll)
		grades.GET("/:id", middleware.RBACAuthorize(rbacService, "job_grade", "read"), handler.GetById)
		grades.POST("", middleware.RBACAuthorize(rbacService, "job_grade", "write"), handler.Create)
		grades.PUT("/:id", middleware.RBACAuthorize(rbacService, "job_grade", "write"), handler.Update)
		grades.DELETE("/:id", middleware.RBACAuthorize(rbacService, "job_grade", "delete"), handler.Delete)
	}
}

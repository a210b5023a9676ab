package absencethreshold

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	thresholds := r.Group("/absence-thresholds")
	thresholds.Use(middleware.AuthMiddleware())
	{
		thresholds.GET("", middleware.RBACAuthorize(rbacService, "absence_threshold", "read"), handler.GetAll)
		thresholds.GET("/:id", middleware.RBACAuthorize(rbacService, "absence_threshold", "read"), handler.GetById)
		thresholds.POST("", middleware.RBACAuthorize(rbacService, "absence_threshold", "write"), handler.Create)
		thresholds.PUT("/:id", middleware.RBACAuthorize(rbacService, "absence_threshold", "write"), handler.Update)
		thresholds.DELETE("/:id", middleware.RBACAuthorize(rbacService, "absence_threshold", "delete"), handler.Delete)
	}
}

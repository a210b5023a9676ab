package payroll

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware())
	{
		payroll.GET("/preview", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.PreviewAll)
		payroll.GET("/preview/:employeeId", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.Preview)

		payroll.POST("/generate",
			middleware.RBACAuthorize(rbacService, "payroll", "generate"),
			middleware.Idempotency(rdb),
			handler.Generate,
		)

		payroll.GET("/snapshots", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetSnapshotsByPeriod)
		payroll.GET("/snapshots/employee/:employeeId", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetSnapshotsByEmployee)
		payroll.GET("/snapshots/employee/:employeeId/detail", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetSnapshot)
		payroll.GET("/snapshots/employee/:employeeId/payslip", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.Payslip)
		payroll.GET("/export", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.ExportCSV)
	}
}

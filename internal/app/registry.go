package app

import (
	"database/sql"
	"path/filepath"

	"go-payroll/internal/absence"
	"go-payroll/internal/absencethreshold"
	"go-payroll/internal/auth"
	"go-payroll/internal/department"
	"go-payroll/internal/employee"
	"go-payroll/internal/jobgrade"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	"go-payroll/internal/rbac"
	"go-payroll/internal/rbac/infra"
	"go-payroll/internal/salaryrecord"
	"go-payroll/internal/servicebracket"
	"go-payroll/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	absenceRepo := absence.NewRepository(gormDB)
	absenceThresholdRepo := absencethreshold.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	jobGradeRepo := jobgrade.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	salaryRecordRepo := salaryrecord.NewRepository(gormDB)
	serviceBracketRepo := servicebracket.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Services ---
	absenceService := absence.NewService(db, absenceRepo)
	absenceThresholdService := absencethreshold.NewService(db, absenceThresholdRepo)
	authService := auth.NewService(db, authRepo, logger)
	departmentService := department.NewService(db, departmentRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	jobGradeService := jobgrade.NewService(db, jobGradeRepo)
	payrollService := payroll.NewService(db, payrollRepo, outboxRepo, logger)
	salaryRecordService := salaryrecord.NewService(db, salaryRecordRepo, logger)
	serviceBracketService := servicebracket.NewService(db, serviceBracketRepo)

	// --- Handlers ---
	absenceHandler := absence.NewHandler(absenceService)
	absenceThresholdHandler := absencethreshold.NewHandler(absenceThresholdService)
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	jobGradeHandler := jobgrade.NewHandler(jobGradeService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	rbacHandler := rbac.NewHandler(rbacService)
	salaryRecordHandler := salaryrecord.NewHandler(salaryRecordService)
	serviceBracketHandler := servicebracket.NewHandler(serviceBracketService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		absence.RegisterRoutes(api, absenceHandler, rbacService)
		absencethreshold.RegisterRoutes(api, absenceThresholdHandler, rbacService)
		auth.RegisterRoutes(api, authHandler, rbacService)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		jobgrade.RegisterRoutes(api, jobGradeHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		salaryrecord.RegisterRoutes(api, salaryRecordHandler, rbacService)
		servicebracket.RegisterRoutes(api, serviceBracketHandler, rbacService)
	}

	rbac.RegisterRoutes(router, rbacHandler)

	return nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/peoplehub/hrms-backend-go/internal/config"
	appHTTP "github.com/peoplehub/hrms-backend-go/internal/handler/http"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/cron"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/email"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/jwt"
	"github.com/peoplehub/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peoplehub/hrms-backend-go/internal/service/attendance"
	authService "github.com/peoplehub/hrms-backend-go/internal/service/auth"
	employeeService "github.com/peoplehub/hrms-backend-go/internal/service/employee"
	"github.com/peoplehub/hrms-backend-go/internal/service/master"
	payrollService "github.com/peoplehub/hrms-backend-go/internal/service/payroll"
	superadminService "github.com/peoplehub/hrms-backend-go/internal/service/superadmin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	tenantRepo := postgresql.NewTenantRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	tokenRepo := postgresql.NewRefreshTokenRepository(db)
	organisationRepo := postgresql.NewOrganisationRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	designationRepo := postgresql.NewDesignationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	superAdminRepo := postgresql.NewSuperAdminRepository(db)
	statsRepo := postgresql.NewStatsRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	templateRepo := postgresql.NewEmailTemplateRepository(db)
	emailLogRepo := postgresql.NewEmailLogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService := email.NewEmailService(cfg.SMTP, templateRepo, emailLogRepo)

	authSvc := authService.NewAuthService(db, cfg, jwtService, userRepo, tenantRepo, employeeRepo, tokenRepo)
	masterSvc := master.NewMasterService(cfg, organisationRepo, departmentRepo, designationRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, organisationRepo, departmentRepo, designationRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, organisationRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, attendanceRepo, employeeRepo)
	superAdminSvc := superadminService.NewSuperAdminService(
		jwtService,
		superAdminRepo,
		statsRepo,
		tenantRepo,
		auditRepo,
		templateRepo,
		emailLogRepo,
		tokenRepo,
		emailService,
	)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, auditRepo),
		Master:     appHTTP.NewMasterHandler(masterSvc, auditRepo),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc, auditRepo),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc, auditRepo),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc, auditRepo),
		SuperAdmin: appHTTP.NewSuperAdminHandler(superAdminSvc, auditRepo),
	}

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, tenantRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, handlers)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplehub/hrms-backend-go/internal/config"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Master     MasterHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	SuperAdmin SuperAdminHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Tenant-ID"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Tenant plane. Everything below needs a valid access token and a
		// resolved tenant.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.RequireTenant)

			r.Route("/organisations", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionManageOrganisations)).Post("/", h.Master.CreateOrganisation)
				r.With(middleware.RequirePermission(user.PermissionViewOrganisations)).Get("/", h.Master.ListOrganisations)
				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionViewOrganisations)).Get("/", h.Master.GetOrganisation)
					r.With(middleware.RequirePermission(user.PermissionManageOrganisations)).Put("/", h.Master.UpdateOrganisation)
					r.With(middleware.RequirePermission(user.PermissionManageOrganisations)).Patch("/status", h.Master.SetOrganisationStatus)
					r.With(middleware.RequirePermission(user.PermissionManageOrganisations)).Delete("/", h.Master.DeleteOrganisation)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionManageDepartments)).Post("/", h.Master.CreateDepartment)
				r.With(middleware.RequirePermission(user.PermissionViewOrganisations)).Get("/", h.Master.ListDepartments)
				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionViewOrganisations)).Get("/", h.Master.GetDepartment)
					r.With(middleware.RequirePermission(user.PermissionManageDepartments)).Put("/", h.Master.UpdateDepartment)
					r.With(middleware.RequirePermission(user.PermissionManageDepartments)).Patch("/status", h.Master.SetDepartmentStatus)
					r.With(middleware.RequirePermission(user.PermissionManageDepartments)).Delete("/", h.Master.DeleteDepartment)
				})
			})

			r.Route("/designations", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionManageDesignations)).Post("/", h.Master.CreateDesignation)
				r.With(middleware.RequirePermission(user.PermissionViewOrganisations)).Get("/", h.Master.ListDesignations)
				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionViewOrganisations)).Get("/", h.Master.GetDesignation)
					r.With(middleware.RequirePermission(user.PermissionManageDesignations)).Put("/", h.Master.UpdateDesignation)
					r.With(middleware.RequirePermission(user.PermissionManageDesignations)).Patch("/status", h.Master.SetDesignationStatus)
					r.With(middleware.RequirePermission(user.PermissionManageDesignations)).Delete("/", h.Master.DeleteDesignation)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionManageEmployees)).Post("/", h.Employee.Create)
				r.With(middleware.RequirePermission(user.PermissionViewEmployees)).Get("/", h.Employee.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.Get) // employees may read their own record
					r.With(middleware.RequirePermission(user.PermissionManageEmployees)).Put("/", h.Employee.Update)
					r.With(middleware.RequirePermission(user.PermissionManageEmployees)).Patch("/status", h.Employee.SetStatus)
					r.With(middleware.RequirePermission(user.PermissionManageEmployees)).Delete("/", h.Employee.Delete)

					r.With(middleware.RequirePermission(user.PermissionGeneratePayroll)).Put("/salary-structure", h.Payroll.UpsertSalaryStructure)
					r.With(middleware.RequirePermission(user.PermissionGeneratePayroll)).Get("/salary-structure", h.Payroll.GetSalaryStructure)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionRecordAttendance)).Post("/check-in", h.Attendance.CheckIn)
				r.With(middleware.RequirePermission(user.PermissionRecordAttendance)).Post("/check-out", h.Attendance.CheckOut)
				r.Get("/today", h.Attendance.GetToday)
				r.Get("/today/{employeeId}", h.Attendance.GetToday)
				r.Get("/my-attendance", h.Attendance.GetMyAttendance)
				r.With(middleware.RequirePermission(user.PermissionViewAttendance)).Get("/", h.Attendance.List)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionGeneratePayroll)).Post("/generate/{month}/{year}", h.Payroll.Generate)
				r.Route("/payslips", func(r chi.Router) {
					r.Get("/", h.Payroll.ListPayslips) // employees see their own slips only
					r.Get("/{id}", h.Payroll.GetPayslip)
					r.With(middleware.RequirePermission(user.PermissionManagePayslips)).Patch("/{id}/status", h.Payroll.UpdatePayslipStatus)
				})
			})
		})
	})

	// Platform plane with its own auth.
	r.Route("/super-admin", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.SuperAdmin.Login)
			r.Post("/refresh", h.SuperAdmin.RefreshToken)
			r.Post("/logout", h.SuperAdmin.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.SuperAdminOnly)

			r.Get("/dashboard", h.SuperAdmin.GetDashboard)

			r.Route("/tenants", func(r chi.Router) {
				r.Get("/", h.SuperAdmin.ListTenants)
				r.Patch("/{id}/status", h.SuperAdmin.UpdateTenantStatus)
			})

			r.Route("/audit-logs", func(r chi.Router) {
				r.Get("/", h.SuperAdmin.ListAuditLogs)
				r.Get("/stats", h.SuperAdmin.GetAuditStats)
				r.Get("/filters", h.SuperAdmin.GetAuditFilters)
			})

			r.Route("/email-templates", func(r chi.Router) {
				r.Post("/", h.SuperAdmin.CreateEmailTemplate)
				r.Get("/", h.SuperAdmin.ListEmailTemplates)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.SuperAdmin.GetEmailTemplate)
					r.Put("/", h.SuperAdmin.UpdateEmailTemplate)
					r.Delete("/", h.SuperAdmin.DeleteEmailTemplate)
					r.Post("/test-send", h.SuperAdmin.TestSendEmailTemplate)
				})
			})

			r.Route("/email-logs", func(r chi.Router) {
				r.Get("/", h.SuperAdmin.ListEmailLogs)
				r.Get("/stats", h.SuperAdmin.GetEmailLogStats)
			})
		})
	})

	return r
}

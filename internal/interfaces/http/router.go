package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Talento-api/internal/application/analytics"
	"github.com/jhoicas/Talento-api/internal/application/auth"
	"github.com/jhoicas/Talento-api/internal/application/invitation"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	InvitationUC  *invitation.InvitationUseCase
	CompanyUC     *usecase.CompanyUseCase
	UserUC        *usecase.UserUseCase
	DepartmentUC  *usecase.DepartmentUseCase
	DesignationUC *usecase.DesignationUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	LeaveUC       *usecase.LeaveUseCase
	DashboardUC   *analytics.DashboardUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.InvitationUC)

	// Invitaciones (público: quien redime aún no tiene cuenta)
	api.Post("/invitations/accept", companyHandler.AcceptInvitation)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies: alta, listado y estado son de superadmin; consulta y
	// actualización las decide el caso de uso por tenant.
	companies := protected.Group("/companies")
	companies.Post("/", RequireRole(entity.RoleSuperadmin), companyHandler.Create)
	companies.Get("/", RequireRole(entity.RoleSuperadmin), companyHandler.List)
	companies.Get("/:companyID", companyHandler.GetByID)
	companies.Put("/:companyID", companyHandler.Update)
	companies.Patch("/:companyID/status", RequireRole(entity.RoleSuperadmin), companyHandler.UpdateStatus)

	// Users (anidado por empresa)
	userHandler := NewUserHandler(deps.UserUC)
	users := companies.Group("/:companyID/users")
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id/status", userHandler.UpdateStatus)
	users.Put("/:id/password", userHandler.ChangePassword)

	// Departments
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	departments := companies.Group("/:companyID/departments")
	departments.Post("/", departmentHandler.Create)
	departments.Get("/", departmentHandler.List)
	departments.Get("/:id", departmentHandler.GetByID)
	departments.Put("/:id", departmentHandler.Update)
	departments.Delete("/:id", departmentHandler.Delete)

	// Designations
	designationHandler := NewDesignationHandler(deps.DesignationUC)
	designations := companies.Group("/:companyID/designations")
	designations.Post("/", designationHandler.Create)
	designations.Get("/", designationHandler.List)
	designations.Put("/:id", designationHandler.Update)
	designations.Delete("/:id", designationHandler.Delete)

	// Employees
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees := companies.Group("/:companyID/employees")
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Leaves
	leaveHandler := NewLeaveHandler(deps.LeaveUC)
	leaves := companies.Group("/:companyID/leaves")
	leaves.Post("/", leaveHandler.Request)
	leaves.Get("/", leaveHandler.List)
	leaves.Put("/:id/decision", leaveHandler.Decide)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	companies.Get("/:companyID/dashboard", dashboardHandler.Summary)
}

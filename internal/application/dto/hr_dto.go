package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDepartmentRequest entrada para crear un departamento o cargo.
type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// DepartmentResponse salida de un departamento (o cargo, misma forma).
type DepartmentResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DepartmentListResponse lista paginada.
type DepartmentListResponse struct {
	Items []DepartmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// CreateEmployeeRequest entrada para crear un empleado.
type CreateEmployeeRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Email         string          `json:"email" validate:"required,email"`
	DepartmentID  string          `json:"department_id" validate:"omitempty,uuid"`
	DesignationID string          `json:"designation_id" validate:"omitempty,uuid"`
	Salary        decimal.Decimal `json:"salary"`
	JoinedAt      time.Time       `json:"joined_at"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado (campos opcionales).
type UpdateEmployeeRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	DepartmentID  *string          `json:"department_id" validate:"omitempty,uuid"`
	DesignationID *string          `json:"designation_id" validate:"omitempty,uuid"`
	Salary        *decimal.Decimal `json:"salary"`
	Status        *string          `json:"status" validate:"omitempty,oneof=active inactive"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	UserID        string          `json:"user_id,omitempty"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	DepartmentID  string          `json:"department_id,omitempty"`
	DesignationID string          `json:"designation_id,omitempty"`
	Salary        decimal.Decimal `json:"salary"`
	JoinedAt      time.Time       `json:"joined_at"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateLeaveRequest entrada para solicitar una ausencia.
type CreateLeaveRequest struct {
	EmployeeID string    `json:"employee_id" validate:"required,uuid"`
	Kind       string    `json:"kind" validate:"required,oneof=vacation sick unpaid other"`
	FromDate   time.Time `json:"from_date" validate:"required"`
	ToDate     time.Time `json:"to_date" validate:"required"`
	Reason     string    `json:"reason" validate:"max=500"`
}

// DecideLeaveRequest aprobar o rechazar una solicitud pendiente.
type DecideLeaveRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// LeaveResponse salida de una solicitud de ausencia.
type LeaveResponse struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	EmployeeID string    `json:"employee_id"`
	Kind       string    `json:"kind"`
	FromDate   time.Time `json:"from_date"`
	ToDate     time.Time `json:"to_date"`
	Reason     string    `json:"reason,omitempty"`
	Status     string    `json:"status"`
	DecidedBy  string    `json:"decided_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LeaveListResponse lista paginada de ausencias.
type LeaveListResponse struct {
	Items []LeaveResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// DashboardResponse métricas agregadas del tenant.
type DashboardResponse struct {
	Headcount     int `json:"headcount"`
	Departments   int `json:"departments"`
	PendingLeaves int `json:"pending_leaves"`
}

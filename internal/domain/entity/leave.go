package entity

import "time"

// Estados válidos para Leave.
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// Tipos de ausencia (deben coincidir con el CHECK de la tabla leaves).
const (
	LeaveKindVacation = "vacation"
	LeaveKindSick     = "sick"
	LeaveKindUnpaid   = "unpaid"
	LeaveKindOther    = "other"
)

// Leave representa una solicitud de ausencia de un empleado.
// La decide un companyadmin o servicemanager de la misma empresa.
type Leave struct {
	ID         string
	CompanyID  string
	EmployeeID string
	Kind       string // ver constantes LeaveKind*
	FromDate   time.Time
	ToDate     time.Time
	Reason     string
	Status     string  // pending, approved, rejected
	DecidedBy  *string // user_id de quien aprueba/rechaza
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

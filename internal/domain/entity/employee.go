package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa la ficha laboral de una persona dentro de una empresa.
// UserID es opcional: un empleado puede existir sin cuenta de acceso.
type Employee struct {
	ID            string
	CompanyID     string
	UserID        *string
	Name          string
	Email         string
	DepartmentID  *string
	DesignationID *string
	Salary        decimal.Decimal
	JoinedAt      time.Time
	Status        string // active, inactive
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

package entity

import "time"

// Department representa un departamento dentro de una empresa.
type Department struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Designation representa un cargo dentro de una empresa.
type Designation struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

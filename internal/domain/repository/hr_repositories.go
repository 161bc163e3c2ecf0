package repository

import "github.com/jhoicas/Talento-api/internal/domain/entity"

// Puertos de persistencia de los recursos HR. Todas las operaciones van acotadas
// por companyID en la query misma: el predicado de autorización no basta si el
// lookup puede devolver filas de otro tenant.

// DepartmentRepository persistencia de departamentos.
type DepartmentRepository interface {
	Create(d *entity.Department) error
	GetByID(companyID, id string) (*entity.Department, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Department, error)
	Update(d *entity.Department) error
	Delete(companyID, id string) error
}

// DesignationRepository persistencia de cargos.
type DesignationRepository interface {
	Create(d *entity.Designation) error
	GetByID(companyID, id string) (*entity.Designation, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Designation, error)
	Update(d *entity.Designation) error
	Delete(companyID, id string) error
}

// EmployeeRepository persistencia de empleados.
type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(companyID, id string) (*entity.Employee, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Employee, error)
	Update(e *entity.Employee) error
	Delete(companyID, id string) error
}

// LeaveRepository persistencia de solicitudes de ausencia.
type LeaveRepository interface {
	Create(l *entity.Leave) error
	GetByID(companyID, id string) (*entity.Leave, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Leave, error)
	ListByEmployee(companyID, employeeID string, limit, offset int) ([]*entity.Leave, error)
	// UpdateStatus decide una solicitud pendiente; devuelve false si la fila no
	// estaba pending (decisión concurrente o estado final previo).
	UpdateStatus(companyID, id, status, decidedBy string) (bool, error)
}

// DashboardRepository métricas agregadas por empresa.
type DashboardRepository interface {
	Headcount(companyID string) (int, error)
	DepartmentCount(companyID string) (int, error)
	PendingLeaves(companyID string) (int, error)
}

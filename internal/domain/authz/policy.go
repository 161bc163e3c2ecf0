package authz

import (
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

// Principal es la identidad autenticada que el middleware de sesión adjunta a
// cada petición: id del usuario, rol y empresa (vacía para superadmin).
type Principal struct {
	UserID    string
	CompanyID string
	Role      entity.Role
}

// Predicados de rol. Funciones puras sobre el rol del principal.
func (p Principal) IsSuperadmin() bool     { return p.Role == entity.RoleSuperadmin }
func (p Principal) IsCompanyAdmin() bool   { return p.Role == entity.RoleCompanyAdmin }
func (p Principal) IsServiceManager() bool { return p.Role == entity.RoleServiceManager }
func (p Principal) IsEmployee() bool       { return p.Role == entity.RoleEmployee }

// Permission identifica una operación protegida en la tabla de permisos.
type Permission string

const (
	PermManageCompanies   Permission = "companies:manage"   // crear empresas, toggle de estado
	PermManageUsers       Permission = "users:manage"       // listar/activar/desactivar usuarios del tenant
	PermManageEmployees   Permission = "employees:manage"   // CRUD de empleados
	PermManageDepartments Permission = "departments:manage" // CRUD de departamentos y cargos
	PermDecideLeaves      Permission = "leaves:decide"      // aprobar/rechazar ausencias
	PermRequestLeaves     Permission = "leaves:request"     // solicitar ausencias
	PermViewDashboard     Permission = "dashboard:view"
)

// permissions es la tabla cerrada rol → permisos. Toda decisión de autorización
// se resuelve aquí, nunca comparando strings de rol en los handlers.
var permissions = map[entity.Role]map[Permission]bool{
	entity.RoleSuperadmin: {
		PermManageCompanies:   true,
		PermManageUsers:       true,
		PermManageEmployees:   true,
		PermManageDepartments: true,
		PermDecideLeaves:      true,
		PermRequestLeaves:     false,
		PermViewDashboard:     true,
	},
	entity.RoleCompanyAdmin: {
		PermManageCompanies:   false,
		PermManageUsers:       true,
		PermManageEmployees:   true,
		PermManageDepartments: true,
		PermDecideLeaves:      true,
		PermRequestLeaves:     true,
		PermViewDashboard:     true,
	},
	entity.RoleServiceManager: {
		PermManageCompanies:   false,
		PermManageUsers:       false,
		PermManageEmployees:   true,
		PermManageDepartments: false,
		PermDecideLeaves:      true,
		PermRequestLeaves:     true,
		PermViewDashboard:     true,
	},
	entity.RoleEmployee: {
		PermManageCompanies:   false,
		PermManageUsers:       false,
		PermManageEmployees:   false,
		PermManageDepartments: false,
		PermDecideLeaves:      false,
		PermRequestLeaves:     true,
		PermViewDashboard:     false,
	},
}

// Can indica si el rol del principal tiene el permiso. Roles fuera del conjunto
// cerrado no tienen ningún permiso.
func (p Principal) Can(perm Permission) bool {
	perms, ok := permissions[p.Role]
	if !ok {
		return false
	}
	return perms[perm]
}

// Require devuelve domain.ErrForbidden si el principal no tiene el permiso.
func (p Principal) Require(perm Permission) error {
	if !p.Can(perm) {
		return domain.ErrForbidden
	}
	return nil
}

// CanAccessCompany aplica la regla de aislamiento de tenant: una operación sobre
// una entidad de la empresa targetCompanyID solo se permite a superadmin o a un
// companyadmin de ESA empresa. Este predicado debe ir siempre acompañado de
// queries acotadas por company_id: por sí solo no impide que un lookup sin
// filtro devuelva datos de otro tenant.
func (p Principal) CanAccessCompany(targetCompanyID string) bool {
	if p.IsSuperadmin() {
		return true
	}
	return p.IsCompanyAdmin() && p.CompanyID != "" && p.CompanyID == targetCompanyID
}

// RequireCompany devuelve domain.ErrForbidden si CanAccessCompany falla.
func (p Principal) RequireCompany(targetCompanyID string) error {
	if !p.CanAccessCompany(targetCompanyID) {
		return domain.ErrForbidden
	}
	return nil
}

// SameTenant es la variante amplia usada en lecturas propias del tenant:
// cualquier rol atado a la empresa target (o superadmin) puede leer dentro de
// su propio tenant. Las mutaciones siguen pasando por RequireCompany.
func (p Principal) SameTenant(targetCompanyID string) bool {
	if p.IsSuperadmin() {
		return true
	}
	return p.CompanyID != "" && p.CompanyID == targetCompanyID
}

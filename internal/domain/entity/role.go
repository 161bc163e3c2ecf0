package entity

// Role es el conjunto cerrado de roles del sistema. Se usa un tipo propio en vez
// de comparar strings sueltos para que toda decisión de autorización pase por
// este conjunto y por la tabla de permisos de internal/domain/authz.
type Role string

const (
	RoleSuperadmin     Role = "superadmin"
	RoleCompanyAdmin   Role = "companyadmin"
	RoleServiceManager Role = "servicemanager"
	RoleEmployee       Role = "employee"
)

// Roles lista los roles válidos (para validación de entrada).
var Roles = []Role{RoleSuperadmin, RoleCompanyAdmin, RoleServiceManager, RoleEmployee}

// Valid indica si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperadmin, RoleCompanyAdmin, RoleServiceManager, RoleEmployee:
		return true
	}
	return false
}

// RequiresCompany indica si el rol debe estar atado a una empresa.
// Superadmin es el único rol global: sus decisiones de autorización nunca
// dependen de un company_id.
func (r Role) RequiresCompany() bool {
	return r != RoleSuperadmin
}

// String implementa fmt.Stringer.
func (r Role) String() string { return string(r) }

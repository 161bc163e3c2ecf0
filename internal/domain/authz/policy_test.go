package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/authz"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

const (
	companyA = "company-a"
	companyB = "company-b"
)

func principal(role entity.Role, companyID string) authz.Principal {
	return authz.Principal{UserID: "user-1", CompanyID: companyID, Role: role}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de permisos
// ──────────────────────────────────────────────────────────────────────────────

func TestCan_TablaDePermisos(t *testing.T) {
	cases := []struct {
		name string
		p    authz.Principal
		perm authz.Permission
		want bool
	}{
		{"superadmin administra empresas", principal(entity.RoleSuperadmin, ""), authz.PermManageCompanies, true},
		{"companyadmin no administra empresas", principal(entity.RoleCompanyAdmin, companyA), authz.PermManageCompanies, false},
		{"companyadmin administra usuarios", principal(entity.RoleCompanyAdmin, companyA), authz.PermManageUsers, true},
		{"servicemanager no administra usuarios", principal(entity.RoleServiceManager, companyA), authz.PermManageUsers, false},
		{"servicemanager administra empleados", principal(entity.RoleServiceManager, companyA), authz.PermManageEmployees, true},
		{"servicemanager decide ausencias", principal(entity.RoleServiceManager, companyA), authz.PermDecideLeaves, true},
		{"employee no decide ausencias", principal(entity.RoleEmployee, companyA), authz.PermDecideLeaves, false},
		{"employee solicita ausencias", principal(entity.RoleEmployee, companyA), authz.PermRequestLeaves, true},
		{"employee no ve dashboard", principal(entity.RoleEmployee, companyA), authz.PermViewDashboard, false},
		{"rol desconocido sin permisos", principal(entity.Role("invitado"), companyA), authz.PermRequestLeaves, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.Can(tc.perm))
		})
	}
}

func TestRequire_DevuelveForbidden(t *testing.T) {
	p := principal(entity.RoleEmployee, companyA)
	assert.ErrorIs(t, p.Require(authz.PermManageUsers), domain.ErrForbidden)
	assert.NoError(t, p.Require(authz.PermRequestLeaves))
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento de tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestCanAccessCompany_AislamientoDeTenant(t *testing.T) {
	// Superadmin accede a cualquier empresa.
	assert.True(t, principal(entity.RoleSuperadmin, "").CanAccessCompany(companyA))
	assert.True(t, principal(entity.RoleSuperadmin, "").CanAccessCompany(companyB))

	// Companyadmin solo a la suya.
	admin := principal(entity.RoleCompanyAdmin, companyA)
	assert.True(t, admin.CanAccessCompany(companyA))
	assert.False(t, admin.CanAccessCompany(companyB),
		"companyadmin de A no debe administrar recursos de B")

	// Roles no administradores nunca pasan RequireCompany, ni en su empresa.
	assert.False(t, principal(entity.RoleServiceManager, companyA).CanAccessCompany(companyA))
	assert.False(t, principal(entity.RoleEmployee, companyA).CanAccessCompany(companyA))

	// Un principal sin empresa (distinto de superadmin) no accede a ninguna.
	assert.False(t, principal(entity.RoleCompanyAdmin, "").CanAccessCompany(companyA))
}

func TestSameTenant_LecturasDentroDelTenant(t *testing.T) {
	// Cualquier rol atado a la empresa lee dentro de su tenant.
	assert.True(t, principal(entity.RoleEmployee, companyA).SameTenant(companyA))
	assert.True(t, principal(entity.RoleServiceManager, companyA).SameTenant(companyA))

	// Nunca el tenant ajeno.
	assert.False(t, principal(entity.RoleEmployee, companyA).SameTenant(companyB))
	assert.False(t, principal(entity.RoleCompanyAdmin, companyA).SameTenant(companyB))

	// Superadmin lee cualquiera.
	assert.True(t, principal(entity.RoleSuperadmin, "").SameTenant(companyB))
}

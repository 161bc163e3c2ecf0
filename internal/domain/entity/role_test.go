package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

func TestRole_ConjuntoCerrado(t *testing.T) {
	for _, r := range []entity.Role{
		entity.RoleSuperadmin,
		entity.RoleCompanyAdmin,
		entity.RoleServiceManager,
		entity.RoleEmployee,
	} {
		assert.True(t, r.Valid(), "rol %s debe ser válido", r)
	}

	assert.False(t, entity.Role("").Valid())
	assert.False(t, entity.Role("admin").Valid(), "los roles fuera del conjunto cerrado no existen")
}

func TestRole_RequiresCompany(t *testing.T) {
	// Superadmin es el único rol sin empresa.
	assert.False(t, entity.RoleSuperadmin.RequiresCompany())
	assert.True(t, entity.RoleCompanyAdmin.RequiresCompany())
	assert.True(t, entity.RoleServiceManager.RequiresCompany())
	assert.True(t, entity.RoleEmployee.RequiresCompany())
}

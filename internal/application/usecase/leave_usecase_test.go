package usecase_test

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/usecase"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/authz"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeLeaveRepo emula el UPDATE condicional a pending del adaptador real.
type fakeLeaveRepo struct {
	mu     sync.Mutex
	leaves map[string]*entity.Leave
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: make(map[string]*entity.Leave)}
}

func (f *fakeLeaveRepo) Create(l *entity.Leave) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *l
	f.leaves[cp.ID] = &cp
	return nil
}

func (f *fakeLeaveRepo) GetByID(companyID, id string) (*entity.Leave, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l, ok := f.leaves[id]; ok && l.CompanyID == companyID {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeLeaveRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Leave, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*entity.Leave
	for _, l := range f.leaves {
		if l.CompanyID == companyID {
			cp := *l
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeLeaveRepo) ListByEmployee(companyID, employeeID string, limit, offset int) ([]*entity.Leave, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*entity.Leave
	for _, l := range f.leaves {
		if l.CompanyID == companyID && l.EmployeeID == employeeID {
			cp := *l
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeLeaveRepo) UpdateStatus(companyID, id, status, decidedBy string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.leaves[id]
	if !ok || l.CompanyID != companyID || l.Status != entity.LeaveStatusPending {
		return false, nil
	}
	by := decidedBy
	l.Status = status
	l.DecidedBy = &by
	l.UpdatedAt = time.Now()
	return true, nil
}

// fakeEmployeeRepo almacén mínimo acotado por company_id.
type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*entity.Employee)}
}

func (f *fakeEmployeeRepo) Create(e *entity.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *e
	f.employees[cp.ID] = &cp
	return nil
}

func (f *fakeEmployeeRepo) GetByID(companyID, id string) (*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.employees[id]; ok && e.CompanyID == companyID {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*entity.Employee
	for _, e := range f.employees {
		if e.CompanyID == companyID {
			cp := *e
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeEmployeeRepo) Update(e *entity.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(companyID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.employees[id]; ok && e.CompanyID == companyID {
		delete(f.employees, id)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyA = "company-a"
	companyB = "company-b"
)

func leavePrincipal(role entity.Role, companyID string) authz.Principal {
	return authz.Principal{UserID: "decisor-1", CompanyID: companyID, Role: role}
}

func seedEmployee(t *testing.T, repo *fakeEmployeeRepo, companyID string) *entity.Employee {
	t.Helper()
	e := &entity.Employee{
		ID:        "emp-" + companyID,
		CompanyID: companyID,
		Name:      "Empleado",
		Email:     "empleado@" + companyID + ".co",
		Salary:    decimal.NewFromInt(1000),
		JoinedAt:  time.Now(),
		Status:    entity.UserStatusActive,
	}
	require.NoError(t, repo.Create(e))
	return e
}

func requestLeave(t *testing.T, uc *usecase.LeaveUseCase, p authz.Principal, companyID, employeeID string) *dto.LeaveResponse {
	t.Helper()
	out, err := uc.Request(p, companyID, dto.CreateLeaveRequest{
		EmployeeID: employeeID,
		Kind:       entity.LeaveKindVacation,
		FromDate:   time.Now().AddDate(0, 0, 7),
		ToDate:     time.Now().AddDate(0, 0, 10),
		Reason:     "vacaciones",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Request
// ──────────────────────────────────────────────────────────────────────────────

func TestLeaveRequest_EmpleadoSolicitaEnSuTenant(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	employeeRepo := newFakeEmployeeRepo()
	emp := seedEmployee(t, employeeRepo, companyA)
	uc := usecase.NewLeaveUseCase(leaveRepo, employeeRepo)

	out := requestLeave(t, uc, leavePrincipal(entity.RoleEmployee, companyA), companyA, emp.ID)
	assert.Equal(t, entity.LeaveStatusPending, out.Status)
	assert.Empty(t, out.DecidedBy)
}

func TestLeaveRequest_FechasInvertidas_Rechazada(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	employeeRepo := newFakeEmployeeRepo()
	emp := seedEmployee(t, employeeRepo, companyA)
	uc := usecase.NewLeaveUseCase(leaveRepo, employeeRepo)

	_, err := uc.Request(leavePrincipal(entity.RoleEmployee, companyA), companyA, dto.CreateLeaveRequest{
		EmployeeID: emp.ID,
		Kind:       entity.LeaveKindSick,
		FromDate:   time.Now().AddDate(0, 0, 10),
		ToDate:     time.Now().AddDate(0, 0, 7),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLeaveRequest_EmpleadoDeOtroTenant_NotFound(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	employeeRepo := newFakeEmployeeRepo()
	empB := seedEmployee(t, employeeRepo, companyB)
	uc := usecase.NewLeaveUseCase(leaveRepo, employeeRepo)

	// La query acotada por company_id no ve al empleado de B.
	_, err := uc.Request(leavePrincipal(entity.RoleEmployee, companyA), companyA, dto.CreateLeaveRequest{
		EmployeeID: empB.ID,
		Kind:       entity.LeaveKindVacation,
		FromDate:   time.Now().AddDate(0, 0, 1),
		ToDate:     time.Now().AddDate(0, 0, 2),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLeaveRequest_TenantAjeno_Forbidden(t *testing.T) {
	uc := usecase.NewLeaveUseCase(newFakeLeaveRepo(), newFakeEmployeeRepo())

	_, err := uc.Request(leavePrincipal(entity.RoleEmployee, companyA), companyB, dto.CreateLeaveRequest{
		EmployeeID: "emp-x",
		Kind:       entity.LeaveKindVacation,
		FromDate:   time.Now(),
		ToDate:     time.Now().AddDate(0, 0, 1),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Decide
// ──────────────────────────────────────────────────────────────────────────────

func TestLeaveDecide_AdminApruebaUnaVez(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	employeeRepo := newFakeEmployeeRepo()
	emp := seedEmployee(t, employeeRepo, companyA)
	uc := usecase.NewLeaveUseCase(leaveRepo, employeeRepo)

	l := requestLeave(t, uc, leavePrincipal(entity.RoleEmployee, companyA), companyA, emp.ID)

	admin := leavePrincipal(entity.RoleCompanyAdmin, companyA)
	out, err := uc.Decide(admin, companyA, l.ID, entity.LeaveStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.LeaveStatusApproved, out.Status)
	assert.Equal(t, admin.UserID, out.DecidedBy)

	// La decisión es final: el segundo intento recibe conflicto.
	_, err = uc.Decide(admin, companyA, l.ID, entity.LeaveStatusRejected)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLeaveDecide_EmployeeSinPermiso(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	employeeRepo := newFakeEmployeeRepo()
	emp := seedEmployee(t, employeeRepo, companyA)
	uc := usecase.NewLeaveUseCase(leaveRepo, employeeRepo)

	l := requestLeave(t, uc, leavePrincipal(entity.RoleEmployee, companyA), companyA, emp.ID)

	_, err := uc.Decide(leavePrincipal(entity.RoleEmployee, companyA), companyA, l.ID, entity.LeaveStatusApproved)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLeaveDecide_AdminDeOtroTenant_Forbidden(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	employeeRepo := newFakeEmployeeRepo()
	emp := seedEmployee(t, employeeRepo, companyA)
	uc := usecase.NewLeaveUseCase(leaveRepo, employeeRepo)

	l := requestLeave(t, uc, leavePrincipal(entity.RoleEmployee, companyA), companyA, emp.ID)

	_, err := uc.Decide(leavePrincipal(entity.RoleCompanyAdmin, companyB), companyA, l.ID, entity.LeaveStatusApproved)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLeaveDecide_SolicitudInexistente_NotFound(t *testing.T) {
	uc := usecase.NewLeaveUseCase(newFakeLeaveRepo(), newFakeEmployeeRepo())

	_, err := uc.Decide(leavePrincipal(entity.RoleServiceManager, companyA), companyA, "no-existe", entity.LeaveStatusApproved)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Decisiones concurrentes sobre la misma solicitud: exactamente una gana.
func TestLeaveDecide_ConcurrenciaUnaSolaDecision(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	employeeRepo := newFakeEmployeeRepo()
	emp := seedEmployee(t, employeeRepo, companyA)
	uc := usecase.NewLeaveUseCase(leaveRepo, employeeRepo)

	l := requestLeave(t, uc, leavePrincipal(entity.RoleEmployee, companyA), companyA, emp.ID)
	admin := leavePrincipal(entity.RoleCompanyAdmin, companyA)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			status := entity.LeaveStatusApproved
			if n%2 == 1 {
				status = entity.LeaveStatusRejected
			}
			_, errs[n] = uc.Decide(admin, companyA, l.ID, status)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		}
	}
	assert.Equal(t, 1, winners, "solo una decisión debe aplicarse")
}

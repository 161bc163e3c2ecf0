package invitation_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/invitation"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
	"github.com/jhoicas/Talento-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeCompanyRepo replica la semántica del claim condicional: ClaimInvitation
// solo gana si el token coincide, el estado es pending y la expiración sigue
// vigente, y en el mismo paso limpia el token. El mutex emula la atomicidad
// del UPDATE condicional en Postgres.
type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (f *fakeCompanyRepo) Create(company *entity.Company) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.companies {
		if c.Name == company.Name {
			return domain.ErrAlreadyExists
		}
	}
	cp := *company
	f.companies[cp.ID] = &cp
	return nil
}

func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.companies[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCompanyRepo) GetByName(name string) (*entity.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.companies {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*entity.Company
	for _, c := range f.companies {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeCompanyRepo) Update(company *entity.Company) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.companies[company.ID]; ok {
		c.Name = company.Name
		c.LogoURL = company.LogoURL
		c.UpdatedAt = company.UpdatedAt
	}
	return nil
}

func (f *fakeCompanyRepo) UpdateStatus(id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.companies[id]; ok && c.Status != entity.CompanyStatusPending {
		c.Status = status
	}
	return nil
}

func (f *fakeCompanyRepo) ClaimInvitation(token string) (*entity.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.companies {
		if c.Status == entity.CompanyStatusPending &&
			c.InviteToken != nil && *c.InviteToken == token &&
			c.InviteExpires != nil && c.InviteExpires.After(time.Now()) {
			c.Status = entity.CompanyStatusActive
			c.InviteToken = nil
			c.InviteExpires = nil
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) SetAdmin(companyID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.companies[companyID]; ok {
		id := userID
		c.AdminID = &id
	}
	return nil
}

// fakeUserRepo almacén mínimo de usuarios con unicidad global de email.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(user *entity.User, plainPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.MinCost)
	if err != nil {
		return err
	}
	cp := *user
	cp.PasswordHash = string(hash)
	f.users[cp.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) UpdateStatus(id, status string) error          { return nil }
func (f *fakeUserRepo) UpdatePassword(id, plainPassword string) error { return nil }
func (f *fakeUserRepo) SetResetToken(email, token string, expires time.Time) (bool, error) {
	return false, nil
}
func (f *fakeUserRepo) RedeemResetToken(token, plainNewPassword string) (*entity.User, error) {
	return nil, nil
}

// fakeTxRunner entrega los repos fake a la función transaccional. No hay
// rollback real: la atomicidad del claim la aporta el propio fakeCompanyRepo.
type fakeTxRunner struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.CompanyRepository, repository.UserRepository) error) error {
	return fn(f.companyRepo, f.userRepo)
}

// fakeMailer seguro para el despacho en goroutine.
type fakeMailer struct {
	mu    sync.Mutex
	sends []string
}

func (f *fakeMailer) Send(to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, to)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func newTestInvitationUC(companyRepo *fakeCompanyRepo, userRepo *fakeUserRepo) *invitation.InvitationUseCase {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	tx := &fakeTxRunner{companyRepo: companyRepo, userRepo: userRepo}
	return invitation.NewInvitationUseCase(companyRepo, tx, &fakeMailer{}, 24*time.Hour, "http://localhost:8080", log)
}

// inviteToken crea una empresa vía el caso de uso y devuelve su token pendiente.
func inviteToken(t *testing.T, uc *invitation.InvitationUseCase, repo *fakeCompanyRepo, name string) string {
	t.Helper()
	created, err := uc.CreateCompany(dto.CreateCompanyRequest{Name: name, AdminEmail: "admin@" + name + ".co"})
	require.NoError(t, err)
	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.InviteToken, "la empresa pendiente debe guardar su token")
	return *stored.InviteToken
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateCompany
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCompany_NacePendingConToken(t *testing.T) {
	companyRepo := newFakeCompanyRepo()
	uc := newTestInvitationUC(companyRepo, newFakeUserRepo())

	out, err := uc.CreateCompany(dto.CreateCompanyRequest{Name: "Acme", AdminEmail: "admin@acme.co"})
	require.NoError(t, err)
	assert.Equal(t, entity.CompanyStatusPending, out.Status)
	assert.Empty(t, out.AdminID, "el admin nace al redimir, no al invitar")

	stored, _ := companyRepo.GetByID(out.ID)
	require.NotNil(t, stored.InviteToken)
	require.NotNil(t, stored.InviteExpires)
	assert.True(t, stored.InviteExpires.After(time.Now()))
}

func TestCreateCompany_NombreDuplicado_Conflict(t *testing.T) {
	companyRepo := newFakeCompanyRepo()
	uc := newTestInvitationUC(companyRepo, newFakeUserRepo())

	_, err := uc.CreateCompany(dto.CreateCompanyRequest{Name: "Acme", AdminEmail: "a@acme.co"})
	require.NoError(t, err)

	_, err = uc.CreateCompany(dto.CreateCompanyRequest{Name: "Acme", AdminEmail: "b@acme.co"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// AcceptInvitation
// ──────────────────────────────────────────────────────────────────────────────

func TestAcceptInvitation_ActivaEmpresaYCreaAdmin(t *testing.T) {
	companyRepo := newFakeCompanyRepo()
	userRepo := newFakeUserRepo()
	uc := newTestInvitationUC(companyRepo, userRepo)
	tok := inviteToken(t, uc, companyRepo, "acme")

	out, err := uc.AcceptInvitation(context.Background(), dto.AcceptInvitationRequest{
		Token:    tok,
		Name:     "Ana Admin",
		Email:    "ana@acme.co",
		Password: "password-seguro",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.CompanyStatusActive, out.Company.Status)
	assert.Equal(t, out.User.ID, out.Company.AdminID, "la empresa debe referenciar a su primer admin")
	assert.Equal(t, string(entity.RoleCompanyAdmin), out.User.Role)
	assert.Equal(t, out.Company.ID, out.User.CompanyID)

	// El token quedó consumido en el claim.
	stored, _ := companyRepo.GetByID(out.Company.ID)
	assert.Nil(t, stored.InviteToken)

	// El admin quedó persistido con password hasheado.
	admin, _ := userRepo.GetByEmail("ana@acme.co")
	require.NotNil(t, admin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("password-seguro")))
}

func TestAcceptInvitation_TokenDesconocido_Rechazado(t *testing.T) {
	uc := newTestInvitationUC(newFakeCompanyRepo(), newFakeUserRepo())

	_, err := uc.AcceptInvitation(context.Background(), dto.AcceptInvitationRequest{
		Token: "token-inexistente", Name: "Ana", Email: "ana@acme.co", Password: "password-seguro",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidOrExpiredToken)
}

func TestAcceptInvitation_TokenExpirado_Rechazado(t *testing.T) {
	companyRepo := newFakeCompanyRepo()
	uc := newTestInvitationUC(companyRepo, newFakeUserRepo())
	tok := inviteToken(t, uc, companyRepo, "acme")

	// Vencer el token manualmente.
	companyRepo.mu.Lock()
	for _, c := range companyRepo.companies {
		past := time.Now().Add(-time.Minute)
		c.InviteExpires = &past
	}
	companyRepo.mu.Unlock()

	_, err := uc.AcceptInvitation(context.Background(), dto.AcceptInvitationRequest{
		Token: tok, Name: "Ana", Email: "ana@acme.co", Password: "password-seguro",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidOrExpiredToken)
}

func TestAcceptInvitation_SegundaRedencionFalla(t *testing.T) {
	companyRepo := newFakeCompanyRepo()
	uc := newTestInvitationUC(companyRepo, newFakeUserRepo())
	tok := inviteToken(t, uc, companyRepo, "acme")

	_, err := uc.AcceptInvitation(context.Background(), dto.AcceptInvitationRequest{
		Token: tok, Name: "Ana", Email: "ana@acme.co", Password: "password-seguro",
	})
	require.NoError(t, err)

	_, err = uc.AcceptInvitation(context.Background(), dto.AcceptInvitationRequest{
		Token: tok, Name: "Beto", Email: "beto@acme.co", Password: "password-seguro",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidOrExpiredToken,
		"el token consumido no debe redimir otra vez")
}

// Redenciones concurrentes del mismo token: exactamente una gana.
func TestAcceptInvitation_ConcurrenciaUnSoloGanador(t *testing.T) {
	companyRepo := newFakeCompanyRepo()
	uc := newTestInvitationUC(companyRepo, newFakeUserRepo())
	tok := inviteToken(t, uc, companyRepo, "acme")

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = uc.AcceptInvitation(context.Background(), dto.AcceptInvitationRequest{
				Token:    tok,
				Name:     "Admin",
				Email:    "admin" + string(rune('a'+n)) + "@acme.co",
				Password: "password-seguro",
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidOrExpiredToken)
		}
	}
	assert.Equal(t, 1, winners, "debe haber exactamente un ganador por token")
}

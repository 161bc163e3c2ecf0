package invitation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Talento-api/internal/application/auth"
	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/ports"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
	"github.com/jhoicas/Talento-api/pkg/logger"
	"github.com/jhoicas/Talento-api/pkg/token"
)

// InvitationUseCase alta de empresas por invitación: creación en pending con
// token, y redención del token que activa la empresa y crea su primer admin.
type InvitationUseCase struct {
	companyRepo repository.CompanyRepository
	txRunner    TxRunner
	mailer      ports.Mailer
	inviteTTL   time.Duration
	baseURL     string
	log         *logger.Logger
}

// NewInvitationUseCase construye el caso de uso de invitaciones.
func NewInvitationUseCase(companyRepo repository.CompanyRepository, txRunner TxRunner, mailer ports.Mailer, inviteTTL time.Duration, baseURL string, log *logger.Logger) *InvitationUseCase {
	return &InvitationUseCase{
		companyRepo: companyRepo,
		txRunner:    txRunner,
		mailer:      mailer,
		inviteTTL:   inviteTTL,
		baseURL:     baseURL,
		log:         log,
	}
}

// CreateCompany crea la empresa en estado pending con un token de invitación
// fresco (24h por defecto) y despacha el correo al futuro admin de forma
// asíncrona. El usuario admin NO se crea aquí: nace al redimir la invitación.
// Devuelve domain.ErrAlreadyExists si el nombre ya está tomado.
func (uc *InvitationUseCase) CreateCompany(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, err := uc.companyRepo.GetByName(in.Name)
	if err != nil {
		return nil, fmt.Errorf("crear empresa: buscar nombre: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAlreadyExists
	}

	tok, err := token.New()
	if err != nil {
		return nil, fmt.Errorf("crear empresa: generar token: %w", err)
	}
	now := time.Now()
	expires := now.Add(uc.inviteTTL)
	company := &entity.Company{
		ID:            uuid.New().String(),
		Name:          in.Name,
		LogoURL:       in.LogoURL,
		Status:        entity.CompanyStatusPending,
		InviteToken:   &tok,
		InviteExpires: &expires,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}

	// Fire-and-forget: la empresa ya quedó persistida; un fallo de correo se
	// registra y la reentrega es un asunto operativo, no del protocolo.
	link := fmt.Sprintf("%s/invitations/accept?token=%s", uc.baseURL, tok)
	adminEmail := in.AdminEmail
	go func() {
		body := fmt.Sprintf("Fuiste invitado a administrar %s en talento-pro.\n\nActiva tu empresa en: %s\n\nLa invitación vence en %s.", company.Name, link, uc.inviteTTL)
		if err := uc.mailer.Send(adminEmail, "Invitación a talento-pro", body); err != nil {
			uc.log.Error().Err(err).Str("email", adminEmail).Str("company_id", company.ID).Msg("envío de correo de invitación")
		}
	}()

	return ToCompanyResponse(company), nil
}

// AcceptInvitation redime una invitación: en UNA transacción reclama la empresa
// (UPDATE condicional: token coincide, pending y vigente), crea el usuario
// companyadmin y fija la back-reference admin_id. El claim condicional garantiza
// como máximo un ganador: una segunda redención concurrente del mismo token ve
// cero filas y recibe domain.ErrInvalidOrExpiredToken.
func (uc *InvitationUseCase) AcceptInvitation(ctx context.Context, in dto.AcceptInvitationRequest) (*dto.AcceptInvitationResponse, error) {
	var out dto.AcceptInvitationResponse
	err := uc.txRunner.Run(ctx, func(companyRepo repository.CompanyRepository, userRepo repository.UserRepository) error {
		company, err := companyRepo.ClaimInvitation(in.Token)
		if err != nil {
			return fmt.Errorf("aceptar invitación: claim: %w", err)
		}
		if company == nil {
			return domain.ErrInvalidOrExpiredToken
		}

		now := time.Now()
		admin := &entity.User{
			ID:        uuid.New().String(),
			CompanyID: company.ID,
			Email:     in.Email,
			Name:      in.Name,
			Role:      entity.RoleCompanyAdmin,
			Status:    entity.UserStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		// El hash del password ocurre dentro del almacén de credenciales.
		if err := userRepo.Create(admin, in.Password); err != nil {
			return err
		}
		if err := companyRepo.SetAdmin(company.ID, admin.ID); err != nil {
			return fmt.Errorf("aceptar invitación: fijar admin: %w", err)
		}

		company.AdminID = &admin.ID
		out.Company = *ToCompanyResponse(company)
		out.User = *auth.ToUserResponse(admin)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("company_id", out.Company.ID).Str("admin_id", out.User.ID).Msg("invitación redimida, empresa activada")
	return &out, nil
}

// ToCompanyResponse proyecta una Company a su DTO (sin token de invitación).
func ToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	resp := &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		LogoURL:   c.LogoURL,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.AdminID != nil {
		resp.AdminID = *c.AdminID
	}
	return resp
}

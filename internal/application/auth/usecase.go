package auth

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/ports"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
	"github.com/jhoicas/Talento-api/pkg/jwt"
	"github.com/jhoicas/Talento-api/pkg/logger"
	"github.com/jhoicas/Talento-api/pkg/token"
)

// JWTConfig configuración para la emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int // 1440 = 24 horas
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y ciclo de reset de password.
type AuthUseCase struct {
	userRepo repository.UserRepository
	mailer   ports.Mailer
	jwtCfg   JWTConfig
	resetTTL time.Duration
	baseURL  string
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, mailer ports.Mailer, jwtCfg JWTConfig, resetTTL time.Duration, baseURL string, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		mailer:   mailer,
		jwtCfg:   jwtCfg,
		resetTTL: resetTTL,
		baseURL:  baseURL,
		log:      log,
	}
}

// Login verifica email/password y emite el token de sesión.
//
// Email inexistente y password incorrecto devuelven el MISMO error
// (domain.ErrInvalidCredentials) para no revelar si la cuenta existe.
// El password en texto plano jamás se registra en el log.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("login: buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	// bcrypt hace la comparación en tiempo constante sobre el hash con salt propio.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, domain.ErrAccountInactive
	}
	tok, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role.String(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("login: emitir token: %w", err)
	}
	return &dto.LoginResponse{
		Token: tok,
		User:  *ToUserResponse(user),
	}, nil
}

// RequestReset genera un token opaco de reset (1h por defecto), lo persiste en el
// usuario reemplazando cualquier token previo, y despacha el correo de forma
// asíncrona. Devuelve domain.ErrNotFound si el email no existe.
//
// NOTA: responder 404 para emails desconocidos permite enumerar cuentas; se
// conserva el comportamiento a la espera de definición de producto. Unificar la
// respuesta es un cambio de una línea en el handler.
func (uc *AuthUseCase) RequestReset(email string) error {
	tok, err := token.New()
	if err != nil {
		return fmt.Errorf("reset: generar token: %w", err)
	}
	expires := time.Now().Add(uc.resetTTL)
	found, err := uc.userRepo.SetResetToken(email, tok, expires)
	if err != nil {
		return fmt.Errorf("reset: guardar token: %w", err)
	}
	if !found {
		return domain.ErrNotFound
	}

	// Fire-and-forget: el fallo de entrega se registra y no revierte el token.
	link := fmt.Sprintf("%s/reset-password?token=%s", uc.baseURL, tok)
	go func() {
		body := fmt.Sprintf("Para restablecer tu password entra a: %s\n\nEl enlace vence en %s.", link, uc.resetTTL)
		if err := uc.mailer.Send(email, "Restablecer password", body); err != nil {
			uc.log.Error().Err(err).Str("email", email).Msg("envío de correo de reset")
		}
	}()
	return nil
}

// RedeemReset redime el token de reset: localiza-y-limpia en una sola operación
// atómica condicionada a la vigencia, guardando el nuevo hash en el mismo paso.
// Token ausente o vencido → domain.ErrInvalidOrExpiredToken; un segundo intento
// con el mismo token siempre falla porque la primera redención ya lo limpió.
func (uc *AuthUseCase) RedeemReset(in dto.ResetPasswordRequest) error {
	user, err := uc.userRepo.RedeemResetToken(in.Token, in.NewPassword)
	if err != nil {
		return fmt.Errorf("reset: redimir token: %w", err)
	}
	if user == nil {
		return domain.ErrInvalidOrExpiredToken
	}
	uc.log.Info().Str("user_id", user.ID).Msg("password restablecido")
	return nil
}

// ToUserResponse proyecta un User a su DTO (sin hash ni tokens).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role.String(),
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

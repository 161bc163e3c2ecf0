package repository

import "github.com/jhoicas/Talento-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// Create persiste una empresa nueva (estado pending con token de invitación).
	// Devuelve domain.ErrAlreadyExists si el nombre ya está tomado.
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByName(name string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
	// Update actualiza nombre y logo.
	Update(company *entity.Company) error
	// UpdateStatus alterna active/inactive. El estado pending nunca se restaura:
	// el caso de uso valida el destino antes de llamar aquí.
	UpdateStatus(id, status string) error
	// ClaimInvitation es el UPDATE condicional de la redención: pasa la empresa a
	// active y limpia el token solo si el token coincide, el estado es pending y
	// la expiración sigue vigente; devuelve la fila ganadora o nil si otro caller
	// ya la reclamó (o el token no existe/expiró). Dentro de una transacción,
	// garantiza como máximo un ganador por token.
	ClaimInvitation(token string) (*entity.Company, error)
	// SetAdmin fija la back-reference al primer companyadmin creado.
	SetAdmin(companyID, userID string) error
}

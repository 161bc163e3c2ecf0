package invitation

import (
	"context"

	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a la tx.
// La redención de una invitación necesita que el claim condicional de la empresa
// y el alta del admin sean un único paso atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
	) error) error
}

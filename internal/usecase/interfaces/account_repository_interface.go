package interfaces

import (
	"context"

	"logistica_iac/internal/domain/entities"
)

// IAccountRepository abstracts persistence for customer portal accounts.
// A missing account is a zero-value CustomerAccount with a nil error.

type IAccountRepository interface {
	Create(ctx context.Context, a entities.CustomerAccount) (entities.CustomerAccount, error)
	GetByEmail(ctx context.Context, email string) (entities.CustomerAccount, error)
}

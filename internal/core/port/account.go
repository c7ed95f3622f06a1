package port

import (
	"context"

	"github.com/lmaki/rewarddining/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type AccountPort interface {
	FindAll(ctx context.Context) ([]*domain.Account, error)
	FindByID(ctx context.Context, id domain.ID) (*domain.Account, error)
	FindByCreditCard(ctx context.Context, cardNumber string) (*domain.Account, error)
	Insert(ctx context.Context, account *domain.Account) error
	// Update rewrites the account row; an account without an id is
	// inserted instead.
	Update(ctx context.Context, account *domain.Account) error
	ReconcileBeneficiaries(ctx context.Context, account *domain.Account) error
}

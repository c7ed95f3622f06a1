package port

import (
	"context"

	"github.com/lmaki/rewarddining/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type RestaurantPort interface {
	FindByMerchantNumber(ctx context.Context, merchantNumber string) (*domain.Restaurant, error)
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lmaki/rewarddining/internal/core/domain"
	"github.com/lmaki/rewarddining/internal/core/port"
)

type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) port.RestaurantPort {
	return &RestaurantRepository{pool: pool}
}

func (r *RestaurantRepository) FindByMerchantNumber(ctx context.Context, merchantNumber string) (*domain.Restaurant, error) {
	var (
		id         int64
		merchant   string
		name       string
		benefit    string
		policyCode string
	)
	err := conn(ctx, r.pool).QueryRow(ctx, `
SELECT id, merchant_number, name, benefit_percentage::text, benefit_availability_policy
FROM restaurant WHERE merchant_number = $1`, merchantNumber,
	).Scan(&id, &merchant, &name, &benefit, &policyCode)
	if err != nil {
		return nil, parseError(err)
	}

	benefitPercentage, err := domain.ParsePercentage(benefit)
	if err != nil {
		return nil, err
	}
	policy, err := domain.PolicyForCode(policyCode)
	if err != nil {
		return nil, err
	}
	return domain.RestoredRestaurant(domain.ID(id), merchant, name, benefitPercentage, policy), nil
}

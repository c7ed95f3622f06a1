package service

import (
	"context"

	"github.com/lmaki/rewarddining/internal/core/domain"
	"github.com/lmaki/rewarddining/internal/core/port"
)

type RestaurantService struct {
	restaurantRepository port.RestaurantPort
}

func NewRestaurantService(restaurantRepository port.RestaurantPort) *RestaurantService {
	return &RestaurantService{restaurantRepository: restaurantRepository}
}

func (s *RestaurantService) GetByMerchantNumber(ctx context.Context, merchantNumber string) (*domain.Restaurant, error) {
	return s.restaurantRepository.FindByMerchantNumber(ctx, merchantNumber)
}

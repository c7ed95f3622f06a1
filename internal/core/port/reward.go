package port

import (
	"context"

	"github.com/lmaki/rewarddining/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type RewardPort interface {
	ConfirmReward(ctx context.Context, contribution *domain.AccountContribution, dining domain.Dining) (*domain.RewardConfirmation, error)
}

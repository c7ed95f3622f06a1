package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lmaki/rewarddining/internal/core/domain"
	"github.com/lmaki/rewarddining/internal/core/port"
)

type RewardRepository struct {
	pool *pgxpool.Pool
}

func NewRewardRepository(pool *pgxpool.Pool) port.RewardPort {
	return &RewardRepository{pool: pool}
}

// ConfirmReward records the reward and returns its confirmation. The row
// joins the caller's transaction, so an aborted reward leaves no
// confirmation behind.
func (r *RewardRepository) ConfirmReward(ctx context.Context, contribution *domain.AccountContribution, dining domain.Dining) (*domain.RewardConfirmation, error) {
	confirmationNumber := uuid.NewString()

	_, err := conn(ctx, r.pool).Exec(ctx, `
INSERT INTO reward_confirmation
	(confirmation_number, account_number, dining_amount, dining_credit_card_number,
	 dining_merchant_number, dining_date, reward_amount, confirmed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		confirmationNumber,
		contribution.AccountNumber,
		dining.Amount.Decimal().String(),
		dining.CreditCardNumber,
		dining.MerchantNumber,
		dining.Date,
		contribution.Amount.Decimal().String(),
		time.Now(),
	)
	if err != nil {
		return nil, parseError(err)
	}

	return &domain.RewardConfirmation{
		ConfirmationNumber: confirmationNumber,
		Contribution:       *contribution,
	}, nil
}

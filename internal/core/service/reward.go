package service

import (
	"context"
	"errors"
	"time"

	"github.com/lmaki/rewarddining/internal/core/domain"
	"github.com/lmaki/rewarddining/internal/core/dto"
	"github.com/lmaki/rewarddining/internal/core/logger"
	"github.com/lmaki/rewarddining/internal/core/port"
	"github.com/lmaki/rewarddining/internal/core/serviceerrors"
	"github.com/lmaki/rewarddining/internal/core/utils"
)

const diningDateLayout = "2006-01-02"

type RewardService struct {
	accountRepository    port.AccountPort
	restaurantRepository port.RestaurantPort
	rewardRepository     port.RewardPort
	accountCache         port.CachePort[domain.Account]
	outbox               port.OutboxPort
	idempotency          *IdempotencyService[domain.RewardConfirmation]
	txManager            port.TransactionManager
}

func NewRewardService(
	accountRepository port.AccountPort,
	restaurantRepository port.RestaurantPort,
	rewardRepository port.RewardPort,
	accountCache port.CachePort[domain.Account],
	outbox port.OutboxPort,
	idempotency *IdempotencyService[domain.RewardConfirmation],
	txManager port.TransactionManager,
) *RewardService {
	return &RewardService{
		accountRepository:    accountRepository,
		restaurantRepository: restaurantRepository,
		rewardRepository:     rewardRepository,
		accountCache:         accountCache,
		outbox:               outbox,
		idempotency:          idempotency,
		txManager:            txManager,
	}
}

func (s *RewardService) diningFromRequest(request *dto.RewardDiningRequest) (domain.Dining, error) {
	amount, err := domain.ParseMoney(request.Amount)
	if err != nil {
		return domain.Dining{}, serviceerrors.NewInvalidRequestError(err.Error())
	}
	date, err := time.Parse(diningDateLayout, request.Date)
	if err != nil {
		return domain.Dining{}, serviceerrors.NewInvalidRequestError("date must use the 2006-01-02 layout")
	}
	return domain.Dining{
		Amount:           amount,
		CreditCardNumber: request.CreditCardNumber,
		MerchantNumber:   request.MerchantNumber,
		Date:             date,
	}, nil
}

func (s *RewardService) processReward(ctx context.Context, dining domain.Dining) (*domain.RewardConfirmation, error) {
	account, err := s.accountRepository.FindByCreditCard(ctx, dining.CreditCardNumber)
	if err != nil {
		return nil, err
	}
	restaurant, err := s.restaurantRepository.FindByMerchantNumber(ctx, dining.MerchantNumber)
	if err != nil {
		return nil, err
	}

	benefit := restaurant.CalculateBenefitFor(account, dining)

	contribution, err := account.MakeContribution(benefit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAllocations) {
			return nil, serviceerrors.NewInvalidStateError(err.Error())
		}
		return nil, err
	}

	var confirmation *domain.RewardConfirmation
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.accountRepository.ReconcileBeneficiaries(txCtx, account); err != nil {
			return err
		}
		confirmation, err = s.rewardRepository.ConfirmReward(txCtx, contribution, dining)
		if err != nil {
			return err
		}
		return s.outbox.Stage(txCtx, domain.NewRewardConfirmedEvent(confirmation, dining, time.Now()))
	})
	if err != nil {
		logger.Error(ctx, "transaction: reward dining failed", err, map[string]any{
			"merchant_number": dining.MerchantNumber,
		})
		return nil, err
	}

	if accountID := account.ID(); accountID != nil {
		if err := s.accountCache.Del(ctx, "account:"+accountID.String()); err != nil {
			logger.Error(ctx, "cache: invalidate account failed", err, map[string]any{
				"account_id": accountID,
			})
		}
	}

	logger.Info(ctx, "Reward confirmed", map[string]any{
		"confirmation_number": confirmation.ConfirmationNumber,
		"account_number":      confirmation.Contribution.AccountNumber,
		"reward_amount":       confirmation.Contribution.Amount.String(),
	})
	return confirmation, nil
}

// RewardAccountFor contributes a restaurant benefit to the account linked to
// the dining's credit card. Zero-benefit dinings still produce a confirmation
// so the charge is recorded as processed.
func (s *RewardService) RewardAccountFor(ctx context.Context, idempotencyKey string, request *dto.RewardDiningRequest) (*domain.RewardConfirmation, error) {
	dining, err := s.diningFromRequest(request)
	if err != nil {
		return nil, err
	}

	if idempotencyKey == "" {
		return s.processReward(ctx, dining)
	}

	payloadHash := utils.HashJSON(request)

	existing, err := s.idempotency.Claim(ctx, idempotencyKey, payloadHash)
	if err != nil {
		logger.Error(ctx, "idempotency: claim failed", err, map[string]any{
			"idempotency_key": idempotencyKey,
		})
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	confirmation, err := s.processReward(ctx, dining)
	if err != nil {
		s.idempotency.Release(ctx, idempotencyKey)
		return nil, err
	}

	s.idempotency.Complete(ctx, idempotencyKey, payloadHash, confirmation)

	return confirmation, nil
}

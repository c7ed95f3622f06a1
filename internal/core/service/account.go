package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lmaki/rewarddining/internal/core/domain"
	"github.com/lmaki/rewarddining/internal/core/dto"
	"github.com/lmaki/rewarddining/internal/core/logger"
	"github.com/lmaki/rewarddining/internal/core/port"
	"github.com/lmaki/rewarddining/internal/core/serviceerrors"
)

const accountCacheTTL = 15 * time.Minute

type AccountService struct {
	accountRepository port.AccountPort
	accountCache      port.CachePort[domain.Account]
	outbox            port.OutboxPort
	txManager         port.TransactionManager
}

func NewAccountService(
	accountRepository port.AccountPort,
	accountCache port.CachePort[domain.Account],
	outbox port.OutboxPort,
	txManager port.TransactionManager,
) *AccountService {
	return &AccountService{
		accountRepository: accountRepository,
		accountCache:      accountCache,
		outbox:            outbox,
		txManager:         txManager,
	}
}

func (s *AccountService) getCacheKey(accountID domain.ID) string {
	return fmt.Sprintf("account:%s", accountID)
}

func (s *AccountService) GetAccount(ctx context.Context, accountID domain.ID) (*domain.Account, error) {
	cached, err := s.accountCache.Get(ctx, s.getCacheKey(accountID))
	if err != nil {
		logger.Error(ctx, "cache: get account failed", err, map[string]any{
			"account_id": accountID,
		})
	}
	if cached != nil {
		return cached, nil
	}

	account, err := s.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := s.accountCache.Set(ctx, s.getCacheKey(accountID), account, accountCacheTTL); err != nil {
		logger.Error(ctx, "cache: set account failed", err, map[string]any{
			"account_id": accountID,
		})
	}

	return account, nil
}

func (s *AccountService) GetAllAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.accountRepository.FindAll(ctx)
}

func (s *AccountService) CreateAccount(ctx context.Context, request *dto.CreateAccountRequest) (*domain.Account, error) {
	account, err := domain.AccountForCreate(request.Number, request.Name)
	if err != nil {
		return nil, err
	}

	for _, b := range request.Beneficiaries {
		allocation, err := domain.ParsePercentage(b.Percentage)
		if err != nil {
			return nil, serviceerrors.NewInvalidRequestError(err.Error())
		}
		account.AddBeneficiary(b.Name, allocation)
	}

	if err := s.accountRepository.Insert(ctx, account); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Account created", map[string]any{
		"account_id":     account.ID(),
		"account_number": account.Number(),
	})
	return account, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, accountID domain.ID, request *dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := domain.AccountForUpdate(&accountID, request.Number, request.Name)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepository.Update(ctx, account); err != nil {
		return nil, err
	}

	s.invalidate(ctx, accountID)
	return account, nil
}

// AddBeneficiary attaches a beneficiary to the account. An empty percentage
// means 0%; a later allocation update gives it a real share.
func (s *AccountService) AddBeneficiary(ctx context.Context, accountID domain.ID, request *dto.AddBeneficiaryRequest) (*domain.Account, error) {
	allocation := domain.ZeroPercent()
	if request.Percentage != "" {
		parsed, err := domain.ParsePercentage(request.Percentage)
		if err != nil {
			return nil, serviceerrors.NewInvalidRequestError(err.Error())
		}
		allocation = parsed
	}

	account, err := s.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	account.AddBeneficiary(request.Name, allocation)

	if err := s.reconcile(ctx, account); err != nil {
		return nil, err
	}

	s.invalidate(ctx, accountID)
	return account, nil
}

// RemoveBeneficiary drops the named beneficiary and spreads its allocation
// equally across the remaining beneficiaries, keeping a previously valid
// account valid.
func (s *AccountService) RemoveBeneficiary(ctx context.Context, accountID domain.ID, name string) (*domain.Account, error) {
	account, err := s.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	removed, err := account.Beneficiary(name)
	if err != nil {
		return nil, serviceerrors.NewNotFoundError(err.Error())
	}
	if err := account.RemoveBeneficiary(name); err != nil {
		return nil, serviceerrors.NewNotFoundError(err.Error())
	}

	remaining := account.Beneficiaries()
	if len(remaining) > 0 && !removed.AllocationPercentage().IsZero() {
		shares := removed.AllocationPercentage().Split(int64(len(remaining)))
		for i, b := range remaining {
			raised, err := b.AllocationPercentage().Add(shares[i])
			if err != nil {
				return nil, serviceerrors.NewInvalidStateError("reallocation would exceed 100%")
			}
			if err := account.SetBeneficiaryAllocation(b.Name(), raised); err != nil {
				return nil, err
			}
		}
	}

	if err := s.reconcile(ctx, account); err != nil {
		return nil, err
	}

	s.invalidate(ctx, accountID)
	return account, nil
}

// UpdateAllocations replaces allocation percentages for the named
// beneficiaries. Unknown names are rejected; the resulting sum is not forced
// to 100% here, the next contribution enforces it.
func (s *AccountService) UpdateAllocations(ctx context.Context, accountID domain.ID, request *dto.UpdateAllocationsRequest) (*domain.Account, error) {
	account, err := s.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	for _, a := range request.Allocations {
		allocation, err := domain.ParsePercentage(a.Percentage)
		if err != nil {
			return nil, serviceerrors.NewInvalidRequestError(err.Error())
		}
		if err := account.SetBeneficiaryAllocation(a.Name, allocation); err != nil {
			return nil, serviceerrors.NewNotFoundError(err.Error())
		}
	}

	if err := s.reconcile(ctx, account); err != nil {
		return nil, err
	}

	s.invalidate(ctx, accountID)
	return account, nil
}

// MakeContribution distributes the amount across the account's beneficiaries
// and persists the new savings balances and a contribution event in one
// transaction.
func (s *AccountService) MakeContribution(ctx context.Context, accountID domain.ID, request *dto.ContributionRequest) (*domain.AccountContribution, error) {
	amount, err := domain.ParseMoney(request.Amount)
	if err != nil {
		return nil, serviceerrors.NewInvalidRequestError(err.Error())
	}

	account, err := s.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	contribution, err := account.MakeContribution(amount)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAllocations) {
			return nil, serviceerrors.NewInvalidStateError(err.Error())
		}
		return nil, serviceerrors.NewInvalidRequestError(err.Error())
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.accountRepository.ReconcileBeneficiaries(txCtx, account); err != nil {
			return err
		}
		return s.outbox.Stage(txCtx, domain.NewContributionMadeEvent(contribution, time.Now()))
	})
	if err != nil {
		logger.Error(ctx, "transaction: make contribution failed", err, map[string]any{
			"account_id": accountID,
		})
		return nil, err
	}

	s.invalidate(ctx, accountID)

	logger.Info(ctx, "Contribution distributed", map[string]any{
		"account_id": accountID,
		"amount":     contribution.Amount.String(),
	})
	return contribution, nil
}

func (s *AccountService) reconcile(ctx context.Context, account *domain.Account) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.accountRepository.ReconcileBeneficiaries(txCtx, account)
	})
}

func (s *AccountService) invalidate(ctx context.Context, accountID domain.ID) {
	if err := s.accountCache.Del(ctx, s.getCacheKey(accountID)); err != nil {
		logger.Error(ctx, "cache: invalidate account failed", err, map[string]any{
			"account_id": accountID,
		})
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lmaki/rewarddining/internal/core/domain"
	"github.com/lmaki/rewarddining/internal/core/dto"
	"github.com/lmaki/rewarddining/internal/core/port/mock"
	"github.com/lmaki/rewarddining/internal/core/serviceerrors"
	"github.com/lmaki/rewarddining/internal/core/utils"
	"go.uber.org/mock/gomock"
)

type rewardMocks struct {
	accountRepo    *mock.MockAccountPort
	restaurantRepo *mock.MockRestaurantPort
	rewardRepo     *mock.MockRewardPort
	accountCache   *mock.MockCachePort[domain.Account]
	outbox         *mock.MockOutboxPort
	idemCache      *mock.MockCachePort[IdempotencyEntry[domain.RewardConfirmation]]
	txManager      *mock.MockTransactionManager
}

func setupRewardService(t *testing.T) (*RewardService, *rewardMocks) {
	ctrl := gomock.NewController(t)

	accountRepo := mock.NewMockAccountPort(ctrl)
	restaurantRepo := mock.NewMockRestaurantPort(ctrl)
	rewardRepo := mock.NewMockRewardPort(ctrl)
	accountCache := mock.NewMockCachePort[domain.Account](ctrl)
	outbox := mock.NewMockOutboxPort(ctrl)
	idemCache := mock.NewMockCachePort[IdempotencyEntry[domain.RewardConfirmation]](ctrl)
	txManager := mock.NewMockTransactionManager(ctrl)

	idemSvc := NewIdempotencyService[domain.RewardConfirmation](idemCache, 15*time.Minute, 50*time.Millisecond, 500*time.Millisecond)
	svc := NewRewardService(accountRepo, restaurantRepo, rewardRepo, accountCache, outbox, idemSvc, txManager)

	return svc, &rewardMocks{
		accountRepo:    accountRepo,
		restaurantRepo: restaurantRepo,
		rewardRepo:     rewardRepo,
		accountCache:   accountCache,
		outbox:         outbox,
		idemCache:      idemCache,
		txManager:      txManager,
	}
}

func rewardRequest() *dto.RewardDiningRequest {
	return &dto.RewardDiningRequest{
		Amount:           "100.00",
		CreditCardNumber: "1234123412341234",
		MerchantNumber:   "1234567890",
		Date:             "2026-08-30",
	}
}

func expectReward(t *testing.T, m *rewardMocks, policy domain.BenefitAvailabilityPolicy, wantReward string) {
	t.Helper()
	account := domain.RestoredAccount(1, "123456789", "Keith and Keri Donald")
	account.RestoreBeneficiary(domain.RestoredBeneficiary(10, "Annabelle", domain.OneHundredPercent(), domain.ZeroMoney()))
	restaurant := domain.RestoredRestaurant(2, "1234567890", "AppleBees", mustPct(t, "8%"), policy)

	m.accountRepo.EXPECT().
		FindByCreditCard(gomock.Any(), "1234123412341234").
		Return(account, nil)
	m.restaurantRepo.EXPECT().
		FindByMerchantNumber(gomock.Any(), "1234567890").
		Return(restaurant, nil)
	m.txManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	m.accountRepo.EXPECT().
		ReconcileBeneficiaries(gomock.Any(), account).
		Return(nil)
	m.rewardRepo.EXPECT().
		ConfirmReward(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, contribution *domain.AccountContribution, dining domain.Dining) (*domain.RewardConfirmation, error) {
			if contribution.Amount.String() != wantReward {
				t.Fatalf("reward amount = %s, want %s", contribution.Amount, wantReward)
			}
			return &domain.RewardConfirmation{ConfirmationNumber: "conf-1", Contribution: *contribution}, nil
		})
	m.outbox.EXPECT().
		Stage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event domain.Event) error {
			if event.GetName() != "reward.confirmed" {
				t.Fatalf("unexpected event %q", event.GetName())
			}
			return nil
		})
	m.accountCache.EXPECT().
		Del(gomock.Any(), "account:1").
		Return(nil)
}

func TestRewardService_RewardAccountFor(t *testing.T) {
	t.Run("contributes the benefit and confirms", func(t *testing.T) {
		svc, m := setupRewardService(t)
		expectReward(t, m, domain.AlwaysAvailable, "8.00")

		confirmation, err := svc.RewardAccountFor(context.Background(), "", rewardRequest())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if confirmation.ConfirmationNumber != "conf-1" {
			t.Fatalf("confirmation number = %q", confirmation.ConfirmationNumber)
		}
		share, ok := confirmation.Contribution.Distribution("Annabelle")
		if !ok {
			t.Fatal("missing distribution for Annabelle")
		}
		if share.Amount.String() != "8.00" {
			t.Fatalf("Annabelle's share = %s, want 8.00", share.Amount)
		}
	})

	t.Run("unavailable policy still confirms with a zero reward", func(t *testing.T) {
		svc, m := setupRewardService(t)
		expectReward(t, m, domain.NeverAvailable, "0.00")

		confirmation, err := svc.RewardAccountFor(context.Background(), "", rewardRequest())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !confirmation.Contribution.Amount.IsZero() {
			t.Fatalf("reward amount = %s, want zero", confirmation.Contribution.Amount)
		}
	})

	t.Run("unknown credit card surfaces not found", func(t *testing.T) {
		svc, m := setupRewardService(t)

		m.accountRepo.EXPECT().
			FindByCreditCard(gomock.Any(), gomock.Any()).
			Return(nil, serviceerrors.NewNotFoundError("no account for credit card"))

		_, err := svc.RewardAccountFor(context.Background(), "", rewardRequest())
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("invalid allocations are an invalid state", func(t *testing.T) {
		svc, m := setupRewardService(t)
		account := domain.RestoredAccount(1, "123456789", "Keith and Keri Donald")
		account.RestoreBeneficiary(domain.RestoredBeneficiary(10, "Annabelle", mustPct(t, "50%"), domain.ZeroMoney()))
		restaurant := domain.RestoredRestaurant(2, "1234567890", "AppleBees", mustPct(t, "8%"), domain.AlwaysAvailable)

		m.accountRepo.EXPECT().
			FindByCreditCard(gomock.Any(), gomock.Any()).
			Return(account, nil)
		m.restaurantRepo.EXPECT().
			FindByMerchantNumber(gomock.Any(), gomock.Any()).
			Return(restaurant, nil)

		_, err := svc.RewardAccountFor(context.Background(), "", rewardRequest())
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidState) {
			t.Fatalf("expected KindInvalidState, got %v", err)
		}
	})

	t.Run("bad date is an invalid request", func(t *testing.T) {
		svc, _ := setupRewardService(t)

		request := rewardRequest()
		request.Date = "08/30/2026"
		_, err := svc.RewardAccountFor(context.Background(), "", request)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("idempotency key - completed duplicate returns the stored confirmation", func(t *testing.T) {
		svc, m := setupRewardService(t)
		request := rewardRequest()
		stored := &domain.RewardConfirmation{ConfirmationNumber: "conf-1"}

		m.idemCache.EXPECT().
			SetNX(gomock.Any(), "idem-key-1", gomock.Any(), 15*time.Minute).
			Return(false, nil)
		m.idemCache.EXPECT().
			Get(gomock.Any(), "idem-key-1").
			Return(&IdempotencyEntry[domain.RewardConfirmation]{
				Status:      IdempotencyCompleted,
				PayloadHash: utils.HashJSON(request),
				Result:      stored,
			}, nil)

		confirmation, err := svc.RewardAccountFor(context.Background(), "idem-key-1", request)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if confirmation.ConfirmationNumber != "conf-1" {
			t.Fatalf("confirmation number = %q", confirmation.ConfirmationNumber)
		}
	})

	t.Run("idempotency key - failure releases the claim", func(t *testing.T) {
		svc, m := setupRewardService(t)

		m.idemCache.EXPECT().
			SetNX(gomock.Any(), "idem-key-1", gomock.Any(), 15*time.Minute).
			Return(true, nil)
		m.accountRepo.EXPECT().
			FindByCreditCard(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))
		m.idemCache.EXPECT().
			Del(gomock.Any(), "idem-key-1").
			Return(nil)

		if _, err := svc.RewardAccountFor(context.Background(), "idem-key-1", rewardRequest()); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

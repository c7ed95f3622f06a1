package domain

import "time"

// ContributionMadeEvent is published (through the transactional outbox) after
// a contribution's distributions are persisted.
type ContributionMadeEvent struct {
	AccountNumber string         `json:"account_number"`
	Amount        Money          `json:"amount"`
	Distributions []Distribution `json:"distributions"`
	ContributedAt time.Time      `json:"contributed_at"`
}

func (e *ContributionMadeEvent) GetName() string {
	return "account.contribution_made"
}

func (e *ContributionMadeEvent) GetEntityName() string {
	return "account"
}

func NewContributionMadeEvent(c *AccountContribution, at time.Time) *ContributionMadeEvent {
	return &ContributionMadeEvent{
		AccountNumber: c.AccountNumber,
		Amount:        c.Amount,
		Distributions: c.Distributions,
		ContributedAt: at,
	}
}

// RewardConfirmedEvent is published after a dining reward is confirmed.
type RewardConfirmedEvent struct {
	ConfirmationNumber string    `json:"confirmation_number"`
	AccountNumber      string    `json:"account_number"`
	RewardAmount       Money     `json:"reward_amount"`
	MerchantNumber     string    `json:"merchant_number"`
	DiningDate         time.Time `json:"dining_date"`
	ConfirmedAt        time.Time `json:"confirmed_at"`
}

func (e *RewardConfirmedEvent) GetName() string {
	return "reward.confirmed"
}

func (e *RewardConfirmedEvent) GetEntityName() string {
	return "reward"
}

func NewRewardConfirmedEvent(confirmation *RewardConfirmation, dining Dining, at time.Time) *RewardConfirmedEvent {
	return &RewardConfirmedEvent{
		ConfirmationNumber: confirmation.ConfirmationNumber,
		AccountNumber:      confirmation.Contribution.AccountNumber,
		RewardAmount:       confirmation.Contribution.Amount,
		MerchantNumber:     dining.MerchantNumber,
		DiningDate:         dining.Date,
		ConfirmedAt:        at,
	}
}

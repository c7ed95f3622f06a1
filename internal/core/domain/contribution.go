package domain

// Distribution records one beneficiary's share of one contribution: the
// amount credited, the allocation used, and the savings balance after the
// credit.
type Distribution struct {
	BeneficiaryName string     `json:"beneficiaryName"`
	Amount          Money      `json:"amount"`
	Percentage      Percentage `json:"percentage"`
	TotalSavings    Money      `json:"totalSavings"`
}

// AccountContribution is the immutable result of one MakeContribution call:
// the total amount, the account it was applied to, and one Distribution per
// beneficiary that existed at contribution time. Treat as read-only once
// returned.
type AccountContribution struct {
	AccountNumber string         `json:"accountNumber"`
	Amount        Money          `json:"amount"`
	Distributions []Distribution `json:"distributions"`
}

// Distribution looks up the share recorded for the named beneficiary.
func (c *AccountContribution) Distribution(beneficiaryName string) (Distribution, bool) {
	for _, d := range c.Distributions {
		if d.BeneficiaryName == beneficiaryName {
			return d, true
		}
	}
	return Distribution{}, false
}

// RewardConfirmation proves a dining reward was recorded: the confirmation
// number can be used to look the reward up later.
type RewardConfirmation struct {
	ConfirmationNumber string              `json:"confirmationNumber"`
	Contribution       AccountContribution `json:"contribution"`
}

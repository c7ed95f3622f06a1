package domain

// Beneficiary is a party entitled to a share of account contributions.
// Identity is the name, unique and case-sensitive within the owning account.
// The id stays nil until the repository persists the row; savings only ever
// grow, through credits applied during contribution distribution.
type Beneficiary struct {
	id         *ID
	name       string
	allocation Percentage
	savings    Money
}

func NewBeneficiary(name string, allocation Percentage) *Beneficiary {
	return &Beneficiary{name: name, allocation: allocation}
}

// RestoredBeneficiary rebuilds a persisted beneficiary from its stored row.
func RestoredBeneficiary(id ID, name string, allocation Percentage, savings Money) *Beneficiary {
	return &Beneficiary{id: &id, name: name, allocation: allocation, savings: savings}
}

// ID returns the persisted id, or nil when the row does not exist yet.
func (b *Beneficiary) ID() *ID {
	if b.id == nil {
		return nil
	}
	id := *b.id
	return &id
}

func (b *Beneficiary) SetID(id ID) {
	b.id = &id
}

func (b *Beneficiary) Name() string {
	return b.name
}

func (b *Beneficiary) AllocationPercentage() Percentage {
	return b.allocation
}

func (b *Beneficiary) Savings() Money {
	return b.savings
}

// credit is aggregate-internal: all savings growth flows through
// Account.MakeContribution.
func (b *Beneficiary) credit(amount Money) {
	b.savings = b.savings.Add(amount)
}

func (b *Beneficiary) setAllocation(p Percentage) {
	b.allocation = p
}

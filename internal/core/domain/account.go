package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrBeneficiaryNotFound = errors.New("no such beneficiary")

	// ErrInvalidAllocations rejects contributions while beneficiary
	// allocations do not sum to exactly 100%.
	ErrInvalidAllocations = errors.New("account has invalid beneficiary allocations")

	ErrNegativeContribution = errors.New("contribution amount must not be negative")
)

// Account is the aggregate root for a reward network member. It owns its
// beneficiaries, keyed by name, and the invariant that their allocations sum
// to exactly 100% before any contribution is distributed.
//
// Beneficiaries are held in a name-keyed map: adding a beneficiary under an
// existing name replaces that entry. All mutation goes through aggregate
// methods; accessors hand out value copies.
type Account struct {
	id     *ID
	number string
	name   string

	mu            sync.RWMutex
	beneficiaries map[string]*Beneficiary
}

// AccountForCreate validates and builds a new, unsaved account. On rule
// failures it returns a *ValidationError carrying every violation.
func AccountForCreate(number, name string) (*Account, error) {
	if err := validateAccountForCreate(number, name); err != nil {
		return nil, err
	}
	return newAccount(nil, number, name), nil
}

// AccountForUpdate validates and builds an account targeting an existing row;
// the id is required in addition to the creation rules.
func AccountForUpdate(id *ID, number, name string) (*Account, error) {
	if err := validateAccountForUpdate(id, number, name); err != nil {
		return nil, err
	}
	return newAccount(id, number, name), nil
}

// RestoredAccount rebuilds a persisted account. Only repositories should call
// this; stored rows are assumed to have passed validation when written.
func RestoredAccount(id ID, number, name string) *Account {
	return newAccount(&id, number, name)
}

func newAccount(id *ID, number, name string) *Account {
	return &Account{
		id:            id,
		number:        number,
		name:          name,
		beneficiaries: make(map[string]*Beneficiary),
	}
}

// ID returns the persisted id, or nil for a not-yet-saved account.
func (a *Account) ID() *ID {
	if a.id == nil {
		return nil
	}
	id := *a.id
	return &id
}

func (a *Account) SetID(id ID) {
	a.id = &id
}

// Number returns the 9-digit business identifier.
func (a *Account) Number() string {
	return a.number
}

func (a *Account) Name() string {
	return a.name
}

// AddBeneficiary inserts a beneficiary with the given allocation. An existing
// beneficiary with the same name is replaced.
func (a *Account) AddBeneficiary(name string, allocation Percentage) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.beneficiaries[name] = NewBeneficiary(name, allocation)
}

// RemoveBeneficiary drops the named beneficiary, or reports
// ErrBeneficiaryNotFound without touching the set.
func (a *Account) RemoveBeneficiary(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.beneficiaries[name]; !ok {
		return fmt.Errorf("%w with name %q", ErrBeneficiaryNotFound, name)
	}
	delete(a.beneficiaries, name)
	return nil
}

// Beneficiary returns a value copy of the named beneficiary.
func (a *Account) Beneficiary(name string) (Beneficiary, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	b, ok := a.beneficiaries[name]
	if !ok {
		return Beneficiary{}, fmt.Errorf("%w with name %q", ErrBeneficiaryNotFound, name)
	}
	return *b, nil
}

// SetBeneficiaryAllocation replaces the named beneficiary's allocation. The
// aggregate does not revalidate the 100% sum here; IsValid gates the next
// contribution.
func (a *Account) SetBeneficiaryAllocation(name string, allocation Percentage) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	b, ok := a.beneficiaries[name]
	if !ok {
		return fmt.Errorf("%w with name %q", ErrBeneficiaryNotFound, name)
	}
	b.setAllocation(allocation)
	return nil
}

// SetBeneficiaryID records the storage-assigned id after an insert. Only
// repositories should call this.
func (a *Account) SetBeneficiaryID(name string, id ID) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	b, ok := a.beneficiaries[name]
	if !ok {
		return fmt.Errorf("%w with name %q", ErrBeneficiaryNotFound, name)
	}
	b.SetID(id)
	return nil
}

// RestoreBeneficiary reattaches a reconstituted beneficiary. Only
// repositories should call this.
func (a *Account) RestoreBeneficiary(b *Beneficiary) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.beneficiaries[b.Name()] = b
}

// Beneficiaries returns value-copy snapshots sorted by name. Mutating a
// snapshot has no effect on the aggregate.
func (a *Account) Beneficiaries() []Beneficiary {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Beneficiary, 0, len(a.beneficiaries))
	for _, b := range a.beneficiaries {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// IsValid reports whether the beneficiary allocations sum to exactly 100%.
// A partial sum passing 100% makes the account invalid immediately; the
// overflow never reaches the caller. An account with no beneficiaries sums
// to 0% and is invalid for contributions.
func (a *Account) IsValid() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	total := ZeroPercent()
	for _, b := range a.beneficiaries {
		sum, err := total.Add(b.allocation)
		if err != nil {
			return false
		}
		total = sum
	}
	return total.Equal(OneHundredPercent())
}

// MakeContribution distributes amount across the beneficiaries by allocation
// percentage, credits each beneficiary's savings, and returns the immutable
// contribution record. Distribution order is unspecified. Each share rounds
// to cents independently; no remainder reallocation is performed.
func (a *Account) MakeContribution(amount Money) (*AccountContribution, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeContribution
	}
	if !a.IsValid() {
		return nil, ErrInvalidAllocations
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	distributions := make([]Distribution, 0, len(a.beneficiaries))
	for _, b := range a.beneficiaries {
		share := amount.MultiplyPercentage(b.allocation)
		b.credit(share)
		distributions = append(distributions, Distribution{
			BeneficiaryName: b.name,
			Amount:          share,
			Percentage:      b.allocation,
			TotalSavings:    b.savings,
		})
	}
	return &AccountContribution{
		AccountNumber: a.number,
		Amount:        amount,
		Distributions: distributions,
	}, nil
}

type accountJSON struct {
	ID            *ID               `json:"id"`
	Number        string            `json:"number"`
	Name          string            `json:"name"`
	Beneficiaries []beneficiaryJSON `json:"beneficiaries"`
}

type beneficiaryJSON struct {
	ID                   *ID        `json:"id"`
	Name                 string     `json:"name"`
	AllocationPercentage Percentage `json:"allocationPercentage"`
	Savings              Money      `json:"savings"`
}

func (a *Account) MarshalJSON() ([]byte, error) {
	beneficiaries := a.Beneficiaries()
	out := accountJSON{
		ID:            a.ID(),
		Number:        a.number,
		Name:          a.name,
		Beneficiaries: make([]beneficiaryJSON, len(beneficiaries)),
	}
	for i, b := range beneficiaries {
		out.Beneficiaries[i] = beneficiaryJSON{
			ID:                   b.ID(),
			Name:                 b.name,
			AllocationPercentage: b.allocation,
			Savings:              b.savings,
		}
	}
	return json.Marshal(out)
}

func (a *Account) UnmarshalJSON(data []byte) error {
	var in accountJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	a.id = in.ID
	a.number = in.Number
	a.name = in.Name
	a.beneficiaries = make(map[string]*Beneficiary, len(in.Beneficiaries))
	for _, b := range in.Beneficiaries {
		restored := &Beneficiary{id: b.ID, name: b.Name, allocation: b.AllocationPercentage, savings: b.Savings}
		a.beneficiaries[restored.name] = restored
	}
	return nil
}

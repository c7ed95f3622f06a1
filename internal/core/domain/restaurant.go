package domain

import (
	"errors"
	"fmt"
	"time"
)

// Dining is a charge by a member's credit card at a network restaurant.
type Dining struct {
	Amount           Money     `json:"amount"`
	CreditCardNumber string    `json:"creditCardNumber"`
	MerchantNumber   string    `json:"merchantNumber"`
	Date             time.Time `json:"date"`
}

// BenefitAvailabilityPolicy decides whether a dining by an account earns a
// benefit. A strategy scoped by the Restaurant aggregate; Code is the
// single-character discriminator stored on the restaurant row.
type BenefitAvailabilityPolicy interface {
	IsBenefitAvailableFor(account *Account, dining Dining) bool
	Code() string
}

type alwaysAvailable struct{}

func (alwaysAvailable) IsBenefitAvailableFor(*Account, Dining) bool { return true }
func (alwaysAvailable) Code() string                                { return "A" }

type neverAvailable struct{}

func (neverAvailable) IsBenefitAvailableFor(*Account, Dining) bool { return false }
func (neverAvailable) Code() string                                { return "N" }

var (
	AlwaysAvailable BenefitAvailabilityPolicy = alwaysAvailable{}
	NeverAvailable  BenefitAvailabilityPolicy = neverAvailable{}

	ErrUnknownPolicyCode = errors.New("unsupported benefit availability policy code")
)

// PolicyForCode maps the stored discriminator to its policy.
func PolicyForCode(code string) (BenefitAvailabilityPolicy, error) {
	switch code {
	case "A":
		return AlwaysAvailable, nil
	case "N":
		return NeverAvailable, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicyCode, code)
	}
}

// Restaurant is an establishment in the network. It calculates the benefit
// awarded to an account for a dining from its availability policy and
// benefit percentage.
type Restaurant struct {
	id                *ID
	merchantNumber    string
	name              string
	benefitPercentage Percentage
	policy            BenefitAvailabilityPolicy
}

func NewRestaurant(merchantNumber, name string, benefitPercentage Percentage, policy BenefitAvailabilityPolicy) *Restaurant {
	return &Restaurant{
		merchantNumber:    merchantNumber,
		name:              name,
		benefitPercentage: benefitPercentage,
		policy:            policy,
	}
}

// RestoredRestaurant rebuilds a persisted restaurant from its stored row.
func RestoredRestaurant(id ID, merchantNumber, name string, benefitPercentage Percentage, policy BenefitAvailabilityPolicy) *Restaurant {
	r := NewRestaurant(merchantNumber, name, benefitPercentage, policy)
	r.id = &id
	return r
}

func (r *Restaurant) ID() *ID {
	if r.id == nil {
		return nil
	}
	id := *r.id
	return &id
}

func (r *Restaurant) MerchantNumber() string {
	return r.merchantNumber
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) BenefitPercentage() Percentage {
	return r.benefitPercentage
}

func (r *Restaurant) Policy() BenefitAvailabilityPolicy {
	return r.policy
}

// CalculateBenefitFor returns dining amount x benefit percentage when the
// policy makes the dining eligible, zero otherwise.
func (r *Restaurant) CalculateBenefitFor(account *Account, dining Dining) Money {
	if !r.policy.IsBenefitAvailableFor(account, dining) {
		return ZeroMoney()
	}
	return dining.Amount.MultiplyPercentage(r.benefitPercentage)
}

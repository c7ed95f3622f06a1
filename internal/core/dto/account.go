package dto

// BeneficiaryAllocation names a beneficiary and an allocation expressed
// either as a percent string ("50%") or a decimal fraction ("0.5").
type BeneficiaryAllocation struct {
	Name       string `json:"name"`
	Percentage string `json:"percentage"`
}

type CreateAccountRequest struct {
	Number        string                  `json:"number"`
	Name          string                  `json:"name"`
	Beneficiaries []BeneficiaryAllocation `json:"beneficiaries,omitempty"`
}

type UpdateAccountRequest struct {
	Number string `json:"number"`
	Name   string `json:"name"`
}

// AddBeneficiaryRequest adds a beneficiary; an empty percentage means 0%,
// to be assigned later through an allocation update.
type AddBeneficiaryRequest struct {
	Name       string `json:"name"`
	Percentage string `json:"percentage,omitempty"`
}

type UpdateAllocationsRequest struct {
	Allocations []BeneficiaryAllocation `json:"allocations"`
}

type ContributionRequest struct {
	Amount string `json:"amount"`
}

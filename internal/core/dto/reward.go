package dto

// RewardDiningRequest reports a dining charge for reward processing.
// Date uses the 2006-01-02 layout.
type RewardDiningRequest struct {
	Amount           string `json:"amount"`
	CreditCardNumber string `json:"creditCardNumber"`
	MerchantNumber   string `json:"merchantNumber"`
	Date             string `json:"date"`
}

package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func accountWithSplit(t *testing.T, allocations map[string]string) *Account {
	t.Helper()
	account, err := AccountForCreate("123456789", "Keith and Keri Donald")
	if err != nil {
		t.Fatalf("AccountForCreate: %v", err)
	}
	for name, pct := range allocations {
		account.AddBeneficiary(name, mustPercentage(t, pct))
	}
	return account
}

func TestAccountIsValid(t *testing.T) {
	t.Run("allocations summing to 100% are valid", func(t *testing.T) {
		account := accountWithSplit(t, map[string]string{"Annabelle": "50%", "Corgan": "50%"})
		if !account.IsValid() {
			t.Fatal("expected account to be valid")
		}
	})

	t.Run("allocations under 100% are invalid", func(t *testing.T) {
		account := accountWithSplit(t, map[string]string{"Annabelle": "50%"})
		if account.IsValid() {
			t.Fatal("expected account to be invalid")
		}
	})

	t.Run("allocations over 100% are invalid", func(t *testing.T) {
		account := accountWithSplit(t, map[string]string{"Annabelle": "60%", "Corgan": "60%"})
		if account.IsValid() {
			t.Fatal("expected account to be invalid")
		}
	})

	t.Run("no beneficiaries is invalid", func(t *testing.T) {
		account := accountWithSplit(t, nil)
		if account.IsValid() {
			t.Fatal("expected account without beneficiaries to be invalid")
		}
	})
}

func TestAccountAddBeneficiary(t *testing.T) {
	t.Run("same name replaces the existing entry", func(t *testing.T) {
		account := accountWithSplit(t, map[string]string{"Annabelle": "40%"})
		account.AddBeneficiary("Annabelle", mustPercentage(t, "100%"))

		if got := len(account.Beneficiaries()); got != 1 {
			t.Fatalf("expected 1 beneficiary, got %d", got)
		}
		b, err := account.Beneficiary("Annabelle")
		if err != nil {
			t.Fatalf("Beneficiary: %v", err)
		}
		if !b.AllocationPercentage().Equal(OneHundredPercent()) {
			t.Fatalf("expected 100%%, got %s", b.AllocationPercentage())
		}
	})
}

func TestAccountRemoveBeneficiary(t *testing.T) {
	account := accountWithSplit(t, map[string]string{"Annabelle": "100%"})

	if err := account.RemoveBeneficiary("Corgan"); !errors.Is(err, ErrBeneficiaryNotFound) {
		t.Fatalf("expected ErrBeneficiaryNotFound, got %v", err)
	}
	if err := account.RemoveBeneficiary("Annabelle"); err != nil {
		t.Fatalf("RemoveBeneficiary: %v", err)
	}
	if got := len(account.Beneficiaries()); got != 0 {
		t.Fatalf("expected no beneficiaries, got %d", got)
	}
}

func TestAccountMakeContribution(t *testing.T) {
	t.Run("splits the amount and credits savings", func(t *testing.T) {
		account := accountWithSplit(t, map[string]string{"Annabelle": "75%", "Corgan": "25%"})

		contribution, err := account.MakeContribution(mustMoney(t, "100"))
		if err != nil {
			t.Fatalf("MakeContribution: %v", err)
		}
		if contribution.AccountNumber != "123456789" {
			t.Errorf("AccountNumber = %q, want %q", contribution.AccountNumber, "123456789")
		}

		annabelle, ok := contribution.Distribution("Annabelle")
		if !ok {
			t.Fatal("missing distribution for Annabelle")
		}
		if !annabelle.Amount.Equal(mustMoney(t, "75.00")) {
			t.Errorf("Annabelle's share = %s, want 75.00", annabelle.Amount)
		}
		if !annabelle.TotalSavings.Equal(mustMoney(t, "75.00")) {
			t.Errorf("Annabelle's savings = %s, want 75.00", annabelle.TotalSavings)
		}

		corgan, ok := contribution.Distribution("Corgan")
		if !ok {
			t.Fatal("missing distribution for Corgan")
		}
		if !corgan.Amount.Equal(mustMoney(t, "25.00")) {
			t.Errorf("Corgan's share = %s, want 25.00", corgan.Amount)
		}
	})

	t.Run("savings accumulate across contributions", func(t *testing.T) {
		account := accountWithSplit(t, map[string]string{"Annabelle": "100%"})

		if _, err := account.MakeContribution(mustMoney(t, "10")); err != nil {
			t.Fatalf("MakeContribution: %v", err)
		}
		if _, err := account.MakeContribution(mustMoney(t, "2.50")); err != nil {
			t.Fatalf("MakeContribution: %v", err)
		}

		b, err := account.Beneficiary("Annabelle")
		if err != nil {
			t.Fatalf("Beneficiary: %v", err)
		}
		if !b.Savings().Equal(mustMoney(t, "12.50")) {
			t.Fatalf("savings = %s, want 12.50", b.Savings())
		}
	})

	t.Run("shares round to cents independently", func(t *testing.T) {
		account := accountWithSplit(t, map[string]string{
			"Annabelle": "0.333333",
			"Corgan":    "0.333333",
			"Brian":     "0.333334",
		})

		contribution, err := account.MakeContribution(mustMoney(t, "0.10"))
		if err != nil {
			t.Fatalf("MakeContribution: %v", err)
		}
		for _, d := range contribution.Distributions {
			if !d.Amount.Equal(mustMoney(t, "0.03")) {
				t.Errorf("%s's share = %s, want 0.03", d.BeneficiaryName, d.Amount)
			}
		}
	})

	t.Run("rejects invalid allocations", func(t *testing.T) {
		account := accountWithSplit(t, map[string]string{"Annabelle": "50%"})
		if _, err := account.MakeContribution(mustMoney(t, "100")); !errors.Is(err, ErrInvalidAllocations) {
			t.Fatalf("expected ErrInvalidAllocations, got %v", err)
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		account := accountWithSplit(t, map[string]string{"Annabelle": "100%"})
		if _, err := account.MakeContribution(NewMoney(mustMoney(t, "1").Decimal().Neg())); !errors.Is(err, ErrNegativeContribution) {
			t.Fatalf("expected ErrNegativeContribution, got %v", err)
		}
	})
}

func TestAccountValidation(t *testing.T) {
	t.Run("create collects every violation", func(t *testing.T) {
		_, err := AccountForCreate("12345", "")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		if got := len(verr.Violations); got != 2 {
			t.Fatalf("expected 2 violations, got %d: %v", got, verr.Violations)
		}
	})

	t.Run("update requires an id", func(t *testing.T) {
		_, err := AccountForUpdate(nil, "123456789", "Keith and Keri Donald")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
	})
}

func TestAccountJSONRoundTrip(t *testing.T) {
	account := RestoredAccount(5, "123456789", "Keith and Keri Donald")
	account.RestoreBeneficiary(RestoredBeneficiary(7, "Annabelle", mustPercentage(t, "100%"), mustMoney(t, "42.00")))

	data, err := json.Marshal(account)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var restored Account
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if restored.Number() != "123456789" || restored.Name() != "Keith and Keri Donald" {
		t.Fatalf("restored account fields = %q / %q", restored.Number(), restored.Name())
	}
	if restored.ID() == nil || *restored.ID() != 5 {
		t.Fatalf("restored id = %v, want 5", restored.ID())
	}
	b, err := restored.Beneficiary("Annabelle")
	if err != nil {
		t.Fatalf("Beneficiary: %v", err)
	}
	if b.ID() == nil || *b.ID() != 7 {
		t.Fatalf("restored beneficiary id = %v, want 7", b.ID())
	}
	if !b.Savings().Equal(mustMoney(t, "42.00")) {
		t.Fatalf("restored savings = %s, want 42.00", b.Savings())
	}
}

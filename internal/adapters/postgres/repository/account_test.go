package repository

import (
	"testing"

	"github.com/lmaki/rewarddining/internal/core/domain"
)

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

func TestGroupAccounts(t *testing.T) {
	t.Run("groups beneficiary rows under their account", func(t *testing.T) {
		rows := []accountRow{
			{accountID: 0, accountNumber: "123456789", accountName: "Keith and Keri Donald",
				beneficiaryID: i64Ptr(10), beneficiaryName: strPtr("Annabelle"), allocation: strPtr("0.5"), savings: strPtr("0")},
			{accountID: 0, accountNumber: "123456789", accountName: "Keith and Keri Donald",
				beneficiaryID: i64Ptr(11), beneficiaryName: strPtr("Corgan"), allocation: strPtr("0.5"), savings: strPtr("12.29")},
			{accountID: 5, accountNumber: "123456001", accountName: "Dollie Nelson",
				beneficiaryID: i64Ptr(12), beneficiaryName: strPtr("Charlie"), allocation: strPtr("1"), savings: strPtr("0")},
		}

		accounts, err := groupAccounts(rows)
		if err != nil {
			t.Fatalf("groupAccounts: %v", err)
		}
		if len(accounts) != 2 {
			t.Fatalf("expected 2 accounts, got %d", len(accounts))
		}

		first := accounts[0]
		if first.ID() == nil || *first.ID() != 0 {
			t.Fatalf("first account id = %v, want 0", first.ID())
		}
		if got := len(first.Beneficiaries()); got != 2 {
			t.Fatalf("expected 2 beneficiaries, got %d", got)
		}
		corgan, err := first.Beneficiary("Corgan")
		if err != nil {
			t.Fatalf("Beneficiary: %v", err)
		}
		if corgan.Savings().String() != "12.29" {
			t.Fatalf("Corgan's savings = %s, want 12.29", corgan.Savings())
		}

		second := accounts[1]
		if second.ID() == nil || *second.ID() != 5 {
			t.Fatalf("second account id = %v, want 5", second.ID())
		}
		if !second.IsValid() {
			t.Fatal("expected second account to have a 100% allocation")
		}
	})

	t.Run("account without beneficiaries survives the left join", func(t *testing.T) {
		rows := []accountRow{
			{accountID: 1, accountNumber: "123456789", accountName: "Keith and Keri Donald"},
		}

		accounts, err := groupAccounts(rows)
		if err != nil {
			t.Fatalf("groupAccounts: %v", err)
		}
		if len(accounts) != 1 {
			t.Fatalf("expected 1 account, got %d", len(accounts))
		}
		if got := len(accounts[0].Beneficiaries()); got != 0 {
			t.Fatalf("expected no beneficiaries, got %d", got)
		}
	})

	t.Run("empty input yields no accounts", func(t *testing.T) {
		accounts, err := groupAccounts(nil)
		if err != nil {
			t.Fatalf("groupAccounts: %v", err)
		}
		if len(accounts) != 0 {
			t.Fatalf("expected no accounts, got %d", len(accounts))
		}
	})

	t.Run("bad stored decimal is reported", func(t *testing.T) {
		rows := []accountRow{
			{accountID: 1, accountNumber: "123456789", accountName: "Keith and Keri Donald",
				beneficiaryID: i64Ptr(10), beneficiaryName: strPtr("Annabelle"), allocation: strPtr("garbage"), savings: strPtr("0")},
		}
		if _, err := groupAccounts(rows); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("restored allocations keep exact fractions", func(t *testing.T) {
		rows := []accountRow{
			{accountID: 1, accountNumber: "123456789", accountName: "Keith and Keri Donald",
				beneficiaryID: i64Ptr(10), beneficiaryName: strPtr("Annabelle"), allocation: strPtr("0.255555"), savings: strPtr("0")},
		}
		accounts, err := groupAccounts(rows)
		if err != nil {
			t.Fatalf("groupAccounts: %v", err)
		}
		b, err := accounts[0].Beneficiary("Annabelle")
		if err != nil {
			t.Fatalf("Beneficiary: %v", err)
		}
		if b.AllocationPercentage().String() != "26%" {
			t.Fatalf("display form = %s, want 26%%", b.AllocationPercentage())
		}
		want, _ := domain.ParsePercentage("0.255555")
		if !b.AllocationPercentage().Equal(want) {
			t.Fatal("expected the exact stored fraction")
		}
	})
}

package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lmaki/rewarddining/internal/core/domain"
	"github.com/lmaki/rewarddining/internal/core/port"
	"github.com/lmaki/rewarddining/internal/core/serviceerrors"
)

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) port.AccountPort {
	return &AccountRepository{pool: pool}
}

// accountQuery pulls an account with its beneficiaries in one round trip.
// Rows must stay ordered by account id so grouping can detect boundaries;
// decimals come back as text to keep them exact.
const accountQuery = `
SELECT a.id, a.number, a.name,
       b.id, b.name, b.allocation_percentage::text, b.savings::text
FROM account a
LEFT JOIN beneficiary b ON b.account_id = a.id
`

// accountRow is one scanned row of accountQuery. Beneficiary columns are nil
// for an account with no beneficiaries.
type accountRow struct {
	accountID     int64
	accountNumber string
	accountName   string

	beneficiaryID   *int64
	beneficiaryName *string
	allocation      *string
	savings         *string
}

func scanAccountRows(rows pgx.Rows) ([]accountRow, error) {
	defer rows.Close()

	var out []accountRow
	for rows.Next() {
		var row accountRow
		err := rows.Scan(
			&row.accountID, &row.accountNumber, &row.accountName,
			&row.beneficiaryID, &row.beneficiaryName, &row.allocation, &row.savings,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// groupAccounts folds ordered join rows into aggregates, starting a new
// account whenever the account id changes.
func groupAccounts(rows []accountRow) ([]*domain.Account, error) {
	var accounts []*domain.Account
	var current *domain.Account
	var currentID int64

	for _, row := range rows {
		if current == nil || row.accountID != currentID {
			current = domain.RestoredAccount(domain.ID(row.accountID), row.accountNumber, row.accountName)
			currentID = row.accountID
			accounts = append(accounts, current)
		}
		if row.beneficiaryID == nil {
			continue
		}
		allocation, err := domain.ParsePercentage(*row.allocation)
		if err != nil {
			return nil, fmt.Errorf("beneficiary %d: %w", *row.beneficiaryID, err)
		}
		savings, err := domain.ParseMoney(*row.savings)
		if err != nil {
			return nil, fmt.Errorf("beneficiary %d: %w", *row.beneficiaryID, err)
		}
		current.RestoreBeneficiary(domain.RestoredBeneficiary(domain.ID(*row.beneficiaryID), *row.beneficiaryName, allocation, savings))
	}
	return accounts, nil
}

func (r *AccountRepository) findWhere(ctx context.Context, clause string, args ...any) ([]*domain.Account, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, accountQuery+clause, args...)
	if err != nil {
		return nil, parseError(err)
	}
	scanned, err := scanAccountRows(rows)
	if err != nil {
		return nil, parseError(err)
	}
	return groupAccounts(scanned)
}

func (r *AccountRepository) findOneWhere(ctx context.Context, clause string, args ...any) (*domain.Account, error) {
	accounts, err := r.findWhere(ctx, clause, args...)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, serviceerrors.NewNotFoundError("account not found")
	}
	return accounts[0], nil
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]*domain.Account, error) {
	return r.findWhere(ctx, "ORDER BY a.id, b.name")
}

func (r *AccountRepository) FindByID(ctx context.Context, id domain.ID) (*domain.Account, error) {
	return r.findOneWhere(ctx, "WHERE a.id = $1 ORDER BY b.name", int64(id))
}

func (r *AccountRepository) FindByCreditCard(ctx context.Context, cardNumber string) (*domain.Account, error) {
	return r.findOneWhere(ctx, `
JOIN account_credit_card c ON c.account_id = a.id
WHERE c.number = $1 ORDER BY b.name`, cardNumber)
}

func (r *AccountRepository) Insert(ctx context.Context, account *domain.Account) error {
	db := conn(ctx, r.pool)

	var accountID int64
	err := db.QueryRow(ctx,
		`INSERT INTO account (number, name) VALUES ($1, $2) RETURNING id`,
		account.Number(), account.Name(),
	).Scan(&accountID)
	if err != nil {
		return parseError(err)
	}
	account.SetID(domain.ID(accountID))

	for _, b := range account.Beneficiaries() {
		var beneficiaryID int64
		err := db.QueryRow(ctx,
			`INSERT INTO beneficiary (account_id, name, allocation_percentage, savings)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			accountID, b.Name(), b.AllocationPercentage().Decimal().String(), b.Savings().Decimal().String(),
		).Scan(&beneficiaryID)
		if err != nil {
			return parseError(err)
		}
		if err := account.SetBeneficiaryID(b.Name(), domain.ID(beneficiaryID)); err != nil {
			return err
		}
	}
	return nil
}

// Update rewrites the account row. An account without an id has never been
// saved, so it is inserted instead.
func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) error {
	id := account.ID()
	if id == nil {
		return r.Insert(ctx, account)
	}

	tag, err := conn(ctx, r.pool).Exec(ctx,
		`UPDATE account SET number = $1, name = $2 WHERE id = $3`,
		account.Number(), account.Name(), int64(*id),
	)
	if err != nil {
		return parseError(err)
	}
	if tag.RowsAffected() == 0 {
		return serviceerrors.NewNotFoundError("account not found")
	}
	return nil
}

// ReconcileBeneficiaries makes the stored beneficiary rows match the
// aggregate: known rows are updated by id, new ones inserted, and rows whose
// name no longer appears on the account deleted. All statements go through
// the caller's connection, so a surrounding transaction covers the whole
// reconciliation.
func (r *AccountRepository) ReconcileBeneficiaries(ctx context.Context, account *domain.Account) error {
	id := account.ID()
	if id == nil {
		return serviceerrors.NewInvalidRequestError("account has no id")
	}
	db := conn(ctx, r.pool)

	beneficiaries := account.Beneficiaries()
	names := make([]string, len(beneficiaries))

	batch := &pgx.Batch{}
	for i, b := range beneficiaries {
		names[i] = b.Name()
		if bid := b.ID(); bid != nil {
			batch.Queue(
				`UPDATE beneficiary SET allocation_percentage = $1, savings = $2 WHERE id = $3`,
				b.AllocationPercentage().Decimal().String(), b.Savings().Decimal().String(), int64(*bid),
			)
		} else {
			batch.Queue(
				`INSERT INTO beneficiary (account_id, name, allocation_percentage, savings)
				 VALUES ($1, $2, $3, $4) RETURNING id`,
				int64(*id), b.Name(), b.AllocationPercentage().Decimal().String(), b.Savings().Decimal().String(),
			)
		}
	}
	batch.Queue(
		`DELETE FROM beneficiary WHERE account_id = $1 AND name != ALL($2)`,
		int64(*id), names,
	)

	br := db.SendBatch(ctx, batch)
	insertedIDs := make(map[string]int64)
	for _, b := range beneficiaries {
		if b.ID() != nil {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return parseError(err)
			}
			continue
		}
		var beneficiaryID int64
		if err := br.QueryRow().Scan(&beneficiaryID); err != nil {
			br.Close()
			return parseError(err)
		}
		insertedIDs[b.Name()] = beneficiaryID
	}
	if _, err := br.Exec(); err != nil {
		br.Close()
		return parseError(err)
	}
	if err := br.Close(); err != nil {
		return parseError(err)
	}

	for name, beneficiaryID := range insertedIDs {
		if err := account.SetBeneficiaryID(name, domain.ID(beneficiaryID)); err != nil {
			return err
		}
	}
	return nil
}

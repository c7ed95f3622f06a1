package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS account (
	id     BIGSERIAL PRIMARY KEY,
	number VARCHAR(9) NOT NULL UNIQUE,
	name   VARCHAR(50) NOT NULL
);

CREATE TABLE IF NOT EXISTS beneficiary (
	id                    BIGSERIAL PRIMARY KEY,
	account_id            BIGINT NOT NULL REFERENCES account (id) ON DELETE CASCADE,
	name                  VARCHAR(50) NOT NULL,
	allocation_percentage NUMERIC NOT NULL DEFAULT 0,
	savings               NUMERIC NOT NULL DEFAULT 0,
	UNIQUE (account_id, name)
);

CREATE TABLE IF NOT EXISTS account_credit_card (
	id         BIGSERIAL PRIMARY KEY,
	account_id BIGINT NOT NULL REFERENCES account (id) ON DELETE CASCADE,
	number     VARCHAR(16) NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS restaurant (
	id                          BIGSERIAL PRIMARY KEY,
	merchant_number             VARCHAR(10) NOT NULL UNIQUE,
	name                        VARCHAR(80) NOT NULL,
	benefit_percentage          NUMERIC NOT NULL DEFAULT 0,
	benefit_availability_policy CHAR(1) NOT NULL DEFAULT 'A'
);

CREATE TABLE IF NOT EXISTS reward_confirmation (
	id                        BIGSERIAL PRIMARY KEY,
	confirmation_number       VARCHAR(36) NOT NULL UNIQUE,
	account_number            VARCHAR(9) NOT NULL,
	dining_amount             NUMERIC NOT NULL,
	dining_credit_card_number VARCHAR(16) NOT NULL,
	dining_merchant_number    VARCHAR(10) NOT NULL,
	dining_date               DATE NOT NULL,
	reward_amount             NUMERIC NOT NULL,
	confirmed_at              TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS outbox_event (
	id          BIGSERIAL PRIMARY KEY,
	event_name  TEXT NOT NULL,
	entity_name TEXT NOT NULL,
	event_data  JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Migrate applies the schema. Statements are idempotent so startup can run
// this unconditionally.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}

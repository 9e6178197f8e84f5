package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is idempotent so it can run on every start.
const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id               SERIAL PRIMARY KEY,
	username         VARCHAR(50)  NOT NULL UNIQUE,
	full_name        VARCHAR(100) NOT NULL,
	age              INTEGER,
	gender           VARCHAR(20),
	preferred_gender VARCHAR(20),
	smoking          VARCHAR(20),
	location         VARCHAR(100),
	budget           INTEGER,
	move_in_date     VARCHAR(10),
	cleanliness      VARCHAR(20),
	personality      VARCHAR(20),
	has_pets         BOOLEAN      NOT NULL DEFAULT FALSE,
	religion         VARCHAR(50),
	bio              TEXT,
	created_at       TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at       TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS messages (
	id          SERIAL PRIMARY KEY,
	sender_id   INTEGER     NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
	receiver_id INTEGER     NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
	content     TEXT        NOT NULL,
	read        BOOLEAN     NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_messages_pair ON messages (sender_id, receiver_id, created_at);
`

// Migrate creates the tables the postgres repositories expect.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

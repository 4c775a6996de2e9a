package migrations

// This Go migration replaces the SQL version because the kv table schema
// differs by database driver: MySQL needs a bounded VARCHAR primary key and a
// MEDIUMTEXT value column, while SQLite and PostgreSQL use plain TEXT.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateKV, downCreateKV)
}

func upCreateKV(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "mysql":
		ddl = "CREATE TABLE IF NOT EXISTS kv (\n" +
			"    `key` VARCHAR(191) PRIMARY KEY,\n" +
			"    value MEDIUMTEXT NOT NULL\n" +
			")"
	default: // sqlite3, postgres
		ddl = `CREATE TABLE IF NOT EXISTS kv (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create kv table: %w", err)
	}
	return nil
}

func downCreateKV(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS kv`)
	return err
}

// Package store provides the key-value persistence layer and the item
// collection accessor built on top of it.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a requested key does not exist.
var ErrNotFound = errors.New("not found")

// KV exposes the key-value record operations. Update runs a read-modify-write
// cycle atomically with respect to other Update calls on the same database.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Update(ctx context.Context, key string, fn func(current string, found bool) (string, error)) error
}

// SQLKV is the sqlx-backed implementation of KV. The kv table holds one row
// per key; this service only ever uses a single key.
type SQLKV struct {
	db     *sqlx.DB
	driver string

	selectSQL string
	upsertSQL string
	lockSQL   string
}

// NewSQLKV builds a SQLKV for the given driver. The column name "key" is a
// reserved word in MySQL, so the statements are prepared per dialect.
func NewSQLKV(db *sqlx.DB, driver string) (*SQLKV, error) {
	s := &SQLKV{db: db, driver: driver}
	switch driver {
	case "sqlite3":
		s.selectSQL = `SELECT value FROM kv WHERE key = ?`
		s.upsertSQL = `INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value`
		s.lockSQL = s.selectSQL
	case "postgres":
		s.selectSQL = `SELECT value FROM kv WHERE key = $1`
		s.upsertSQL = `INSERT INTO kv (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = excluded.value`
		s.lockSQL = s.selectSQL + ` FOR UPDATE`
	case "mysql":
		s.selectSQL = "SELECT value FROM kv WHERE `key` = ?"
		s.upsertSQL = "INSERT INTO kv (`key`, value) VALUES (?, ?) ON DUPLICATE KEY UPDATE value = VALUES(value)"
		s.lockSQL = s.selectSQL + ` FOR UPDATE`
	default:
		return nil, fmt.Errorf("unsupported KV driver %q: must be sqlite3, mysql, or postgres", driver)
	}
	return s, nil
}

// Get returns the value stored under key, or ErrNotFound.
func (s *SQLKV) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value, s.selectSQL, key)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Put overwrites the value stored under key, creating the row if absent.
func (s *SQLKV) Put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, s.upsertSQL, key, value)
	return err
}

// Update reads the current value, applies fn, and writes the result back, all
// inside one transaction. On MySQL and PostgreSQL the read takes a row lock
// (FOR UPDATE); SQLite serializes through its write-transaction lock.
func (s *SQLKV) Update(ctx context.Context, key string, fn func(current string, found bool) (string, error)) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var current string
	found := true
	err = tx.GetContext(ctx, &current, s.lockSQL, key)
	if err == sql.ErrNoRows {
		found = false
	} else if err != nil {
		return err
	}

	next, err := fn(current, found)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, s.upsertSQL, key, next); err != nil {
		return err
	}

	return tx.Commit()
}

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	_ "github.com/lib/pq"

	"github.com/daybook-cli/daybook/internal/migration"
	"github.com/daybook-cli/daybook/migrations"
)

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	// ErrEmbeddedCredentials is returned when a connection string carries a
	// password inline; credentials must come from the environment, .pgpass
	// or the OS keyring instead.
	ErrEmbeddedCredentials = errors.New("connection string must not contain a password")
)

// PostgresBackend stores keys and values in a single-table PostgreSQL database.
type PostgresBackend struct {
	connStr string
	db      *sql.DB
}

func NewPostgresBackend(connStr string) *PostgresBackend {
	return &PostgresBackend{connStr: connStr}
}

// HasEmbeddedCredentials reports whether the connection string carries an
// inline password, either in URL userinfo or as a DSN password key.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, set := u.User.Password(); set {
				return true
			}
		}
		return false
	}
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") {
			return true
		}
	}
	return false
}

func (p *PostgresBackend) open() error {
	if p.db != nil {
		return nil
	}
	if HasEmbeddedCredentials(p.connStr) {
		return ErrEmbeddedCredentials
	}
	db, err := sql.Open("postgres", p.connStr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	p.db = db
	return nil
}

func (p *PostgresBackend) Init() error {
	if err := p.open(); err != nil {
		return err
	}
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	_, err = migration.NewRunner(p.db, subFS).ApplyMigrations(nil)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (p *PostgresBackend) Load() error {
	if err := p.open(); err != nil {
		return err
	}
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return migration.NewRunner(p.db, subFS).ValidateVersion()
}

func (p *PostgresBackend) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

func (p *PostgresBackend) Get(key string) (string, bool, error) {
	var value string
	err := p.db.QueryRow("SELECT value FROM records WHERE key = $1", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

func (p *PostgresBackend) Set(key, value string) error {
	_, err := p.db.Exec(
		"INSERT INTO records (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (p *PostgresBackend) Delete(key string) error {
	if _, err := p.db.Exec("DELETE FROM records WHERE key = $1", key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (p *PostgresBackend) ListKeys(prefix string) ([]string, error) {
	rows, err := p.db.Query("SELECT key FROM records WHERE key LIKE $1 ORDER BY key", prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, rows.Err()
}

func (p *PostgresBackend) Path() string { return p.connStr }

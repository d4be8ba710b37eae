package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func migrationFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func TestGetCurrentVersion_FreshDatabase(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(nil))

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0 on a fresh database, got %d", version)
	}
}

func TestLoadMigrations_SortedByVersion(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"003_third.sql":  "CREATE TABLE three (id INTEGER);",
		"001_first.sql":  "CREATE TABLE one (id INTEGER);",
		"002_second.sql": "CREATE TABLE two (id INTEGER);",
		"README.md":      "not a migration",
	}))

	migrations, err := runner.LoadMigrations()
	if err != nil {
		t.Fatalf("LoadMigrations failed: %v", err)
	}
	if len(migrations) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migrations))
	}
	for i, m := range migrations {
		if m.Version != i+1 {
			t.Errorf("position %d: expected version %d, got %d", i, i+1, m.Version)
		}
	}
	if migrations[0].Name != "first" {
		t.Errorf("expected name 'first', got %q", migrations[0].Name)
	}
}

func TestLoadMigrations_RejectsBadFilename(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"init.sql": "CREATE TABLE one (id INTEGER);",
	}))
	if _, err := runner.LoadMigrations(); err == nil {
		t.Error("expected error for filename without a version prefix")
	}
}

func TestApplyMigrations(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE records (key TEXT PRIMARY KEY, value TEXT NOT NULL);",
		"002_idx.sql":  "CREATE INDEX idx_records_key ON records (key);",
	}))

	var logged []string
	applied, err := runner.ApplyMigrations(func(msg string) { logged = append(logged, msg) })
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 applied migrations, got %d", applied)
	}
	if len(logged) != 2 {
		t.Errorf("expected 2 progress messages, got %d", len(logged))
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != 2 {
		t.Errorf("expected version 2 after applying, got %d", version)
	}

	// The migrated schema must be usable.
	if _, err := db.Exec("INSERT INTO records (key, value) VALUES ('k', 'v')"); err != nil {
		t.Errorf("migrated table not usable: %v", err)
	}
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE records (key TEXT PRIMARY KEY, value TEXT NOT NULL);",
	}))

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected 0 migrations on re-apply, got %d", applied)
	}
}

func TestApplyMigrations_RollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_bad.sql": "CREATE TABLE; this is not valid SQL",
	}))

	if _, err := runner.ApplyMigrations(nil); err == nil {
		t.Fatal("expected error from invalid migration")
	}
	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != 0 {
		t.Errorf("failed migration must not bump the version, got %d", version)
	}
}

func TestValidateVersion(t *testing.T) {
	db := setupTestDB(t)
	fsys := migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE records (key TEXT PRIMARY KEY, value TEXT NOT NULL);",
	})
	runner := NewRunner(db, fsys)

	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected error when the schema is behind the latest migration")
	}
	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatal(err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("expected up-to-date schema to validate: %v", err)
	}
}

func TestParseMigrationName(t *testing.T) {
	version, name, err := parseMigrationName("012_add_index.sql")
	if err != nil {
		t.Fatalf("parseMigrationName failed: %v", err)
	}
	if version != 12 {
		t.Errorf("expected version 12, got %d", version)
	}
	if name != "add_index" {
		t.Errorf("expected name 'add_index', got %q", name)
	}

	if _, _, err := parseMigrationName("abc_def.sql"); err == nil {
		t.Error("expected error for non-numeric version")
	}
}

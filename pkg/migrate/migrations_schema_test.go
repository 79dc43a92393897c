package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ainnoce10/ebf-backend/pkg/migrate"
)

func readMigration(t *testing.T, pattern string) string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %q", pattern)
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}

func TestUsersMigrationContainsSchema(t *testing.T) {
	content := readMigration(t, "*_create_users_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS users",
		"password_hash VARCHAR(255) NOT NULL",
		"role VARCHAR(32) NOT NULL",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (lower(email))",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestFieldOpsMigrationContainsSchemas(t *testing.T) {
	content := readMigration(t, "*_create_field_ops_tables.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS technicians",
		"CREATE TABLE IF NOT EXISTS report_records",
		"CREATE TABLE IF NOT EXISTS interventions",
		"date VARCHAR(10) NOT NULL",
		"technician_id UUID REFERENCES technicians (id) ON DELETE SET NULL",
		"CREATE INDEX IF NOT EXISTS idx_report_records_date",
		"CREATE INDEX IF NOT EXISTS idx_interventions_date",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestCommerceMigrationContainsSchemas(t *testing.T) {
	content := readMigration(t, "*_create_commerce_tables.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS transaction_records",
		"CREATE TABLE IF NOT EXISTS products",
		"CREATE TABLE IF NOT EXISTS ticker_messages",
		"amount DECIMAL(20,4) NOT NULL",
		"unit_price DECIMAL(20,4) NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_products_category",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestShippedMigrationsAreValid(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("ValidateDir: %v", err)
	}
}

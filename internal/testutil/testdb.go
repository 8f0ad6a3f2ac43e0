// Package testutil provides a PostgreSQL connection for integration tests.
package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

// Schema is the subset of the application schema the team store reads.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id         SERIAL PRIMARY KEY,
	email      VARCHAR(255) NOT NULL UNIQUE,
	deleted_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS teams (
	id                  SERIAL PRIMARY KEY,
	name                VARCHAR(100) NOT NULL,
	created_at          TIMESTAMP NOT NULL DEFAULT now(),
	updated_at          TIMESTAMP NOT NULL DEFAULT now(),
	stripe_customer_id  TEXT UNIQUE,
	plan_name           VARCHAR(50),
	subscription_status VARCHAR(20)
);

CREATE TABLE IF NOT EXISTS team_members (
	id        SERIAL PRIMARY KEY,
	user_id   INTEGER NOT NULL REFERENCES users(id),
	team_id   INTEGER NOT NULL REFERENCES teams(id),
	role      VARCHAR(50) NOT NULL,
	joined_at TIMESTAMP NOT NULL DEFAULT now()
);
`

// SetupTestDB connects to the database named by TEST_DB_* variables, applies
// the schema and truncates all tables. The test is skipped when TEST_DB_HOST
// is not set.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set, skipping integration test")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host,
		getEnv("TEST_DB_PORT", "5432"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "postgres"),
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.Ping(); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}
	if err := CleanupTestDB(db); err != nil {
		t.Fatalf("failed to cleanup database: %v", err)
	}

	return db
}

// CleanupTestDB truncates all tables to clean up test data.
func CleanupTestDB(db *sql.DB) error {
	_, err := db.Exec("TRUNCATE TABLE team_members, teams, users RESTART IDENTITY CASCADE")
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

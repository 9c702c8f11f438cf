//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var tcPool *pgxpool.Pool

var tcDSN string

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_pass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres testcontainer: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		if termErr := pgContainer.Terminate(ctx); termErr != nil {
			log.Printf("failed to terminate container after conn string error: %v", termErr)
		}
		log.Fatalf("failed to get connection string from container: %v", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		if termErr := pgContainer.Terminate(ctx); termErr != nil {
			log.Printf("failed to terminate container after pool create error: %v", termErr)
		}
		log.Fatalf("failed to create pgx pool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		if termErr := pgContainer.Terminate(ctx); termErr != nil {
			log.Printf("failed to terminate container after ping error: %v", termErr)
		}
		log.Fatalf("failed to ping postgres in testcontainer: %v", err)
	}

	tcPool = pool
	tcDSN = connStr

	if err := createTables(ctx, tcPool); err != nil {
		pool.Close()
		if termErr := pgContainer.Terminate(ctx); termErr != nil {
			log.Printf("failed to terminate container after createTables error: %v", termErr)
		}
		log.Fatalf("failed to create test tables: %v", err)
	}

	code := m.Run()

	pool.Close()
	if err := pgContainer.Terminate(ctx); err != nil {
		log.Printf("failed to terminate postgres container: %v", err)
	}

	os.Exit(code)
}

func createTables(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []struct {
		name string
		sql  string
	}{
		{"parties", `
			CREATE TABLE IF NOT EXISTS parties (
				id           BIGSERIAL PRIMARY KEY,
				name         TEXT NOT NULL UNIQUE,
				city         TEXT NOT NULL,
				phone        TEXT NOT NULL DEFAULT '',
				credit_terms TEXT NOT NULL DEFAULT '',
				active       BOOLEAN NOT NULL DEFAULT TRUE
			);
		`},
		{"items", `
			CREATE TABLE IF NOT EXISTS items (
				id          BIGSERIAL PRIMARY KEY,
				name        TEXT NOT NULL UNIQUE,
				category    TEXT NOT NULL,
				unit        TEXT NOT NULL DEFAULT 'pcs',
				dealer_rate NUMERIC(12,2) NOT NULL DEFAULT 0,
				active      BOOLEAN NOT NULL DEFAULT TRUE
			);
		`},
		{"orders", `
			CREATE TABLE IF NOT EXISTS orders (
				id                     BIGSERIAL PRIMARY KEY,
				code                   TEXT NOT NULL UNIQUE,
				party_id               BIGINT NOT NULL REFERENCES parties(id),
				order_date             TIMESTAMP WITHOUT TIME ZONE NOT NULL,
				expected_dispatch_date TIMESTAMP WITHOUT TIME ZONE,
				status                 TEXT NOT NULL,
				remarks                TEXT NOT NULL DEFAULT '',
				total_qty              BIGINT NOT NULL DEFAULT 0,
				total_value            NUMERIC(14,2) NOT NULL DEFAULT 0,
				created_at             TIMESTAMP WITHOUT TIME ZONE DEFAULT now() NOT NULL,
				updated_at             TIMESTAMP WITHOUT TIME ZONE DEFAULT now() NOT NULL
			);
		`},
		{"order_lines", `
			CREATE TABLE IF NOT EXISTS order_lines (
				id             BIGSERIAL PRIMARY KEY,
				order_id       BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
				item_id        BIGINT NOT NULL REFERENCES items(id),
				qty            BIGINT NOT NULL,
				dispatched_qty BIGINT,
				rate           NUMERIC(12,2) NOT NULL,
				line_remarks   TEXT
			);
		`},
		{"dispatch_events", `
			CREATE TABLE IF NOT EXISTS dispatch_events (
				id            BIGSERIAL PRIMARY KEY,
				order_line_id BIGINT NOT NULL REFERENCES order_lines(id) ON DELETE CASCADE,
				submission_id UUID NOT NULL,
				qty           BIGINT NOT NULL,
				dispatched_at TIMESTAMP WITHOUT TIME ZONE NOT NULL,
				UNIQUE (submission_id, order_line_id)
			);
		`},
		{"order_logs", `
			CREATE TABLE IF NOT EXISTS order_logs (
				id         BIGSERIAL PRIMARY KEY,
				order_id   BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
				message    TEXT NOT NULL,
				created_at TIMESTAMP WITHOUT TIME ZONE NOT NULL
			);
		`},
	}

	for _, s := range stmts {
		if _, err := pool.Exec(ctx, s.sql); err != nil {
			return fmt.Errorf("create %s table: %w", s.name, err)
		}
	}
	return nil
}

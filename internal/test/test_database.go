package test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	integresql "github.com/allaboutapps/integresql-client-go"
	"github.com/allaboutapps/integresql-client-go/pkg/util"
	"github/chapool/go-transfer/internal/store"
	pUtil "github/chapool/go-transfer/internal/util"

	// Import postgres driver for database/sql package
	_ "github.com/lib/pq"
)

var (
	client     *integresql.Client
	clientOnce sync.Once
	clientErr  error

	hash     string
	hashOnce sync.Once
	hashErr  error

	migDir = filepath.Join(pUtil.GetProjectRootDir(), "internal", "store", "migrations")
)

// WithTestDatabase provides an isolated, fully migrated test database. The
// test is skipped if no IntegreSQL server is configured.
func WithTestDatabase(t *testing.T, closure func(db *sql.DB)) {
	t.Helper()

	if os.Getenv("INTEGRESQL_CLIENT_BASE_URL") == "" {
		t.Skip("INTEGRESQL_CLIENT_BASE_URL not set, skipping database test")
	}

	ctx := t.Context()

	initIntegresClient(t)
	initTestDatabaseHash(t)
	initTemplate(ctx, t)

	testDatabase, err := client.GetTestDatabase(ctx, hash)
	if err != nil {
		t.Fatalf("Failed to obtain test database: %v", err)
	}

	connectionString := testDatabase.Config.ConnectionString()

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		t.Fatalf("Failed to setup test database for connectionString %q: %v", connectionString, err)
	}

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("Failed to ping test database for connectionString %q: %v", connectionString, err)
	}

	t.Logf("WithTestDatabase: %q", testDatabase.Config.Database)

	closure(db)

	// this database object is managed and should close automatically after running the test
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close db %q: %v", connectionString, err)
	}
}

func initIntegresClient(t *testing.T) {
	t.Helper()

	clientOnce.Do(func() {
		client, clientErr = integresql.DefaultClientFromEnv()
	})

	if clientErr != nil {
		t.Fatalf("Failed to create new integresql-client: %v", clientErr)
	}
}

func initTestDatabaseHash(t *testing.T) {
	t.Helper()

	hashOnce.Do(func() {
		hash, hashErr = util.GetTemplateHash(migDir)
	})

	if hashErr != nil {
		t.Fatalf("Failed to get template hash: %v", hashErr)
	}
}

func initTemplate(ctx context.Context, t *testing.T) {
	t.Helper()

	err := client.SetupTemplateWithDBClient(ctx, hash, func(db *sql.DB) error {
		t.Helper()

		n, err := store.Migrate(ctx, db)
		if err != nil {
			return err
		}

		t.Logf("Applied %d migrations to template %q", n, hash)

		return nil
	})
	if err != nil && !errors.Is(err, integresql.ErrTemplateAlreadyInitialized) {
		t.Fatalf("Failed to setup template database for hash %q: %v", hash, err)
	}
}

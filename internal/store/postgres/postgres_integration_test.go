package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/diamondjirapat/mango-reach-management-mockup/internal/store"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/store/storetest"
)

// postgresDSN returns MANGO_BACKEND_POSTGRES_DSN when set, otherwise starts a
// throwaway postgres container. Skips when neither is available.
func postgresDSN(t *testing.T) string {
	t.Helper()
	if dsn := os.Getenv("MANGO_BACKEND_POSTGRES_DSN"); dsn != "" {
		return dsn
	}
	if testing.Short() {
		t.Skip("short mode; skipping postgres container")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "mango",
			"POSTGRES_PASSWORD": "mango",
			"POSTGRES_DB":       "ads",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}
	return fmt.Sprintf("postgres://mango:mango@%s:%s/ads?sslmode=disable", host, port.Port())
}

func makePGStore(t *testing.T) store.Store {
	t.Helper()
	db, err := Open(postgresDSN(t))
	if err != nil {
		t.Fatalf("postgres open: %v", err)
	}
	ctx := context.Background()
	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("postgres schema: %v", err)
	}
	if _, err := db.ExecContext(ctx, `TRUNCATE ads_data RESTART IDENTITY`); err != nil {
		t.Fatalf("postgres truncate: %v", err)
	}
	s := NewWithDB(db)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPostgresStore_Compliance(t *testing.T) {
	storetest.Run(t, makePGStore)
}

func TestOpen_EmptyDSN(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty DSN")
	}
}

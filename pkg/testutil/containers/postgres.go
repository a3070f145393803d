//go:build integration

package containers

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"hospital-management/config"
	"hospital-management/internal/infrastructure/database"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// PostgresContainer wraps a migrated testcontainers Postgres instance.
type PostgresContainer struct {
	Container testcontainers.Container
	Config    config.DBConfig
	DB        *gorm.DB
}

// NewPostgresContainer starts Postgres, applies the embedded migrations and
// opens a gorm connection. The container is terminated when the test ends.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("hospital"),
		tcpostgres.WithUsername("hospital"),
		tcpostgres.WithPassword("hospital"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get postgres host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get postgres port: %v", err)
	}

	cfg := config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     "hospital",
		Password: "hospital",
		Name:     "hospital",
		SSLMode:  "disable",
	}

	if err := database.RunMigrations(cfg); err != nil {
		t.Fatalf("failed to migrate postgres: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg, "test")
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return &PostgresContainer{
		Container: container,
		Config:    cfg,
		DB:        db,
	}
}

// TruncateTables empties the given tables and everything referencing them.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	query := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(tables, ", "))
	return p.DB.WithContext(ctx).Exec(query).Error
}

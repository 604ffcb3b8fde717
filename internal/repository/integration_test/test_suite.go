package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"courier-ledger/internal/pkg/config"
	"courier-ledger/internal/pkg/migrations"
	"courier-ledger/internal/pkg/postgres"
	"courier-ledger/pkg/logger"
	"courier-ledger/pkg/querier"
	"courier-ledger/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	setupOnce       sync.Once
)

// dsn берет базу из POSTGRES_* (так делает Makefile), иначе поднимает контейнер.
// Контейнер живет до конца процесса тестов, его прибирает ryuk.
func dsn(ctx context.Context) string {
	if host := os.Getenv("POSTGRES_HOST"); host != "" {
		return postgres.NewDSN(&config.Database{
			Host:     host,
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		})
	}

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("courier_ledger"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("failed to get container connection string: %v", err)
	}
	return connString
}

func setup() {
	setupOnce.Do(func() {
		ctx := context.Background()

		pool, err := postgres.NewConnPoolFromDSN(ctx, logger.Nop{}, dsn(ctx))
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}

		if err := migrations.Up(ctx, logger.Nop{}, pool); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}

		poolInstance = pool
		querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
	})
}

func GetQuerier() *querier.Querier {
	setup()
	return querierInstance
}

func GetTxManager() *tx.Manager {
	setup()
	return tx.New(poolInstance)
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE audit_log, outbox_events, withdrawal_requests, courier_rules,
			deliveries, orders, couriers RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}

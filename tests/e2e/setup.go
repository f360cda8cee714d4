//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"restaurant-booking/cmd/bootstrap"
	"restaurant-booking/cmd/bootstrap/components"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	testUser      = "test"
	testPassword  = "testpass"
	migrationFile = "migrations/001_initial_schema.sql"
)

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
)

// ------------------------------------------------------------
// PostgreSQLコンテナを一度だけ起動し、テスト毎に専用DBを作る
// ------------------------------------------------------------
func startPostgres(t *testing.T) (host string, port nat.Port) {
	postgresOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var err error
		postgresContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     testUser,
					"POSTGRES_PASSWORD": testPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off"},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
					return adminDSN(host, port)
				}).WithStartupTimeout(60 * time.Second),
				Labels: map[string]string{"purpose": "e2e-tests"},
			},
			Started: true,
		})
		require.NoError(t, err, "PostgreSQLコンテナの起動に失敗")
	})
	require.NotNil(t, postgresContainer, "PostgreSQLコンテナが起動していません")

	ctx := context.Background()
	mapped, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err, "PostgreSQLのポート取得に失敗")
	host, err = postgresContainer.Host(ctx)
	require.NoError(t, err, "PostgreSQLのホスト取得に失敗")
	return host, mapped
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", testUser, testPassword, host, port.Port())
}

func prepareDatabase(t *testing.T) config.DBConfig {
	host, port := startPostgres(t)
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	var createErr error
	for attempt := range 3 {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
		}
		if _, createErr = admin.Exec(ctx, "CREATE DATABASE "+dbName); createErr == nil {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", createErr.Error())
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		pool, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			return
		}
		defer pool.Close()
		if _, err := pool.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
}

// applyMigration runs the schema file, found by walking up to the module root.
func applyMigration(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)
	var schema []byte
	for {
		if schema, err = os.ReadFile(filepath.Join(dir, migrationFile)); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "マイグレーションファイルが見つかりません: %s", migrationFile)
		dir = parent
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err, "データベースマイグレーションに失敗")
}

// buildApp wires the production modules against the test database.
func buildApp(t *testing.T, pool *pgxpool.Pool, dbConfig config.DBConfig) (*gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig

	var router *gin.Engine
	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config { return cfg },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.CacheModule,
		bootstrap.BrokerModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		components.WorkerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router, cfg
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	dbConfig := prepareDatabase(t)

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(pool.Close)
	applyMigration(t, pool)

	s.DB = pool
	s.Router, s.Config = buildApp(t, pool, dbConfig)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}

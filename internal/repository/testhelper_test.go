package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"Parchment/internal/pkg/database"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	once     sync.Once
	sharedDB *gorm.DB
	initErr  error
)

// setupTestDB 启动共享的 MySQL 容器（整个测试进程只启动一次）并完成建表
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MySQL integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	once.Do(func() {
		sharedDB, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("setup test DB: %v", initErr)
	}
	return sharedDB
}

func startContainerAndMigrate() (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8.4",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "testpass",
			"MYSQL_DATABASE":      "parchment",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("port: 3306  MySQL Community Server"),
			wait.ForListeningPort("3306/tcp"),
		).WithDeadline(120 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "3306")
	if err != nil {
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	dsn, err := database.NormalizeDSN(fmt.Sprintf("root:testpass@tcp(%s:%s)/parchment?charset=utf8mb4", host, port.Port()))
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	if err = database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// unique 生成测试内唯一的短标识，避免共享库中的数据互相干扰
func unique(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

package connection

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN("localhost", "app", "secret", "employees", "5432", "disable")

	assert.Equal(t, "host=localhost user=app password=secret dbname=employees port=5432 sslmode=disable", dsn)
}

func TestConnectSQLiteWithRetry(t *testing.T) {
	path := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := ConnectSQLiteWithRetry(path, 1, zap.NewNop())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.NoError(t, sqlDB.Ping())
}

func TestConnectRedisWithRetry_GivesUp(t *testing.T) {
	old := retryDelay
	retryDelay = time.Millisecond
	defer func() { retryDelay = old }()

	rdb, err := ConnectRedisWithRetry("127.0.0.1:1", 2, zap.NewNop())

	assert.Nil(t, rdb)
	assert.ErrorContains(t, err, "after 2 retries")
}

package employee

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newMockRedisRepo(t *testing.T) (*redisRepository, redismock.ClientMock) {
	t.Helper()
	rdb, mock := redismock.NewClientMock()
	t.Cleanup(func() { _ = rdb.Close() })

	repo := NewRedisRepository(rdb).(*redisRepository)
	repo.newID = func() string { return "emp-1" }
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

func mustDoc(t *testing.T, e Employee) string {
	t.Helper()
	b, err := json.Marshal(e)
	require.NoError(t, err)
	return string(b)
}

func TestRedisRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("new document gets id and timestamps", func(t *testing.T) {
		repo, mock := newMockRedisRepo(t)
		want := Employee{
			ID: "emp-1", FirstName: "Ioan", LastName: "Dorel", Email: "ioan@x.com",
			CreatedAt: fixedNow, UpdatedAt: fixedNow,
		}

		mock.ExpectTxPipeline()
		mock.ExpectSet("employee:emp-1", mustDoc(t, want), 0).SetVal("OK")
		mock.ExpectSAdd("employees:index", "emp-1").SetVal(1)
		mock.ExpectTxPipelineExec()

		e := &Employee{FirstName: "Ioan", LastName: "Dorel", Email: "ioan@x.com"}
		require.NoError(t, repo.Save(ctx, e))

		assert.Equal(t, want, *e)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing id keeps created at", func(t *testing.T) {
		repo, mock := newMockRedisRepo(t)
		created := fixedNow.Add(-time.Hour)
		want := Employee{ID: "emp-9", Email: "new@x.com", CreatedAt: created, UpdatedAt: fixedNow}

		mock.ExpectTxPipeline()
		mock.ExpectSet("employee:emp-9", mustDoc(t, want), 0).SetVal("OK")
		mock.ExpectSAdd("employees:index", "emp-9").SetVal(0)
		mock.ExpectTxPipelineExec()

		e := &Employee{ID: "emp-9", Email: "new@x.com", CreatedAt: created}
		require.NoError(t, repo.Save(ctx, e))

		assert.Equal(t, want, *e)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisRepository_Update(t *testing.T) {
	ctx := context.Background()
	created := fixedNow.Add(-time.Hour)

	t.Run("existing document is overwritten", func(t *testing.T) {
		repo, mock := newMockRedisRepo(t)
		want := Employee{ID: "emp-1", LastName: "New", Email: "new@x.com", CreatedAt: created, UpdatedAt: fixedNow}
		mock.ExpectSetXX("employee:emp-1", mustDoc(t, want), 0).SetVal(true)

		e := &Employee{ID: "emp-1", LastName: "New", Email: "new@x.com", CreatedAt: created}
		updated, err := repo.Update(ctx, e)

		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, want, *e)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing document is not recreated", func(t *testing.T) {
		repo, mock := newMockRedisRepo(t)
		doc := mustDoc(t, Employee{ID: "emp-1", Email: "x", UpdatedAt: fixedNow})
		mock.ExpectSetXX("employee:emp-1", doc, 0).SetVal(false)

		updated, err := repo.Update(ctx, &Employee{ID: "emp-1", Email: "x"})

		require.NoError(t, err)
		assert.False(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRedisRepo(t)
		stored := Employee{ID: "emp-1", FirstName: "Ioan", Email: "ioan@x.com", CreatedAt: fixedNow, UpdatedAt: fixedNow}
		mock.ExpectGet("employee:emp-1").SetVal(mustDoc(t, stored))

		got, err := repo.FindByID(ctx, "emp-1")

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, stored, *got)
	})

	t.Run("missing key is empty", func(t *testing.T) {
		repo, mock := newMockRedisRepo(t)
		mock.ExpectGet("employee:nope").RedisNil()

		got, err := repo.FindByID(ctx, "nope")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupt document", func(t *testing.T) {
		repo, mock := newMockRedisRepo(t)
		mock.ExpectGet("employee:emp-1").SetVal("{not json")

		_, err := repo.FindByID(ctx, "emp-1")

		assert.ErrorContains(t, err, "decode employee emp-1")
	})

	t.Run("redis error", func(t *testing.T) {
		repo, mock := newMockRedisRepo(t)
		mock.ExpectGet("employee:emp-1").SetErr(errors.New("LOADING"))

		_, err := repo.FindByID(ctx, "emp-1")

		assert.EqualError(t, err, "LOADING")
	})
}

func TestRedisRepository_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("skips duplicates and dangling ids", func(t *testing.T) {
		repo, mock := newMockRedisRepo(t)
		a := Employee{ID: "a", FirstName: "Andi"}
		b := Employee{ID: "b", FirstName: "Budi"}

		mock.ExpectSScan("employees:index", 0, "", 0).SetVal([]string{"a", "b", "a", "gone"}, 0)
		mock.ExpectGet("employee:a").SetVal(mustDoc(t, a))
		mock.ExpectGet("employee:b").SetVal(mustDoc(t, b))
		mock.ExpectGet("employee:gone").RedisNil()

		var ids []string
		for e, err := range repo.FindAll(ctx) {
			require.NoError(t, err)
			ids = append(ids, e.ID)
		}

		assert.Equal(t, []string{"a", "b"}, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty index", func(t *testing.T) {
		repo, mock := newMockRedisRepo(t)
		mock.ExpectSScan("employees:index", 0, "", 0).SetVal([]string{}, 0)

		n := 0
		for range repo.FindAll(ctx) {
			n++
		}

		assert.Zero(t, n)
	})

	t.Run("scan error is yielded", func(t *testing.T) {
		repo, mock := newMockRedisRepo(t)
		mock.ExpectSScan("employees:index", 0, "", 0).SetErr(errors.New("READONLY"))

		var gotErr error
		for _, err := range repo.FindAll(ctx) {
			gotErr = err
		}

		assert.EqualError(t, gotErr, "READONLY")
	})

	t.Run("lazy until ranged", func(t *testing.T) {
		repo, mock := newMockRedisRepo(t)

		_ = repo.FindAll(ctx)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		repo, mock := newMockRedisRepo(t)
		mock.ExpectTxPipeline()
		mock.ExpectDel("employee:emp-1").SetVal(1)
		mock.ExpectSRem("employees:index", "emp-1").SetVal(1)
		mock.ExpectTxPipelineExec()

		deleted, err := repo.DeleteByID(ctx, "emp-1")

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("nothing to delete", func(t *testing.T) {
		repo, mock := newMockRedisRepo(t)
		mock.ExpectTxPipeline()
		mock.ExpectDel("employee:nope").SetVal(0)
		mock.ExpectSRem("employees:index", "nope").SetVal(0)
		mock.ExpectTxPipelineExec()

		deleted, err := repo.DeleteByID(ctx, "nope")

		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestRedisRepository_DeleteAll(t *testing.T) {
	repo, mock := newMockRedisRepo(t)
	mock.ExpectSMembers("employees:index").SetVal([]string{"a", "b"})
	mock.ExpectDel("employee:a", "employee:b", "employees:index").SetVal(3)

	require.NoError(t, repo.DeleteAll(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisRepository_Ping(t *testing.T) {
	repo, mock := newMockRedisRepo(t)
	mock.ExpectPing().SetVal("PONG")

	assert.NoError(t, repo.Ping(context.Background()))
}

package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisDocumentPrefix = "employee:"
	redisIndexKey       = "employees:index"
)

// redisRepository stores every employee as a JSON document under
// employee:<id> and keeps the ids in the employees:index set for listing.
type redisRepository struct {
	rdb   redis.UniversalClient
	newID func() string
	now   func() time.Time
}

func NewRedisRepository(rdb redis.UniversalClient) Repository {
	return &redisRepository{
		rdb:   rdb,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

func documentKey(id string) string {
	return redisDocumentPrefix + id
}

func (r *redisRepository) Save(ctx context.Context, e *Employee) error {
	now := r.now().UTC()
	if e.ID == "" {
		e.ID = r.newID()
		e.CreatedAt = now
	}
	e.UpdatedAt = now

	doc, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode employee %s: %w", e.ID, err)
	}

	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, documentKey(e.ID), string(doc), 0)
		pipe.SAdd(ctx, redisIndexKey, e.ID)
		return nil
	})
	return err
}

// Update rewrites the document with SET XX, so an id deleted in the
// meantime stays deleted.
func (r *redisRepository) Update(ctx context.Context, e *Employee) (bool, error) {
	e.UpdatedAt = r.now().UTC()

	doc, err := json.Marshal(e)
	if err != nil {
		return false, fmt.Errorf("encode employee %s: %w", e.ID, err)
	}

	return r.rdb.SetXX(ctx, documentKey(e.ID), string(doc), 0).Result()
}

func (r *redisRepository) FindByID(ctx context.Context, id string) (*Employee, error) {
	doc, err := r.rdb.Get(ctx, documentKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var e Employee
	if err := json.Unmarshal([]byte(doc), &e); err != nil {
		return nil, fmt.Errorf("decode employee %s: %w", id, err)
	}
	return &e, nil
}

// FindAll walks the index with SSCAN. SSCAN may repeat members, so ids are
// de-duplicated; ids whose document is gone are skipped.
func (r *redisRepository) FindAll(ctx context.Context) iter.Seq2[Employee, error] {
	return func(yield func(Employee, error) bool) {
		seen := make(map[string]struct{})
		it := r.rdb.SScan(ctx, redisIndexKey, 0, "", 0).Iterator()
		for it.Next(ctx) {
			id := it.Val()
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			e, err := r.FindByID(ctx, id)
			if err != nil {
				yield(Employee{}, err)
				return
			}
			if e == nil {
				continue
			}
			if !yield(*e, nil) {
				return
			}
		}
		if err := it.Err(); err != nil {
			yield(Employee{}, err)
		}
	}
}

func (r *redisRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	var del *redis.IntCmd
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, documentKey(id))
		pipe.SRem(ctx, redisIndexKey, id)
		return nil
	})
	if err != nil {
		return false, err
	}
	return del.Val() > 0, nil
}

func (r *redisRepository) DeleteAll(ctx context.Context) error {
	ids, err := r.rdb.SMembers(ctx, redisIndexKey).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, documentKey(id))
	}
	keys = append(keys, redisIndexKey)

	return r.rdb.Del(ctx, keys...).Err()
}

func (r *redisRepository) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

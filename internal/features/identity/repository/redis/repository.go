// Package redis implements the remote identity store. Records are JSON blobs
// under prefixed keys; two sorted sets index them by creation time and by
// auto-delete deadline.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"metchera-backend/internal/features/identity/models"
	"metchera-backend/internal/features/identity/repository"
)

const (
	keyPrefixIdentity = "identity:"
	keyByCreated      = "identities:by_created"
	keyAutoDelete     = "identities:autodelete"
)

type redisRepository struct {
	client *redis.Client
}

// NewIdentityRepository creates the remote adapter over an established client.
func NewIdentityRepository(client *redis.Client) repository.IdentityRepository {
	return &redisRepository{client: client}
}

func makeIdentityKey(id string) string {
	return keyPrefixIdentity + id
}

func wrapStorage(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(repository.ErrStorageUnavailable, err))
}

func (r *redisRepository) Create(ctx context.Context, identity *models.Identity) (string, error) {
	if identity.ID == "" {
		identity.ID = repository.NewID()
		identity.AvatarURL = models.AvatarURL(identity.ID)
	}

	// CreatedAt is stamped from the server clock at write time; the caller's
	// in-memory value is provisional until Create returns.
	serverNow, err := r.client.Time(ctx).Result()
	if err != nil {
		return "", wrapStorage("create identity: server time", err)
	}
	identity.CreatedAt = serverNow

	data, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("create identity: marshal: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, makeIdentityKey(identity.ID), data, 0)
	pipe.ZAdd(ctx, keyByCreated, redis.Z{Score: float64(identity.CreatedAt.UnixMilli()), Member: identity.ID})
	if identity.AutoDelete.Enabled {
		pipe.ZAdd(ctx, keyAutoDelete, redis.Z{Score: float64(identity.AutoDelete.DeleteAt.UnixMilli()), Member: identity.ID})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return "", wrapStorage("create identity", err)
	}

	return identity.ID, nil
}

func (r *redisRepository) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	data, err := r.client.Get(ctx, makeIdentityKey(id)).Bytes()
	if err == redis.Nil {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, wrapStorage("get identity", err)
	}

	return unmarshalIdentity(data)
}

func (r *redisRepository) ListRecent(ctx context.Context, n int) ([]*models.Identity, error) {
	if n <= 0 {
		return []*models.Identity{}, nil
	}

	ids, err := r.client.ZRevRange(ctx, keyByCreated, 0, int64(n-1)).Result()
	if err != nil {
		return nil, wrapStorage("list identities", err)
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, pipe.Get(ctx, makeIdentityKey(id)))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, wrapStorage("list identities", err)
	}

	identities := make([]*models.Identity, 0, len(ids))
	for _, cmd := range cmds {
		data, err := cmd.Bytes()
		if err == redis.Nil {
			// Index member without a blob: deleted concurrently, skip.
			continue
		}
		if err != nil {
			return nil, wrapStorage("list identities", err)
		}

		identity, err := unmarshalIdentity(data)
		if err != nil {
			return nil, err
		}
		identities = append(identities, identity)
	}

	return identities, nil
}

func (r *redisRepository) Delete(ctx context.Context, id string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, makeIdentityKey(id))
	pipe.ZRem(ctx, keyByCreated, id)
	pipe.ZRem(ctx, keyAutoDelete, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return wrapStorage("delete identity", err)
	}

	return nil
}

func (r *redisRepository) UpdateAutoDelete(ctx context.Context, id string, enabled bool, timeoutMinutes int) (*models.Identity, error) {
	identity, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// DeleteAt rolls from the moment of the call, not from CreatedAt.
	identity.AutoDelete = models.AutoDelete{
		Enabled:        enabled,
		DeleteAt:       time.Now().Add(time.Duration(timeoutMinutes) * time.Minute),
		TimeoutMinutes: timeoutMinutes,
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return nil, fmt.Errorf("update auto-delete: marshal: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, makeIdentityKey(id), data, 0)
	if enabled {
		pipe.ZAdd(ctx, keyAutoDelete, redis.Z{Score: float64(identity.AutoDelete.DeleteAt.UnixMilli()), Member: id})
	} else {
		pipe.ZRem(ctx, keyAutoDelete, id)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, wrapStorage("update auto-delete", err)
	}

	return identity, nil
}

func (r *redisRepository) FindExpired(ctx context.Context, now time.Time) ([]*models.Identity, error) {
	ids, err := r.client.ZRangeByScore(ctx, keyAutoDelete, &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("%d", now.UnixMilli()),
	}).Result()
	if err != nil {
		return nil, wrapStorage("find expired identities", err)
	}

	expired := make([]*models.Identity, 0, len(ids))
	for _, id := range ids {
		identity, err := r.GetByID(ctx, id)
		if err == repository.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		if identity.AutoDelete.Enabled && !identity.AutoDelete.DeleteAt.After(now) {
			expired = append(expired, identity)
		}
	}

	return expired, nil
}

func unmarshalIdentity(data []byte) (*models.Identity, error) {
	var identity models.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("unmarshal identity: %w", err)
	}

	repository.ApplyTimeDefaults(&identity, time.Now())
	return &identity, nil
}

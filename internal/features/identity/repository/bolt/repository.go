// Package bolt implements the local fallback identity store. The whole record
// list lives in a single slot as one JSON array, read-modify-written on every
// mutation; ordering is maintained by insertion (newest first), never by
// re-sorting on read.
package bolt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"metchera-backend/internal/features/identity/models"
	"metchera-backend/internal/features/identity/repository"
)

const (
	bucketName = "identities"
	slotKey    = "records"
)

type boltRepository struct {
	db *bolt.DB
}

// Open initializes the store file and ensures the bucket exists.
func Open(path string) (repository.IdentityRepository, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("open local store: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, nil, fmt.Errorf("open local store: %w", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	}); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("open local store: %w", err)
	}

	return &boltRepository{db: db}, db.Close, nil
}

func wrapStorage(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(repository.ErrStorageUnavailable, err))
}

// readAll loads the full slot. A missing slot is an empty store.
func (r *boltRepository) readAll(tx *bolt.Tx) ([]*models.Identity, error) {
	data := tx.Bucket([]byte(bucketName)).Get([]byte(slotKey))
	if data == nil {
		return nil, nil
	}

	var identities []*models.Identity
	if err := json.Unmarshal(data, &identities); err != nil {
		return nil, fmt.Errorf("unmarshal identities: %w", err)
	}

	now := time.Now()
	for _, identity := range identities {
		repository.ApplyTimeDefaults(identity, now)
	}

	return identities, nil
}

func (r *boltRepository) writeAll(tx *bolt.Tx, identities []*models.Identity) error {
	data, err := json.Marshal(identities)
	if err != nil {
		return fmt.Errorf("marshal identities: %w", err)
	}
	return tx.Bucket([]byte(bucketName)).Put([]byte(slotKey), data)
}

func (r *boltRepository) Create(ctx context.Context, identity *models.Identity) (string, error) {
	if identity.ID == "" {
		identity.ID = repository.NewID()
		identity.AvatarURL = models.AvatarURL(identity.ID)
	}
	if identity.CreatedAt.IsZero() {
		identity.CreatedAt = time.Now()
	}

	err := r.db.Update(func(tx *bolt.Tx) error {
		identities, err := r.readAll(tx)
		if err != nil {
			return err
		}
		// Newest first.
		identities = append([]*models.Identity{identity}, identities...)
		return r.writeAll(tx, identities)
	})
	if err != nil {
		return "", wrapStorage("create identity", err)
	}

	return identity.ID, nil
}

func (r *boltRepository) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	var found *models.Identity

	err := r.db.View(func(tx *bolt.Tx) error {
		identities, err := r.readAll(tx)
		if err != nil {
			return err
		}
		for _, identity := range identities {
			if identity.ID == id {
				found = identity
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapStorage("get identity", err)
	}
	if found == nil {
		return nil, repository.ErrNotFound
	}

	return found, nil
}

func (r *boltRepository) ListRecent(ctx context.Context, n int) ([]*models.Identity, error) {
	var identities []*models.Identity

	err := r.db.View(func(tx *bolt.Tx) error {
		all, err := r.readAll(tx)
		if err != nil {
			return err
		}
		if n > len(all) {
			n = len(all)
		}
		if n < 0 {
			n = 0
		}
		identities = all[:n]
		return nil
	})
	if err != nil {
		return nil, wrapStorage("list identities", err)
	}

	if identities == nil {
		identities = []*models.Identity{}
	}
	return identities, nil
}

func (r *boltRepository) Delete(ctx context.Context, id string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		identities, err := r.readAll(tx)
		if err != nil {
			return err
		}

		filtered := identities[:0]
		for _, identity := range identities {
			if identity.ID != id {
				filtered = append(filtered, identity)
			}
		}
		return r.writeAll(tx, filtered)
	})
	if err != nil {
		return wrapStorage("delete identity", err)
	}

	return nil
}

func (r *boltRepository) UpdateAutoDelete(ctx context.Context, id string, enabled bool, timeoutMinutes int) (*models.Identity, error) {
	var updated *models.Identity

	err := r.db.Update(func(tx *bolt.Tx) error {
		identities, err := r.readAll(tx)
		if err != nil {
			return err
		}

		for _, identity := range identities {
			if identity.ID != id {
				continue
			}
			identity.AutoDelete = models.AutoDelete{
				Enabled:        enabled,
				DeleteAt:       time.Now().Add(time.Duration(timeoutMinutes) * time.Minute),
				TimeoutMinutes: timeoutMinutes,
			}
			updated = identity
			return r.writeAll(tx, identities)
		}
		return nil
	})
	if err != nil {
		return nil, wrapStorage("update auto-delete", err)
	}
	if updated == nil {
		return nil, repository.ErrNotFound
	}

	return updated, nil
}

func (r *boltRepository) FindExpired(ctx context.Context, now time.Time) ([]*models.Identity, error) {
	var expired []*models.Identity

	err := r.db.View(func(tx *bolt.Tx) error {
		identities, err := r.readAll(tx)
		if err != nil {
			return err
		}
		for _, identity := range identities {
			if identity.AutoDelete.Enabled && !identity.AutoDelete.DeleteAt.After(now) {
				expired = append(expired, identity)
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapStorage("find expired identities", err)
	}

	return expired, nil
}

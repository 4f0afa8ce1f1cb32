package lookupstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bikeshare-api/internal/domain/booking"
	"bikeshare-api/internal/infra"
	"bikeshare-api/internal/pkg/config"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "lookup:booking:"

func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

// Store keeps the booking lookup projection in Redis, keyed by the
// normalized booking reference. Entries are advisory; the booking table is
// the source of truth and the reconciler re-derives anything lost.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Put(ctx context.Context, rec booking.LookupRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return infra.WrapRepoErr("failed to encode lookup record", err)
	}

	if err := s.client.Set(ctx, key(rec.Reference), payload, 0).Err(); err != nil {
		return infra.WrapRepoErr("failed to write lookup record", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, reference string) (*booking.LookupRecord, error) {
	payload, err := s.client.Get(ctx, key(reference)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("lookup record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read lookup record", err)
	}

	var rec booking.LookupRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		// A corrupt entry is treated as missing so callers fall back to the
		// authoritative store and the next Put repairs it.
		return nil, infra.WrapRepoErr("corrupt lookup record", err, infra.KindNotFound)
	}
	return &rec, nil
}

// Exists reports whether the projection holds an entry for the reference.
func (s *Store) Exists(ctx context.Context, reference string) (bool, error) {
	n, err := s.client.Exists(ctx, key(reference)).Result()
	if err != nil {
		return false, infra.WrapRepoErr("failed to check lookup record", err)
	}
	return n > 0, nil
}

func key(reference string) string {
	return keyPrefix + booking.NormalizeReference(reference)
}

package redis

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nfvri/ris-simulator/pkg/model"
	"github.com/redis/go-redis/v9"
)

// resultTTL bounds how long cached batch results stay valid. Results
// are pure functions of the request, so the TTL only limits memory use.
const resultTTL = 12 * time.Hour

// Store caches batch computation results (heatmaps, BUR sweeps) keyed
// by a hash of the originating request.
type Store struct {
	ResultDB *redis.Client
}

// InitClient connects to redis, retrying with exponential backoff so a
// simulator starting alongside its redis container comes up cleanly.
func InitClient(redisHost, redisPort, db, username, password string) (*redis.Client, error) {
	database, err := strconv.Atoi(db)
	if err != nil {
		return nil, fmt.Errorf("invalid redis db index %q: %v", db, err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", redisHost, redisPort),
		Username: username,
		Password: password,
		DB:       database,
	})

	ping := func() error {
		return client.Ping(context.Background()).Err()
	}
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)
	if err := backoff.Retry(ping, policy); err != nil {
		return nil, fmt.Errorf("unable to reach redis at %s:%s: %v", redisHost, redisPort, err)
	}
	return client, nil
}

// CacheKey derives a stable cache key from any JSON-serializable
// request value.
func CacheKey(prefix string, req interface{}) string {
	data, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s-%x", prefix, sha256.Sum256(data))
}

// AddHeatmap caches a heatmap result under the given key.
func (s *Store) AddHeatmap(ctx context.Context, key string, res *model.HeatmapResult) error {
	resultBytes, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal heatmap result: %v", err)
	}
	return s.ResultDB.Set(ctx, key, resultBytes, resultTTL).Err()
}

// GetHeatmap fetches a cached heatmap result.
func (s *Store) GetHeatmap(ctx context.Context, key string) (*model.HeatmapResult, error) {
	resultBytes, err := s.ResultDB.Get(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("error fetching heatmap for key %s: %v", key, err)
	}

	res := &model.HeatmapResult{}
	if err = json.Unmarshal([]byte(resultBytes), res); err != nil {
		return nil, fmt.Errorf("failed to unmarshal heatmap result: %v", err)
	}
	return res, nil
}

// AddBUR caches a BUR result under the given key.
func (s *Store) AddBUR(ctx context.Context, key string, res *model.BURResult) error {
	resultBytes, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal bur result: %v", err)
	}
	return s.ResultDB.Set(ctx, key, resultBytes, resultTTL).Err()
}

// GetBUR fetches a cached BUR result.
func (s *Store) GetBUR(ctx context.Context, key string) (*model.BURResult, error) {
	resultBytes, err := s.ResultDB.Get(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("error fetching bur result for key %s: %v", key, err)
	}

	res := &model.BURResult{}
	if err = json.Unmarshal([]byte(resultBytes), res); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bur result: %v", err)
	}
	return res, nil
}

package eventstore

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"webhookrepo/internal/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// recentKey holds one field per cached listing size.
const recentKey = "events:recent"

// generationKey is bumped by every insert. A listing read from the inner store
// is only cached while the generation it was read under is still current.
const generationKey = "events:recent:gen"

// fillScript writes one listing field if the generation is unchanged. The TTL
// is set when the hash is created and never extended by later fills.
var fillScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1]) or '0'
if current ~= ARGV[1] then
	return 0
end
redis.call('HSET', KEYS[2], ARGV[2], ARGV[3])
local ttl = tonumber(ARGV[4])
if ttl > 0 and redis.call('PTTL', KEYS[2]) < 0 then
	redis.call('PEXPIRE', KEYS[2], ttl)
end
return 1
`)

// CachedStore is a read-through Redis cache in front of another Gateway.
// Inserts go straight to the inner store and drop every cached listing.
// Redis failures never fail a call; the inner store answers instead.
type CachedStore struct {
	inner  Gateway
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedStore(inner Gateway, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedStore {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CachedStore{
		inner:  inner,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *CachedStore) Insert(ctx context.Context, record models.EventRecord) error {
	if err := s.inner.Insert(ctx, record); err != nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Incr(ctx, generationKey)
	pipe.Del(ctx, recentKey)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("could not invalidate recent events cache", zap.Error(err))
	}

	return nil
}

func (s *CachedStore) ListRecent(ctx context.Context, limit int) ([]models.EventRecord, error) {
	field := strconv.Itoa(limit)

	cached, err := s.rdb.HGet(ctx, recentKey, field).Bytes()
	switch {
	case err == nil:
		var records []models.EventRecord
		if jsonErr := json.Unmarshal(cached, &records); jsonErr == nil && records != nil {
			return records, nil
		}
	case !errors.Is(err, redis.Nil):
		s.logger.Warn("recent events cache read failed", zap.Error(err))
	}

	generation, genErr := s.rdb.Get(ctx, generationKey).Result()
	switch {
	case errors.Is(genErr, redis.Nil):
		generation = "0"
	case genErr != nil:
		s.logger.Warn("recent events cache generation read failed", zap.Error(genErr))
	}

	records, err := s.inner.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	if genErr == nil || errors.Is(genErr, redis.Nil) {
		s.store(ctx, generation, field, records)
	}

	return records, nil
}

func (s *CachedStore) store(ctx context.Context, generation, field string, records []models.EventRecord) {
	encoded, err := json.Marshal(records)
	if err != nil {
		return
	}

	err = fillScript.Run(ctx, s.rdb,
		[]string{generationKey, recentKey},
		generation, field, encoded, s.ttl.Milliseconds(),
	).Err()
	if err != nil {
		s.logger.Warn("recent events cache write failed", zap.Error(err))
	}
}

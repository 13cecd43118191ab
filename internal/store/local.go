package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LocalStore is the on-device durable fallback: one key per entity kind
// holding an ordered sequence of full records serialized as text. Writes are
// best effort; a failed write is dropped silently so the in-memory record can
// still serve the current session.
type LocalStore interface {
	Read(ctx context.Context, kind Kind) []Record
	Write(ctx context.Context, kind Kind, rows []Record)
}

const localKeyPrefix = "renovatrack:local:"

// RedisLocal persists local-only records in Redis. Concurrent writers race on
// read-modify-write; last write wins, which matches the accepted limitation of
// the original local cache.
type RedisLocal struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewRedisLocal(rdb *redis.Client, log *zap.Logger) *RedisLocal {
	return &RedisLocal{rdb: rdb, log: log}
}

func (l *RedisLocal) Read(ctx context.Context, kind Kind) []Record {
	raw, err := l.rdb.Get(ctx, localKeyPrefix+string(kind)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			l.log.Debug("local store read failed", zap.String("entity", string(kind)), zap.Error(err))
		}
		return nil
	}

	var rows []Record
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		l.log.Debug("local store contained malformed rows", zap.String("entity", string(kind)), zap.Error(err))
		return nil
	}
	return rows
}

func (l *RedisLocal) Write(ctx context.Context, kind Kind, rows []Record) {
	data, err := json.Marshal(rows)
	if err != nil {
		l.log.Debug("local store marshal failed", zap.String("entity", string(kind)), zap.Error(err))
		return
	}
	if err := l.rdb.Set(ctx, localKeyPrefix+string(kind), data, 0).Err(); err != nil {
		l.log.Debug("local store write dropped", zap.String("entity", string(kind)), zap.Error(err))
	}
}

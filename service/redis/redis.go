package redis

import (
	"errors"
	"time"

	"github.com/bidhouse/goapi/base/ctx"
	"github.com/gomodule/redigo/redis"
)

const (
	// Forever means the key has no associated expire
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis key not found")
)

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// Service provides interface for redis operations
type Service interface {
	Get(context ctx.Ctx, key string) (val []byte, err error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	// TTL returns the remaining time to live of a key in seconds
	TTL(context ctx.Ctx, key string) (int64, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Incrby(context ctx.Ctx, key string, increment int) (int64, error)
}

package redis

import (
	"errors"
	"time"

	"github.com/hoanm/simple-marketplace/base/ctx"
)

const (
	// Forever is the expire value for keys without a TTL
	Forever = time.Duration(-1)

	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2

	// retTTLNoExpire is the return value of TTL when the key exists but has
	// no associated expire
	retTTLNoExpire = -1
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis key not found")

	// ErrNoTTL is returned by TTL for keys without an expire
	ErrNoTTL = errors.New("redis key has no ttl")
)

// Service abstracts the redis commands this repo relies on.
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	TTL(context ctx.Ctx, key string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
}

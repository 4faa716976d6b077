package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/nftcommerce/base/ctx"
)

const (
	// Forever keeps a key without expiration
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned for a missing key
	ErrNotFound = errors.New("redis: key not found")
	// ErrNoTTL is returned by TTL for a key without expiration
	ErrNoTTL = errors.New("redis: key has no ttl")
	// ErrEmptyKeys is returned by Del without keys
	ErrEmptyKeys = errors.New("redis: no key given")
)

// Service is the subset of redis commands the service relies on
type Service interface {
	Get(ctx ctx.Ctx, key string) ([]byte, error)
	Set(ctx ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX sets the key only if it does not exist. ok is false when it existed.
	SetNX(ctx ctx.Ctx, key string, val []byte, expire time.Duration) (ok bool, err error)
	Del(ctx ctx.Ctx, keys ...string) (int, error)
	// TTL returns the remaining time to live in seconds
	TTL(ctx ctx.Ctx, key string) (int, error)
	Ping(ctx ctx.Ctx) error
}

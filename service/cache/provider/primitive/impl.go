package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/base/log"
	"github.com/x-xyz/nftcommerce/service/cache/provider"
)

type impl struct {
	name   string
	cache  *freecache.Cache
	maxTtl time.Duration
}

type OptionFunc func(*impl)

// WithMaxTtl caps the ttl of every entry, including entries set without expiration.
// Entries live per process, so the cap bounds how long a Del on another process goes unseen.
func WithMaxTtl(d time.Duration) OptionFunc {
	return func(im *impl) {
		im.maxTtl = d
	}
}

// NewPrimitive is an in-process cache of sizeMB megabytes
func NewPrimitive(name string, sizeMB int, opts ...OptionFunc) provider.Provider {
	im := &impl{name: name, cache: freecache.NewCache(sizeMB * 1024 * 1024)}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, exp, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("cache.GetWithExpiration failed")
		return nil, 0, err
	}
	// exp is a unix timestamp, 0 without expiration
	if exp == 0 {
		return val, 0, nil
	}
	return val, time.Until(time.Unix(int64(exp), 0)), nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if im.maxTtl > 0 && (ttl == 0 || ttl > im.maxTtl) {
		ttl = im.maxTtl
	}
	// freecache expires at second granularity, 0 means never
	secs := int(ttl / time.Second)
	if ttl > 0 && secs == 0 {
		secs = 1
	}
	if err := im.cache.Set([]byte(key), value, secs); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}

package redisclient

import (
	"context"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/nftcommerce/base/backoff"
	"github.com/x-xyz/nftcommerce/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
	idleTimeout  = 240 * time.Second
	dialRetries  = 3
)

// Config is the redis connection setting
type Config struct {
	URI            string
	Password       string
	PoolMultiplier float64
	// Retry dials again on failure. Tests leave it off.
	Retry bool
}

// MustConnect panics if the connection fails
func MustConnect(conf Config) *redis.Pool {
	p, err := Connect(conf)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": conf.URI, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// Connect builds a pool and verifies one connection
func Connect(conf Config) (*redis.Pool, error) {
	maxIdle, maxActive := 200, 1024
	if conf.PoolMultiplier > 0 {
		cpu := float64(runtime.NumCPU())
		maxIdle = int(cpu * conf.PoolMultiplier / 4)
		maxActive = int(cpu * conf.PoolMultiplier)
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if conf.Password != "" {
		opts = append(opts, redis.DialPassword(conf.Password))
	}

	p := &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: idleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", conf.URI, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	var err error
	bo := backoff.NewJittered(time.Second, 8*time.Second)
	for i := 0; i <= dialRetries; i++ {
		if i > 0 {
			if !conf.Retry {
				break
			}
			if werr := bo.Wait(context.Background()); werr != nil {
				break
			}
		}
		if err = ping(p); err == nil {
			break
		}
		log.Log().WithFields(log.Fields{"redisURI": conf.URI, "err": err, "attempt": i}).Error("fail to ping Redis")
	}
	if err != nil {
		return nil, err
	}

	log.Log().WithField("redisURI", conf.URI).Info("redis connected")
	return p, nil
}

func ping(p *redis.Pool) error {
	c, err := p.Dial()
	if err != nil {
		return err
	}
	defer c.Close()
	_, err = c.Do("PING")
	return err
}

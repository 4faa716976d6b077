/*
Package metrics wraps datadog-go to record service metrics.
Metric names follow:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/x-xyz/nftcommerce/base/env"
)

const (
	// TagValueNA is used for tags whose values are not available.
	TagValueNA = "n/a"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// Option is functional parameter for metrics option
type Option func(*opt)

type opt struct {
	withPodName bool
	client      statsCli
}

// WithoutPodName drops the pod tag. Pod names produce a lot of custom metrics.
func WithoutPodName() Option {
	return func(o *opt) {
		o.withPodName = false
	}
}

// WithLogClient routes every bump to the debug log instead of the statsd agent
func WithLogClient() Option {
	return func(o *opt) {
		o.client = &LogClient{}
	}
}

// New creates a metric client which prefixes every key with pkgName
func New(pkgName string, options ...Option) Service {
	o := opt{
		withPodName: true,
	}
	for _, option := range options {
		option(&o)
	}

	ddTags := []string{
		// an empty host tag removes the agent's host tags
		"host:",
		"env:" + firstNonEmpty(viper.GetString("env_name"), env.EnvName()),
		"app:" + firstNonEmpty(viper.GetString("app_name"), env.AppName()),
	}
	if o.withPodName {
		ddTags = append(ddTags, "pod:"+env.PodName())
	}

	return &Metrics{
		pkgName: pkgName,
		client:  o.client,
		tags:    ddTags,
	}
}

// Metrics sends package scoped metrics to statsd
type Metrics struct {
	pkgName string
	// client overrides the shared statsd pool when set
	client statsCli
	tags   []string
}

func (mt *Metrics) cli() statsCli {
	if mt.client != nil {
		return mt.client
	}
	return nextClient()
}

func (mt *Metrics) recoverPanic(typ, key string, tags []string) {
	if err := recover(); err != nil {
		_ = mt.cli().Count(typ+".panic", 1, []string{"tag:" + mt.pkgName + "." + key + "#" + strings.Join(tags, "#")}, 1)
	}
}

// BumpAvg bumps the average for the given key. Datadog has no average type so a gauge is used.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumpavg", key, tags)
	name := mt.pkgName + "." + key
	report(name, val, mt.cli().Gauge(name, val, mt.withTags(tags), ddRate))
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumpsum", key, tags)
	name := mt.pkgName + "." + key
	report(name, val, mt.cli().Count(name, int64(val), mt.withTags(tags), ddRate))
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumphistogram", key, tags)
	name := mt.pkgName + "." + key
	report(name, val, mt.cli().Histogram(name, val, mt.withTags(tags), ddRate))
}

// BumpTime starts a timer and returns a value on which End() records the elapsed time.
//
//	defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		name:  mt.pkgName + "." + key,
		tags:  mt.withTags(tags),
		cli:   mt.cli(),
	}
}

func (mt *Metrics) withTags(tags []string) []string {
	res := make([]string, 0, len(mt.tags)+len(tags)/2)
	res = append(res, mt.tags...)
	return append(res, parseTag(tags)...)
}

type timeTracker struct {
	start time.Time
	name  string
	tags  []string
	cli   statsCli
}

func (t *timeTracker) End() {
	d := time.Since(t.start)
	ms := float64(d/time.Millisecond) + float64(d%time.Millisecond)*1e-6
	report(t.name, ms, t.cli.TimeInMilliseconds(t.name, ms, t.tags, ddRate))
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

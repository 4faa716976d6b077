package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordCli struct {
	LogClient
	names []string
	tags  [][]string
}

func (r *recordCli) Count(name string, value int64, tags []string, rate float64) error {
	r.names = append(r.names, name)
	r.tags = append(r.tags, tags)
	return nil
}

func (r *recordCli) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	r.names = append(r.names, name)
	r.tags = append(r.tags, tags)
	return nil
}

func TestParseTag(t *testing.T) {
	req := require.New(t)
	req.Nil(parseTag(nil))
	req.Equal([]string{"a:1", "b:2"}, parseTag([]string{"a", "1", "b", "2"}))
	req.Panics(func() { parseTag([]string{"a"}) })
}

func TestBumpWithPrefix(t *testing.T) {
	req := require.New(t)
	cli := &recordCli{}
	m := New("commerce", WithoutPodName()).(*Metrics)
	m.client = cli

	m.BumpSum("view.err", 1, "state", "LISTED")
	m.BumpTime("view.time").End()

	req.Equal([]string{"commerce.view.err", "commerce.view.time"}, cli.names)
	req.Contains(cli.tags[0], "state:LISTED")
	req.Contains(cli.tags[0], "host:")
	for _, tag := range cli.tags[1] {
		req.NotContains(tag, "pod:")
	}
}

func TestWithLogClient(t *testing.T) {
	m := New("x", WithLogClient())
	require.NotPanics(t, func() {
		m.BumpAvg("a", 1)
		m.BumpHistogram("b", 2)
	})
}

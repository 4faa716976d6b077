package goroutine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecoverableGo(t *testing.T) {
	res := []string{}

	ev := <-RecoverableGo(
		func() {
			res = append(res, "run task")
			panic("boom")
		},
		WithBeforeStart(func() {
			res = append(res, "before start")
		}),
		WithAfterEnded(func() {
			res = append(res, "after ended")
		}),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered", p.(string))
		}),
	)

	require.NotNil(t, ev)
	require.Equal(t, "boom", ev.Panic)
	require.NotEmpty(t, ev.Stack)
	require.Equal(t, []string{
		"before start",
		"run task",
		"after ended",
		"after recovered",
		"boom",
	}, res)
}

func TestRecoverableGoNoPanic(t *testing.T) {
	done := false
	ev, ok := <-RecoverableGo(func() { done = true })
	require.False(t, ok)
	require.Nil(t, ev)
	require.True(t, done)
}

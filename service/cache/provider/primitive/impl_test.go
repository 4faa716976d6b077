package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("test", 1)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetGet() {
	k, v := "key", []byte("value")

	_, _, err := ts.im.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, err)

	ts.NoError(ts.im.Set(mockCtx, k, v, 10*time.Second))
	res, ttl, err := ts.im.Get(mockCtx, k)
	ts.NoError(err)
	ts.Equal(v, res)
	ts.True(ttl > 8*time.Second && ttl <= 10*time.Second, ttl)
}

func (ts *testsuite) TestNoExpiration() {
	ts.NoError(ts.im.Set(mockCtx, "forever", []byte("1"), 0))
	_, ttl, err := ts.im.Get(mockCtx, "forever")
	ts.NoError(err)
	ts.Zero(ttl)
}

func (ts *testsuite) TestExpire() {
	ts.NoError(ts.im.Set(mockCtx, "short", []byte("1"), 500*time.Millisecond))
	_, _, err := ts.im.Get(mockCtx, "short")
	ts.NoError(err)

	time.Sleep(2100 * time.Millisecond)
	_, _, err = ts.im.Get(mockCtx, "short")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "key", []byte("1"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, "key"))
	_, _, err := ts.im.Get(mockCtx, "key")
	ts.Equal(provider.ErrNotFound, err)

	ts.NoError(ts.im.Del(mockCtx, "missing"))
}

func (ts *testsuite) TestMaxTtl() {
	im := NewPrimitive("capped", 1, WithMaxTtl(3*time.Second))

	ts.NoError(im.Set(mockCtx, "long", []byte("1"), time.Minute))
	_, ttl, err := im.Get(mockCtx, "long")
	ts.NoError(err)
	ts.True(ttl > time.Second && ttl <= 3*time.Second, ttl)

	ts.NoError(im.Set(mockCtx, "forever", []byte("1"), 0))
	_, ttl, err = im.Get(mockCtx, "forever")
	ts.NoError(err)
	ts.True(ttl > time.Second && ttl <= 3*time.Second, ttl)

	ts.NoError(im.Set(mockCtx, "short", []byte("1"), 2*time.Second))
	_, ttl, err = im.Get(mockCtx, "short")
	ts.NoError(err)
	ts.True(ttl <= 2*time.Second, ttl)
}

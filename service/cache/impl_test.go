package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/domain/keys"
	"github.com/x-xyz/nftcommerce/service/cache/provider"
	"github.com/x-xyz/nftcommerce/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Value string `json:"value"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	k, v, c := "key", value{"value"}, &value{}

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.Require().NoError(err)
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey("testing", k), sv, time.Minute))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestGetCorrupted() {
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey("testing", "bad"), []byte("{"), time.Minute))
	ts.Error(ts.im.Get(mockCtx, "bad", &value{}))
}

func (ts *testsuite) TestSetDel() {
	k, v, c := "key", value{"value"}, &value{}

	ts.NoError(ts.im.Set(mockCtx, k, v))
	sv, ttl, err := ts.cache.Get(mockCtx, keys.RedisKey("testing", k))
	ts.NoError(err)
	ts.True(ttl > 0)
	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	ts.NoError(ts.im.Del(mockCtx, k))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))
}

func (ts *testsuite) TestGetByFunc() {
	k, v := "key", value{"value"}
	calls := 0
	getter := func() (interface{}, error) {
		calls++
		return &v, nil
	}

	c := &value{}
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.Equal(v, *c)

	c = &value{}
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.Equal(v, *c)
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetByFuncGetterFailed() {
	boom := errors.New("boom")
	err := ts.im.GetByFunc(mockCtx, "key", &value{}, func() (interface{}, error) {
		return nil, boom
	})
	ts.Equal(boom, err)
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "key", &value{}))
}

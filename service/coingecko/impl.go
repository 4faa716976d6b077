package coingecko

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/base/log"
	"github.com/x-xyz/nftcommerce/base/metrics"
	"github.com/x-xyz/nftcommerce/domain/keys"
	"github.com/x-xyz/nftcommerce/service/cache"
	"github.com/x-xyz/nftcommerce/service/cache/provider/primitive"
)

var met = metrics.New("coingecko")

func NewClient(cfg *ClientCfg) Client {
	api := cfg.Api
	if api == "" {
		api = DefaultApi
	}
	p := cfg.Cache
	if p == nil {
		p = primitive.NewPrimitive("coingecko_cache", 1)
	}
	return &client{
		api:     api,
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxPrice,
			Cache: p,
		}),
	}
}

type client struct {
	api     string
	client  http.Client
	timeout time.Duration
	cache   cache.Service
}

func (c *client) GetPrice(ctx bCtx.Ctx, id string) (decimal.Decimal, error) {
	var price decimal.Decimal
	if err := c.cache.GetByFunc(ctx, keys.RedisKey(id), &price, func() (interface{}, error) {
		return c.getPrice(ctx, id)
	}); err != nil {
		return decimal.Zero, err
	}
	return price, nil
}

func (c *client) getPrice(ctx bCtx.Ctx, id string) (*decimal.Decimal, error) {
	params := url.Values{
		"vs_currency": {"usd"},
		"ids":         {id},
	}
	u := fmt.Sprintf("%s/coins/markets?%s", c.api, params.Encode())
	data, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	resp := Markets{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	if len(resp) != 1 {
		ctx.WithFields(log.Fields{"id": id, "len": len(resp)}).Error("unexpected markets length")
		return nil, ErrMarketsLen
	}
	price := decimal.NewFromFloat(resp[0].CurrentPrice)
	return &price, nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	defer met.BumpTime("latency").End()

	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("NewRequestWithContext failed")
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		met.BumpSum("err", 1, "reason", "do")
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		met.BumpSum("err", 1, "reason", "status")
		ctx.WithFields(log.Fields{"url": url, "statusCode": resp.StatusCode}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("ioutil.ReadAll failed")
		return nil, err
	}
	return body, nil
}

package indexer

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/base/log"
	"github.com/x-xyz/nftcommerce/base/metrics"
	"github.com/x-xyz/nftcommerce/domain"
	"github.com/x-xyz/nftcommerce/domain/activity"
	"github.com/x-xyz/nftcommerce/domain/commerce"
)

var met = metrics.New("indexer")

type client struct {
	endpoint string
	http     *retryablehttp.Client
}

func NewClient(cfg ClientCfg) Client {
	hc := cfg.HttpClient
	if hc == nil {
		hc = retryablehttp.NewClient()
		hc.RetryMax = cfg.RetryMax
		hc.Logger = &leveledLogger{log.Log().WithField("service", "indexer")}
		if cfg.Timeout > 0 {
			hc.HTTPClient.Timeout = cfg.Timeout
		}
	}
	return &client{
		endpoint: cfg.Endpoint,
		http:     hc,
	}
}

func (c *client) GetNft(ctx bCtx.Ctx, address domain.Address) (*commerce.Nft, error) {
	ctx = bCtx.WithValue(ctx, "address", address)

	data := struct {
		Nft              *gqlNft `json:"nft"`
		NftByMintAddress *gqlNft `json:"nftByMintAddress"`
	}{}
	if err := c.query(ctx, "nftPage", nftQuery, map[string]interface{}{"address": address}, &data); err != nil {
		return nil, err
	}

	switch {
	case data.Nft != nil:
		return data.Nft.toDomain(), nil
	case data.NftByMintAddress != nil:
		return data.NftByMintAddress.toDomain(), nil
	}
	return nil, domain.ErrNotFound
}

func (c *client) GetActivities(ctx bCtx.Ctx, mint domain.Address) ([]activity.Activity, error) {
	ctx = bCtx.WithValue(ctx, "mint", mint)

	data := struct {
		NftByMintAddress *struct {
			Activities []gqlActivity `json:"activities"`
		} `json:"nftByMintAddress"`
	}{}
	if err := c.query(ctx, "nftActivities", activitiesQuery, map[string]interface{}{"address": mint}, &data); err != nil {
		return nil, err
	}
	if data.NftByMintAddress == nil {
		return nil, domain.ErrNotFound
	}

	res := make([]activity.Activity, 0, len(data.NftByMintAddress.Activities))
	for _, a := range data.NftByMintAddress.Activities {
		res = append(res, a.toDomain(mint))
	}
	return res, nil
}

func (c *client) query(ctx bCtx.Ctx, name, query string, variables map[string]interface{}, result interface{}) error {
	defer met.BumpTime("latency", "query", name).End()

	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return err
	}

	req, err := retryablehttp.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		ctx.WithField("err", err).Error("retryablehttp.NewRequest failed")
		return err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		met.BumpSum("err", 1, "query", name, "reason", "do")
		ctx.WithField("err", err).Error("http.Do failed")
		return xerrors.Errorf("%s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		met.BumpSum("err", 1, "query", name, "reason", "status")
		ctx.WithField("statusCode", resp.StatusCode).Error("resp.StatusCode != 200")
		return xerrors.Errorf("%s: %w", name, ErrStatusCodeNotOk)
	}

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithField("err", err).Error("ioutil.ReadAll failed")
		return err
	}

	gr := gqlResponse{}
	if err := json.Unmarshal(raw, &gr); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal response failed")
		return xerrors.Errorf("%s: %w", name, domain.ErrInvalidJsonFormat)
	}
	if len(gr.Errors) > 0 {
		met.BumpSum("err", 1, "query", name, "reason", "graphql")
		ctx.WithField("errors", gr.Errors).Error("graphql errors")
		return xerrors.Errorf("%s: %v: %w", name, gr.Errors, domain.ErrUpstream)
	}

	if err := json.Unmarshal(gr.Data, result); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal data failed")
		return xerrors.Errorf("%s: %w", name, domain.ErrInvalidJsonFormat)
	}
	return nil
}

// leveledLogger routes retryablehttp logs to base/log
type leveledLogger struct {
	logger log.Logger
}

func (l *leveledLogger) with(kvs []interface{}) log.Logger {
	logger := l.logger
	for i := 0; i+1 < len(kvs); i += 2 {
		if k, ok := kvs[i].(string); ok {
			logger = logger.WithField(k, kvs[i+1])
		}
	}
	return logger
}

func (l *leveledLogger) Error(msg string, kvs ...interface{}) {
	l.with(kvs).Error(msg)
}

func (l *leveledLogger) Info(msg string, kvs ...interface{}) {
	l.with(kvs).Info(msg)
}

func (l *leveledLogger) Debug(msg string, kvs ...interface{}) {
	l.with(kvs).Debug(msg)
}

func (l *leveledLogger) Warn(msg string, kvs ...interface{}) {
	l.with(kvs).Warn(msg)
}

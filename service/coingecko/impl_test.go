package coingecko

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/nftcommerce/base/ctx"
)

func TestGetPrice(t *testing.T) {
	req := require.New(t)
	calls := int32(0)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		req.Equal("/coins/markets", r.URL.Path)
		req.Equal("usd", r.URL.Query().Get("vs_currency"))
		switch r.URL.Query().Get("ids") {
		case SolanaId:
			_, _ = w.Write([]byte(`[{"id":"solana","symbol":"sol","name":"Solana","current_price":42.5}]`))
		case "unknown":
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusTooManyRequests)
		}
	}))
	defer srv.Close()

	c := NewClient(&ClientCfg{HttpClient: http.Client{}, Timeout: time.Second, Api: srv.URL})
	ctx := bCtx.Background()

	price, err := c.GetPrice(ctx, SolanaId)
	req.NoError(err)
	req.True(decimal.NewFromFloat(42.5).Equal(price), price.String())

	// cached
	_, err = c.GetPrice(ctx, SolanaId)
	req.NoError(err)
	req.Equal(int32(1), atomic.LoadInt32(&calls))

	_, err = c.GetPrice(ctx, "unknown")
	req.ErrorIs(err, ErrMarketsLen)

	_, err = c.GetPrice(ctx, "limited")
	req.ErrorIs(err, ErrStatusCodeNotOk)
}

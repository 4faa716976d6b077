package coingecko

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/service/cache/provider"
)

const (
	// DefaultApi is the public coingecko endpoint
	DefaultApi = "https://api.coingecko.com/api/v3"
	// SolanaId is coingecko's id of SOL
	SolanaId = "solana"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrMarketsLen      = errors.New("len(markets) != 1")
)

type Client interface {
	// GetPrice returns the usd price of a coingecko token id, cached for a minute
	GetPrice(ctx bCtx.Ctx, id string) (decimal.Decimal, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	// Api defaults to DefaultApi
	Api string
	// Cache defaults to an in-process cache
	Cache provider.Provider
}

type Markets []Market

type Market struct {
	Id           string  `json:"id"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	CurrentPrice float64 `json:"current_price"`
}

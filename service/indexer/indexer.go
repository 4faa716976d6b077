package indexer

import (
	"errors"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	bCtx "github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/domain"
	"github.com/x-xyz/nftcommerce/domain/activity"
	"github.com/x-xyz/nftcommerce/domain/commerce"
)

var (
	ErrStatusCodeNotOk = errors.New("indexer: http.status != 200")
)

// Client reads nfts from the indexer GraphQL service
type Client interface {
	// GetNft looks the nft up by metadata address, then by mint address.
	// Returns domain.ErrNotFound when neither matches.
	GetNft(ctx bCtx.Ctx, address domain.Address) (*commerce.Nft, error)
	// GetActivities returns the activities of a mint in indexer order
	GetActivities(ctx bCtx.Ctx, mint domain.Address) ([]activity.Activity, error)
}

type ClientCfg struct {
	Endpoint string
	Timeout  time.Duration
	RetryMax int
	// HttpClient overrides the retrying client, mostly for tests
	HttpClient *retryablehttp.Client
}

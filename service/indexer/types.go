package indexer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/x-xyz/nftcommerce/base/ptr"
	"github.com/x-xyz/nftcommerce/domain"
	"github.com/x-xyz/nftcommerce/domain/activity"
	"github.com/x-xyz/nftcommerce/domain/commerce"
)

type gqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type gqlError struct {
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

type gqlErrors []gqlError

func (e gqlErrors) Error() string {
	if len(e) == 0 {
		return "graphql: no error"
	}
	return fmt.Sprintf("graphql: %s (and %d more)", e[0].Message, len(e)-1)
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors gqlErrors       `json:"errors"`
}

// lamports is the indexer's Lamports scalar. It comes as a JSON number or a
// numeric string depending on the indexer version.
type lamports int64

func (l *lamports) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*l = 0
		return nil
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return domain.ErrInvalidNumberFormat
	}
	*l = lamports(v)
	return nil
}

// timestamp accepts RFC3339 and the indexer's zone-less UTC datetimes
type timestamp time.Time

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func (t *timestamp) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "null" || s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if v, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*t = timestamp(v.UTC())
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

func (t *timestamp) toPtr() *time.Time {
	if t == nil {
		return nil
	}
	return ptr.Time(time.Time(*t))
}

type gqlListing struct {
	Address      string     `json:"address"`
	AuctionHouse string     `json:"auctionHouse"`
	Seller       string     `json:"seller"`
	Price        lamports   `json:"price"`
	CreatedAt    timestamp  `json:"createdAt"`
	CanceledAt   *timestamp `json:"canceledAt"`
}

type gqlOffer struct {
	Address      string     `json:"address"`
	AuctionHouse string     `json:"auctionHouse"`
	Buyer        string     `json:"buyer"`
	Price        lamports   `json:"price"`
	CreatedAt    timestamp  `json:"createdAt"`
	CanceledAt   *timestamp `json:"canceledAt"`
}

type gqlNft struct {
	Address              string `json:"address"`
	MintAddress          string `json:"mintAddress"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	Image                string `json:"image"`
	SellerFeeBasisPoints int    `json:"sellerFeeBasisPoints"`
	Owner                *struct {
		Address string `json:"address"`
	} `json:"owner"`
	Listings []gqlListing `json:"listings"`
	Offers   []gqlOffer   `json:"offers"`
}

type gqlActivity struct {
	Address      string    `json:"address"`
	ActivityType string    `json:"activityType"`
	AuctionHouse string    `json:"auctionHouse"`
	Price        lamports  `json:"price"`
	Wallets      []string  `json:"wallets"`
	CreatedAt    timestamp `json:"createdAt"`
}

func (n *gqlNft) toDomain() *commerce.Nft {
	res := &commerce.Nft{
		Address:            domain.Address(n.Address),
		MintAddress:        domain.Address(n.MintAddress),
		RoyaltyBasisPoints: n.SellerFeeBasisPoints,
		Name:               n.Name,
		Description:        n.Description,
		Image:              n.Image,
		Listings:           make([]commerce.Listing, 0, len(n.Listings)),
		Offers:             make([]commerce.Offer, 0, len(n.Offers)),
	}
	if n.Owner != nil {
		res.OwnerAddress = domain.Address(n.Owner.Address)
	}
	for _, l := range n.Listings {
		res.Listings = append(res.Listings, commerce.Listing{
			Address:                   domain.Address(l.Address),
			MarketplaceProgramAddress: domain.Address(l.AuctionHouse),
			Seller:                    domain.Address(l.Seller),
			Price:                     int64(l.Price),
			CreatedAt:                 time.Time(l.CreatedAt),
			CanceledAt:                l.CanceledAt.toPtr(),
		})
	}
	for _, o := range n.Offers {
		res.Offers = append(res.Offers, commerce.Offer{
			Address:                   domain.Address(o.Address),
			MarketplaceProgramAddress: domain.Address(o.AuctionHouse),
			Buyer:                     domain.Address(o.Buyer),
			Price:                     int64(o.Price),
			CreatedAt:                 time.Time(o.CreatedAt),
			CanceledAt:                o.CanceledAt.toPtr(),
		})
	}
	return res
}

func (a *gqlActivity) toDomain(mint domain.Address) activity.Activity {
	wallets := make([]domain.Address, 0, len(a.Wallets))
	for _, w := range a.Wallets {
		wallets = append(wallets, domain.Address(w))
	}
	return activity.Activity{
		Address:                   domain.Address(a.Address),
		MintAddress:               mint,
		ActivityType:              activity.ActivityType(a.ActivityType),
		MarketplaceProgramAddress: domain.Address(a.AuctionHouse),
		Price:                     int64(a.Price),
		Wallets:                   wallets,
		CreatedAt:                 time.Time(a.CreatedAt),
	}
}

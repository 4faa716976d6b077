package commerce

import (
	"time"

	"github.com/x-xyz/nftcommerce/domain"
)

// Listing is a sell order of an nft on one marketplace program
type Listing struct {
	// receipt account of the listing, not always indexed
	Address                   domain.Address `json:"address,omitempty" bson:"address,omitempty"`
	MarketplaceProgramAddress domain.Address `json:"marketplaceProgramAddress" bson:"marketplaceProgramAddress"`
	Seller                    domain.Address `json:"seller" bson:"seller"`
	Price                     int64          `json:"price" bson:"price"` // lamports
	CreatedAt                 time.Time      `json:"createdAt" bson:"createdAt"`
	CanceledAt                *time.Time     `json:"canceledAt,omitempty" bson:"canceledAt,omitempty"`
}

func (l Listing) IsActive() bool {
	return l.CanceledAt == nil
}

func (l Listing) ToPtr() *Listing {
	return &l
}

// ActiveListings keeps the listings without canceledAt, input order preserved
func ActiveListings(listings []Listing) []Listing {
	res := []Listing{}
	for _, l := range listings {
		if l.IsActive() {
			res = append(res, l)
		}
	}
	return res
}

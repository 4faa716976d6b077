package commerce

import (
	"time"

	"github.com/x-xyz/nftcommerce/domain"
)

// Offer is a bid on an nft, independent of any listing
type Offer struct {
	Address                   domain.Address `json:"address,omitempty" bson:"address,omitempty"`
	MarketplaceProgramAddress domain.Address `json:"marketplaceProgramAddress,omitempty" bson:"marketplaceProgramAddress,omitempty"`
	Buyer                     domain.Address `json:"buyer" bson:"buyer"`
	Price                     int64          `json:"price" bson:"price"` // lamports
	CreatedAt                 time.Time      `json:"createdAt" bson:"createdAt"`
	CanceledAt                *time.Time     `json:"canceledAt,omitempty" bson:"canceledAt,omitempty"`
}

func (o Offer) IsActive() bool {
	return o.CanceledAt == nil
}

func (o Offer) ToPtr() *Offer {
	return &o
}

// ActiveOffers keeps the offers without canceledAt, input order preserved
func ActiveOffers(offers []Offer) []Offer {
	res := []Offer{}
	for _, o := range offers {
		if o.IsActive() {
			res = append(res, o)
		}
	}
	return res
}

// TopOffer returns the highest priced offer. Equal prices go to the earliest
// createdAt, then to the first one in input order. Returns nil for no offers.
func TopOffer(offers []Offer) *Offer {
	var top *Offer
	for i := range offers {
		o := offers[i]
		if top == nil || o.Price > top.Price || (o.Price == top.Price && o.CreatedAt.Before(top.CreatedAt)) {
			top = o.ToPtr()
		}
	}
	return top
}

// OfferOf returns the first offer placed by buyer
func OfferOf(offers []Offer, buyer *domain.Address) *Offer {
	if buyer == nil {
		return nil
	}
	for _, o := range offers {
		if o.Buyer.Equals(*buyer) {
			return o.ToPtr()
		}
	}
	return nil
}

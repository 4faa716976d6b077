package commerce

import (
	"sort"

	"github.com/x-xyz/nftcommerce/domain"
)

type classifyOptions struct {
	integrated map[domain.Address]bool
}

type ClassifyOptionFunc func(*classifyOptions)

// WithIntegratedMarketplaces marks the marketplace programs whose listings
// can be bought through this marketplace
func WithIntegratedMarketplaces(addresses ...domain.Address) ClassifyOptionFunc {
	return func(o *classifyOptions) {
		for _, a := range addresses {
			o.integrated[a] = true
		}
	}
}

// Classify derives the commerce view of nft for viewer. home is the program
// address of the home marketplace and a nil viewer is a disconnected wallet.
// Classify does not mutate nft and returns the same view for the same input.
func Classify(nft Nft, home domain.Address, viewer *domain.Address, fns ...ClassifyOptionFunc) View {
	opts := classifyOptions{integrated: map[domain.Address]bool{}}
	for _, fn := range fns {
		fn(&opts)
	}

	v := View{
		IsOwner:         nft.IsOwnedBy(viewer),
		OtherListings:   []Listing{},
		ActiveOffers:    ActiveOffers(nft.Offers),
		RoyaltyPercent:  float64(nft.RoyaltyBasisPoints) / 100,
		Actions:         []Action{},
		ForeignListings: []ForeignListing{},
	}

	for _, l := range nft.Listings {
		if !l.IsActive() {
			continue
		}
		if l.MarketplaceProgramAddress.Equals(home) {
			// duplicated home listings keep the first one
			if v.HomeListing == nil {
				v.HomeListing = l.ToPtr()
			}
			continue
		}
		v.OtherListings = append(v.OtherListings, l)
	}

	v.TopOffer = TopOffer(v.ActiveOffers)
	v.ViewerOffer = OfferOf(v.ActiveOffers, viewer)
	v.HasHomeListing = v.HomeListing != nil
	v.HasOffers = v.TopOffer != nil
	v.HasViewerOffer = v.ViewerOffer != nil

	if v.HasHomeListing {
		v.State = StateListed
		classifyListed(&v, opts)
	} else {
		v.State = StateNotListed
		classifyNotListed(&v)
	}

	sort.SliceStable(v.Actions, func(i, j int) bool {
		return actionOrder[v.Actions[i].Type] < actionOrder[v.Actions[j].Type]
	})
	return v
}

func classifyNotListed(v *View) {
	if v.IsOwner {
		v.add(ActionListNft, nil, nil)
		if v.HasOffers {
			v.add(ActionAcceptOffer, nil, v.TopOffer)
		}
	}

	if v.HasViewerOffer {
		v.addViewerOfferActions()
		return
	}

	if !v.IsOwner {
		if len(v.OtherListings) == 0 {
			v.add(ActionMakeOffer, nil, nil)
		} else {
			v.OfferSuppressedDueToForeignListing = true
		}
	}
}

func classifyListed(v *View, opts classifyOptions) {
	if v.IsOwner {
		v.add(ActionCancelListing, v.HomeListing, nil)
		v.add(ActionUpdatePrice, v.HomeListing, nil)
		if v.HasOffers {
			v.add(ActionAcceptOffer, nil, v.TopOffer)
		}
	} else {
		v.add(ActionBuy, v.HomeListing, nil)
		if !v.HasViewerOffer {
			v.add(ActionMakeOffer, nil, nil)
		}
	}

	if v.HasViewerOffer {
		v.addViewerOfferActions()
	}

	for _, l := range v.OtherListings {
		v.ForeignListings = append(v.ForeignListings, ForeignListing{
			MarketplaceProgramAddress: l.MarketplaceProgramAddress,
			Price:                     l.Price,
			BuyAvailable:              opts.integrated[l.MarketplaceProgramAddress],
			Listing:                   l,
		})
	}
}

func (v *View) addViewerOfferActions() {
	v.add(ActionCancelOffer, nil, v.ViewerOffer)
	v.add(ActionUpdateOffer, nil, v.ViewerOffer)
}

func (v *View) add(typ ActionType, listing *Listing, offer *Offer) {
	a := Action{Type: typ}
	if listing != nil {
		a.Listing = listing.ToPtr()
	}
	if offer != nil {
		a.Offer = offer.ToPtr()
	}
	v.Actions = append(v.Actions, a)
}

package commerce

import (
	"github.com/x-xyz/nftcommerce/domain"
)

type State string

const (
	StateNotListed State = "NOT_LISTED"
	StateListed    State = "LISTED"
)

type ActionType string

const (
	ActionListNft       ActionType = "LIST_NFT"
	ActionCancelListing ActionType = "CANCEL_LISTING"
	ActionUpdatePrice   ActionType = "UPDATE_PRICE"
	ActionBuy           ActionType = "BUY"
	ActionMakeOffer     ActionType = "MAKE_OFFER"
	ActionCancelOffer   ActionType = "CANCEL_OFFER"
	ActionUpdateOffer   ActionType = "UPDATE_OFFER"
	ActionAcceptOffer   ActionType = "ACCEPT_OFFER"
)

// actionOrder is the order actions are reported in
var actionOrder = map[ActionType]int{
	ActionListNft:       0,
	ActionCancelListing: 1,
	ActionUpdatePrice:   2,
	ActionBuy:           3,
	ActionMakeOffer:     4,
	ActionCancelOffer:   5,
	ActionUpdateOffer:   6,
	ActionAcceptOffer:   7,
}

// Action is one control the viewer may use. Listing is set for BUY and the
// listing actions, Offer for ACCEPT_OFFER (the top offer) and the viewer's own
// offer actions.
type Action struct {
	Type    ActionType `json:"type"`
	Listing *Listing   `json:"listing,omitempty"`
	Offer   *Offer     `json:"offer,omitempty"`
}

// ForeignListing is an active listing on another marketplace
type ForeignListing struct {
	MarketplaceProgramAddress domain.Address `json:"marketplaceProgramAddress"`
	Price                     int64          `json:"price"`
	BuyAvailable              bool           `json:"buyAvailable"`
	Listing                   Listing        `json:"listing"`
}

// View is the derived commerce state of an nft for one viewer
type View struct {
	State          State     `json:"state"`
	IsOwner        bool      `json:"isOwner"`
	HomeListing    *Listing  `json:"homeListing"`
	OtherListings  []Listing `json:"otherListings"`
	ActiveOffers   []Offer   `json:"activeOffers"`
	TopOffer       *Offer    `json:"topOffer"`
	ViewerOffer    *Offer    `json:"viewerOffer"`
	HasHomeListing bool      `json:"hasHomeListing"`
	HasOffers      bool      `json:"hasOffers"`
	HasViewerOffer bool      `json:"hasViewerOffer"`
	RoyaltyPercent float64   `json:"royaltyPercent"`

	Actions                            []Action         `json:"actions"`
	OfferSuppressedDueToForeignListing bool             `json:"offerSuppressedDueToForeignListing"`
	ForeignListings                    []ForeignListing `json:"foreignListings"`
}

func (v View) Has(typ ActionType) bool {
	return v.Action(typ) != nil
}

func (v View) Action(typ ActionType) *Action {
	for i := range v.Actions {
		if v.Actions[i].Type == typ {
			return &v.Actions[i]
		}
	}
	return nil
}

func (v View) ActionTypes() []ActionType {
	res := make([]ActionType, 0, len(v.Actions))
	for _, a := range v.Actions {
		res = append(res, a.Type)
	}
	return res
}

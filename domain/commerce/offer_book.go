package commerce

import (
	"sort"

	"github.com/x-xyz/nftcommerce/domain"
)

// OfferRow is one line of the offer list with the controls the viewer gets on it
type OfferRow struct {
	Offer         Offer `json:"offer"`
	IsViewerOffer bool  `json:"isViewerOffer"`
	CanAccept     bool  `json:"canAccept"`
	CanCancel     bool  `json:"canCancel"`
	CanUpdate     bool  `json:"canUpdate"`
}

// BuildOfferBook lists the active offers newest first. The owner may accept
// any row and a viewer may cancel or update their own offer.
// An owner holding an offer on their own nft gets cancel and update on that
// row but never accept, unlike the web offer table which offers accept on
// every row to the owner and hides cancel from them.
func BuildOfferBook(nft Nft, viewer *domain.Address) []OfferRow {
	isOwner := nft.IsOwnedBy(viewer)
	offers := ActiveOffers(nft.Offers)
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].CreatedAt.After(offers[j].CreatedAt)
	})

	rows := make([]OfferRow, 0, len(offers))
	for _, o := range offers {
		mine := viewer != nil && o.Buyer.Equals(*viewer)
		rows = append(rows, OfferRow{
			Offer:         o,
			IsViewerOffer: mine,
			CanAccept:     isOwner && !mine,
			CanCancel:     mine,
			CanUpdate:     mine,
		})
	}
	return rows
}

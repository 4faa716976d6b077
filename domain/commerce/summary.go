package commerce

import (
	"fmt"

	"github.com/x-xyz/nftcommerce/domain"
)

const gradientCount = 8

// Summary is what link previews of an nft show
type Summary struct {
	Address     domain.Address `json:"address"`
	MintAddress domain.Address `json:"mintAddress"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	ListedPrice int64          `json:"listedPrice"`
	OfferPrice  int64          `json:"offerPrice"`
}

// Summarize picks the highest active listing price over every marketplace and
// the top offer price. Both are 0 when absent. An nft without image gets one of
// the gradient placeholders, chosen by its address.
func Summarize(nft Nft) Summary {
	s := Summary{
		Address:     nft.Address,
		MintAddress: nft.MintAddress,
		Name:        nft.Name,
		Description: nft.Description,
		Image:       nft.Image,
	}
	if s.Name == "" {
		s.Name = nft.Address.String()
	}
	if s.Image == "" {
		s.Image = GradientImage(nft.Address)
	}

	for i, l := range ActiveListings(nft.Listings) {
		if i == 0 || l.Price > s.ListedPrice {
			s.ListedPrice = l.Price
		}
	}

	if top := TopOffer(ActiveOffers(nft.Offers)); top != nil {
		s.OfferPrice = top.Price
	}
	return s
}

// GradientImage is the same placeholder for the same address, one of
// /images/gradients/gradient-{1..8}.png
func GradientImage(address domain.Address) string {
	b, err := address.Bytes()
	if err != nil {
		b = []byte(address)
	}
	seed := 1
	for _, v := range b {
		seed += int(v)
	}
	return fmt.Sprintf("/images/gradients/gradient-%d.png", seed%gradientCount+1)
}

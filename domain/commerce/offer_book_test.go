package commerce

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftcommerce/domain"
)

func TestBuildOfferBook(t *testing.T) {
	req := require.New(t)
	canceled := at(10)
	stale := offer("D", 999, at(4))
	stale.CanceledAt = &canceled
	nft := Nft{
		OwnerAddress: ownerA,
		Offers: []Offer{
			offer(buyerB, 100, at(1)),
			offer(buyerC, 300, at(3)),
			stale,
			offer("E", 200, at(2)),
		},
	}

	rows := BuildOfferBook(nft, ownerA.ToPtr())
	req.Len(rows, 3)
	req.Equal([]domain.Address{buyerC, "E", buyerB}, []domain.Address{rows[0].Offer.Buyer, rows[1].Offer.Buyer, rows[2].Offer.Buyer})
	for _, r := range rows {
		req.True(r.CanAccept)
		req.False(r.CanCancel)
		req.False(r.IsViewerOffer)
	}

	rows = BuildOfferBook(nft, buyerB.ToPtr())
	req.False(rows[0].CanAccept)
	req.True(rows[2].IsViewerOffer)
	req.True(rows[2].CanCancel)
	req.True(rows[2].CanUpdate)
	req.False(rows[1].CanCancel)

	req.Empty(BuildOfferBook(Nft{}, nil))
}

func TestBuildOfferBookOwnOffer(t *testing.T) {
	req := require.New(t)
	nft := Nft{
		OwnerAddress: ownerA,
		Offers:       []Offer{offer(ownerA, 100, at(2)), offer(buyerB, 200, at(1))},
	}

	rows := BuildOfferBook(nft, ownerA.ToPtr())
	req.Len(rows, 2)
	req.True(rows[0].IsViewerOffer)
	req.False(rows[0].CanAccept)
	req.True(rows[0].CanCancel)
	req.True(rows[0].CanUpdate)
	req.True(rows[1].CanAccept)
	req.False(rows[1].CanCancel)
}

func TestSummarize(t *testing.T) {
	req := require.New(t)

	s := Summarize(Nft{Address: "addr"})
	req.Equal("addr", s.Name)
	req.Equal(GradientImage("addr"), s.Image)
	req.Zero(s.ListedPrice)
	req.Zero(s.OfferPrice)

	canceled := at(1)
	expensive := listing(home, 5000)
	expensive.CanceledAt = &canceled
	s = Summarize(Nft{
		Address:  "addr",
		Name:     "Degen #1",
		Image:    "https://img",
		Listings: []Listing{listing(foreign, 1200), expensive, listing(home, 1000)},
		Offers:   []Offer{offer(buyerB, 300, at(1)), offer(buyerC, 400, at(2))},
	})
	req.Equal("Degen #1", s.Name)
	req.Equal("https://img", s.Image)
	req.Equal(int64(1200), s.ListedPrice)
	req.Equal(int64(400), s.OfferPrice)
}

func TestGradientImage(t *testing.T) {
	req := require.New(t)

	// "11111111111111111111111111111111" decodes to 32 zero bytes
	req.Equal("/images/gradients/gradient-2.png", GradientImage("11111111111111111111111111111111"))
	// not base58, summed over the raw string: 1 + 'a' (97) = 98
	req.Equal("/images/gradients/gradient-3.png", GradientImage("a"))
	req.Equal(GradientImage("addr"), GradientImage("addr"))
}

func TestFees(t *testing.T) {
	tests := []struct {
		desc       string
		price      int64
		royaltyBps int
		feeBps     int
		exp        FeeBreakdown
	}{
		{
			desc:       "no fee",
			price:      1000,
			royaltyBps: 0,
			feeBps:     0,
			exp:        FeeBreakdown{Price: 1000, SellerProceeds: 1000},
		},
		{
			desc:       "royalty and fee",
			price:      1_000_000_000,
			royaltyBps: 500,
			feeBps:     200,
			exp: FeeBreakdown{
				Price:                 1_000_000_000,
				Royalty:               50_000_000,
				RoyaltyPercent:        5,
				MarketplaceFee:        20_000_000,
				MarketplaceFeePercent: 2,
				SellerProceeds:        930_000_000,
			},
		},
		{
			desc:       "rounds down",
			price:      999,
			royaltyBps: 333,
			feeBps:     0,
			exp:        FeeBreakdown{Price: 999, Royalty: 33, RoyaltyPercent: 3.33, SellerProceeds: 966},
		},
	}
	for _, tt := range tests {
		require.Equal(t, tt.exp, Fees(tt.price, tt.royaltyBps, tt.feeBps), tt.desc)
	}
}

package commerce

// MaxBasisPoints is 100%
const MaxBasisPoints = 10000

// FeeBreakdown splits a sale price between creators, the marketplace and the seller
type FeeBreakdown struct {
	Price                 int64   `json:"price"`
	Royalty               int64   `json:"royalty"`
	RoyaltyPercent        float64 `json:"royaltyPercent"`
	MarketplaceFee        int64   `json:"marketplaceFee"`
	MarketplaceFeePercent float64 `json:"marketplaceFeePercent"`
	SellerProceeds        int64   `json:"sellerProceeds"`
}

// Fees computes the breakdown with integer math, rounding every fee down
func Fees(price int64, royaltyBps, marketplaceFeeBps int) FeeBreakdown {
	royalty := price * int64(royaltyBps) / MaxBasisPoints
	fee := price * int64(marketplaceFeeBps) / MaxBasisPoints
	return FeeBreakdown{
		Price:                 price,
		Royalty:               royalty,
		RoyaltyPercent:        float64(royaltyBps) / 100,
		MarketplaceFee:        fee,
		MarketplaceFeePercent: float64(marketplaceFeeBps) / 100,
		SellerProceeds:        price - royalty - fee,
	}
}

package commerce

import (
	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/domain"
)

// Price is a lamports amount with its display conversions
type Price struct {
	Lamports int64   `json:"lamports"`
	Sol      string  `json:"sol"`
	Usd      float64 `json:"usd"`
}

// ForeignListingRow is a foreign listing decorated with its marketplace info
type ForeignListingRow struct {
	ForeignListing
	MarketplaceName string `json:"marketplaceName"`
	MarketplaceLogo string `json:"marketplaceLogo"`
	// Url points to the listing on the foreign marketplace when it is not integrated
	Url   string `json:"url,omitempty"`
	Price Price  `json:"displayPrice"`
}

// PageView is the commerce view of an nft as served to clients
type PageView struct {
	Nft             Summary             `json:"nft"`
	OwnerAddress    domain.Address      `json:"ownerAddress"`
	View            View                `json:"view"`
	ForeignListings []ForeignListingRow `json:"foreignListings"`
	// Fees is set when the nft is listed on the home marketplace
	Fees        *FeeBreakdown `json:"fees"`
	ListedPrice *Price        `json:"listedPrice"`
	TopOffer    *Price        `json:"topOffer"`
	ViewerOffer *Price        `json:"viewerOffer"`
	UsdPerSol   float64       `json:"usdPerSol"`
}

type SnapshotRepo interface {
	FindOne(ctx ctx.Ctx, address domain.Address) (*Snapshot, error)
	Upsert(ctx ctx.Ctx, snapshot Snapshot) error
	Remove(ctx ctx.Ctx, address domain.Address) error
}

type Usecase interface {
	// GetNft returns the current snapshot of an nft, cached
	GetNft(ctx ctx.Ctx, address domain.Address) (*Nft, error)
	GetView(ctx ctx.Ctx, address domain.Address, viewer *domain.Address) (*PageView, error)
	GetOfferBook(ctx ctx.Ctx, address domain.Address, viewer *domain.Address) ([]OfferRow, error)
	GetSummary(ctx ctx.Ctx, address domain.Address) (*Summary, error)
	// Refresh drops the cached snapshot so the next read goes to the indexer
	Refresh(ctx ctx.Ctx, address domain.Address) error
}

package usecase

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/base/metrics"
	priceformatter "github.com/x-xyz/nftcommerce/base/price_formatter"
	"github.com/x-xyz/nftcommerce/domain"
	"github.com/x-xyz/nftcommerce/domain/commerce"
	"github.com/x-xyz/nftcommerce/domain/marketplace"
	"github.com/x-xyz/nftcommerce/service/cache"
	"github.com/x-xyz/nftcommerce/service/indexer"
)

var (
	met     = metrics.New("commerce")
	timeNow = time.Now
)

type CommerceUseCaseCfg struct {
	Registry       *marketplace.Registry
	Indexer        indexer.Client
	SnapshotRepo   commerce.SnapshotRepo
	SnapshotCache  cache.Service
	PriceFormatter priceformatter.PriceFormatter
}

type impl struct {
	registry       *marketplace.Registry
	indexer        indexer.Client
	snapshot       commerce.SnapshotRepo
	cache          cache.Service
	priceFormatter priceformatter.PriceFormatter
}

func NewCommerce(cfg *CommerceUseCaseCfg) commerce.Usecase {
	return &impl{
		registry:       cfg.Registry,
		indexer:        cfg.Indexer,
		snapshot:       cfg.SnapshotRepo,
		cache:          cfg.SnapshotCache,
		priceFormatter: cfg.PriceFormatter,
	}
}

// GetNft reads the cache, then the indexer. The last stored snapshot is
// served when the indexer is unavailable, and is not cached. A fresh snapshot
// is cached under both the metadata and the mint address.
func (im *impl) GetNft(c ctx.Ctx, address domain.Address) (*commerce.Nft, error) {
	snap := commerce.Snapshot{}
	if err := im.cache.Get(c, address.String(), &snap); err == nil {
		return &snap.Nft, nil
	} else if err != cache.ErrNotFound {
		c.WithField("err", err).WithField("address", address).Warn("cache.Get failed")
	}

	nft, err := im.indexer.GetNft(c, address)
	if errors.Is(err, domain.ErrNotFound) {
		// the nft is gone, the stored copy must not be served by the fallback
		if err := im.snapshot.Remove(c, address); err != nil && !errors.Is(err, domain.ErrNotFound) {
			c.WithField("err", err).WithField("address", address).Error("snapshot.Remove failed")
		}
		return nil, domain.ErrNotFound
	} else if err != nil {
		met.BumpSum("fallback", 1)
		c.WithField("err", err).WithField("address", address).Warn("indexer.GetNft failed, fall back to stored snapshot")
		stored, serr := im.snapshot.FindOne(c, address)
		if serr != nil {
			c.WithField("err", serr).WithField("address", address).Error("snapshot.FindOne failed")
			return nil, err
		}
		return &stored.Nft, nil
	}

	snap = commerce.Snapshot{Nft: *nft, FetchedAt: timeNow()}
	if err := im.snapshot.Upsert(c, snap); err != nil {
		c.WithField("err", err).WithField("address", address).Error("snapshot.Upsert failed")
	}
	for _, a := range cacheKeys(address, nft.Address, nft.MintAddress) {
		if err := im.cache.Set(c, a.String(), &snap); err != nil {
			c.WithField("err", err).WithField("address", a).Error("cache.Set failed")
		}
	}
	return nft, nil
}

// cacheKeys drops empty and repeated addresses
func cacheKeys(addresses ...domain.Address) []domain.Address {
	res := make([]domain.Address, 0, len(addresses))
	seen := map[domain.Address]bool{}
	for _, a := range addresses {
		if a.IsEmpty() || seen[a] {
			continue
		}
		seen[a] = true
		res = append(res, a)
	}
	return res
}

func (im *impl) GetView(c ctx.Ctx, address domain.Address, viewer *domain.Address) (*commerce.PageView, error) {
	defer met.BumpTime("getView").End()

	nft, usdPerSol, err := im.fetch(c, address)
	if err != nil {
		return nil, err
	}

	home := im.registry.Home()
	view := commerce.Classify(*nft, home.ProgramAddress, viewer,
		commerce.WithIntegratedMarketplaces(im.registry.IntegratedAddresses()...))

	usd, _ := usdPerSol.Float64()
	res := &commerce.PageView{
		Nft:             commerce.Summarize(*nft),
		OwnerAddress:    nft.OwnerAddress,
		View:            view,
		ForeignListings: make([]commerce.ForeignListingRow, 0, len(view.ForeignListings)),
		UsdPerSol:       usd,
	}

	for _, fl := range view.ForeignListings {
		m, _ := im.registry.Lookup(fl.MarketplaceProgramAddress)
		res.ForeignListings = append(res.ForeignListings, commerce.ForeignListingRow{
			ForeignListing:  fl,
			MarketplaceName: m.Name,
			MarketplaceLogo: m.Logo,
			Url:             im.registry.ListingURL(fl.MarketplaceProgramAddress, nft.MintAddress),
			Price:           im.priceFormatter.Format(fl.Price, usdPerSol),
		})
	}

	if view.HomeListing != nil {
		fees := commerce.Fees(view.HomeListing.Price, nft.RoyaltyBasisPoints, home.SellerFeeBasisPoints)
		res.Fees = &fees
		res.ListedPrice = im.formatPtr(view.HomeListing.Price, usdPerSol)
	}
	if view.TopOffer != nil {
		res.TopOffer = im.formatPtr(view.TopOffer.Price, usdPerSol)
	}
	if view.ViewerOffer != nil {
		res.ViewerOffer = im.formatPtr(view.ViewerOffer.Price, usdPerSol)
	}
	return res, nil
}

func (im *impl) formatPtr(lamports int64, usdPerSol decimal.Decimal) *commerce.Price {
	p := im.priceFormatter.Format(lamports, usdPerSol)
	return &p
}

// fetch loads the nft and the SOL price concurrently. A failed price
// lookup leaves the price at zero.
func (im *impl) fetch(c ctx.Ctx, address domain.Address) (*commerce.Nft, decimal.Decimal, error) {
	b := goroutines.NewBatch(2, goroutines.WithBatchSize(2))
	defer b.Close()

	b.Queue(func() (interface{}, error) {
		nft, err := im.GetNft(c, address)
		if err != nil {
			return nil, err
		}
		return nft, nil
	})
	b.Queue(func() (interface{}, error) {
		price, err := im.priceFormatter.UsdPerSol(c)
		if err != nil {
			c.WithField("err", err).Warn("priceFormatter.UsdPerSol failed, price omitted")
			return decimal.Zero, nil
		}
		return price, nil
	})
	b.QueueComplete()

	var (
		nft       *commerce.Nft
		usdPerSol = decimal.Zero
		err       error
	)
	for ret := range b.Results() {
		if ret.Error() != nil {
			err = ret.Error()
			continue
		}
		switch v := ret.Value().(type) {
		case *commerce.Nft:
			nft = v
		case decimal.Decimal:
			usdPerSol = v
		}
	}
	if err != nil {
		c.WithField("err", err).WithField("address", address).Error("GetNft failed")
		return nil, decimal.Zero, err
	}
	return nft, usdPerSol, nil
}

func (im *impl) GetOfferBook(c ctx.Ctx, address domain.Address, viewer *domain.Address) ([]commerce.OfferRow, error) {
	nft, err := im.GetNft(c, address)
	if err != nil {
		c.WithField("err", err).WithField("address", address).Error("GetNft failed")
		return nil, err
	}
	return commerce.BuildOfferBook(*nft, viewer), nil
}

func (im *impl) GetSummary(c ctx.Ctx, address domain.Address) (*commerce.Summary, error) {
	nft, err := im.GetNft(c, address)
	if err != nil {
		c.WithField("err", err).WithField("address", address).Error("GetNft failed")
		return nil, err
	}
	s := commerce.Summarize(*nft)
	return &s, nil
}

// Refresh drops the cached snapshot under the requested address and under
// both addresses of the nft, learnt from the cache or else the stored
// snapshot. Only the local cache layer of this process is cleared, other
// processes keep theirs until snapshot.localCacheTtl.
func (im *impl) Refresh(c ctx.Ctx, address domain.Address) error {
	toDel := []domain.Address{address}
	snap := commerce.Snapshot{}
	if err := im.cache.Get(c, address.String(), &snap); err == nil {
		toDel = append(toDel, snap.Address, snap.MintAddress)
	} else if stored, err := im.snapshot.FindOne(c, address); err == nil {
		toDel = append(toDel, stored.Address, stored.MintAddress)
	} else if !errors.Is(err, domain.ErrNotFound) {
		c.WithField("err", err).WithField("address", address).Warn("snapshot.FindOne failed")
	}

	for _, a := range cacheKeys(toDel...) {
		if err := im.cache.Del(c, a.String()); err != nil {
			c.WithField("err", err).WithField("address", a).Error("cache.Del failed")
			return err
		}
	}
	return nil
}

package marketplace

import (
	"github.com/x-xyz/nftcommerce/domain"
)

// Marketplace is an auction house program known to this service
type Marketplace struct {
	ProgramAddress domain.Address `json:"programAddress" mapstructure:"address"`
	Name           string         `json:"name" mapstructure:"name"`
	Logo           string         `json:"logo" mapstructure:"logo"`
	// Link prefixes the mint address to reach a listing on the marketplace site
	Link string `json:"link" mapstructure:"link"`
	// Integrated marketplaces can be bought from through this marketplace
	Integrated           bool `json:"integrated" mapstructure:"integrated"`
	SellerFeeBasisPoints int  `json:"sellerFeeBasisPoints" mapstructure:"seller_fee_basis_points"`
}

// Registry holds the home marketplace and every foreign one
type Registry struct {
	home         Marketplace
	marketplaces map[domain.Address]Marketplace
	// keeps configuration order for IntegratedAddresses
	order []domain.Address
}

// NewRegistry registers home and the others. The home marketplace is always integrated.
// Later entries replace earlier ones with the same program address.
func NewRegistry(home Marketplace, others []Marketplace) *Registry {
	home.Integrated = true
	r := &Registry{
		home:         home,
		marketplaces: map[domain.Address]Marketplace{},
	}
	for _, m := range append([]Marketplace{home}, others...) {
		if _, ok := r.marketplaces[m.ProgramAddress]; !ok {
			r.order = append(r.order, m.ProgramAddress)
		}
		if m.ProgramAddress.Equals(home.ProgramAddress) {
			m = home
		}
		r.marketplaces[m.ProgramAddress] = m
	}
	return r
}

func (r *Registry) Home() Marketplace {
	return r.home
}

// Lookup returns the registered marketplace. Unknown programs come back with
// only their address and ok set to false.
func (r *Registry) Lookup(address domain.Address) (Marketplace, bool) {
	m, ok := r.marketplaces[address]
	if !ok {
		return Marketplace{ProgramAddress: address}, false
	}
	return m, true
}

// IntegratedAddresses lists the foreign marketplaces a listing can be bought from here
func (r *Registry) IntegratedAddresses() []domain.Address {
	res := []domain.Address{}
	for _, a := range r.order {
		if a.Equals(r.home.ProgramAddress) {
			continue
		}
		if r.marketplaces[a].Integrated {
			res = append(res, a)
		}
	}
	return res
}

// ListingURL links to the listing of mint on a non integrated marketplace.
// It is empty for integrated or unknown marketplaces and those without a link.
func (r *Registry) ListingURL(address, mint domain.Address) string {
	m, ok := r.Lookup(address)
	if !ok || m.Integrated || m.Link == "" {
		return ""
	}
	return m.Link + mint.String()
}

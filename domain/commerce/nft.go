package commerce

import (
	"time"

	"github.com/x-xyz/nftcommerce/domain"
)

// Nft is the snapshot the resolver works on. Missing optional fields from
// the indexer stay zero valued.
type Nft struct {
	Address            domain.Address `json:"address" bson:"address"`
	MintAddress        domain.Address `json:"mintAddress" bson:"mintAddress"`
	OwnerAddress       domain.Address `json:"ownerAddress" bson:"ownerAddress"`
	RoyaltyBasisPoints int            `json:"royaltyBasisPoints" bson:"royaltyBasisPoints"`
	Name               string         `json:"name" bson:"name"`
	Description        string         `json:"description" bson:"description"`
	Image              string         `json:"image" bson:"image"`
	Listings           []Listing      `json:"listings" bson:"listings"`
	Offers             []Offer        `json:"offers" bson:"offers"`
}

func (n Nft) IsOwnedBy(wallet *domain.Address) bool {
	return wallet != nil && wallet.Equals(n.OwnerAddress)
}

// Snapshot is the last known copy of an nft as persisted
type Snapshot struct {
	Nft       `bson:",inline"`
	FetchedAt time.Time `json:"fetchedAt" bson:"fetchedAt"`
}

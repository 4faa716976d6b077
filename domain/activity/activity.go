package activity

import (
	"sort"
	"time"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/base/ptr"
	"github.com/x-xyz/nftcommerce/domain"
)

type ActivityType string

const (
	ActivityTypePurchase ActivityType = "purchase"
	ActivityTypeOffer    ActivityType = "offer"
	ActivityTypeListing  ActivityType = "listing"
)

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypePurchase, ActivityTypeOffer, ActivityTypeListing:
		return true
	}
	return false
}

type Activity struct {
	Address                   domain.Address   `json:"address" bson:"address"`
	MintAddress               domain.Address   `json:"mintAddress" bson:"mintAddress"`
	ActivityType              ActivityType     `json:"activityType" bson:"activityType"`
	MarketplaceProgramAddress domain.Address   `json:"marketplaceProgramAddress" bson:"marketplaceProgramAddress"`
	Price                     int64            `json:"price" bson:"price"` // lamports
	Wallets                   []domain.Address `json:"wallets" bson:"wallets"`
	CreatedAt                 time.Time        `json:"createdAt" bson:"createdAt"`
}

type ActivityId struct {
	Address domain.Address `bson:"address"`
}

func (a Activity) ToId() ActivityId {
	return ActivityId{Address: a.Address}
}

// SortNewestFirst orders activities by createdAt descending, keeping input order on ties
func SortNewestFirst(activities []Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})
}

type FindAllOptions struct {
	MintAddress  *domain.Address `bson:"mintAddress"`
	ActivityType *ActivityType   `bson:"activityType"`
	Limit        *int            `bson:"-"`
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithMintAddress(mint domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.MintAddress = &mint
		return nil
	}
}

func WithActivityType(typ ActivityType) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if !typ.IsValid() {
			return domain.ErrBadParamInput
		}
		options.ActivityType = &typ
		return nil
	}
}

func WithLimit(limit int) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if limit <= 0 {
			return domain.ErrBadParamInput
		}
		options.Limit = ptr.Int(limit)
		return nil
	}
}

type Repo interface {
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]Activity, error)
	BulkUpsert(ctx ctx.Ctx, activities []Activity) error
}

type Usecase interface {
	// GetActivities returns the activities of the nft at address, newest first
	GetActivities(ctx ctx.Ctx, address domain.Address, opts ...FindAllOptionsFunc) ([]Activity, error)
}

package usecase

import (
	"errors"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/domain"
	"github.com/x-xyz/nftcommerce/domain/activity"
	"github.com/x-xyz/nftcommerce/domain/commerce"
	"github.com/x-xyz/nftcommerce/service/indexer"
)

type ActivityUseCaseCfg struct {
	Repo       activity.Repo
	CommerceUC commerce.Usecase
	Indexer    indexer.Client
}

type impl struct {
	repo     activity.Repo
	commerce commerce.Usecase
	indexer  indexer.Client
}

func NewActivity(cfg *ActivityUseCaseCfg) activity.Usecase {
	return &impl{
		repo:     cfg.Repo,
		commerce: cfg.CommerceUC,
		indexer:  cfg.Indexer,
	}
}

// GetActivities reads the indexer and keeps a copy in mongo, which is served
// when the indexer is unavailable.
func (im *impl) GetActivities(c ctx.Ctx, address domain.Address, optFns ...activity.FindAllOptionsFunc) ([]activity.Activity, error) {
	opts, err := activity.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("activity.GetFindAllOptions failed")
		return nil, err
	}

	nft, err := im.commerce.GetNft(c, address)
	if err != nil {
		c.WithField("err", err).WithField("address", address).Error("commerce.GetNft failed")
		return nil, err
	}
	mint := nft.MintAddress
	if mint.IsEmpty() {
		mint = address
	}

	acts, err := im.indexer.GetActivities(c, mint)
	if errors.Is(err, domain.ErrNotFound) {
		return []activity.Activity{}, nil
	} else if err != nil {
		c.WithField("err", err).WithField("mint", mint).Warn("indexer.GetActivities failed, fall back to repo")
		res, err := im.repo.FindAll(c, append([]activity.FindAllOptionsFunc{activity.WithMintAddress(mint)}, optFns...)...)
		if err != nil {
			c.WithField("err", err).WithField("mint", mint).Error("repo.FindAll failed")
			return nil, err
		}
		return res, nil
	}

	activity.SortNewestFirst(acts)
	if err := im.repo.BulkUpsert(c, acts); err != nil {
		c.WithField("err", err).WithField("mint", mint).Error("repo.BulkUpsert failed")
	}
	return filter(acts, opts), nil
}

func filter(acts []activity.Activity, opts activity.FindAllOptions) []activity.Activity {
	res := make([]activity.Activity, 0, len(acts))
	for _, a := range acts {
		if opts.ActivityType != nil && a.ActivityType != *opts.ActivityType {
			continue
		}
		if opts.Limit != nil && len(res) >= *opts.Limit {
			break
		}
		res = append(res, a)
	}
	return res
}

package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	bCtx "github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/base/database/mongoclient"
	"github.com/x-xyz/nftcommerce/base/log"
	"github.com/x-xyz/nftcommerce/domain"
	"github.com/x-xyz/nftcommerce/domain/activity"
	"github.com/x-xyz/nftcommerce/service/query"
)

var ActivityIndexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "mintAddress", Value: 1}, {Key: "createdAt", Value: -1}}},
	{Keys: bson.D{{Key: "mintAddress", Value: 1}, {Key: "activityType", Value: 1}, {Key: "createdAt", Value: -1}}},
}

type activityRepo struct {
	q query.Mongo
}

func NewActivityRepo(q query.Mongo) activity.Repo {
	return &activityRepo{q: q}
}

func (r *activityRepo) FindAll(ctx bCtx.Ctx, optsFns ...activity.FindAllOptionsFunc) ([]activity.Activity, error) {
	opts, err := activity.GetFindAllOptions(optsFns...)
	if err != nil {
		ctx.WithField("err", err).Error("activity.GetFindAllOptions failed")
		return nil, err
	}
	limit := 0
	if opts.Limit != nil {
		limit = *opts.Limit
	}
	query, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		ctx.WithFields(log.Fields{
			"opts": opts,
			"err":  err,
		}).Error("MakeBsonM failed")
		return nil, err
	}
	res := []activity.Activity{}
	if err := r.q.Search(ctx, domain.TableActivities, 0, limit, "-createdAt", query, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *activityRepo) BulkUpsert(ctx bCtx.Ctx, items []activity.Activity) error {
	if len(items) == 0 {
		return nil
	}
	ops := make([]query.UpsertOp, 0, len(items))
	for _, it := range items {
		ops = append(ops, query.UpsertOp{
			Selector: it.ToId(),
			Updater: bson.M{
				"address":                   it.Address,
				"mintAddress":               it.MintAddress,
				"activityType":              it.ActivityType,
				"marketplaceProgramAddress": it.MarketplaceProgramAddress,
				"price":                     it.Price,
				"wallets":                   it.Wallets,
				"createdAt":                 it.CreatedAt,
			},
		})
	}
	if _, _, err := r.q.BulkUpsert(ctx, domain.TableActivities, ops); err != nil {
		ctx.WithFields(log.Fields{
			"count": len(items),
			"err":   err,
		}).Error("q.BulkUpsert failed")
		return err
	}
	return nil
}

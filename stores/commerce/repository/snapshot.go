package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	bCtx "github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/domain"
	"github.com/x-xyz/nftcommerce/domain/commerce"
	"github.com/x-xyz/nftcommerce/service/query"
)

// SnapshotIndexes are ensured on domain.TableNftSnapshots at startup
var SnapshotIndexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "address", Value: 1}}, Options: options.Index().SetUnique(true)},
	{Keys: bson.D{{Key: "mintAddress", Value: 1}}},
}

func bySnapshotAddress(address domain.Address) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"address": address},
		bson.M{"mintAddress": address},
	}}
}

type snapshotRepo struct {
	q query.Mongo
}

func NewSnapshotRepo(q query.Mongo) commerce.SnapshotRepo {
	return &snapshotRepo{q: q}
}

// FindOne matches either the metadata or the mint address
func (r *snapshotRepo) FindOne(ctx bCtx.Ctx, address domain.Address) (*commerce.Snapshot, error) {
	res := &commerce.Snapshot{}
	if err := r.q.FindOne(ctx, domain.TableNftSnapshots, bySnapshotAddress(address), res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).WithField("address", address).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *snapshotRepo) Upsert(ctx bCtx.Ctx, snapshot commerce.Snapshot) error {
	sel := bson.M{"address": snapshot.Address}
	if err := r.q.Upsert(ctx, domain.TableNftSnapshots, sel, snapshot); err != nil {
		ctx.WithField("err", err).WithField("address", snapshot.Address).Error("q.Upsert failed")
		return err
	}
	return nil
}

// Remove matches either the metadata or the mint address
func (r *snapshotRepo) Remove(ctx bCtx.Ctx, address domain.Address) error {
	if err := r.q.Remove(ctx, domain.TableNftSnapshots, bySnapshotAddress(address)); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).WithField("address", address).Error("q.Remove failed")
		return err
	}
	return nil
}

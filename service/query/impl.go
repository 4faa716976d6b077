package query

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/base/database/mongoclient"
	"github.com/x-xyz/nftcommerce/base/log"
	"github.com/x-xyz/nftcommerce/base/metrics"
	"github.com/x-xyz/nftcommerce/domain"
)

const (
	queryMaxTime    = 20 * time.Second
	slowLogThreshMs = int64(500)
)

var (
	met     = metrics.New("mongo")
	timeNow = time.Now
)

type impl struct {
	client *mongoclient.Client
}

// New initializes an impl
func New(client *mongoclient.Client) Mongo {
	return &impl{
		client: client,
	}
}

func (im *impl) coll(table domain.Table) *mongo.Collection {
	return im.client.Collection(string(table))
}

func (im *impl) logerr(c ctx.Ctx, table domain.Table, msg string, err error) {
	met.BumpSum("err", 1, "table", string(table))
	c.WithFields(log.Fields{"err": err, "table": table}).Error(msg)
}

func (im *impl) FindOne(c ctx.Ctx, table domain.Table, query, result interface{}) error {
	defer met.BumpTime("time", "func", "findone", "table", string(table)).End()
	defer slowLog(c, string(table), "findone", query, nil)()

	opts := options.FindOne().SetMaxTime(queryMaxTime)
	if err := im.coll(table).FindOne(c, query, opts).Decode(result); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		im.logerr(c, table, "FindOne failed", err)
		return err
	}
	return nil
}

func (im *impl) Search(c ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error {
	defer met.BumpTime("time", "func", "search", "table", string(table)).End()
	defer slowLog(c, string(table), "search", query, sort)()

	opts := options.Find().SetMaxTime(queryMaxTime)
	if s := getSortOption(sort); len(s) > 0 {
		opts.SetSort(s)
	}
	if offset > 0 {
		opts.SetSkip(int64(offset))
	}
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := im.coll(table).Find(c, query, opts)
	if err != nil {
		im.logerr(c, table, "Find failed", err)
		return err
	}
	if err := cursor.All(c, results); err != nil {
		im.logerr(c, table, "cursor.All failed", err)
		return err
	}
	return nil
}

func (im *impl) Upsert(c ctx.Ctx, table domain.Table, selector, update interface{}) error {
	defer met.BumpTime("time", "func", "upsert", "table", string(table)).End()
	defer slowLog(c, string(table), "upsert", selector, nil)()

	opts := options.Replace().SetUpsert(true)
	if _, err := im.coll(table).ReplaceOne(c, selector, update, opts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		im.logerr(c, table, "ReplaceOne failed", err)
		return err
	}
	return nil
}

func (im *impl) Patch(c ctx.Ctx, table domain.Table, selector, update interface{}) error {
	defer met.BumpTime("time", "func", "patch", "table", string(table)).End()
	defer slowLog(c, string(table), "patch", selector, nil)()

	res, err := im.coll(table).UpdateOne(c, selector, bson.M{"$set": update})
	if err != nil {
		im.logerr(c, table, "UpdateOne failed", err)
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) Remove(c ctx.Ctx, table domain.Table, selector interface{}) error {
	defer met.BumpTime("time", "func", "remove", "table", string(table)).End()
	defer slowLog(c, string(table), "remove", selector, nil)()

	res, err := im.coll(table).DeleteOne(c, selector)
	if err != nil {
		im.logerr(c, table, "DeleteOne failed", err)
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) RemoveAll(c ctx.Ctx, table domain.Table, selector interface{}) (int64, error) {
	defer met.BumpTime("time", "func", "removeall", "table", string(table)).End()
	defer slowLog(c, string(table), "removeall", selector, nil)()

	res, err := im.coll(table).DeleteMany(c, selector)
	if err != nil {
		im.logerr(c, table, "DeleteMany failed", err)
		return 0, err
	}
	return res.DeletedCount, nil
}

func (im *impl) BulkUpsert(c ctx.Ctx, table domain.Table, ops []UpsertOp) (int64, int64, error) {
	defer met.BumpTime("time", "func", "bulkupsert", "table", string(table)).End()

	if len(ops) == 0 {
		return 0, 0, ErrEmptyBulk
	}

	models := make([]mongo.WriteModel, 0, len(ops))
	for _, op := range ops {
		models = append(models, mongo.NewReplaceOneModel().SetFilter(op.Selector).SetReplacement(op.Updater).SetUpsert(true))
	}
	res, err := im.coll(table).BulkWrite(c, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		im.logerr(c, table, "BulkWrite failed", err)
		return 0, 0, err
	}
	return res.MatchedCount, res.UpsertedCount, nil
}

// getSortOption turns "a", "-b" into {a: 1}, {b: -1}
func getSortOption(sorts ...string) bson.D {
	res := bson.D{}
	for _, sort := range sorts {
		if sort == "" {
			continue
		}
		if sort[0] == '-' {
			res = append(res, bson.E{Key: sort[1:], Value: -1})
		} else {
			res = append(res, bson.E{Key: sort, Value: 1})
		}
	}
	return res
}

func slowLog(c ctx.Ctx, table, action string, query interface{}, sort interface{}) func() {
	start := timeNow()
	return func() {
		elapsedMs := timeNow().Sub(start).Milliseconds()
		if elapsedMs < slowLogThreshMs {
			return
		}
		met.BumpSum("slowlog", 1, "table", table, "action", action)
		c.WithFields(log.Fields{
			"table":      table,
			"action":     action,
			"startTime":  start.Unix(),
			"durationMs": elapsedMs,
			"query":      query,
			"sort":       sort,
		}).Warn("mongo slowlog")
	}
}

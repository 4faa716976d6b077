package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/x-xyz/nftcommerce/base/log"
	"github.com/x-xyz/nftcommerce/domain"
)

const (
	mgSocketTimeout = 60 * time.Second
	mgConnTimeout   = 10 * time.Second
)

// Config describes one mongo deployment
type Config struct {
	URI                string
	AuthDBName         string
	DBName             string
	SSL                bool
	SetSafe            bool
	PoolSizeMultiplier float64
}

// Client wraps mongo.Client with the database it serves
type Client struct {
	DbName string
	*mongo.Client
}

// MustConnect panics when the connection fails
func MustConnect(conf Config) *Client {
	cli, err := Connect(context.Background(), conf)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoURI": conf.URI, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

// Connect dials mongo and checks the configured database is reachable
func Connect(ctx context.Context, conf Config) (*Client, error) {
	connSetting, err := connstring.Parse(conf.URI)
	if err != nil {
		log.Log().WithFields(log.Fields{"dbName": conf.DBName, "err": err}).Error("connstring.Parse failed")
		return nil, err
	}

	clientOpts := options.Client().
		ApplyURI(conf.URI).
		SetSocketTimeout(mgSocketTimeout).
		SetConnectTimeout(mgConnTimeout).
		SetRetryWrites(true)

	// connstring without authSource falls back to the configured auth db
	if connSetting.Username != "" && connSetting.AuthSource == "" && conf.AuthDBName != "" {
		clientOpts.SetAuth(options.Credential{
			AuthMechanism:           connSetting.AuthMechanism,
			AuthMechanismProperties: connSetting.AuthMechanismProperties,
			Username:                connSetting.Username,
			Password:                connSetting.Password,
			PasswordSet:             connSetting.PasswordSet,
			AuthSource:              conf.AuthDBName,
		})
	}

	if conf.PoolSizeMultiplier > 0 {
		// every host owns a pool, so the total is split across hosts
		poolSize := int(float64(runtime.NumCPU()) * conf.PoolSizeMultiplier)
		poolSize = (poolSize + len(connSetting.Hosts) - 1) / len(connSetting.Hosts)
		clientOpts.SetMinPoolSize(uint64(poolSize / 4))
		clientOpts.SetMaxPoolSize(uint64(poolSize))
		log.Log().WithField("poolSize", poolSize).Info("mongo driver pool size")
	}

	if conf.SSL {
		clientOpts.SetTLSConfig(&tls.Config{})
	}

	if conf.SetSafe {
		clientOpts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		log.Log().WithFields(log.Fields{
			"mongoHosts": connSetting.Hosts,
			"dbName":     conf.DBName,
			"err":        err,
		}).Error("mongo.Connect failed")
		return nil, err
	}

	if _, err := client.Database(conf.DBName).ListCollectionNames(ctx, bson.D{}); err != nil {
		log.Log().WithFields(log.Fields{
			"mongoHosts": connSetting.Hosts,
			"dbName":     conf.DBName,
			"err":        err,
		}).Error("ListCollectionNames failed")
		return nil, err
	}

	log.Log().WithFields(log.Fields{
		"mongoHosts": connSetting.Hosts,
		"db":         conf.DBName,
	}).Info("mongo connected")
	return &Client{
		Client: client,
		DbName: conf.DBName,
	}, nil
}

// Collection returns a handle on the client's database
func (c *Client) Collection(name string) *mongo.Collection {
	return c.Database(c.DbName).Collection(name)
}

// EnsureIndexes creates the given indexes on a collection. Existing indexes are kept.
func (c *Client) EnsureIndexes(ctx context.Context, table domain.Table, models ...mongo.IndexModel) error {
	if len(models) == 0 {
		return nil
	}
	if _, err := c.Collection(string(table)).Indexes().CreateMany(ctx, models); err != nil {
		log.Log().WithFields(log.Fields{"table": table, "err": err}).Error("CreateMany indexes failed")
		return err
	}
	return nil
}

package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/base/database/mongoclient"
	"github.com/x-xyz/nftcommerce/base/database/redisclient"
	"github.com/x-xyz/nftcommerce/base/env"
	"github.com/x-xyz/nftcommerce/base/goroutine"
	"github.com/x-xyz/nftcommerce/base/log"
	"github.com/x-xyz/nftcommerce/base/metrics"
	priceformatter "github.com/x-xyz/nftcommerce/base/price_formatter"
	bValidator "github.com/x-xyz/nftcommerce/base/validator"
	"github.com/x-xyz/nftcommerce/domain"
	"github.com/x-xyz/nftcommerce/domain/keys"
	"github.com/x-xyz/nftcommerce/domain/marketplace"
	mmiddleware "github.com/x-xyz/nftcommerce/middleware"
	"github.com/x-xyz/nftcommerce/service/cache"
	"github.com/x-xyz/nftcommerce/service/cache/provider/compound"
	"github.com/x-xyz/nftcommerce/service/cache/provider/primitive"
	cacheRedis "github.com/x-xyz/nftcommerce/service/cache/provider/redis"
	"github.com/x-xyz/nftcommerce/service/coingecko"
	"github.com/x-xyz/nftcommerce/service/indexer"
	"github.com/x-xyz/nftcommerce/service/query"
	"github.com/x-xyz/nftcommerce/service/redis"
	activity_delivery "github.com/x-xyz/nftcommerce/stores/activity/delivery/http"
	activity_repository "github.com/x-xyz/nftcommerce/stores/activity/repository"
	activity_usecase "github.com/x-xyz/nftcommerce/stores/activity/usecase"
	auth_delivery "github.com/x-xyz/nftcommerce/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/nftcommerce/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/nftcommerce/stores/auth/usecase"
	commerce_delivery "github.com/x-xyz/nftcommerce/stores/commerce/delivery/http"
	commerce_repository "github.com/x-xyz/nftcommerce/stores/commerce/repository"
	commerce_usecase "github.com/x-xyz/nftcommerce/stores/commerce/usecase"
	hc_delivery "github.com/x-xyz/nftcommerce/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/nftcommerce/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/nftcommerce/stores/healthcheck/usecase"
	price_delivery "github.com/x-xyz/nftcommerce/stores/price/delivery/http"

	_ "github.com/x-xyz/nftcommerce/app/api/docs"
)

const nonceTtl = 5 * time.Minute

func init() {
	pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func mustLoadRegistry() *marketplace.Registry {
	home := marketplace.Marketplace{}
	if err := viper.UnmarshalKey("marketplace.home", &home); err != nil {
		log.Log().WithField("err", err).Panic("invalid marketplace.home")
	}
	if !home.ProgramAddress.IsValid() {
		log.Log().WithField("address", home.ProgramAddress).Panic("invalid home marketplace address")
	}
	others := []marketplace.Marketplace{}
	if err := viper.UnmarshalKey("marketplace.programs", &others); err != nil {
		log.Log().WithField("err", err).Panic("invalid marketplace.programs")
	}
	return marketplace.NewRegistry(home, others)
}

//	@title			NFT Commerce API
//	@version		1.0
//	@description	Listing state, offers and activities of marketplace nfts.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.WithValues(ctx.Background(), map[string]interface{}{
		"env": env.EnvName(),
		"app": env.AppName(),
		"pod": env.PodName(),
	})

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnect(mongoclient.Config{
		URI:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		SSL:                viper.GetBool("mongo.enableSSL"),
		SetSafe:            true,
		PoolSizeMultiplier: viper.GetFloat64("mongo.poolMultiplier"),
	})
	if viper.GetBool("mongo.checkIndex") {
		if err := mongoClient.EnsureIndexes(context, domain.TableNftSnapshots, commerce_repository.SnapshotIndexes...); err != nil {
			context.WithField("err", err).Warn("EnsureIndexes failed")
		}
		if err := mongoClient.EnsureIndexes(context, domain.TableActivities, activity_repository.ActivityIndexes...); err != nil {
			context.WithField("err", err).Warn("EnsureIndexes failed")
		}
	}
	q := query.New(mongoClient)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCachePool := redisclient.MustConnect(redisclient.Config{
		URI:            viper.GetString("redis_cache.uri"),
		Password:       viper.GetString("redis_cache.password"),
		PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)

	mmiddleware.SetupCache(redisCache)

	snapshotCache := cache.New(cache.ServiceConfig{
		Ttl: viper.GetDuration("snapshot.cacheTtl"),
		Pfx: keys.PfxSnapshot,
		Cache: compound.NewCompound(
			primitive.NewPrimitive(
				"snapshot",
				viper.GetInt("snapshot.localCacheMB"),
				primitive.WithMaxTtl(viper.GetDuration("snapshot.localCacheTtl")),
			),
			cacheRedis.NewRedis(redisCache),
		),
	})
	nonceCache := cache.New(cache.ServiceConfig{
		Ttl:   nonceTtl,
		Pfx:   keys.PfxNonce,
		Cache: cacheRedis.NewRedis(redisCache),
	})

	registry := mustLoadRegistry()
	coinGecko := coingecko.NewClient(&coingecko.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("http.timeout"),
		Api:        viper.GetString("coingecko.api"),
	})
	indexerClient := indexer.NewClient(indexer.ClientCfg{
		Endpoint: viper.GetString("indexer.endpoint"),
		Timeout:  viper.GetDuration("indexer.timeout"),
		RetryMax: viper.GetInt("indexer.retryMax"),
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	snapshotRepo := commerce_repository.NewSnapshotRepo(q)
	activityRepo := activity_repository.NewActivityRepo(q)

	priceFormatter := priceformatter.NewPriceFormatter(&priceformatter.PriceFormatterCfg{
		CoinGecko: coinGecko,
	})
	hc := hc_usecase.New(hcRepo)
	commerce := commerce_usecase.NewCommerce(&commerce_usecase.CommerceUseCaseCfg{
		Registry:       registry,
		Indexer:        indexerClient,
		SnapshotRepo:   snapshotRepo,
		SnapshotCache:  snapshotCache,
		PriceFormatter: priceFormatter,
	})
	activity := activity_usecase.NewActivity(&activity_usecase.ActivityUseCaseCfg{
		Repo:       activityRepo,
		CommerceUC: commerce,
		Indexer:    indexerClient,
	})
	auth := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:          viper.GetString("auth.jwtSecret"),
		SigningMsgTemplate: viper.GetString("auth.signingMsg"),
		NonceCache:         nonceCache,
	})

	auth_middleware := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	commerce_delivery.New(e, commerce, auth_middleware)
	activity_delivery.New(e, activity)
	price_delivery.New(e, priceFormatter)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	serverDone := goroutine.RecoverableGo(func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	})

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Log().WithField("signal", sig).Info("received signal")
	case <-serverDone:
		log.Log().Info("server stopped")
	}

	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Log().WithField("err", err).Error("mongo Disconnect failed")
	}
	if err := redisCachePool.Close(); err != nil {
		log.Log().WithField("err", err).Error("redis pool Close failed")
	}
}

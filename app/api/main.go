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

	"github.com/go-playground/validator/v10"
	"github.com/bidhouse/goapi/base/ctx"
	"github.com/bidhouse/goapi/base/database/mongoclient"
	"github.com/bidhouse/goapi/base/database/redisclient"
	"github.com/bidhouse/goapi/base/log"
	"github.com/bidhouse/goapi/base/metrics"
	bValidator "github.com/bidhouse/goapi/base/validator"
	mmiddleware "github.com/bidhouse/goapi/middleware"
	"github.com/bidhouse/goapi/service/cache"
	"github.com/bidhouse/goapi/service/cache/provider"
	"github.com/bidhouse/goapi/service/cache/provider/compound"
	"github.com/bidhouse/goapi/service/cache/provider/primitive"
	redisCache "github.com/bidhouse/goapi/service/cache/provider/redis"
	"github.com/bidhouse/goapi/service/query"
	"github.com/bidhouse/goapi/service/redis"
	auction_delivery "github.com/bidhouse/goapi/stores/auction/delivery/http"
	auction_repository "github.com/bidhouse/goapi/stores/auction/repository"
	auction_usecase "github.com/bidhouse/goapi/stores/auction/usecase"
	bid_delivery "github.com/bidhouse/goapi/stores/bid/delivery/http"
	bid_repository "github.com/bidhouse/goapi/stores/bid/repository"
	bid_usecase "github.com/bidhouse/goapi/stores/bid/usecase"
	hc_delivery "github.com/bidhouse/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/bidhouse/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/bidhouse/goapi/stores/healthcheck/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisService := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	// auction snapshots are cached in-process first, then in redis; the same
	// service instance is shared by the auction and bid usecases so either
	// side can evict a snapshot it makes stale
	auctionCache := cache.New(cache.ServiceConfig{
		Ttl: viper.GetDuration("cache.auctionTtl"),
		Pfx: "auction",
		Cache: compound.NewCompound([]provider.Provider{
			primitive.NewPrimitive("auction", 64),
			redisCache.NewRedis(redisService),
		}),
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(q, redisService)
	auctionRepo := auction_repository.NewAuction(q)
	bidRepo := bid_repository.NewBid(q)

	hc := hc_usecase.New(hcRepo)
	auction := auction_usecase.NewAuction(auctionRepo, auctionCache)
	bid := bid_usecase.NewBid(bidRepo, auctionCache)

	hc_delivery.New(e, hc)
	auction_delivery.New(e, auction)
	bid_delivery.New(e, bid)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "We are live!")
	})

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

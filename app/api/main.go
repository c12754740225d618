package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/base/database/mongoclient"
	"github.com/hoanm/simple-marketplace/base/database/redisclient"
	"github.com/hoanm/simple-marketplace/base/log"
	"github.com/hoanm/simple-marketplace/base/metrics"
	bValidator "github.com/hoanm/simple-marketplace/base/validator"
	"github.com/hoanm/simple-marketplace/domain"
	mmiddleware "github.com/hoanm/simple-marketplace/middleware"
	"github.com/hoanm/simple-marketplace/service/chain"
	"github.com/hoanm/simple-marketplace/service/query"
	"github.com/hoanm/simple-marketplace/service/redis"
	auth_delivery "github.com/hoanm/simple-marketplace/stores/auth/delivery/http"
	auth_middleware "github.com/hoanm/simple-marketplace/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/hoanm/simple-marketplace/stores/auth/usecase"
	hc_delivery "github.com/hoanm/simple-marketplace/stores/healthcheck/delivery/http"
	hc_repo "github.com/hoanm/simple-marketplace/stores/healthcheck/repository"
	hc_usecase "github.com/hoanm/simple-marketplace/stores/healthcheck/usecase"
	listing_delivery "github.com/hoanm/simple-marketplace/stores/listing/delivery/http"
	listing_repository "github.com/hoanm/simple-marketplace/stores/listing/repository"
	listing_usecase "github.com/hoanm/simple-marketplace/stores/listing/usecase"
	marketplace_delivery "github.com/hoanm/simple-marketplace/stores/marketplace/delivery/http"
	marketplace_repository "github.com/hoanm/simple-marketplace/stores/marketplace/repository"
	marketplace_usecase "github.com/hoanm/simple-marketplace/stores/marketplace/usecase"
	payment_delivery "github.com/hoanm/simple-marketplace/stores/payment/delivery/http"
	payment_usecase "github.com/hoanm/simple-marketplace/stores/payment/usecase"
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
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// init chain ledger client
	context.Info("init chain client")
	chainClient := chain.NewClient(&chain.ClientCfg{
		HttpClient: http.Client{},
		LcdUrl:     viper.GetString("chain.lcdUrl"),
		Timeout:    viper.GetDuration("chain.timeout"),
	})

	marketplaceAddress := domain.Address(viper.GetString("marketplace.address"))

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	listingRepo := listing_repository.NewListingRepo(q)
	configRepo := marketplace_repository.NewConfigRepo(q)
	allowedTokenRepo := marketplace_repository.NewAllowedTokenRepo(q)
	collectionRepo := marketplace_repository.NewCollectionRepo(q)

	hc := hc_usecase.New(hcRepo)
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"))
	paymentRouter := payment_usecase.New(&payment_usecase.PaymentUseCaseCfg{
		AllowedTokenRepo: allowedTokenRepo,
		ConfigRepo:       configRepo,
	})
	listingUseCase := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:        listingRepo,
		NftLedger:          chainClient,
		PaymentRouter:      paymentRouter,
		Transactional:      q,
		MarketplaceAddress: marketplaceAddress,
	})
	marketplaceUseCase := marketplace_usecase.New(&marketplace_usecase.MarketplaceUseCaseCfg{
		ConfigRepo:         configRepo,
		CollectionRepo:     collectionRepo,
		NftLedger:          chainClient,
		MarketplaceAddress: marketplaceAddress,
	})

	adminAddresses := viper.GetStringSlice("admin.addresses")
	authMiddleware := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	listing_delivery.New(e, listingUseCase, chainClient, authMiddleware)
	payment_delivery.New(e, paymentRouter, authMiddleware)
	marketplace_delivery.New(e, marketplaceUseCase, authMiddleware)

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

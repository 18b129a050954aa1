// Command api runs the commerce HTTP API.
//
//	@title						Commerce API
//	@version					1.0
//	@description				Admin, zone and user surfaces of the commerce backend.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/zonehead/commerce-api/internal/api"
	"github.com/zonehead/commerce-api/internal/api/handler"
	"github.com/zonehead/commerce-api/internal/core/domain"
	"github.com/zonehead/commerce-api/internal/core/ports"
	"github.com/zonehead/commerce-api/internal/core/service"
	mongostore "github.com/zonehead/commerce-api/internal/infrastructure/db/mongo"
	redisstore "github.com/zonehead/commerce-api/internal/infrastructure/db/redis"
	"github.com/zonehead/commerce-api/internal/infrastructure/imagegen"
	"github.com/zonehead/commerce-api/internal/infrastructure/queue"
	"github.com/zonehead/commerce-api/internal/infrastructure/sheet"
	"github.com/zonehead/commerce-api/internal/infrastructure/storage"
	"github.com/zonehead/commerce-api/internal/pkg/config"
	"github.com/zonehead/commerce-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "commerce-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Stores ---
	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		AppName:     "commerce-api",
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()
	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	images, err := storage.NewDiskStore(cfg.Uploads.Dir, cfg.Uploads.MaxBytes)
	if err != nil {
		return err
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	janitor := queue.NewJanitor(cfg.JanitorWorkers, images, logger.Component("janitor"))
	janitor.Start(workerCtx)
	defer func() {
		stopWorkers()
		janitor.Wait()
	}()

	admins := mongostore.NewAdminRepository(db)
	users := mongostore.NewUserRepository(db)
	zones := mongostore.NewZoneRepository(db)
	products := mongostore.NewProductRepository(db)
	categories := mongostore.NewCategoryRepository(db)
	receipts := mongostore.NewReceiptRepository(db)
	orders := mongostore.NewOrderRepository(db)
	denylist := redisstore.NewDenylist(rdb)

	// --- Services ---
	tokens, err := service.NewTokenService(service.TokenConfig{
		Secret: cfg.Auth.JWTSecret,
		TTL:    cfg.Auth.JWTTTL,
		Issuer: cfg.Auth.JWTIssuer,
	})
	if err != nil {
		return err
	}
	actorStores := map[domain.Role]ports.ActorStore{
		domain.RoleAdmin: admins,
		domain.RoleZone:  zones,
		domain.RoleUser:  users,
	}
	authService := service.NewAuthService(actorStores, tokens, denylist, logger.Component("auth"))
	directory := service.NewActorDirectory(actorStores)

	recordLog := logger.Component("records")
	productService := service.NewProductService(products, janitor.Release, recordLog)
	categoryService := service.NewCategoryService(categories, recordLog)
	zoneService := service.NewZoneService(zones, janitor.Release, recordLog)
	userService := service.NewUserService(users, recordLog)
	receiptService := service.NewReceiptService(receipts, receipts, recordLog)
	orderService := service.NewOrderService(orders, products, orders, recordLog)

	// --- HTTP ---
	handlers := api.Handlers{
		AdminAuth: handler.NewAuthHandler(authService, domain.RoleAdmin, cfg.Auth.AdminSignupEnabled),
		ZoneAuth:  handler.NewAuthHandler(authService, domain.RoleZone, false),
		UserAuth:  handler.NewAuthHandler(authService, domain.RoleUser, true),
		Catalog: handler.NewCatalogHandler(
			productService,
			categoryService,
			service.NewProductImporter(productService),
			sheet.ParseProducts,
			images,
			service.NewImageService(imagegen.NewPollinations(cfg.ImageGenBaseURL)),
		),
		Zones:    handler.NewZoneHandler(zoneService, images),
		Users:    handler.NewUserHandler(userService),
		Receipts: handler.NewReceiptHandler(receiptService),
		Orders:   handler.NewOrderHandler(orderService),
		Health: handler.NewHealthHandler(map[string]handler.HealthCheck{
			"mongo": func(ctx context.Context, timeout time.Duration) error {
				return mongostore.Ping(ctx, db, timeout)
			},
			"redis": func(ctx context.Context, timeout time.Duration) error {
				return redisstore.Ping(ctx, rdb, timeout)
			},
		}),
	}

	e := api.NewRouter(handlers, api.Options{
		Verifier:    tokens,
		Resolver:    directory,
		Denylist:    denylist,
		CORSOrigins: cfg.CORSOrigins,
		UploadDir:   images.Dir(),
		Logger:      logger.Component("http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}

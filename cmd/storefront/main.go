package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/auth"
	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/httpapi"
	"github.com/nikolayk812/storefront/internal/kvstore"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/nikolayk812/storefront/internal/migrations"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/nikolayk812/storefront/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	tokenFor := flag.String("token-for", "", "print a session token for this email and exit")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of the token printed by -token-for")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config.Load: %v\n", err)
		os.Exit(1)
	}

	if *tokenFor != "" {
		token, err := auth.NewJWTSession(cfg.JWTSecret).Issue(domain.User{ID: uuid.NewString(), Email: *tokenFor}, *tokenTTL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "issue token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	log, err := logger.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger.New: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("storefront stopped with error", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}

	_ = log.Sync()
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.RunMigrations {
		if err := migrations.Up(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("migrations.Up: %w", err)
		}
		log.Info("migrations applied")
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("pool.Ping: %w", err)
	}

	kv, closeKV, err := newKVStore(ctx, cfg, pool)
	if err != nil {
		return err
	}
	defer closeKV()

	carts := cart.NewRegistry(kv, cfg.Currency, log)
	// runs before closeKV so the last snapshots can still be written
	defer carts.Close()

	session := auth.NewJWTSession(cfg.JWTSecret)
	catalogRepo := repository.NewCatalog(pool)
	customerRepo := repository.NewCustomer(pool)
	orderRepo := repository.NewOrder(pool)

	coordinator := checkout.NewCoordinator(cartLookup(carts), session, customerRepo, orderRepo, log,
		checkout.WithDeliveryFee(cfg.DeliveryFee),
		checkout.WithCarrierID(cfg.CarrierID),
		checkout.WithSubmitTimeout(cfg.CheckoutTimeout),
	)

	router := httpapi.NewRouter(httpapi.Deps{
		Catalog:  service.NewCatalog(catalogRepo),
		Cart:     service.NewCart(catalogRepo, session, carts),
		Checkout: coordinator,
		Orders:   service.NewOrders(session, customerRepo, orderRepo, log),
		Profile:  service.NewProfile(session, customerRepo),
		Ready:    pool.Ping,
	}, log, httpapi.Options{
		Release:        cfg.IsProduction(),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	server := httpapi.NewServer(cfg.HTTPPort, router, log)

	log.Info("storefront starting",
		zap.Int("port", cfg.HTTPPort),
		zap.String("kvBackend", string(cfg.KVBackend)),
		zap.String("currency", cfg.Currency.String()),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		return nil
	})

	return g.Wait()
}

func cartLookup(carts *cart.Registry) checkout.CartLookup {
	return func(ctx context.Context, user domain.User) (checkout.Cart, error) {
		store, err := carts.For(ctx, user.Key())
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

func newKVStore(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) (port.KVStore, func(), error) {
	switch cfg.KVBackend {
	case config.KVBackendRedis:
		client, err := kvstore.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("kvstore.Connect: %w", err)
		}
		return kvstore.NewRedis(client), func() { _ = client.Close() }, nil
	default:
		return repository.NewKV(pool), func() {}, nil
	}
}

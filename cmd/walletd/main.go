package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"global-crypto-wallet/config"
	httpHandler "global-crypto-wallet/internal/adapter/http/handler"
	"global-crypto-wallet/internal/adapter/ledger"
	pgStorage "global-crypto-wallet/internal/adapter/storage/postgres"
	redisStorage "global-crypto-wallet/internal/adapter/storage/redis"
	"global-crypto-wallet/internal/core/domain"
	"global-crypto-wallet/internal/core/ports"
	"global-crypto-wallet/internal/service"
	"global-crypto-wallet/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to config file (default: ./config.yaml or ./config/config.yaml)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("ledger", cfg.Ledger.Endpoint).
		Msg("Starting wallet daemon")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("wallet daemon failed")
	}
	log.Info().Msg("Wallet daemon exited")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	var checkers []ports.HealthChecker
	deps := service.WalletDeps{Logger: logger.WithComponent(log, "wallet")}

	// PostgreSQL journal (optional)
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("connecting to PostgreSQL: %w", err)
		}
		defer pool.Close()

		journal := pgStorage.NewTransactionJournal(pool)
		if err := journal.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("preparing journal schema: %w", err)
		}
		deps.Journal = journal
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	}

	// Redis idempotency cache and rate limiter (optional)
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return fmt.Errorf("connecting to Redis: %w", err)
		}
		defer rdb.Close()

		deps.IdempCache = redisStorage.NewIdempotencyCache(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	keys, err := service.NewRSAKeyPairProvider(cfg.Wallet.KeyBits)
	if err != nil {
		return err
	}
	deps.Keys = keys
	if cfg.Wallet.KeyFile != "" {
		identity, err := loadIdentity(keys, cfg.Wallet)
		if err != nil {
			return err
		}
		deps.Identity = &identity
		log.Info().Str("key_file", cfg.Wallet.KeyFile).Msg("wallet identity loaded")
	} else {
		log.Warn().Msg("no wallet.key_file configured, generating an ephemeral identity")
	}

	deps.Ledger = ledger.NewHTTPClient(cfg.Ledger.Timeout, logger.WithComponent(log, "ledger"))
	if cfg.Ledger.SignIntents {
		deps.Signer = service.NewRSAIntentSigner()
	}

	wallet, err := service.NewWallet(deps)
	if err != nil {
		return fmt.Errorf("creating wallet: %w", err)
	}
	if err := wallet.LoadHistory(ctx); err != nil {
		return err
	}
	log.Info().Str("wallet_id", wallet.ID().String()).Msg("wallet ready")

	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	gin.SetMode(cfg.Server.Mode)
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Wallet:         wallet,
		WalletID:       wallet.ID(),
		TokenSvc:       tokenSvc,
		OperatorKey:    cfg.Auth.OperatorKey,
		LedgerEndpoint: cfg.Ledger.Endpoint,
		LedgerAddress:  cfg.Ledger.Address,
		RateLimitStore: rateLimitStore,
		HealthCheckers: checkers,
		Logger:         logger.WithComponent(log, "http"),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	syncWorker := service.NewSyncWorker(wallet, cfg.Ledger.Endpoint, cfg.Ledger.Address,
		cfg.Ledger.SyncInterval, logger.WithComponent(log, "sync"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return syncWorker.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
		}
		return nil
	})

	return g.Wait()
}

func loadIdentity(keys ports.KeyPairProvider, cfg config.WalletConfig) (domain.KeyPair, error) {
	data, err := os.ReadFile(cfg.KeyFile)
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("reading wallet key: %w", err)
	}
	kp, err := keys.ParsePrivate(data, []byte(cfg.KeyPassphrase))
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("parsing wallet key %s: %w", cfg.KeyFile, err)
	}
	return kp, nil
}

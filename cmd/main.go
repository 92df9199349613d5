package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-custodial-ledger/docs"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/config"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/facades"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/handlers"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/keystore"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// reconcileStaleAfter is how long a transfer may stay pending before the
// reconciler asks the chain gateway about it.
const reconcileStaleAfter = 5 * time.Minute

// @title gw-custodial-ledger API
// @version 1.0.0
// @description Custodial value ledger: user balances, value attachments with redemption codes, and on-chain withdrawals from a pool of hot wallets
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the service configuration.
func parseConfig(path string) (*config.Config, error) {
	return config.Load(path)
}

// run initializes the logger, database, Redis, Kafka, the chain gateway client and
// the HTTP server. It starts the reconciler and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, "service", "gw-custodial-ledger"); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Key sealing
	sealer, err := keystore.NewSealer(cfg.WalletEncryptionKey, cfg.WalletEncryptionSalt)
	if err != nil {
		return fmt.Errorf("wallet encryption key: %w", err)
	}

	// Connect to PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}
	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for committed ledger entries
	kafkaWriter := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	defer kafkaWriter.Close()

	// Connect to the chain gateway
	conn, err := grpc.NewClient(cfg.ChainAddr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to chain gateway at %s: %w", cfg.ChainAddr(), err)
	}
	defer conn.Close()
	chain := facades.NewChainGatewayFacade(facades.NewChainGRPCClient(conn), sealer)

	// Initialize JWT service
	jwtService := jwt.New(cfg.JWTSecretKey, cfg.JWTExp)

	// Initialize repositories
	txManager := repositories.NewTxManager(db)
	balanceRepo := repositories.NewBalanceRepository(db, repositories.GetTxFromContext)
	attachmentRepo := repositories.NewAttachmentRepository(db, repositories.GetTxFromContext)
	claimRepo := repositories.NewClaimRepository(db, repositories.GetTxFromContext)
	transactionRepo := repositories.NewTransactionRepository(db, repositories.GetTxFromContext)
	walletRepo := repositories.NewWalletRepository(db, repositories.GetTxFromContext)
	usageRepo := repositories.NewUsageCounterRepository(db, repositories.GetTxFromContext)
	securityLogRepo := repositories.NewSecurityLogRepository(db)
	sanctionsRepo := repositories.NewSanctionsRepository(rdb)
	throttleRepo := repositories.NewRedemptionThrottleRepository(rdb, cfg.RedeemAttemptWindow)

	// Initialize services
	pool := services.NewCustodialWalletPool(walletRepo, usageRepo, chain, sealer, securityLogRepo, services.PoolConfig{
		SingleTxLimit:   cfg.SingleTxLimit,
		DailyTxLimit:    cfg.DailyTxLimit,
		TransferTimeout: cfg.ChainTimeout,
	})
	gate := services.NewComplianceGate(cfg.LargeTxThreshold, sanctionsRepo, securityLogRepo)
	manager := services.NewWalletBalanceManager(
		txManager,
		balanceRepo,
		attachmentRepo,
		claimRepo,
		transactionRepo,
		securityLogRepo,
		services.NewFeePolicy(),
		services.NewCodeGenerator(attachmentRepo, cfg.CodeLength),
		gate,
		pool,
		throttleRepo,
		kafkaWriter,
		cfg.RedeemMaxAttempts,
	)
	audit := services.NewAuditService(securityLogRepo)
	reconciler := services.NewReconciler(manager, cfg.ReconcileInterval, reconcileStaleAfter)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log, cfg.TrustedProxies...))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtService))

		r.Get("/custodial-wallet/balance", handlers.NewGetBalanceHandler(manager))
		r.Get("/custodial-wallet/transactions", handlers.NewListTransactionsHandler(manager))
		r.Post("/custodial-wallet/deposit", handlers.NewDepositHandler(manager))
		r.Post("/custodial-wallet/attach-value", handlers.NewAttachValueHandler(manager))
		r.Get("/custodial-wallet/attachments", handlers.NewListAttachmentsHandler(manager))
		r.Post("/custodial-wallet/attachments/{id}/cancel", handlers.NewCancelAttachmentHandler(manager))
		r.Post("/custodial-wallet/redeem", handlers.NewRedeemHandler(manager))
		r.Post("/custodial-wallet/withdraw", handlers.NewWithdrawHandler(manager))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.AdminOnly)

			r.Post("/custodial-wallet/deposit/{id}/confirm", handlers.NewConfirmDepositHandler(manager))
			r.Post("/custodial-wallet/deposit/{id}/fail", handlers.NewFailDepositHandler(manager))
			r.Get("/custodial-wallet/health", handlers.NewHealthHandler(pool))
			r.Get("/admin/custodial-wallet/wallets", handlers.NewListWalletsHandler(pool))
			r.Post("/admin/custodial-wallet/create", handlers.NewCreateWalletHandler(pool))
			r.Post("/admin/custodial-wallet/create-multiple", handlers.NewCreateWalletsHandler(pool))
			r.Post("/admin/custodial-wallet/wallets/{id}/freeze", handlers.NewFreezeWalletHandler(pool))
			r.Get("/admin/custodial-wallet/security-logs", handlers.NewListSecurityLogsHandler(audit))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go reconciler.Run(ctxShutdown)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

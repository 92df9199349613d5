package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/sbilibin2017/gw-custodial-ledger/internal/config"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/facades"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/keystore"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// deps holds the connections a command opened. close releases all of them.
type deps struct {
	cfg  *config.Config
	db   *sqlx.DB
	rdb  *redis.Client
	conn *grpc.ClientConn
}

func loadConfig(cctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return nil, err
	}
	if err := logger.Initialize(cfg.LogLevel, "service", "ledgerctl"); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	return db, nil
}

// openDeps connects to PostgreSQL, Redis and the chain gateway.
func openDeps(cctx *cli.Context) (*deps, error) {
	cfg, err := loadConfig(cctx)
	if err != nil {
		return nil, err
	}

	d := &deps{cfg: cfg}
	if d.db, err = openDB(cctx.Context, cfg); err != nil {
		return nil, err
	}

	d.rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	d.conn, err = grpc.NewClient(cfg.ChainAddr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		d.close()
		return nil, fmt.Errorf("failed to connect to chain gateway at %s: %w", cfg.ChainAddr(), err)
	}
	return d, nil
}

func (d *deps) close() {
	if d.conn != nil {
		d.conn.Close()
	}
	if d.rdb != nil {
		d.rdb.Close()
	}
	if d.db != nil {
		d.db.Close()
	}
	logger.Sync()
}

// pool builds the custodial wallet pool over the opened connections.
func (d *deps) pool() (*services.CustodialWalletPool, error) {
	sealer, err := keystore.NewSealer(d.cfg.WalletEncryptionKey, d.cfg.WalletEncryptionSalt)
	if err != nil {
		return nil, fmt.Errorf("wallet encryption key: %w", err)
	}
	chain := facades.NewChainGatewayFacade(facades.NewChainGRPCClient(d.conn), sealer)

	return services.NewCustodialWalletPool(
		repositories.NewWalletRepository(d.db, repositories.GetTxFromContext),
		repositories.NewUsageCounterRepository(d.db, repositories.GetTxFromContext),
		chain,
		sealer,
		repositories.NewSecurityLogRepository(d.db),
		services.PoolConfig{
			SingleTxLimit:   d.cfg.SingleTxLimit,
			DailyTxLimit:    d.cfg.DailyTxLimit,
			TransferTimeout: d.cfg.ChainTimeout,
		},
	), nil
}

// manager builds the balance manager used by reconcile. It publishes nothing to Kafka.
func (d *deps) manager() (*services.WalletBalanceManager, error) {
	pool, err := d.pool()
	if err != nil {
		return nil, err
	}
	logs := repositories.NewSecurityLogRepository(d.db)
	attachments := repositories.NewAttachmentRepository(d.db, repositories.GetTxFromContext)

	return services.NewWalletBalanceManager(
		repositories.NewTxManager(d.db),
		repositories.NewBalanceRepository(d.db, repositories.GetTxFromContext),
		attachments,
		repositories.NewClaimRepository(d.db, repositories.GetTxFromContext),
		repositories.NewTransactionRepository(d.db, repositories.GetTxFromContext),
		logs,
		services.NewFeePolicy(),
		services.NewCodeGenerator(attachments, d.cfg.CodeLength),
		services.NewComplianceGate(d.cfg.LargeTxThreshold, repositories.NewSanctionsRepository(d.rdb), logs),
		pool,
		nil,
		nil,
		d.cfg.RedeemMaxAttempts,
	), nil
}

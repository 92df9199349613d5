// Package config loads service settings from an env file and the environment.
package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds every setting of the ledger service and the operator CLI.
type Config struct {
	AppHost        string
	AppPort        string
	LogLevel       string
	TrustedProxies []netip.Prefix

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	ChainHost    string
	ChainPort    string
	ChainTimeout time.Duration

	JWTSecretKey string
	JWTExp       time.Duration

	WalletEncryptionKey  string
	WalletEncryptionSalt string

	SingleTxLimit    decimal.Decimal
	DailyTxLimit     decimal.Decimal
	LargeTxThreshold decimal.Decimal

	RedeemMaxAttempts   int64
	RedeemAttemptWindow time.Duration
	ReconcileInterval   time.Duration
	CodeLength          int
}

// Load reads path (missing files are ignored) and returns the resulting configuration.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var (
		c   Config
		err error
	)

	// Application config
	c.AppHost = getEnv("APP_HOST", "localhost")
	c.AppPort = getEnv("APP_PORT", "8080")
	c.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	if c.TrustedProxies, err = getPrefixes("TRUSTED_PROXIES"); err != nil {
		return nil, err
	}

	// PostgreSQL config
	c.PGHost = getEnv("POSTGRES_HOST", "localhost")
	c.PGUser = getEnv("POSTGRES_USER", "user")
	c.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	c.PGDB = getEnv("POSTGRES_DB", "database")
	if c.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return nil, err
	}
	if c.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return nil, err
	}
	if c.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return nil, err
	}

	// Redis config
	c.RedisHost = getEnv("REDIS_HOST", "localhost")
	c.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if c.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if c.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return nil, err
	}
	if c.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return nil, err
	}
	if c.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return nil, err
	}

	// Kafka config
	c.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", "localhost:9092"))
	c.KafkaTopic = getEnv("KAFKA_TOPIC", "custodial-ledger-transactions")

	// Chain gateway config
	c.ChainHost = getEnv("CHAIN_GATEWAY_HOST", "localhost")
	c.ChainPort = getEnv("CHAIN_GATEWAY_PORT", "50051")
	if c.ChainTimeout, err = getSeconds("CHAIN_TIMEOUT_SECOND", "30"); err != nil {
		return nil, err
	}

	// JWT config
	c.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if c.JWTExp, err = getSeconds("JWT_EXP_SECOND", "3600"); err != nil {
		return nil, err
	}

	// Key sealing
	c.WalletEncryptionKey = getEnv("WALLET_ENCRYPTION_KEY", "")
	c.WalletEncryptionSalt = getEnv("WALLET_ENCRYPTION_SALT", "gw-custodial-ledger")

	// Limits
	if c.SingleTxLimit, err = getDecimal("SINGLE_TX_LIMIT", "1000"); err != nil {
		return nil, err
	}
	if c.DailyTxLimit, err = getDecimal("DAILY_TX_LIMIT", "10000"); err != nil {
		return nil, err
	}
	if c.LargeTxThreshold, err = getDecimal("LARGE_TX_THRESHOLD", "10000"); err != nil {
		return nil, err
	}

	// Redemption and reconciliation
	attempts, err := getInt("REDEEM_MAX_ATTEMPTS", "10")
	if err != nil {
		return nil, err
	}
	c.RedeemMaxAttempts = int64(attempts)
	if c.RedeemAttemptWindow, err = getSeconds("REDEEM_ATTEMPT_WINDOW_SECOND", "60"); err != nil {
		return nil, err
	}
	if c.ReconcileInterval, err = getSeconds("RECONCILE_INTERVAL_SECOND", "60"); err != nil {
		return nil, err
	}
	if c.CodeLength, err = getInt("CODE_LENGTH", "8"); err != nil {
		return nil, err
	}

	return &c, nil
}

// PostgresDSN returns the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// RedisAddr returns host:port of Redis.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// ChainAddr returns host:port of the chain gateway.
func (c *Config) ChainAddr() string {
	return fmt.Sprintf("%s:%s", c.ChainHost, c.ChainPort)
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key, defaultValue string) (int, error) {
	n, err := strconv.Atoi(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getSeconds(key, defaultValue string) (time.Duration, error) {
	n, err := getInt(key, defaultValue)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}

func getDecimal(key, defaultValue string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(getEnv(key, defaultValue))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// getPrefixes parses a comma separated list of CIDRs. A bare address is a single-host prefix.
func getPrefixes(key string) ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, item := range splitList(getEnv(key, "")) {
		if p, err := netip.ParsePrefix(item); err == nil {
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(item)
		if err != nil {
			return nil, fmt.Errorf("invalid %s entry %q: %w", key, item, err)
		}
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

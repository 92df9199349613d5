package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-custodial-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/services"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out

	err := app.RunContext(context.Background(), append([]string{"ledgerctl", "--config", "nonexistent.env"}, args...))
	return out.String(), err
}

func TestTokenCmd(t *testing.T) {
	os.Clearenv()
	t.Setenv("JWT_SECRET_KEY", "cli-secret")

	tests := []struct {
		name string
		args []string
		role string
	}{
		{name: "user", args: []string{"token", "--user", "u-1"}, role: jwt.RoleUser},
		{name: "admin", args: []string{"token", "--user", "u-1", "--admin", "--ttl", "10m"}, role: jwt.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, tt.args...)
			require.NoError(t, err)

			claims, err := jwt.New("cli-secret", 0).GetClaims(context.Background(), strings.TrimSpace(out))
			require.NoError(t, err)
			assert.Equal(t, "u-1", claims.UserID)
			assert.Equal(t, tt.role, claims.Role)
		})
	}
}

func TestTokenCmd_RequiresUser(t *testing.T) {
	_, err := runApp(t, "token")
	assert.Error(t, err)
}

func TestWalletFreezeCmd_RequiresID(t *testing.T) {
	_, err := runApp(t, "wallet", "freeze")
	assert.EqualError(t, err, "wallet id is required")
}

func TestWalletCreateCmd_RejectsUnknownCurrency(t *testing.T) {
	_, err := runApp(t, "wallet", "create", "--currency", "DOGE")
	assert.ErrorContains(t, err, "unsupported currency")
}

func TestSanctionCmd_RequiresAddress(t *testing.T) {
	_, err := runApp(t, "sanction")
	assert.EqualError(t, err, "at least one address is required")
}

func TestParseCurrencies(t *testing.T) {
	all, err := parseCurrencies(nil)
	require.NoError(t, err)
	assert.Equal(t, models.Currencies, all)

	got, err := parseCurrencies([]string{" sol", "usdc"})
	require.NoError(t, err)
	assert.Equal(t, []models.Currency{models.SOL, models.USDC}, got)
}

func TestPrintCreationsAndHealth(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	printCreations(&buf, []services.WalletCreation{
		{Currency: models.SOL, Wallet: &models.CustodialWallet{WalletAddress: "addr-sol"}},
		{Currency: models.USDC, Skipped: true},
		{Currency: models.FLBY, Error: "boom"},
	})
	printHealth(&buf, []models.WalletHealth{
		{Currency: models.SOL, Address: "addr-sol", IsHealthy: false,
			RecordedBalance: decimal.NewFromInt(5), CurrentBalance: decimal.NewFromInt(4),
			Issues: []string{"balance mismatch"}},
	})

	out := buf.String()
	assert.Contains(t, out, "SOL\taddr-sol\tcreated")
	assert.Contains(t, out, "USDC\tskipped")
	assert.Contains(t, out, "FLBY\tboom")
	assert.Contains(t, out, "unhealthy\trecorded 5\tchain 4\tbalance mismatch")
}

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/sbilibin2017/gw-custodial-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/models"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/services"
)

func commands() []*cli.Command {
	return []*cli.Command{
		migrateCmd,
		walletCmd,
		healthCmd,
		reconcileCmd,
		sanctionCmd,
		tokenCmd,
	}
}

var migrateCmd = &cli.Command{
	Name:  "migrate",
	Usage: "apply the database schema",
	Action: func(cctx *cli.Context) error {
		cfg, err := loadConfig(cctx)
		if err != nil {
			return err
		}
		db, err := openDB(cctx.Context, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := repositories.Migrate(cctx.Context, db); err != nil {
			return err
		}
		fmt.Fprintln(cctx.App.Writer, color.GreenString("schema is up to date"))
		return nil
	},
}

var walletCmd = &cli.Command{
	Name:  "wallet",
	Usage: "manage custodial wallets",
	Subcommands: []*cli.Command{
		walletCreateCmd,
		walletListCmd,
		walletFreezeCmd,
	},
}

var walletCreateCmd = &cli.Command{
	Name:  "create",
	Usage: "create a wallet for each given currency",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{Name: "currency", Usage: "currency symbol, repeatable; all currencies when omitted"},
		&cli.BoolFlag{Name: "cold", Usage: "create cold wallets"},
	},
	Action: func(cctx *cli.Context) error {
		currencies, err := parseCurrencies(cctx.StringSlice("currency"))
		if err != nil {
			return err
		}

		d, err := openDeps(cctx)
		if err != nil {
			return err
		}
		defer d.close()
		pool, err := d.pool()
		if err != nil {
			return err
		}

		w := cctx.App.Writer
		if cctx.Bool("cold") {
			for _, c := range currencies {
				wallet, err := pool.CreateWallet(cctx.Context, c, false)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", c, wallet.WalletAddress, color.CyanString("cold"))
			}
			return nil
		}

		created, err := pool.CreateWallets(cctx.Context, currencies)
		if err != nil {
			return err
		}
		printCreations(w, created)
		return nil
	},
}

var walletListCmd = &cli.Command{
	Name:  "list",
	Usage: "list custodial wallets",
	Action: func(cctx *cli.Context) error {
		d, err := openDeps(cctx)
		if err != nil {
			return err
		}
		defer d.close()
		pool, err := d.pool()
		if err != nil {
			return err
		}

		wallets, err := pool.ListWallets(cctx.Context)
		if err != nil {
			return err
		}
		for _, wlt := range wallets {
			fmt.Fprintf(cctx.App.Writer, "%s\t%s\t%s\t%s\t%s\n",
				wlt.ID, wlt.Currency, wlt.WalletAddress, wlt.Balance, statusString(wlt.Status))
		}
		return nil
	},
}

var walletFreezeCmd = &cli.Command{
	Name:      "freeze",
	Usage:     "freeze a wallet",
	ArgsUsage: "[wallet id]",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "reason", Value: "frozen by operator"},
	},
	Action: func(cctx *cli.Context) error {
		id := cctx.Args().First()
		if id == "" {
			return errors.New("wallet id is required")
		}

		d, err := openDeps(cctx)
		if err != nil {
			return err
		}
		defer d.close()
		pool, err := d.pool()
		if err != nil {
			return err
		}

		if err := pool.FreezeWallet(cctx.Context, id, cctx.String("reason")); err != nil {
			return err
		}
		fmt.Fprintf(cctx.App.Writer, "wallet %s %s\n", id, color.YellowString("frozen"))
		return nil
	},
}

var healthCmd = &cli.Command{
	Name:  "health",
	Usage: "compare recorded wallet balances with the chain",
	Action: func(cctx *cli.Context) error {
		d, err := openDeps(cctx)
		if err != nil {
			return err
		}
		defer d.close()
		pool, err := d.pool()
		if err != nil {
			return err
		}

		report, err := pool.HealthCheck(cctx.Context)
		if err != nil {
			return err
		}
		printHealth(cctx.App.Writer, report)
		return nil
	},
}

var reconcileCmd = &cli.Command{
	Name:  "reconcile",
	Usage: "run one reconciliation pass",
	Flags: []cli.Flag{
		&cli.DurationFlag{Name: "stale-after", Value: 5 * time.Minute, Usage: "only resolve transfers older than this"},
	},
	Action: func(cctx *cli.Context) error {
		d, err := openDeps(cctx)
		if err != nil {
			return err
		}
		defer d.close()
		manager, err := d.manager()
		if err != nil {
			return err
		}

		rec := services.NewReconciler(manager, time.Minute, cctx.Duration("stale-after"))
		report, err := rec.ReconcileOnce(cctx.Context)
		if err != nil {
			return err
		}
		fmt.Fprintf(cctx.App.Writer, "expired %d, succeeded %d, failed %d, unresolved %s\n",
			report.Expired, report.Succeeded, report.Failed, unresolvedString(report.Unresolved))
		return nil
	},
}

var sanctionCmd = &cli.Command{
	Name:      "sanction",
	Usage:     "add addresses to the sanctions list",
	ArgsUsage: "[address...]",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() == 0 {
			return errors.New("at least one address is required")
		}

		d, err := openDeps(cctx)
		if err != nil {
			return err
		}
		defer d.close()

		if err := repositories.NewSanctionsRepository(d.rdb).Add(cctx.Context, cctx.Args().Slice()...); err != nil {
			return err
		}
		fmt.Fprintf(cctx.App.Writer, "%d address(es) added\n", cctx.NArg())
		return nil
	},
}

var tokenCmd = &cli.Command{
	Name:  "token",
	Usage: "issue a bearer token",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "user", Required: true},
		&cli.BoolFlag{Name: "admin"},
		&cli.DurationFlag{Name: "ttl", Usage: "token lifetime; JWT_EXP_SECOND when omitted"},
	},
	Action: func(cctx *cli.Context) error {
		cfg, err := loadConfig(cctx)
		if err != nil {
			return err
		}

		ttl := cfg.JWTExp
		if cctx.IsSet("ttl") {
			ttl = cctx.Duration("ttl")
		}
		role := jwt.RoleUser
		if cctx.Bool("admin") {
			role = jwt.RoleAdmin
		}

		token, err := jwt.New(cfg.JWTSecretKey, ttl).Generate(cctx.Context, cctx.String("user"), role)
		if err != nil {
			return err
		}
		fmt.Fprintln(cctx.App.Writer, token)
		return nil
	},
}

func parseCurrencies(values []string) ([]models.Currency, error) {
	if len(values) == 0 {
		return models.Currencies, nil
	}
	out := make([]models.Currency, 0, len(values))
	for _, v := range values {
		c := models.Currency(strings.ToUpper(strings.TrimSpace(v)))
		if !c.Valid() {
			return nil, fmt.Errorf("unsupported currency %q", v)
		}
		out = append(out, c)
	}
	return out, nil
}

func printCreations(w io.Writer, created []services.WalletCreation) {
	for _, c := range created {
		switch {
		case c.Error != "":
			fmt.Fprintf(w, "%s\t%s\n", c.Currency, color.RedString(c.Error))
		case c.Skipped:
			fmt.Fprintf(w, "%s\t%s\n", c.Currency, color.YellowString("skipped, active wallet exists"))
		default:
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.Currency, c.Wallet.WalletAddress, color.GreenString("created"))
		}
	}
}

func printHealth(w io.Writer, report []models.WalletHealth) {
	for _, h := range report {
		state := color.GreenString("healthy")
		if !h.IsHealthy {
			state = color.RedString("unhealthy")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\trecorded %s\tchain %s\t%s\n",
			h.Currency, h.Address, state, h.RecordedBalance, h.CurrentBalance, strings.Join(h.Issues, "; "))
	}
}

func statusString(s models.WalletStatus) string {
	switch s {
	case models.WalletActive:
		return color.GreenString(string(s))
	case models.WalletFrozen:
		return color.RedString(string(s))
	}
	return color.YellowString(string(s))
}

func unresolvedString(n int) string {
	if n > 0 {
		return color.YellowString("%d", n)
	}
	return fmt.Sprint(n)
}

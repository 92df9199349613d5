// Command ledgerctl is the operator tool for the custodial ledger: schema
// migration, hot wallet provisioning, health checks and manual reconciliation.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

var buildVersion = "N/A"

func newApp() *cli.App {
	return &cli.App{
		Name:    "ledgerctl",
		Usage:   "operate the custodial ledger",
		Version: buildVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.env",
				Usage:   "path to configuration file",
			},
		},
		Commands: commands(),
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

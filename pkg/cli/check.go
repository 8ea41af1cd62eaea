package cli

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

func cmdCheck() *cli.Command {
	var be backends

	return &cli.Command{
		Name:  "check",
		Usage: "Verify connectivity to both backends",
		Flags: be.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := be.configure(ctx)
			if err != nil {
				return err
			}

			report := uc.CheckConnections(ctx)

			pterm.DefaultSection.Println("Directory API")
			if report.DirectoryOK {
				pterm.Success.Printf("Connected to %s, %d distribution list(s) visible\n",
					report.TenantName, report.ListsVisible)
			} else {
				pterm.Error.Printf("Connection failed: %s\n", report.DirectoryErr)
			}

			pterm.DefaultSection.Println("Exchange Online")
			switch {
			case report.ExchangeDisabled:
				pterm.Warning.Println("Not configured; directory-only mode")
			case report.ExchangeReady:
				pterm.Success.Println("PowerShell module available")
			default:
				pterm.Error.Println("ExchangeOnlineManagement module not available")
			}
			return nil
		},
	}
}

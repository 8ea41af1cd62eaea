package cli

import (
	"context"
	"log/slog"

	"github.com/entraops/dlman/pkg/cli/config"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger

	app := &cli.Command{
		Name:    "dlman",
		Usage:   "Distribution list manager for Entra ID and Exchange Online",
		Version: "0.1.0",
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdList(),
			cmdShow(),
			cmdSearch(),
			cmdCreate(),
			cmdUpdate(),
			cmdDelete(),
			cmdAdd(),
			cmdRemove(),
			cmdMemberships(),
			cmdFind(),
			cmdImport(),
			cmdExport(),
			cmdClearImport(),
			cmdCheck(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}

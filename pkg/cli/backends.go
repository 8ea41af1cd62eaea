package cli

import (
	"context"
	"strings"

	"github.com/entraops/dlman/pkg/cli/config"
	"github.com/entraops/dlman/pkg/domain/interfaces"
	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/entraops/dlman/pkg/domain/types"
	"github.com/entraops/dlman/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

// backends bundles the configuration every command needs to reach the
// directory and Exchange
type backends struct {
	graphCfg    config.Graph
	exchangeCfg config.Exchange
	bulkCfg     config.Bulk
	profilePath string
}

func (b *backends) Flags() []cli.Flag {
	return joinFlags(
		b.graphCfg.Flags(),
		b.exchangeCfg.Flags(),
		b.bulkCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "profile",
				Usage:       "YAML profile file with tenant settings",
				Category:    "Directory",
				Sources:     cli.EnvVars("DLMAN_PROFILE"),
				Destination: &b.profilePath,
			},
		},
	)
}

// configure builds the manager from flags, environment and the optional
// profile file
func (b *backends) configure(ctx context.Context) (*usecase.Manager, error) {
	logger := ctxlog.From(ctx)

	if b.profilePath != "" {
		profile, err := config.LoadProfile(b.profilePath)
		if err != nil {
			return nil, err
		}
		profile.Apply(&b.graphCfg, &b.exchangeCfg, &b.bulkCfg)
		logger.Debug("applied profile", "path", b.profilePath)
	}

	graphClient, err := b.graphCfg.Configure()
	if err != nil {
		return nil, err
	}

	logger.Debug("backends configured",
		"graph", b.graphCfg, "exchange", b.exchangeCfg, "bulk", b.bulkCfg)

	// Keep the interface nil when the backend is absent; a typed nil
	// would defeat the manager's presence checks
	var exchangeClient interfaces.ExchangeClient
	if c := b.exchangeCfg.ConfigureOptional(logger); c != nil {
		exchangeClient = c
	}

	return usecase.New(graphClient, exchangeClient,
		usecase.WithWorkers(b.bulkCfg.Workers)), nil
}

// resolveList accepts either a directory object ID or an SMTP address
func resolveList(ctx context.Context, uc *usecase.Manager, ident string) (*model.List, error) {
	if strings.Contains(ident, "@") {
		return uc.GetByEmail(ctx, types.EmailAddress(ident))
	}
	return uc.GetByID(ctx, types.ListID(ident))
}

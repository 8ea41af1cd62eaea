package config

import (
	"log/slog"

	"github.com/entraops/dlman/pkg/service/graph"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Graph holds directory API configuration
type Graph struct {
	TenantID     string
	ClientID     string
	ClientSecret string
}

// Flags returns CLI flags for Graph configuration
func (g *Graph) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tenant-id",
			Usage:       "Entra tenant ID",
			Category:    "Directory",
			Sources:     cli.EnvVars("DLMAN_TENANT_ID"),
			Destination: &g.TenantID,
		},
		&cli.StringFlag{
			Name:        "client-id",
			Usage:       "App registration client ID",
			Category:    "Directory",
			Sources:     cli.EnvVars("DLMAN_CLIENT_ID"),
			Destination: &g.ClientID,
		},
		&cli.StringFlag{
			Name:        "client-secret",
			Usage:       "App registration client secret",
			Category:    "Directory",
			Sources:     cli.EnvVars("DLMAN_CLIENT_SECRET"),
			Destination: &g.ClientSecret,
		},
	}
}

// IsConfigured checks whether all directory credentials are present
func (g *Graph) IsConfigured() bool {
	return g.TenantID != "" && g.ClientID != "" && g.ClientSecret != ""
}

// Configure creates the directory API client
func (g *Graph) Configure() (*graph.Client, error) {
	if !g.IsConfigured() {
		return nil, goerr.New("directory API credentials are required",
			goerr.V("config", g))
	}
	return graph.New(g.TenantID, g.ClientID, g.ClientSecret), nil
}

// LogValue returns structured log value without exposing the secret
func (g Graph) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("tenant_id", g.TenantID),
		slog.String("client_id", g.ClientID),
		slog.Bool("has_client_secret", g.ClientSecret != ""),
	)
}

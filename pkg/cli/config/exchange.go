package config

import (
	"log/slog"

	"github.com/entraops/dlman/pkg/service/exchange"
	"github.com/urfave/cli/v3"
)

// Exchange holds configuration for the PowerShell admin backend
type Exchange struct {
	AppID             string
	CertThumbprint    string
	Organization      string
	UserPrincipalName string
	Shell             string
}

// Flags returns CLI flags for Exchange configuration
func (e *Exchange) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "exchange-app-id",
			Usage:       "App registration ID for certificate-based Exchange auth",
			Category:    "Exchange",
			Sources:     cli.EnvVars("DLMAN_EXCHANGE_APP_ID"),
			Destination: &e.AppID,
		},
		&cli.StringFlag{
			Name:        "exchange-cert-thumbprint",
			Usage:       "Certificate thumbprint for app-only Exchange auth",
			Category:    "Exchange",
			Sources:     cli.EnvVars("DLMAN_EXCHANGE_CERT_THUMBPRINT"),
			Destination: &e.CertThumbprint,
		},
		&cli.StringFlag{
			Name:        "exchange-organization",
			Usage:       "Exchange organization (e.g. contoso.onmicrosoft.com)",
			Category:    "Exchange",
			Sources:     cli.EnvVars("DLMAN_EXCHANGE_ORGANIZATION"),
			Destination: &e.Organization,
		},
		&cli.StringFlag{
			Name:        "exchange-upn",
			Usage:       "User principal name for interactive Exchange auth",
			Category:    "Exchange",
			Sources:     cli.EnvVars("DLMAN_EXCHANGE_UPN"),
			Destination: &e.UserPrincipalName,
		},
		&cli.StringFlag{
			Name:        "exchange-shell",
			Usage:       "PowerShell executable (powershell or pwsh, default powershell)",
			Category:    "Exchange",
			Sources:     cli.EnvVars("DLMAN_EXCHANGE_SHELL"),
			Destination: &e.Shell,
		},
	}
}

// IsConfigured checks whether either auth mode has enough settings
func (e *Exchange) IsConfigured() bool {
	if e.AppID != "" && e.CertThumbprint != "" && e.Organization != "" {
		return true
	}
	return e.UserPrincipalName != ""
}

// ConfigureOptional creates the Exchange client, or nil when not
// configured. Directory-only operation is valid; mutations that need the
// shell path fail per item instead.
func (e *Exchange) ConfigureOptional(logger *slog.Logger) *exchange.Client {
	if !e.IsConfigured() {
		logger.Warn("Exchange backend not configured - classified groups and external contacts cannot be modified")
		return nil
	}

	opts := []exchange.Option{
		exchange.WithRunner(exchange.NewRunner(e.Shell)),
	}
	if e.UserPrincipalName != "" {
		opts = append(opts, exchange.WithUserPrincipalName(e.UserPrincipalName))
	}
	return exchange.New(e.AppID, e.CertThumbprint, e.Organization, opts...)
}

// LogValue returns structured log value
func (e Exchange) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("app_id", e.AppID),
		slog.Bool("has_cert_thumbprint", e.CertThumbprint != ""),
		slog.String("organization", e.Organization),
		slog.String("upn", e.UserPrincipalName),
		slog.String("shell", e.Shell),
	)
}

package apperr

import (
	"context"
	"errors"

	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
)

// Handle logs an application error with its goerr context attached.
// Configuration errors get a hint aimed at the operator since they are
// fixable without touching the tenant.
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)

	switch {
	case errors.Is(err, model.ErrModuleNotInstalled):
		logger.Error("exchange backend unavailable", "error", err,
			"hint", "install the ExchangeOnlineManagement PowerShell module")
	case errors.Is(err, model.ErrCertNotConfigured):
		logger.Error("exchange authentication not configured", "error", err,
			"hint", "set DLMAN_EXCHANGE_CERT_THUMBPRINT and DLMAN_EXCHANGE_ORGANIZATION")
	default:
		logger.Error("application error", "error", err)
	}
}

package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// CheckReport is the outcome of a connectivity check against both
// backends
type CheckReport struct {
	DirectoryOK      bool
	DirectoryErr     string
	TenantName       string
	ListsVisible     int
	ExchangeReady    bool
	ExchangeDisabled bool
}

// CheckConnections verifies that both backends are reachable with the
// configured credentials. Failures are reported, not returned: a broken
// backend is this command's expected subject, not an error condition.
func (m *Manager) CheckConnections(ctx context.Context) *CheckReport {
	logger := ctxlog.From(ctx)
	report := &CheckReport{}

	var org struct {
		Value []struct {
			DisplayName string `json:"displayName"`
		} `json:"value"`
	}
	if err := m.graph.Get(ctx, "/organization", nil, &org); err != nil {
		report.DirectoryErr = err.Error()
		logger.Warn("directory check failed", "error", err)
	} else {
		report.DirectoryOK = true
		if len(org.Value) > 0 {
			report.TenantName = org.Value[0].DisplayName
		}
		if lists, err := m.ListAll(ctx); err == nil {
			report.ListsVisible = len(lists)
		}
	}

	if m.exchange == nil {
		report.ExchangeDisabled = true
		return report
	}

	report.ExchangeReady = m.exchange.CheckModuleInstalled(ctx)
	if !report.ExchangeReady {
		logger.Warn("legacy admin shell module not available")
	}

	return report
}

package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrListNotFound   = goerr.New("distribution list not found")
	ErrMemberNotFound = goerr.New("member not found in list")
	ErrInvalidEmail   = goerr.New("invalid email address")

	// Terminal configuration errors from the Exchange shell backend.
	// These are reported verbatim with remediation guidance and never
	// retried.
	ErrModuleNotInstalled = goerr.New("ExchangeOnlineManagement module not installed; run 'Install-Module ExchangeOnlineManagement -Force' in an elevated PowerShell")
	ErrCertNotConfigured  = goerr.New("Exchange certificate authentication not configured; set DLMAN_EXCHANGE_CERT_THUMBPRINT and DLMAN_EXCHANGE_ORGANIZATION")
)

package model

import "github.com/entraops/dlman/pkg/domain/types"

// ExchangeGroup represents a distribution group as reported by the
// Exchange shell backend. Exchange identifies groups by an opaque
// Identity string rather than a directory object ID.
type ExchangeGroup struct {
	Identity    string             `json:"Identity"`
	DisplayName string             `json:"DisplayName"`
	PrimarySMTP types.EmailAddress `json:"PrimarySmtpAddress"`
}

// ExchangeMember represents one member record returned by the Exchange
// shell backend
type ExchangeMember struct {
	Name        string             `json:"Name"`
	PrimarySMTP types.EmailAddress `json:"PrimarySmtpAddress"`
}

// GroupUpdate describes a partial update to an Exchange distribution
// group. Empty fields are left unchanged.
type GroupUpdate struct {
	DisplayName string
	PrimarySMTP types.EmailAddress
	Alias       string
}

// IsEmpty reports whether the update changes nothing
func (u GroupUpdate) IsEmpty() bool {
	return u.DisplayName == "" && u.PrimarySMTP == "" && u.Alias == ""
}

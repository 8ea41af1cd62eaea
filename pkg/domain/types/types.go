package types

import (
	"strings"

	"github.com/google/uuid"
)

// ListID represents a directory object ID of a distribution list
type ListID string

// String returns the string representation
func (id ListID) String() string {
	return string(id)
}

// Short returns a truncated form suitable for log output
func (id ListID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8]) + "..."
}

// MemberID represents a directory object ID of a list member.
// Externally-sourced mail contacts that have no directory object are
// identified by their bare SMTP address instead.
type MemberID string

// String returns the string representation
func (id MemberID) String() string {
	return string(id)
}

// EmailAddress represents an SMTP address
type EmailAddress string

// String returns the string representation
func (e EmailAddress) String() string {
	return string(e)
}

// Normalized returns the lowercase form used for matching. The original
// case is preserved in the value itself for display.
func (e EmailAddress) Normalized() string {
	return strings.ToLower(strings.TrimSpace(string(e)))
}

// Valid reports whether the address has the minimal shape of an SMTP
// address (non-empty local part and domain)
func (e EmailAddress) Valid() bool {
	s := strings.TrimSpace(string(e))
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.Contains(s[at+1:], "@")
}

// MemberType is a coarse classification of a list member
type MemberType string

const (
	MemberTypeUser    MemberType = "user"
	MemberTypeContact MemberType = "orgContact"
	MemberTypeGroup   MemberType = "group"
	MemberTypeUnknown MemberType = "unknown"
)

// String returns the string representation
func (t MemberType) String() string {
	return string(t)
}

// BulkOperationID identifies one bulk operation run for log correlation
type BulkOperationID string

// String returns the string representation
func (id BulkOperationID) String() string {
	return string(id)
}

// NewBulkOperationID creates a new BulkOperationID
func NewBulkOperationID() BulkOperationID {
	return BulkOperationID(uuid.New().String())
}

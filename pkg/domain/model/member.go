package model

import (
	"strings"

	"github.com/entraops/dlman/pkg/domain/types"
)

// Member represents an entity that receives mail via a List
type Member struct {
	ID          types.MemberID     `json:"id"`
	DisplayName string             `json:"displayName"`
	Email       types.EmailAddress `json:"email"`
	Type        types.MemberType   `json:"type"`
}

// NewPlaceholderMember creates a minimal member record for cache patching
// when a mutation succeeded but no enriched record was returned by the
// backend. The email doubles as the identity.
func NewPlaceholderMember(email types.EmailAddress) *Member {
	name, _, _ := strings.Cut(email.String(), "@")
	return &Member{
		ID:          types.MemberID(email),
		DisplayName: name,
		Email:       email,
		Type:        types.MemberTypeUser,
	}
}

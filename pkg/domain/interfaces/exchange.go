package interfaces

//go:generate moq -out mocks/exchange_mock.go -pkg mocks . ExchangeClient

import (
	"context"

	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/entraops/dlman/pkg/domain/types"
)

// ExchangeClient defines the legacy shell-based admin backend. It is the
// fallback path for groups whose security classification blocks direct
// relationship writes through the directory REST surface.
type ExchangeClient interface {
	// ListGroups returns all distribution groups
	ListGroups(ctx context.Context) ([]model.ExchangeGroup, error)

	// GetMembers returns members of a group identified by SMTP or
	// Exchange identity
	GetMembers(ctx context.Context, identity string) ([]model.ExchangeMember, error)

	// AddMember adds a member, escalating to mail contact creation for
	// addresses unknown to the directory
	AddMember(ctx context.Context, identity string, email types.EmailAddress) error

	// RemoveMember removes a member
	RemoveMember(ctx context.Context, identity string, email types.EmailAddress) error

	// CreateGroup creates a new distribution group
	CreateGroup(ctx context.Context, name, alias string, smtp types.EmailAddress) error

	// UpdateGroup applies a partial update to a group
	UpdateGroup(ctx context.Context, identity string, update model.GroupUpdate) error

	// DeleteGroup deletes a distribution group
	DeleteGroup(ctx context.Context, identity string) error

	// CheckModuleInstalled reports whether the admin shell tooling is
	// available on this host
	CheckModuleInstalled(ctx context.Context) bool
}

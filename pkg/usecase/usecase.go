package usecase

import (
	"strings"

	"github.com/entraops/dlman/pkg/domain/interfaces"
	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/entraops/dlman/pkg/domain/types"
)

const defaultWorkers = 5

// Manager orchestrates distribution list operations across the directory
// REST backend and the Exchange shell backend. It owns the membership
// cache and decides per mutation which backend can perform it.
type Manager struct {
	graph    interfaces.DirectoryClient
	exchange interfaces.ExchangeClient
	cache    *Cache
	workers  int
}

// Option configures a Manager
type Option func(*Manager)

// WithWorkers sets the bounded concurrency for cache warm-up. Bulk
// mutation pools scale with item count independently.
func WithWorkers(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.workers = n
		}
	}
}

// New creates a Manager
func New(graphClient interfaces.DirectoryClient, exchangeClient interfaces.ExchangeClient, opts ...Option) *Manager {
	m := &Manager{
		graph:    graphClient,
		exchange: exchangeClient,
		cache:    NewCache(),
		workers:  defaultWorkers,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Cache returns the membership cache owned by this manager
func (m *Manager) Cache() *Cache {
	return m.cache
}

// graphGroup is the wire shape of a group resource
type graphGroup struct {
	ID              string   `json:"id"`
	DisplayName     string   `json:"displayName"`
	Mail            string   `json:"mail"`
	Description     string   `json:"description"`
	GroupTypes      []string `json:"groupTypes"`
	SecurityEnabled bool     `json:"securityEnabled"`
}

func (g graphGroup) toList() *model.List {
	return &model.List{
		ID:          types.ListID(g.ID),
		DisplayName: g.DisplayName,
		Mail:        types.EmailAddress(g.Mail),
		Description: g.Description,
	}
}

// isDistributionList filters to pure distribution lists: mail-enabled,
// not security-enabled, and not a Unified (M365) group
func (g graphGroup) isDistributionList() bool {
	if g.SecurityEnabled {
		return false
	}
	for _, t := range g.GroupTypes {
		if t == "Unified" {
			return false
		}
	}
	return true
}

// graphMember is the wire shape of a directory object inside a members
// collection
type graphMember struct {
	ID                string `json:"id"`
	DisplayName       string `json:"displayName"`
	Mail              string `json:"mail"`
	UserPrincipalName string `json:"userPrincipalName"`
	ODataType         string `json:"@odata.type"`
}

func (gm graphMember) toMember() *model.Member {
	email := gm.Mail
	if email == "" {
		email = gm.UserPrincipalName
	}
	return &model.Member{
		ID:          types.MemberID(gm.ID),
		DisplayName: gm.DisplayName,
		Email:       types.EmailAddress(email),
		Type:        memberTypeOf(gm.ODataType),
	}
}

func memberTypeOf(odataType string) types.MemberType {
	switch strings.TrimPrefix(odataType, "#microsoft.graph.") {
	case "user":
		return types.MemberTypeUser
	case "orgContact":
		return types.MemberTypeContact
	case "group":
		return types.MemberTypeGroup
	default:
		return types.MemberTypeUnknown
	}
}

// graphUser is the wire shape of a user or contact from the directory
// user store
type graphUser struct {
	ID                string `json:"id"`
	DisplayName       string `json:"displayName"`
	Mail              string `json:"mail"`
	UserPrincipalName string `json:"userPrincipalName"`
}

// escapeODataString escapes a value for embedding in an OData filter
// string literal
func escapeODataString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

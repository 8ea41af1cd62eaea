package usecase

import (
	"context"

	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/entraops/dlman/pkg/domain/types"
)

// UseCase is the full operation surface consumed by the CLI layer
type UseCase interface {
	// List catalog
	ListAll(ctx context.Context) ([]*model.List, error)
	GetByID(ctx context.Context, listID types.ListID) (*model.List, error)
	GetByEmail(ctx context.Context, email types.EmailAddress) (*model.List, error)
	Search(ctx context.Context, q string) ([]*model.List, error)
	GetMembers(ctx context.Context, listID types.ListID) ([]*model.Member, error)
	CreateList(ctx context.Context, displayName, mailNickname, description string) (*model.List, error)
	UpdateList(ctx context.Context, listID types.ListID, update model.ListUpdate) error
	DeleteList(ctx context.Context, listID types.ListID) error

	// Membership mutation
	AddMember(ctx context.Context, listID types.ListID, email types.EmailAddress) error
	RemoveMember(ctx context.Context, listID types.ListID, email types.EmailAddress) error
	AddMembersBulk(ctx context.Context, listID types.ListID, emails []types.EmailAddress, progress ProgressFunc) (*model.BulkResult, error)
	RemoveMembersBulk(ctx context.Context, listID types.ListID, emails []types.EmailAddress, progress ProgressFunc) (*model.BulkResult, error)

	// Cross-list queries
	GetUserMemberships(ctx context.Context, email types.EmailAddress, progress ProgressFunc) ([]*model.List, error)
	FindEmailAcrossAllLists(ctx context.Context, term string, partial bool, progress ProgressFunc) ([]FindMatch, error)

	// Workflows
	ImportMembers(ctx context.Context, listID types.ListID, emails []types.EmailAddress, progress ProgressFunc) (*ImportSummary, error)
	ClearAndImport(ctx context.Context, plan []ImportList, progress ProgressFunc) (*ClearAndImportSummary, error)
	ExportMembers(ctx context.Context, listID types.ListID) (*ExportEntry, error)
	ExportAll(ctx context.Context, progress ProgressFunc) ([]*ExportEntry, error)

	// Cache and diagnostics
	WarmCache(ctx context.Context, progress ProgressFunc) error
	Cache() *Cache
	CheckConnections(ctx context.Context) *CheckReport
}

var _ UseCase = &Manager{}

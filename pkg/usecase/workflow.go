package usecase

import (
	"context"

	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/entraops/dlman/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// ImportSummary reports the outcome of a membership import: what was
// added, what was already present, and what never reached the backend.
type ImportSummary struct {
	Result          *model.BulkResult
	SkippedExisting []types.EmailAddress
	SkippedInvalid  []string
}

// ImportMembers adds the given addresses to a list, skipping addresses
// that are already members and rejecting malformed ones before any
// backend call. Present-membership matching is case-insensitive.
func (m *Manager) ImportMembers(ctx context.Context, listID types.ListID, emails []types.EmailAddress, progress ProgressFunc) (*ImportSummary, error) {
	dl, err := m.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}

	current, err := m.GetMembers(ctx, listID)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(current))
	for _, member := range current {
		present[member.Email.Normalized()] = true
	}

	summary := &ImportSummary{}
	var toAdd []types.EmailAddress
	for _, email := range emails {
		switch {
		case !email.Valid():
			summary.SkippedInvalid = append(summary.SkippedInvalid, email.String())
		case present[email.Normalized()]:
			summary.SkippedExisting = append(summary.SkippedExisting, email)
		default:
			toAdd = append(toAdd, email)
		}
	}

	opID := types.NewBulkOperationID()
	ctxlog.From(ctx).Info("starting import",
		"operationID", opID,
		"list", dl,
		"requested", len(emails),
		"toAdd", len(toAdd),
		"skippedExisting", len(summary.SkippedExisting),
		"skippedInvalid", len(summary.SkippedInvalid),
	)

	summary.Result = m.runBulk(ctx, opID, toAdd, 0, len(toAdd), progress,
		func(ctx context.Context, email types.EmailAddress) error {
			return m.addMember(ctx, dl, email)
		})
	return summary, nil
}

// ImportList is one list's desired membership in a replacement plan
type ImportList struct {
	ListEmail types.EmailAddress
	Members   []types.EmailAddress
}

// ClearAndImportSummary reports one clear-and-import run across lists
type ClearAndImportSummary struct {
	Removed *model.BulkResult
	Added   *model.BulkResult
}

// ClearAndImport replaces the membership of each listed list: current
// members are removed, then the planned members are added. Removals and
// additions share one progress denominator, recomputed once the current
// memberships are known. The membership cache is reset afterwards since
// the changes are too broad to patch incrementally.
func (m *Manager) ClearAndImport(ctx context.Context, plan []ImportList, progress ProgressFunc) (*ClearAndImportSummary, error) {
	logger := ctxlog.From(ctx)

	type stage struct {
		dl       *model.List
		toRemove []types.EmailAddress
		toAdd    []types.EmailAddress
	}

	// Discovery pass: resolve every list and its current membership so
	// the progress total covers all removals and additions up front
	stages := make([]stage, 0, len(plan))
	total := 0
	for _, item := range plan {
		dl, err := m.GetByEmail(ctx, item.ListEmail)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve list for replacement",
				goerr.V("listEmail", item.ListEmail.String()))
		}
		current, err := m.GetMembers(ctx, dl.ID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to enumerate current members",
				goerr.V("listEmail", item.ListEmail.String()))
		}

		s := stage{dl: dl}
		for _, member := range current {
			s.toRemove = append(s.toRemove, member.Email)
		}
		for _, email := range item.Members {
			if email.Valid() {
				s.toAdd = append(s.toAdd, email)
			}
		}
		total += len(s.toRemove) + len(s.toAdd)
		stages = append(stages, s)
	}

	opID := types.NewBulkOperationID()
	logger.Info("starting clear-and-import",
		"operationID", opID, "lists", len(stages), "items", total)

	summary := &ClearAndImportSummary{
		Removed: model.NewBulkResult(),
		Added:   model.NewBulkResult(),
	}

	done := 0
	for _, s := range stages {
		removed := m.runBulk(ctx, opID, s.toRemove, done, total, progress,
			func(ctx context.Context, email types.EmailAddress) error {
				return m.removeMember(ctx, s.dl, email)
			})
		done += len(s.toRemove)
		mergeBulkResults(summary.Removed, removed)

		added := m.runBulk(ctx, opID, s.toAdd, done, total, progress,
			func(ctx context.Context, email types.EmailAddress) error {
				return m.addMember(ctx, s.dl, email)
			})
		done += len(s.toAdd)
		mergeBulkResults(summary.Added, added)

		if ctx.Err() != nil {
			break
		}
	}

	m.cache.Reset()

	logger.Info("clear-and-import complete",
		"operationID", opID,
		"removed", summary.Removed.SuccessCount(),
		"removeFailed", summary.Removed.FailureCount(),
		"added", summary.Added.SuccessCount(),
		"addFailed", summary.Added.FailureCount(),
	)
	return summary, ctx.Err()
}

func mergeBulkResults(dst, src *model.BulkResult) {
	for _, email := range src.Succeeded() {
		dst.AddSuccess(email)
	}
	for _, f := range src.Failed() {
		dst.AddFailure(f.Email, goerr.New(f.Reason))
	}
}

// ExportEntry is one list with its full membership, ready for export
type ExportEntry struct {
	List    *model.List
	Members []*model.Member
}

// ExportMembers returns one list's membership for export
func (m *Manager) ExportMembers(ctx context.Context, listID types.ListID) (*ExportEntry, error) {
	dl, err := m.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	members, err := m.GetMembers(ctx, listID)
	if err != nil {
		return nil, err
	}
	return &ExportEntry{List: dl, Members: members}, nil
}

// ExportAll returns every list with its membership. The snapshot comes
// from the cache, warmed first if needed.
func (m *Manager) ExportAll(ctx context.Context, progress ProgressFunc) ([]*ExportEntry, error) {
	if !m.cache.Loaded() {
		if err := m.WarmCache(ctx, progress); err != nil {
			return nil, err
		}
	}

	lists := m.cache.Lists()
	entries := make([]*ExportEntry, 0, len(lists))
	for _, dl := range lists {
		members, _ := m.cache.Members(dl.ID)
		entries = append(entries, &ExportEntry{List: dl, Members: members})
	}
	return entries, nil
}

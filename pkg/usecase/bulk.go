package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/entraops/dlman/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
)

// ProgressFunc receives progress updates from bulk operations. Updates
// arrive in completion order, not input order.
type ProgressFunc func(done, total int, label string)

const (
	minBulkWorkers = 5
	maxBulkWorkers = 15
)

// bulkWorkersFor scales the worker pool with the item count
func bulkWorkersFor(items int) int {
	w := items / 10
	if w < minBulkWorkers {
		w = minBulkWorkers
	}
	if w > maxBulkWorkers {
		w = maxBulkWorkers
	}
	if items < w {
		w = items
	}
	return w
}

// runBulk fans op out over emails with a bounded worker pool. Every item
// resolves exactly once into result; items observed after cancellation are
// skipped without being recorded, while inflight calls finish normally.
//
// done/total offsets allow multi-phase workflows to fold several runs into
// one running progress denominator.
func (m *Manager) runBulk(
	ctx context.Context,
	opID types.BulkOperationID,
	emails []types.EmailAddress,
	doneOffset, total int,
	progress ProgressFunc,
	op func(ctx context.Context, email types.EmailAddress) error,
) *model.BulkResult {
	logger := ctxlog.From(ctx)
	result := model.NewBulkResult()

	if len(emails) == 0 {
		return result
	}

	var done atomic.Int32
	done.Store(int32(doneOffset))

	jobs := make(chan types.EmailAddress)
	var wg sync.WaitGroup

	workers := bulkWorkersFor(len(emails))
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for email := range jobs {
				// Cooperative cancellation: drain the queue without
				// starting new remote calls
				if ctx.Err() != nil {
					continue
				}

				if err := op(ctx, email); err != nil {
					result.AddFailure(email, err)
				} else {
					result.AddSuccess(email)
				}

				d := int(done.Add(1))
				if progress != nil {
					progress(d, total, email.String())
				}
			}
		}()
	}

	for _, email := range emails {
		jobs <- email
	}
	close(jobs)
	wg.Wait()

	logger.Info("bulk stage complete",
		"operationID", opID,
		"items", len(emails),
		"succeeded", result.SuccessCount(),
		"failed", result.FailureCount(),
	)
	return result
}

// AddMembersBulk adds many members to one list. One item's failure never
// aborts the remaining items; the result accounts for every input that was
// not skipped by cancellation.
func (m *Manager) AddMembersBulk(ctx context.Context, listID types.ListID, emails []types.EmailAddress, progress ProgressFunc) (*model.BulkResult, error) {
	dl, err := m.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}

	opID := types.NewBulkOperationID()
	ctxlog.From(ctx).Info("starting bulk add",
		"operationID", opID, "list", dl, "items", len(emails))

	result := m.runBulk(ctx, opID, emails, 0, len(emails), progress,
		func(ctx context.Context, email types.EmailAddress) error {
			return m.addMember(ctx, dl, email)
		})
	return result, nil
}

// RemoveMembersBulk removes many members from one list
func (m *Manager) RemoveMembersBulk(ctx context.Context, listID types.ListID, emails []types.EmailAddress, progress ProgressFunc) (*model.BulkResult, error) {
	dl, err := m.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}

	opID := types.NewBulkOperationID()
	ctxlog.From(ctx).Info("starting bulk remove",
		"operationID", opID, "list", dl, "items", len(emails))

	result := m.runBulk(ctx, opID, emails, 0, len(emails), progress,
		func(ctx context.Context, email types.EmailAddress) error {
			return m.removeMember(ctx, dl, email)
		})
	return result, nil
}

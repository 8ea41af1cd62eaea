package model

import (
	"sync"

	"github.com/entraops/dlman/pkg/domain/types"
)

// BulkFailure records one failed item of a bulk operation
type BulkFailure struct {
	Email  types.EmailAddress `json:"email"`
	Reason string             `json:"reason"`
}

// BulkResult accumulates per-item outcomes of a bulk operation. Every
// input identity appears in exactly one of the two lists, exactly once;
// items skipped by cancellation are not recorded at all.
//
// Workers append concurrently, so all mutation goes through the internal
// mutex.
type BulkResult struct {
	mu        sync.Mutex
	succeeded []types.EmailAddress
	failed    []BulkFailure
}

// NewBulkResult creates an empty BulkResult
func NewBulkResult() *BulkResult {
	return &BulkResult{}
}

// AddSuccess records a successful item
func (r *BulkResult) AddSuccess(email types.EmailAddress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.succeeded = append(r.succeeded, email)
}

// AddFailure records a failed item with its stringified cause
func (r *BulkResult) AddFailure(email types.EmailAddress, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reason := "unknown error"
	if err != nil {
		reason = err.Error()
	}
	r.failed = append(r.failed, BulkFailure{Email: email, Reason: reason})
}

// Succeeded returns a copy of the successful items in completion order
func (r *BulkResult) Succeeded() []types.EmailAddress {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]types.EmailAddress, len(r.succeeded))
	copy(out, r.succeeded)
	return out
}

// Failed returns a copy of the failed items in completion order
func (r *BulkResult) Failed() []BulkFailure {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]BulkFailure, len(r.failed))
	copy(out, r.failed)
	return out
}

// SuccessCount returns the number of successful items
func (r *BulkResult) SuccessCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.succeeded)
}

// FailureCount returns the number of failed items
func (r *BulkResult) FailureCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.failed)
}

// Total returns the number of resolved items
func (r *BulkResult) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.succeeded) + len(r.failed)
}

// ErrorExcerpt returns up to limit failure descriptions for user-visible
// reporting. Bulk operations never dump unbounded error lists.
func (r *BulkResult) ErrorExcerpt(limit int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.failed)
	if n > limit {
		n = limit
	}
	out := make([]string, 0, n)
	for _, f := range r.failed[:n] {
		out = append(out, f.Email.String()+": "+f.Reason)
	}
	return out
}

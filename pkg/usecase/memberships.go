package usecase

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/entraops/dlman/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// GetUserMemberships resolves which distribution lists a user belongs to.
// The fast path asks the directory for the user's memberOf edges; when the
// user cannot be resolved (guests, contacts, external senders) or the edge
// query fails, it falls back to scanning the membership cache, which also
// covers members that exist only on the legacy side.
func (m *Manager) GetUserMemberships(ctx context.Context, email types.EmailAddress, progress ProgressFunc) ([]*model.List, error) {
	logger := ctxlog.From(ctx)

	user, err := m.findUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		lists, err := m.directMemberships(ctx, user.ID)
		if err == nil {
			return lists, nil
		}
		logger.Warn("memberOf query failed, falling back to cache scan",
			"email", email.String(), "error", err)
	}

	return m.scanMemberships(ctx, email, progress)
}

func (m *Manager) directMemberships(ctx context.Context, userID string) ([]*model.List, error) {
	query := url.Values{}
	query.Set("$select", groupSelectFields)

	pages, err := m.graph.GetAllPages(ctx, "/users/"+userID+"/memberOf/microsoft.graph.group", query)
	if err != nil {
		return nil, err
	}

	var lists []*model.List
	for _, raw := range pages {
		var g graphGroup
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, goerr.Wrap(err, "failed to decode group in memberOf response")
		}
		// memberOf returns every group kind; keep only mail-enabled ones
		if g.Mail == "" || !g.isDistributionList() {
			continue
		}
		lists = append(lists, g.toList())
	}
	return lists, nil
}

// scanMemberships answers from the cache, warming it first if needed
func (m *Manager) scanMemberships(ctx context.Context, email types.EmailAddress, progress ProgressFunc) ([]*model.List, error) {
	if !m.cache.Loaded() {
		if err := m.WarmCache(ctx, progress); err != nil {
			return nil, err
		}
	}

	matches := m.cache.FindEmail(email.String(), false)
	lists := make([]*model.List, 0, len(matches))
	for _, match := range matches {
		lists = append(lists, match.List)
	}
	return lists, nil
}

// FindEmailAcrossAllLists searches every cached membership for the term.
// Exact mode compares whole addresses; partial mode matches substrings.
// The cache is warmed on first use.
func (m *Manager) FindEmailAcrossAllLists(ctx context.Context, term string, partial bool, progress ProgressFunc) ([]FindMatch, error) {
	if !m.cache.Loaded() {
		if err := m.WarmCache(ctx, progress); err != nil {
			return nil, err
		}
	}
	return m.cache.FindEmail(term, partial), nil
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/entraops/dlman/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const groupSelectFields = "id,displayName,mail,description,groupTypes,securityEnabled"

// ListAll returns every distribution list in the tenant. Mail-enabled
// security groups and Unified (M365) groups are excluded; those are not
// distribution lists even though they carry mail addresses.
func (m *Manager) ListAll(ctx context.Context) ([]*model.List, error) {
	query := url.Values{}
	query.Set("$filter", "mailEnabled eq true")
	query.Set("$select", groupSelectFields)

	items, err := m.graph.GetAllPages(ctx, "/groups", query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to enumerate groups")
	}

	lists := make([]*model.List, 0, len(items))
	for _, raw := range items {
		var g graphGroup
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, goerr.Wrap(err, "failed to decode group")
		}
		if !g.isDistributionList() {
			continue
		}
		lists = append(lists, g.toList())
	}

	ctxlog.From(ctx).Debug("enumerated distribution lists", "count", len(lists))
	return lists, nil
}

// GetByID returns a distribution list by its directory object ID
func (m *Manager) GetByID(ctx context.Context, listID types.ListID) (*model.List, error) {
	var g graphGroup
	if err := m.graph.Get(ctx, "/groups/"+listID.String(), nil, &g); err != nil {
		if apiErr, ok := asAPIError(err); ok && apiErr.StatusCode == 404 {
			return nil, goerr.Wrap(model.ErrListNotFound, "no such group", goerr.V("listID", listID))
		}
		return nil, goerr.Wrap(err, "failed to get group", goerr.V("listID", listID))
	}
	return g.toList(), nil
}

// GetByEmail returns the distribution list with the given SMTP address, or
// ErrListNotFound. The SMTP address is the join key shared with the
// Exchange backend.
func (m *Manager) GetByEmail(ctx context.Context, email types.EmailAddress) (*model.List, error) {
	query := url.Values{}
	query.Set("$filter", fmt.Sprintf("mail eq '%s'", escapeODataString(email.String())))

	var resp struct {
		Value []graphGroup `json:"value"`
	}
	if err := m.graph.Get(ctx, "/groups", query, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to look up group by mail", goerr.V("email", email))
	}
	if len(resp.Value) == 0 {
		return nil, goerr.Wrap(model.ErrListNotFound, "no group with mail address", goerr.V("email", email))
	}
	return resp.Value[0].toList(), nil
}

// Search returns distribution lists whose display name or mail address
// starts with the query
func (m *Manager) Search(ctx context.Context, q string) ([]*model.List, error) {
	esc := escapeODataString(q)
	query := url.Values{}
	query.Set("$filter", fmt.Sprintf(
		"mailEnabled eq true and (startswith(displayName, '%s') or startswith(mail, '%s'))", esc, esc))

	items, err := m.graph.GetAllPages(ctx, "/groups", query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search groups", goerr.V("query", q))
	}

	lists := make([]*model.List, 0, len(items))
	for _, raw := range items {
		var g graphGroup
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, goerr.Wrap(err, "failed to decode group")
		}
		lists = append(lists, g.toList())
	}
	return lists, nil
}

// GetMembers returns all members of a distribution list via a live
// paginated fetch
func (m *Manager) GetMembers(ctx context.Context, listID types.ListID) ([]*model.Member, error) {
	items, err := m.graph.GetAllPages(ctx, "/groups/"+listID.String()+"/members", nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch members", goerr.V("listID", listID))
	}

	members := make([]*model.Member, 0, len(items))
	for _, raw := range items {
		var gm graphMember
		if err := json.Unmarshal(raw, &gm); err != nil {
			return nil, goerr.Wrap(err, "failed to decode member")
		}
		members = append(members, gm.toMember())
	}
	return members, nil
}

// CreateList creates a new distribution list via the directory API
func (m *Manager) CreateList(ctx context.Context, displayName, mailNickname, description string) (*model.List, error) {
	body := map[string]any{
		"displayName":     displayName,
		"mailEnabled":     true,
		"mailNickname":    mailNickname,
		"securityEnabled": false,
		"groupTypes":      []string{},
	}
	if description != "" {
		body["description"] = description
	}

	var g graphGroup
	if err := m.graph.Post(ctx, "/groups", body, &g); err != nil {
		return nil, goerr.Wrap(err, "failed to create group", goerr.V("displayName", displayName))
	}

	ctxlog.From(ctx).Info("created distribution list", "list", g.toList())
	return g.toList(), nil
}

// UpdateList applies a partial update to a distribution list
func (m *Manager) UpdateList(ctx context.Context, listID types.ListID, update model.ListUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	body := map[string]any{}
	if update.DisplayName != nil {
		body["displayName"] = *update.DisplayName
	}
	if update.Description != nil {
		body["description"] = *update.Description
	}
	if update.MailNickname != nil {
		body["mailNickname"] = *update.MailNickname
	}

	if err := m.graph.Patch(ctx, "/groups/"+listID.String(), body); err != nil {
		return goerr.Wrap(err, "failed to update group", goerr.V("listID", listID))
	}
	return nil
}

// DeleteList deletes a distribution list. The cache entry, if any, is
// dropped with it.
func (m *Manager) DeleteList(ctx context.Context, listID types.ListID) error {
	if err := m.graph.Delete(ctx, "/groups/"+listID.String()); err != nil {
		return goerr.Wrap(err, "failed to delete group", goerr.V("listID", listID))
	}
	m.cache.Drop(listID)
	return nil
}

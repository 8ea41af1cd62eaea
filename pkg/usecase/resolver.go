package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/entraops/dlman/pkg/domain/types"
	"github.com/entraops/dlman/pkg/service/graph"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const directoryObjectRef = "https://graph.microsoft.com/v1.0/directoryObjects/%s"

// fallbackSignatures is the closed set of rejection phrases that route a
// mutation to the Exchange backend. The directory API rejects relationship
// writes on groups with certain security classifications and the shell
// path is the only way to mutate those. Any unrecognized rejection
// propagates; it is never silently retried.
var fallbackSignatures = []string{
	"Cannot Update a mail-enabled",
	"Request_BadRequest",
}

func asAPIError(err error) (*graph.APIError, bool) {
	return graph.AsAPIError(err)
}

func isFallbackRejection(err error) bool {
	apiErr, ok := graph.AsAPIError(err)
	if !ok {
		return false
	}
	for _, sig := range fallbackSignatures {
		if apiErr.BodyContains(sig) {
			return true
		}
	}
	return false
}

// AddMember adds a member to a distribution list by email. The directory
// API is tried first; the Exchange shell path is paid only on confirmed
// rejection or when the address is unknown to the directory.
func (m *Manager) AddMember(ctx context.Context, listID types.ListID, email types.EmailAddress) error {
	dl, err := m.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	return m.addMember(ctx, dl, email)
}

func (m *Manager) addMember(ctx context.Context, dl *model.List, email types.EmailAddress) error {
	logger := ctxlog.From(ctx)

	if !email.Valid() {
		return goerr.Wrap(model.ErrInvalidEmail, "cannot add member", goerr.V("email", email))
	}

	user, err := m.findUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		// Not in the directory at all; only Exchange can materialize
		// an external contact for it
		logger.Info("member not in directory, delegating to exchange", "email", email, "list", dl)
		return m.addViaExchange(ctx, dl, email)
	}

	body := map[string]string{
		"@odata.id": fmt.Sprintf(directoryObjectRef, user.ID),
	}
	if err := m.graph.Post(ctx, "/groups/"+dl.ID.String()+"/members/$ref", body, nil); err != nil {
		if isFallbackRejection(err) {
			logger.Warn("directory API cannot modify this list, delegating to exchange",
				"list", dl, "email", email)
			return m.addViaExchange(ctx, dl, email)
		}
		return err
	}

	m.cache.PatchAdd(dl.ID, email, &model.Member{
		ID:          types.MemberID(user.ID),
		DisplayName: user.DisplayName,
		Email:       email,
		Type:        types.MemberTypeUser,
	})
	return nil
}

func (m *Manager) addViaExchange(ctx context.Context, dl *model.List, email types.EmailAddress) error {
	if m.exchange == nil {
		return goerr.Wrap(model.ErrModuleNotInstalled, "exchange backend not configured",
			goerr.V("email", email))
	}
	if err := m.exchange.AddMember(ctx, dl.Mail.String(), email); err != nil {
		return exchangeFailure(err, email)
	}
	m.cache.PatchAdd(dl.ID, email, nil)
	return nil
}

// RemoveMember removes a member from a distribution list by email. The
// live member records are searched first so the membership relation can be
// deleted by its directory identity; absent a match, a directory-wide
// lookup decides between deletion by user identity and ErrMemberNotFound.
func (m *Manager) RemoveMember(ctx context.Context, listID types.ListID, email types.EmailAddress) error {
	dl, err := m.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	return m.removeMember(ctx, dl, email)
}

func (m *Manager) removeMember(ctx context.Context, dl *model.List, email types.EmailAddress) error {
	logger := ctxlog.From(ctx)

	members, err := m.GetMembers(ctx, dl.ID)
	if err != nil {
		return err
	}

	target := email.Normalized()
	for _, member := range members {
		if member.Email.Normalized() != target {
			continue
		}

		err := m.graph.Delete(ctx, fmt.Sprintf("/groups/%s/members/%s/$ref", dl.ID, member.ID))
		if err != nil {
			if isFallbackRejection(err) {
				logger.Warn("directory API cannot modify this list, delegating to exchange",
					"list", dl, "email", email)
				return m.removeViaExchange(ctx, dl, email)
			}
			return err
		}

		m.cache.PatchRemove(dl.ID, email)
		return nil
	}

	// Not among the live member records; the membership may be held by a
	// directory object whose mail attribute differs from the list's view
	user, err := m.findUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return goerr.Wrap(model.ErrMemberNotFound, "no matching member or directory object",
			goerr.V("email", email), goerr.V("list", dl.Mail))
	}

	if err := m.graph.Delete(ctx, fmt.Sprintf("/groups/%s/members/%s/$ref", dl.ID, user.ID)); err != nil {
		if isFallbackRejection(err) {
			logger.Warn("directory API cannot modify this list, delegating to exchange",
				"list", dl, "email", email)
			return m.removeViaExchange(ctx, dl, email)
		}
		return err
	}

	m.cache.PatchRemove(dl.ID, email)
	return nil
}

func (m *Manager) removeViaExchange(ctx context.Context, dl *model.List, email types.EmailAddress) error {
	if m.exchange == nil {
		return goerr.Wrap(model.ErrModuleNotInstalled, "exchange backend not configured",
			goerr.V("email", email))
	}
	if err := m.exchange.RemoveMember(ctx, dl.Mail.String(), email); err != nil {
		return exchangeFailure(err, email)
	}
	m.cache.PatchRemove(dl.ID, email)
	return nil
}

// exchangeFailure keeps the terminal configuration errors recognizable
// while attaching the failing identity to everything else
func exchangeFailure(err error, email types.EmailAddress) error {
	if errors.Is(err, model.ErrModuleNotInstalled) || errors.Is(err, model.ErrCertNotConfigured) {
		return err
	}
	return goerr.Wrap(err, "exchange mutation failed", goerr.V("email", email))
}

// findUserByEmail looks up a directory user or contact by mail address,
// then by principal-name address; first match wins. A nil result with nil
// error means the address is unknown to the directory.
func (m *Manager) findUserByEmail(ctx context.Context, email types.EmailAddress) (*graphUser, error) {
	for _, field := range []string{"mail", "userPrincipalName"} {
		query := url.Values{}
		query.Set("$filter", fmt.Sprintf("%s eq '%s'", field, escapeODataString(email.String())))

		var resp struct {
			Value []graphUser `json:"value"`
		}
		if err := m.graph.Get(ctx, "/users", query, &resp); err != nil {
			return nil, goerr.Wrap(err, "failed to search directory users", goerr.V("email", email))
		}
		if len(resp.Value) > 0 {
			return &resp.Value[0], nil
		}
	}
	return nil, nil
}

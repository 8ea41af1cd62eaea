package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/entraops/dlman/pkg/domain/interfaces/mocks"
	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/entraops/dlman/pkg/domain/types"
	"github.com/entraops/dlman/pkg/service/graph"
	"github.com/entraops/dlman/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func respondJSON(t *testing.T, out any, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	gt.NoError(t, err)
	gt.NoError(t, json.Unmarshal(data, out))
}

// newDirectoryMock serves a single group "L1" (sales@corp.com) and a
// directory user store. users maps email address to object ID.
func newDirectoryMock(t *testing.T, users map[string]string) *mocks.DirectoryClientMock {
	t.Helper()
	return &mocks.DirectoryClientMock{
		GetFunc: func(ctx context.Context, path string, query url.Values, out any) error {
			switch {
			case path == "/groups/L1":
				respondJSON(t, out, map[string]any{
					"id":          "L1",
					"displayName": "Sales",
					"mail":        "sales@corp.com",
				})
				return nil
			case path == "/users":
				filter := query.Get("$filter")
				var matches []map[string]any
				for email, id := range users {
					if strings.Contains(filter, "'"+email+"'") {
						matches = append(matches, map[string]any{
							"id":          id,
							"displayName": "User " + id,
							"mail":        email,
						})
					}
				}
				respondJSON(t, out, map[string]any{"value": matches})
				return nil
			default:
				return &graph.APIError{StatusCode: 404, Body: "unexpected path " + path}
			}
		},
		GetAllPagesFunc: func(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
			return nil, nil
		},
	}
}

func TestAddMemberDirectoryPath(t *testing.T) {
	ctx := context.Background()

	dir := newDirectoryMock(t, map[string]string{"alice@corp.com": "U-ALICE"})
	dir.PostFunc = func(ctx context.Context, path string, body any, out any) error {
		return nil
	}
	ex := &mocks.ExchangeClientMock{}

	uc := usecase.New(dir, ex)
	gt.NoError(t, uc.AddMember(ctx, "L1", "alice@corp.com"))

	posts := dir.PostCalls()
	gt.Equal(t, 1, len(posts))
	gt.Equal(t, "/groups/L1/members/$ref", posts[0].Path)

	ref, ok := posts[0].Body.(map[string]string)
	gt.True(t, ok)
	gt.Equal(t, "https://graph.microsoft.com/v1.0/directoryObjects/U-ALICE", ref["@odata.id"])

	gt.Equal(t, 0, len(ex.AddMemberCalls()))
}

func TestAddMemberFallbackOnClassifiedGroup(t *testing.T) {
	ctx := context.Background()

	dir := newDirectoryMock(t, map[string]string{"alice@corp.com": "U-ALICE"})
	dir.PostFunc = func(ctx context.Context, path string, body any, out any) error {
		return &graph.APIError{
			StatusCode: 400,
			Body:       `{"error":{"message":"Cannot Update a mail-enabled security groups and or distribution list."}}`,
		}
	}

	ex := &mocks.ExchangeClientMock{
		AddMemberFunc: func(ctx context.Context, identity string, email types.EmailAddress) error {
			return nil
		},
	}

	uc := usecase.New(dir, ex)
	gt.NoError(t, uc.AddMember(ctx, "L1", "alice@corp.com"))

	// The shell path runs exactly once, addressed by the list's SMTP
	calls := ex.AddMemberCalls()
	gt.Equal(t, 1, len(calls))
	gt.Equal(t, "sales@corp.com", calls[0].Identity)
	gt.Equal(t, types.EmailAddress("alice@corp.com"), calls[0].Email)
}

func TestAddMemberUnknownAddressGoesToExchange(t *testing.T) {
	ctx := context.Background()

	dir := newDirectoryMock(t, nil)
	dir.PostFunc = func(ctx context.Context, path string, body any, out any) error {
		t.Error("directory write should not be attempted for an unknown address")
		return nil
	}
	ex := &mocks.ExchangeClientMock{
		AddMemberFunc: func(ctx context.Context, identity string, email types.EmailAddress) error {
			return nil
		},
	}

	uc := usecase.New(dir, ex)
	gt.NoError(t, uc.AddMember(ctx, "L1", "partner@external.example"))
	gt.Equal(t, 1, len(ex.AddMemberCalls()))
}

func TestAddMemberRejectsInvalidEmail(t *testing.T) {
	ctx := context.Background()

	dir := newDirectoryMock(t, nil)
	ex := &mocks.ExchangeClientMock{}
	uc := usecase.New(dir, ex)

	err := uc.AddMember(ctx, "L1", "not-an-email")
	gt.True(t, errors.Is(err, model.ErrInvalidEmail))
	gt.Equal(t, 0, len(ex.AddMemberCalls()))
}

func TestAddMemberUnrecognizedRejectionPropagates(t *testing.T) {
	ctx := context.Background()

	dir := newDirectoryMock(t, map[string]string{"alice@corp.com": "U-ALICE"})
	dir.PostFunc = func(ctx context.Context, path string, body any, out any) error {
		return &graph.APIError{StatusCode: 403, Body: "Insufficient privileges to complete the operation."}
	}
	ex := &mocks.ExchangeClientMock{}

	uc := usecase.New(dir, ex)
	err := uc.AddMember(ctx, "L1", "alice@corp.com")
	gt.Error(t, err)

	apiErr, ok := graph.AsAPIError(err)
	gt.True(t, ok)
	gt.Equal(t, 403, apiErr.StatusCode)
	gt.Equal(t, 0, len(ex.AddMemberCalls()))
}

func memberPage(t *testing.T, id, email string) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(map[string]any{
		"id":          id,
		"displayName": "Member " + id,
		"mail":        email,
		"@odata.type": "#microsoft.graph.user",
	})
	gt.NoError(t, err)
	return data
}

func TestRemoveMemberByLiveMembership(t *testing.T) {
	ctx := context.Background()

	dir := newDirectoryMock(t, nil)
	dir.GetAllPagesFunc = func(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
		gt.Equal(t, "/groups/L1/members", path)
		return []json.RawMessage{memberPage(t, "U-BOB", "Bob@corp.com")}, nil
	}
	dir.DeleteFunc = func(ctx context.Context, path string) error {
		return nil
	}
	ex := &mocks.ExchangeClientMock{}

	uc := usecase.New(dir, ex)
	// Case differs from the cached record; matching is case-insensitive
	gt.NoError(t, uc.RemoveMember(ctx, "L1", "bob@corp.com"))

	dels := dir.DeleteCalls()
	gt.Equal(t, 1, len(dels))
	gt.Equal(t, "/groups/L1/members/U-BOB/$ref", dels[0].Path)
	gt.Equal(t, 0, len(ex.RemoveMemberCalls()))
}

func TestRemoveMemberByDirectoryLookup(t *testing.T) {
	ctx := context.Background()

	// Not among the live members, but the directory knows the address
	dir := newDirectoryMock(t, map[string]string{"carol@corp.com": "U-CAROL"})
	dir.DeleteFunc = func(ctx context.Context, path string) error {
		return nil
	}

	uc := usecase.New(dir, &mocks.ExchangeClientMock{})
	gt.NoError(t, uc.RemoveMember(ctx, "L1", "carol@corp.com"))

	dels := dir.DeleteCalls()
	gt.Equal(t, 1, len(dels))
	gt.Equal(t, "/groups/L1/members/U-CAROL/$ref", dels[0].Path)
}

func TestRemoveMemberNotFound(t *testing.T) {
	ctx := context.Background()

	dir := newDirectoryMock(t, nil)
	uc := usecase.New(dir, &mocks.ExchangeClientMock{})

	err := uc.RemoveMember(ctx, "L1", "ghost@corp.com")
	gt.True(t, errors.Is(err, model.ErrMemberNotFound))
}

func TestRemoveMemberFallbackOnClassifiedGroup(t *testing.T) {
	ctx := context.Background()

	dir := newDirectoryMock(t, nil)
	dir.GetAllPagesFunc = func(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
		return []json.RawMessage{memberPage(t, "U-BOB", "bob@corp.com")}, nil
	}
	dir.DeleteFunc = func(ctx context.Context, path string) error {
		return &graph.APIError{StatusCode: 400, Body: "Request_BadRequest"}
	}
	ex := &mocks.ExchangeClientMock{
		RemoveMemberFunc: func(ctx context.Context, identity string, email types.EmailAddress) error {
			return nil
		},
	}

	uc := usecase.New(dir, ex)
	gt.NoError(t, uc.RemoveMember(ctx, "L1", "bob@corp.com"))

	calls := ex.RemoveMemberCalls()
	gt.Equal(t, 1, len(calls))
	gt.Equal(t, "sales@corp.com", calls[0].Identity)
}

func TestAddMemberExchangeConfigErrorSurfaces(t *testing.T) {
	ctx := context.Background()

	dir := newDirectoryMock(t, nil)
	ex := &mocks.ExchangeClientMock{
		AddMemberFunc: func(ctx context.Context, identity string, email types.EmailAddress) error {
			return fmt.Errorf("run failed: %w", model.ErrModuleNotInstalled)
		},
	}

	uc := usecase.New(dir, ex)
	err := uc.AddMember(ctx, "L1", "partner@external.example")
	gt.True(t, errors.Is(err, model.ErrModuleNotInstalled))
}

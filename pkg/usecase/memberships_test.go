package usecase_test

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/entraops/dlman/pkg/domain/interfaces/mocks"
	"github.com/entraops/dlman/pkg/domain/types"
	"github.com/entraops/dlman/pkg/usecase"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/goerr/v2"
)

func TestGetUserMembershipsDirectPath(t *testing.T) {
	ctx := context.Background()

	dir := &mocks.DirectoryClientMock{
		GetFunc: func(ctx context.Context, path string, query url.Values, out any) error {
			gt.Equal(t, "/users", path)
			respondJSON(t, out, map[string]any{"value": []map[string]any{
				{"id": "U-ALICE", "mail": "alice@corp.com"},
			}})
			return nil
		},
		GetAllPagesFunc: func(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
			gt.Equal(t, "/users/U-ALICE/memberOf/microsoft.graph.group", path)
			return []json.RawMessage{
				groupPage(t, "L1", "Sales", "sales@corp.com"),
				// Security group leaks through the edge; must be filtered
				json.RawMessage(`{"id":"SG1","displayName":"Admins","mail":"admins@corp.com","securityEnabled":true}`),
				// Plain group without mail is not a distribution list
				json.RawMessage(`{"id":"G2","displayName":"Project X"}`),
			}, nil
		},
	}

	uc := usecase.New(dir, &mocks.ExchangeClientMock{})
	lists, err := uc.GetUserMemberships(ctx, "alice@corp.com", nil)
	gt.NoError(t, err)

	gt.Equal(t, 1, len(lists))
	gt.Equal(t, types.ListID("L1"), lists[0].ID)
}

func TestGetUserMembershipsFallsBackToCacheScan(t *testing.T) {
	ctx := context.Background()

	// The address resolves to no directory user, so the answer comes
	// from scanning cached memberships
	dir := cacheDirectoryMock(t)
	dir.GetFunc = func(ctx context.Context, path string, query url.Values, out any) error {
		respondJSON(t, out, map[string]any{"value": []map[string]any{}})
		return nil
	}

	uc := usecase.New(dir, &mocks.ExchangeClientMock{})
	lists, err := uc.GetUserMemberships(ctx, "bob@corp.com", nil)
	gt.NoError(t, err)

	gt.Equal(t, 1, len(lists))
	gt.Equal(t, types.ListID("L1"), lists[0].ID)
	gt.True(t, uc.Cache().Loaded())
}

func TestGetUserMembershipsEdgeFailureFallsThrough(t *testing.T) {
	ctx := context.Background()

	dir := cacheDirectoryMock(t)
	dir.GetFunc = func(ctx context.Context, path string, query url.Values, out any) error {
		respondJSON(t, out, map[string]any{"value": []map[string]any{
			{"id": "U-ALICE", "mail": "alice@corp.com"},
		}})
		return nil
	}
	base := dir.GetAllPagesFunc
	dir.GetAllPagesFunc = func(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
		if strings.Contains(path, "/memberOf/") {
			return nil, goerr.New("insufficient privileges for edge query")
		}
		return base(ctx, path, query)
	}

	uc := usecase.New(dir, &mocks.ExchangeClientMock{})
	lists, err := uc.GetUserMemberships(ctx, "alice@corp.com", nil)
	gt.NoError(t, err)

	gt.Equal(t, 1, len(lists))
	gt.Equal(t, types.ListID("L1"), lists[0].ID)
}

func TestFindEmailAcrossAllListsWarmsCache(t *testing.T) {
	ctx := context.Background()

	uc := usecase.New(cacheDirectoryMock(t), &mocks.ExchangeClientMock{})
	gt.False(t, uc.Cache().Loaded())

	matches, err := uc.FindEmailAcrossAllLists(ctx, "bob", true, nil)
	gt.NoError(t, err)
	gt.True(t, uc.Cache().Loaded())

	gt.Equal(t, 1, len(matches))
	gt.Equal(t, types.ListID("L1"), matches[0].List.ID)
	gt.Equal(t, types.EmailAddress("bob@corp.com"), matches[0].Email)
}

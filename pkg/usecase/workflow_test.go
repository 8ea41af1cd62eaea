package usecase_test

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
	"testing"

	"github.com/entraops/dlman/pkg/domain/interfaces/mocks"
	"github.com/entraops/dlman/pkg/domain/types"
	"github.com/entraops/dlman/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestImportMembersSkipsExistingAndInvalid(t *testing.T) {
	ctx := context.Background()

	dir := bulkDirectoryMock(t)
	dir.GetAllPagesFunc = func(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
		if path == "/groups/L1/members" {
			return []json.RawMessage{memberPage(t, "U-A", "alice@corp.com")}, nil
		}
		return nil, nil
	}

	uc := usecase.New(dir, &mocks.ExchangeClientMock{})
	summary, err := uc.ImportMembers(ctx, "L1", []types.EmailAddress{
		"ALICE@corp.com", // already a member, case differs
		"bob@corp.com",
		"broken",
	}, nil)
	gt.NoError(t, err)

	gt.Equal(t, 1, len(summary.SkippedExisting))
	gt.Equal(t, types.EmailAddress("ALICE@corp.com"), summary.SkippedExisting[0])
	gt.Equal(t, []string{"broken"}, summary.SkippedInvalid)
	gt.Equal(t, 1, summary.Result.SuccessCount())
	gt.Equal(t, types.EmailAddress("bob@corp.com"), summary.Result.Succeeded()[0])
}

func TestClearAndImportSharesOneDenominator(t *testing.T) {
	ctx := context.Background()

	dir := bulkDirectoryMock(t)
	baseGet := dir.GetFunc
	dir.GetFunc = func(ctx context.Context, path string, query url.Values, out any) error {
		if path == "/groups" {
			respondJSON(t, out, map[string]any{"value": []map[string]any{
				{"id": "L1", "displayName": "Sales", "mail": "sales@corp.com"},
			}})
			return nil
		}
		return baseGet(ctx, path, query, out)
	}
	dir.GetAllPagesFunc = func(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
		if path == "/groups/L1/members" {
			return []json.RawMessage{
				memberPage(t, "U-OLD1", "old1@corp.com"),
				memberPage(t, "U-OLD2", "old2@corp.com"),
			}, nil
		}
		return nil, nil
	}
	dir.DeleteFunc = func(ctx context.Context, path string) error {
		return nil
	}
	dir.PostFunc = func(ctx context.Context, path string, body any, out any) error {
		return nil
	}

	var mu sync.Mutex
	maxDone, lastTotal := 0, 0

	uc := usecase.New(dir, &mocks.ExchangeClientMock{})
	summary, err := uc.ClearAndImport(ctx, []usecase.ImportList{{
		ListEmail: "sales@corp.com",
		Members:   []types.EmailAddress{"new1@corp.com", "new2@corp.com", "new3@corp.com"},
	}}, func(done, total int, label string) {
		mu.Lock()
		defer mu.Unlock()
		if done > maxDone {
			maxDone = done
		}
		lastTotal = total
	})
	gt.NoError(t, err)

	// 2 removals + 3 additions fold into one running counter
	gt.Equal(t, 5, lastTotal)
	gt.Equal(t, 5, maxDone)
	gt.Equal(t, 2, summary.Removed.SuccessCount())
	gt.Equal(t, 3, summary.Added.SuccessCount())

	// The cache cannot reflect a replacement; it must be rebuilt
	gt.False(t, uc.Cache().Loaded())
}

func TestClearAndImportReplacesMembership(t *testing.T) {
	ctx := context.Background()

	dir := bulkDirectoryMock(t)
	dir.GetFunc = func(ctx context.Context, path string, query url.Values, out any) error {
		switch path {
		case "/groups":
			respondJSON(t, out, map[string]any{"value": []map[string]any{
				{"id": "L1", "displayName": "Sales", "mail": "sales@corp.com"},
			}})
		case "/users":
			respondJSON(t, out, map[string]any{"value": []map[string]any{
				{"id": "U-NEW", "mail": "new1@corp.com"},
			}})
		}
		return nil
	}
	dir.GetAllPagesFunc = func(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
		if path == "/groups/L1/members" {
			return []json.RawMessage{memberPage(t, "U-OLD", "old@corp.com")}, nil
		}
		return nil, nil
	}
	dir.DeleteFunc = func(ctx context.Context, path string) error { return nil }
	dir.PostFunc = func(ctx context.Context, path string, body any, out any) error { return nil }

	uc := usecase.New(dir, &mocks.ExchangeClientMock{})
	summary, err := uc.ClearAndImport(ctx, []usecase.ImportList{{
		ListEmail: "sales@corp.com",
		Members:   []types.EmailAddress{"new1@corp.com"},
	}}, nil)
	gt.NoError(t, err)

	gt.Equal(t, 1, summary.Removed.SuccessCount())
	gt.Equal(t, 1, summary.Added.SuccessCount())
	gt.Equal(t, 1, len(dir.DeleteCalls()))
	gt.Equal(t, 1, len(dir.PostCalls()))
}

func TestExportAllUsesCache(t *testing.T) {
	ctx := context.Background()

	uc := usecase.New(cacheDirectoryMock(t), &mocks.ExchangeClientMock{})
	entries, err := uc.ExportAll(ctx, nil)
	gt.NoError(t, err)

	gt.Equal(t, 2, len(entries))
	total := 0
	for _, e := range entries {
		total += len(e.Members)
	}
	gt.Equal(t, 2, total)
}

func TestCheckConnections(t *testing.T) {
	ctx := context.Background()

	dir := cacheDirectoryMock(t)
	dir.GetFunc = func(ctx context.Context, path string, query url.Values, out any) error {
		gt.Equal(t, "/organization", path)
		respondJSON(t, out, map[string]any{"value": []map[string]any{
			{"displayName": "Corp Inc"},
		}})
		return nil
	}
	ex := &mocks.ExchangeClientMock{
		CheckModuleInstalledFunc: func(ctx context.Context) bool { return true },
	}

	uc := usecase.New(dir, ex)
	report := uc.CheckConnections(ctx)

	gt.True(t, report.DirectoryOK)
	gt.Equal(t, "Corp Inc", report.TenantName)
	gt.Equal(t, 2, report.ListsVisible)
	gt.True(t, report.ExchangeReady)
}

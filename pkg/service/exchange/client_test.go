package exchange_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/entraops/dlman/pkg/domain/types"
	"github.com/entraops/dlman/pkg/service/exchange"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

// fakeRunner records every script and answers via the respond callback
type fakeRunner struct {
	mu      sync.Mutex
	scripts []string
	respond func(script string) (string, error)
}

func (f *fakeRunner) Run(_ context.Context, script string) (string, error) {
	f.mu.Lock()
	f.scripts = append(f.scripts, script)
	f.mu.Unlock()
	if f.respond == nil {
		return "", nil
	}
	return f.respond(script)
}

func (f *fakeRunner) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.scripts...)
}

func newTestClient(runner *fakeRunner) *exchange.Client {
	return exchange.New("app-id", "ABCDEF", "contoso.onmicrosoft.com", exchange.WithRunner(runner))
}

func TestListGroups(t *testing.T) {
	ctx := context.Background()

	t.Run("parses multiple groups", func(t *testing.T) {
		runner := &fakeRunner{respond: func(string) (string, error) {
			return `[{"Identity":"Sales","DisplayName":"Sales Team","PrimarySmtpAddress":"sales@corp.com"},` +
				`{"Identity":"Eng","DisplayName":"Engineering","PrimarySmtpAddress":"eng@corp.com"}]`, nil
		}}
		groups, err := newTestClient(runner).ListGroups(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(groups), 2)
		gt.Equal(t, groups[0].PrimarySMTP, types.EmailAddress("sales@corp.com"))
		gt.Equal(t, groups[1].DisplayName, "Engineering")
	})

	t.Run("single result serializes as bare object", func(t *testing.T) {
		runner := &fakeRunner{respond: func(string) (string, error) {
			return `{"Identity":"Sales","DisplayName":"Sales Team","PrimarySmtpAddress":"sales@corp.com"}`, nil
		}}
		groups, err := newTestClient(runner).ListGroups(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(groups), 1)
		gt.Equal(t, groups[0].Identity, "Sales")
	})

	t.Run("absent output is an empty result", func(t *testing.T) {
		runner := &fakeRunner{respond: func(string) (string, error) {
			return "  \n", nil
		}}
		groups, err := newTestClient(runner).ListGroups(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(groups), 0)
	})
}

func TestScriptPreamble(t *testing.T) {
	runner := &fakeRunner{}
	client := newTestClient(runner)

	_, err := client.GetMembers(context.Background(), "sales@corp.com")
	gt.NoError(t, err)

	scripts := runner.recorded()
	gt.Equal(t, len(scripts), 1)
	gt.S(t, scripts[0]).Contains("Import-Module ExchangeOnlineManagement")
	gt.S(t, scripts[0]).Contains("Connect-ExchangeOnline -AppId 'app-id' -CertificateThumbprint 'ABCDEF' -Organization 'contoso.onmicrosoft.com'")
	gt.S(t, scripts[0]).Contains("Get-DistributionGroupMember -Identity 'sales@corp.com'")
	gt.S(t, scripts[0]).Contains("Disconnect-ExchangeOnline")
}

func TestAddMember(t *testing.T) {
	ctx := context.Background()

	t.Run("adds directly when the directory knows the member", func(t *testing.T) {
		runner := &fakeRunner{}
		gt.NoError(t, newTestClient(runner).AddMember(ctx, "sales@corp.com", "alice@corp.com"))

		scripts := runner.recorded()
		gt.Equal(t, len(scripts), 1)
		gt.S(t, scripts[0]).Contains("Add-DistributionGroupMember -Identity 'sales@corp.com' -Member 'alice@corp.com' -Confirm:$false")
	})

	t.Run("rejects malformed addresses before touching the shell", func(t *testing.T) {
		runner := &fakeRunner{}
		err := newTestClient(runner).AddMember(ctx, "sales@corp.com", "bad-email")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidEmail))
		gt.Equal(t, len(runner.recorded()), 0)
	})

	t.Run("escalates to mail contact for unknown external address", func(t *testing.T) {
		runner := &fakeRunner{}
		runner.respond = func(script string) (string, error) {
			switch {
			case strings.Contains(script, "Add-DistributionGroupMember"):
				// Fail the first add only; the retry after contact creation succeeds
				if len(runner.recorded()) == 1 {
					return "", goerr.New("Couldn't find object \"guest@external.com\"")
				}
				return "", nil
			case strings.Contains(script, "Get-DistributionGroup "),
				strings.Contains(script, "Get-Recipient"),
				strings.Contains(script, "Get-MailContact"):
				return "", nil
			case strings.Contains(script, "New-MailContact"):
				return "", nil
			}
			return "", nil
		}

		gt.NoError(t, newTestClient(runner).AddMember(ctx, "sales@corp.com", "guest@external.com"))

		var commands []string
		for _, s := range runner.recorded() {
			commands = append(commands, s)
		}
		gt.Equal(t, len(commands), 6)
		gt.S(t, commands[0]).Contains("Add-DistributionGroupMember")
		gt.S(t, commands[1]).Contains("Get-DistributionGroup -Identity 'guest@external.com'")
		gt.S(t, commands[2]).Contains("Get-Recipient -Identity 'guest@external.com'")
		gt.S(t, commands[3]).Contains("Get-MailContact -Filter")
		gt.S(t, commands[4]).Contains("New-MailContact -Name 'guest@external.com' -ExternalEmailAddress 'guest@external.com' -Alias 'guest_at_external_com'")
		gt.S(t, commands[5]).Contains("Add-DistributionGroupMember")
	})

	t.Run("adds existing recipient directly without contact creation", func(t *testing.T) {
		runner := &fakeRunner{}
		runner.respond = func(script string) (string, error) {
			switch {
			case strings.Contains(script, "Add-DistributionGroupMember"):
				if len(runner.recorded()) == 1 {
					return "", goerr.New("the object couldn't be found")
				}
				return "", nil
			case strings.Contains(script, "Get-DistributionGroup "):
				return "", nil
			case strings.Contains(script, "Get-Recipient"):
				return "MailUser guest@partner.com", nil
			}
			return "", nil
		}

		gt.NoError(t, newTestClient(runner).AddMember(ctx, "sales@corp.com", "guest@partner.com"))

		commands := runner.recorded()
		gt.Equal(t, len(commands), 4)
		for _, s := range commands {
			gt.False(t, strings.Contains(s, "New-MailContact"))
		}
	})

	t.Run("unrelated failures propagate without escalation", func(t *testing.T) {
		runner := &fakeRunner{respond: func(script string) (string, error) {
			return "", goerr.New("access denied")
		}}
		err := newTestClient(runner).AddMember(ctx, "sales@corp.com", "alice@corp.com")
		gt.Error(t, err)
		gt.Equal(t, len(runner.recorded()), 1)
	})
}

func TestQuoteEscaping(t *testing.T) {
	runner := &fakeRunner{}
	email := types.EmailAddress("o'brien@corp.com")

	gt.NoError(t, newTestClient(runner).AddMember(context.Background(), "sales@corp.com", email))

	scripts := runner.recorded()
	gt.Equal(t, len(scripts), 1)
	gt.S(t, scripts[0]).Contains("-Member 'o''brien@corp.com'")
}

func TestUpdateGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("removes conflicting contact before SMTP change", func(t *testing.T) {
		runner := &fakeRunner{}
		runner.respond = func(script string) (string, error) {
			if strings.Contains(script, "Get-MailContact") {
				return "MailContact new-sales@corp.com", nil
			}
			return "", nil
		}

		update := model.GroupUpdate{PrimarySMTP: "new-sales@corp.com", DisplayName: "Sales"}
		gt.NoError(t, newTestClient(runner).UpdateGroup(ctx, "sales@corp.com", update))

		commands := runner.recorded()
		gt.Equal(t, len(commands), 3)
		gt.S(t, commands[0]).Contains("Get-MailContact -Identity 'new-sales@corp.com'")
		gt.S(t, commands[1]).Contains("Remove-MailContact -Identity 'new-sales@corp.com'")
		gt.S(t, commands[2]).Contains("Set-DistributionGroup -Identity 'sales@corp.com' -DisplayName 'Sales' -PrimarySmtpAddress 'new-sales@corp.com'")
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		runner := &fakeRunner{}
		gt.NoError(t, newTestClient(runner).UpdateGroup(ctx, "sales@corp.com", model.GroupUpdate{}))
		gt.Equal(t, len(runner.recorded()), 0)
	})
}

func TestCheckModuleInstalled(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		runner := &fakeRunner{respond: func(script string) (string, error) {
			gt.False(t, strings.Contains(script, "Connect-ExchangeOnline"))
			return "ExchangeOnlineManagement 3.4.0", nil
		}}
		gt.True(t, newTestClient(runner).CheckModuleInstalled(context.Background()))
	})

	t.Run("absent", func(t *testing.T) {
		runner := &fakeRunner{}
		gt.False(t, newTestClient(runner).CheckModuleInstalled(context.Background()))
	})
}

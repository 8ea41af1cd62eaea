package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/entraops/dlman/pkg/domain/interfaces"
	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/entraops/dlman/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Client drives Exchange Online through its PowerShell admin module. Each
// call runs one shell invocation: a connection preamble (certificate-based
// app-only auth, or interactive UPN login), one command whose output is
// serialized as compact JSON, and a disconnect.
type Client struct {
	runner       Runner
	appID        string
	certPrint    string
	organization string
	upn          string
}

// Option configures a Client
type Option func(*Client)

// WithRunner substitutes the shell runner (used by tests)
func WithRunner(r Runner) Option {
	return func(c *Client) {
		c.runner = r
	}
}

// WithUserPrincipalName enables interactive login as the given UPN when
// certificate auth is not configured
func WithUserPrincipalName(upn string) Option {
	return func(c *Client) {
		c.upn = upn
	}
}

// New creates an Exchange admin client. Certificate auth requires all of
// appID, certThumbprint and organization; with any of them missing the
// connection preamble falls back to interactive login.
func New(appID, certThumbprint, organization string, opts ...Option) *Client {
	c := &Client{
		runner:       NewRunner(""),
		appID:        appID,
		certPrint:    certThumbprint,
		organization: organization,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ interfaces.ExchangeClient = &Client{}

// HasCertAuth reports whether certificate-based app-only auth is configured
func (c *Client) HasCertAuth() bool {
	return c.appID != "" && c.certPrint != "" && c.organization != ""
}

func (c *Client) connectCommand() string {
	if c.HasCertAuth() {
		return fmt.Sprintf(
			"Connect-ExchangeOnline -AppId %s -CertificateThumbprint %s -Organization %s -ShowBanner:$false -ErrorAction Stop",
			Quote(c.appID), Quote(c.certPrint), Quote(c.organization),
		)
	}
	if c.upn != "" {
		return fmt.Sprintf("Connect-ExchangeOnline -UserPrincipalName %s -ShowBanner:$false -ErrorAction Stop", Quote(c.upn))
	}
	return "Connect-ExchangeOnline -ShowBanner:$false -ErrorAction Stop"
}

func (c *Client) script(command string) string {
	lines := []string{
		`$ErrorActionPreference = "Stop"`,
		`Import-Module ExchangeOnlineManagement -ErrorAction Stop`,
		c.connectCommand(),
		command,
		`if ($?) { Disconnect-ExchangeOnline -Confirm:$false -ErrorAction SilentlyContinue }`,
	}
	return strings.Join(lines, "\n")
}

func (c *Client) run(ctx context.Context, command string) (string, error) {
	return c.runner.Run(ctx, c.script(command))
}

// decodeRecords parses ConvertTo-Json output. A single record serializes
// as a bare object rather than a one-element array, and absent output
// means an empty result, not an error.
func decodeRecords[T any](out string) ([]T, error) {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}

	if strings.HasPrefix(out, "{") {
		var one T
		if err := json.Unmarshal([]byte(out), &one); err != nil {
			return nil, goerr.Wrap(err, "failed to parse shell record")
		}
		return []T{one}, nil
	}

	var many []T
	if err := json.Unmarshal([]byte(out), &many); err != nil {
		return nil, goerr.Wrap(err, "failed to parse shell records")
	}
	return many, nil
}

// ListGroups returns all distribution groups
func (c *Client) ListGroups(ctx context.Context) ([]model.ExchangeGroup, error) {
	out, err := c.run(ctx,
		"Get-DistributionGroup -ResultSize Unlimited | "+
			"Select-Object Identity, DisplayName, PrimarySmtpAddress | "+
			"ConvertTo-Json -Compress")
	if err != nil {
		return nil, err
	}
	return decodeRecords[model.ExchangeGroup](out)
}

// GetMembers returns members of a distribution group
func (c *Client) GetMembers(ctx context.Context, identity string) ([]model.ExchangeMember, error) {
	out, err := c.run(ctx, fmt.Sprintf(
		"Get-DistributionGroupMember -Identity %s -ResultSize Unlimited | "+
			"Select-Object Name, PrimarySmtpAddress | "+
			"ConvertTo-Json -Compress", Quote(identity)))
	if err != nil {
		return nil, err
	}
	return decodeRecords[model.ExchangeMember](out)
}

// AddMember adds a member to a distribution group. An address unknown to
// the directory escalates: existing group or recipient is added directly,
// anything else gets a mail contact materialized first.
func (c *Client) AddMember(ctx context.Context, identity string, email types.EmailAddress) error {
	if !email.Valid() {
		return goerr.Wrap(model.ErrInvalidEmail, "cannot add member", goerr.V("email", email))
	}

	err := c.addDirect(ctx, identity, email)
	if err == nil {
		return nil
	}
	if !isNotFoundRejection(err) {
		return err
	}

	ctxlog.From(ctx).Info("member not found in directory, escalating",
		"identity", identity, "email", email)
	return c.addExternal(ctx, identity, email)
}

func (c *Client) addDirect(ctx context.Context, identity string, email types.EmailAddress) error {
	_, err := c.run(ctx, fmt.Sprintf(
		"Add-DistributionGroupMember -Identity %s -Member %s -Confirm:$false",
		Quote(identity), Quote(email.String())))
	return err
}

// isNotFoundRejection matches the shell's "object not found" phrasing that
// triggers the external-contact escalation
func isNotFoundRejection(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "couldn't find object") || strings.Contains(msg, "couldn't be found")
}

func (c *Client) addExternal(ctx context.Context, identity string, email types.EmailAddress) error {
	logger := ctxlog.From(ctx)
	addr := email.String()

	// The target may itself be a distribution group
	if out, err := c.run(ctx, fmt.Sprintf(
		"Get-DistributionGroup -Identity %s -ErrorAction SilentlyContinue", Quote(addr))); err == nil && strings.TrimSpace(out) != "" {
		logger.Info("target is a distribution group, adding directly", "email", email)
		return c.addDirect(ctx, identity, email)
	}

	// Or any already-known recipient kind (mailbox, mail user, ...)
	if out, err := c.run(ctx, fmt.Sprintf(
		"Get-Recipient -Identity %s -ErrorAction SilentlyContinue", Quote(addr))); err == nil && strings.TrimSpace(out) != "" {
		logger.Info("target found as recipient, adding directly", "email", email)
		return c.addDirect(ctx, identity, email)
	}

	if err := c.ensureMailContact(ctx, email); err != nil {
		return err
	}

	return c.addDirect(ctx, identity, email)
}

// ensureMailContact materializes an external contact record for the email,
// skipping creation if one already exists for that address
func (c *Client) ensureMailContact(ctx context.Context, email types.EmailAddress) error {
	logger := ctxlog.From(ctx)
	addr := email.String()

	out, err := c.run(ctx, fmt.Sprintf(
		"Get-MailContact -Filter %s -ErrorAction SilentlyContinue",
		Quote(fmt.Sprintf("ExternalEmailAddress -eq '%s'", strings.ReplaceAll(addr, "'", "''")))))
	if err == nil && strings.TrimSpace(out) != "" {
		logger.Info("mail contact already exists", "email", email)
		return nil
	}

	_, err = c.run(ctx, fmt.Sprintf(
		"New-MailContact -Name %s -ExternalEmailAddress %s -Alias %s -ErrorAction Stop",
		Quote(addr), Quote(addr), Quote(aliasFromEmail(addr))))
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "already exists") {
			return nil
		}
		return goerr.Wrap(err, "failed to create mail contact", goerr.V("email", email))
	}

	logger.Info("created mail contact", "email", email)
	return nil
}

// RemoveMember removes a member from a distribution group
func (c *Client) RemoveMember(ctx context.Context, identity string, email types.EmailAddress) error {
	_, err := c.run(ctx, fmt.Sprintf(
		"Remove-DistributionGroupMember -Identity %s -Member %s -Confirm:$false",
		Quote(identity), Quote(email.String())))
	return err
}

// CreateGroup creates a new distribution group
func (c *Client) CreateGroup(ctx context.Context, name, alias string, smtp types.EmailAddress) error {
	if !smtp.Valid() {
		return goerr.Wrap(model.ErrInvalidEmail, "cannot create group", goerr.V("smtp", smtp))
	}
	_, err := c.run(ctx, fmt.Sprintf(
		"New-DistributionGroup -Name %s -Alias %s -PrimarySmtpAddress %s -Type 'Distribution' "+
			"-MemberDepartRestriction 'Closed' -MemberJoinRestriction 'Closed'",
		Quote(name), Quote(alias), Quote(smtp.String())))
	return err
}

// UpdateGroup applies a partial update. Changing the primary SMTP address
// first removes a conflicting mail contact bound to that address, since a
// prior external-contact materialization can collide with a promotion to
// full list status.
func (c *Client) UpdateGroup(ctx context.Context, identity string, update model.GroupUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	if update.PrimarySMTP != "" {
		if !update.PrimarySMTP.Valid() {
			return goerr.Wrap(model.ErrInvalidEmail, "cannot update group", goerr.V("smtp", update.PrimarySMTP))
		}
		c.removeConflictingContact(ctx, update.PrimarySMTP)
	}

	var params []string
	if update.DisplayName != "" {
		params = append(params, "-DisplayName "+Quote(update.DisplayName))
	}
	if update.PrimarySMTP != "" {
		params = append(params, "-PrimarySmtpAddress "+Quote(update.PrimarySMTP.String()))
	}
	if update.Alias != "" {
		params = append(params, "-Alias "+Quote(update.Alias))
	}

	_, err := c.run(ctx, fmt.Sprintf(
		"Set-DistributionGroup -Identity %s %s", Quote(identity), strings.Join(params, " ")))
	return err
}

func (c *Client) removeConflictingContact(ctx context.Context, smtp types.EmailAddress) {
	logger := ctxlog.From(ctx)
	addr := smtp.String()

	out, err := c.run(ctx, fmt.Sprintf(
		"Get-MailContact -Identity %s -ErrorAction SilentlyContinue", Quote(addr)))
	if err != nil || strings.TrimSpace(out) == "" {
		return
	}

	logger.Info("removing conflicting mail contact", "email", smtp)
	if _, err := c.run(ctx, fmt.Sprintf(
		"Remove-MailContact -Identity %s -Confirm:$false", Quote(addr))); err != nil {
		logger.Warn("failed to remove conflicting mail contact", "email", smtp, "error", err)
	}
}

// DeleteGroup deletes a distribution group
func (c *Client) DeleteGroup(ctx context.Context, identity string) error {
	_, err := c.run(ctx, fmt.Sprintf(
		"Remove-DistributionGroup -Identity %s -Confirm:$false", Quote(identity)))
	return err
}

// CheckModuleInstalled reports whether the ExchangeOnlineManagement module
// is present. It runs without a connection preamble.
func (c *Client) CheckModuleInstalled(ctx context.Context) bool {
	out, err := c.runner.Run(ctx,
		"Get-Module -ListAvailable ExchangeOnlineManagement | Select-Object -First 1")
	return err == nil && strings.TrimSpace(out) != ""
}

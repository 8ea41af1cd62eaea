package exchange

import "strings"

// Quote renders s as a single-quoted PowerShell string literal. Embedded
// single quotes are doubled, which is the only escape that matters inside
// single quotes; variable expansion and subexpressions are inert there.
// Every user-supplied value embedded in a shell command goes through this.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// aliasFromEmail derives a mail alias from an SMTP address, replacing the
// characters Exchange rejects and capping the length at 64
func aliasFromEmail(email string) string {
	alias := strings.ReplaceAll(email, "@", "_at_")
	alias = strings.ReplaceAll(alias, ".", "_")
	if len(alias) > 64 {
		alias = alias[:64]
	}
	return alias
}

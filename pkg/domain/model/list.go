package model

import (
	"log/slog"

	"github.com/entraops/dlman/pkg/domain/types"
)

// List represents a mail-enabled distribution group.
//
// The SMTP address is globally unique among lists and is the join key used
// when the Exchange backend only knows the SMTP identity.
type List struct {
	ID          types.ListID       `json:"id"`
	DisplayName string             `json:"displayName"`
	Mail        types.EmailAddress `json:"mail"`
	Description string             `json:"description,omitempty"`
	MemberCount int                `json:"memberCount,omitempty"`
}

// LogValue returns structured log value
func (l *List) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", l.ID.Short()),
		slog.String("displayName", l.DisplayName),
		slog.String("mail", l.Mail.String()),
	)
}

// ListUpdate describes a partial update of a list. Nil fields are left
// unchanged.
type ListUpdate struct {
	DisplayName  *string
	Description  *string
	MailNickname *string
}

// IsEmpty reports whether the update changes nothing
func (u ListUpdate) IsEmpty() bool {
	return u.DisplayName == nil && u.Description == nil && u.MailNickname == nil
}

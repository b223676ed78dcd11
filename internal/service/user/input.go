package user

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/canvas-backend/internal/domain"
)

// UpsertUserInput holds the client-writable fields of a user.
// A nil field was absent from the request and leaves the stored value alone,
// except Locale, which falls back to the default locale when absent.
type UpsertUserInput struct {
	Name     *string
	Email    *string
	Username *string
	Password *string
	Summary  *string
	Avatar   *string
	DarkMode *bool
	Digest   *bool
	Locale   *string
	Role     *int
}

// Normalize returns a copy with text fields trimmed and the email lower-cased.
// A blank password counts as absent.
func (i UpsertUserInput) Normalize() UpsertUserInput {
	out := i
	out.Name = mapStr(i.Name, domain.NormalizeName)
	out.Email = mapStr(i.Email, domain.NormalizeEmail)
	out.Username = mapStr(i.Username, domain.NormalizeKey)
	out.Summary = mapStr(i.Summary, strings.TrimSpace)
	out.Avatar = mapStr(i.Avatar, strings.TrimSpace)
	if i.Password != nil && strings.TrimSpace(*i.Password) == "" {
		out.Password = nil
	}
	return out
}

// roleValue renders the role for validation.
func (i UpsertUserInput) roleValue() *string {
	if i.Role == nil {
		return nil
	}
	s := strconv.Itoa(*i.Role)
	return &s
}

func mapStr(s *string, fn func(string) string) *string {
	if s == nil {
		return nil
	}
	v := fn(*s)
	return &v
}

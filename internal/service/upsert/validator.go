package upsert

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/canvas-backend/internal/domain"
)

// Translator renders catalog messages.
type Translator interface {
	Translate(locale, key string, replacements ...string) string
}

// Rule is a single check on a present field value.
type Rule struct {
	Name string
	// Params are name/value pairs substituted into the message.
	Params []string
	Check  func(ctx context.Context, value string) (bool, error)
}

// Field is one payload field under validation. A nil Value means the
// field was absent from the payload.
type Field struct {
	Name     string
	Value    *string
	Required bool
	Rules    []Rule
}

// Validator checks payload fields and collects localized failures.
// For each field the required check runs first, then its rules in order;
// the first failing rule ends that field.
type Validator struct {
	messages Translator
}

// NewValidator creates a Validator rendering messages through t.
func NewValidator(t Translator) *Validator {
	return &Validator{messages: t}
}

// Validate returns a *domain.ValidationError listing every failed field,
// nil when all fields pass, or the error of a failing rule check.
func (v *Validator) Validate(ctx context.Context, locale string, fields []Field) error {
	var errs []domain.FieldError

	for _, f := range fields {
		if f.Value == nil || strings.TrimSpace(*f.Value) == "" {
			if f.Required {
				errs = append(errs, v.fieldError(locale, f.Name, domain.RuleRequired))
			}
			continue
		}

		for _, r := range f.Rules {
			ok, err := r.Check(ctx, *f.Value)
			if err != nil {
				return fmt.Errorf("validate %s %s: %w", f.Name, r.Name, err)
			}
			if !ok {
				errs = append(errs, v.fieldError(locale, f.Name, r.Name, r.Params...))
				break
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Reject builds a single-field ValidationError for rule.
func (v *Validator) Reject(locale, field, rule string, params ...string) *domain.ValidationError {
	return domain.NewValidationErrors([]domain.FieldError{v.fieldError(locale, field, rule, params...)})
}

func (v *Validator) fieldError(locale, field, rule string, params ...string) domain.FieldError {
	attr := v.messages.Translate(locale, "attributes."+field)
	if attr == "attributes."+field {
		attr = strings.ReplaceAll(field, "_", " ")
	}
	repl := append([]string{"attribute", attr}, params...)
	return domain.FieldError{
		Field:   field,
		Rule:    rule,
		Message: v.messages.Translate(locale, "validation."+rule, repl...),
	}
}

// ---------------------------------------------------------------------------
// Rules
// ---------------------------------------------------------------------------

var alphaDashRe = regexp.MustCompile(`^[\pL\pM\pN_-]+$`)

// AlphaDash accepts letters, marks, digits, dashes and underscores.
func AlphaDash() Rule {
	return Rule{
		Name: domain.RuleAlphaDash,
		Check: func(_ context.Context, v string) (bool, error) {
			return alphaDashRe.MatchString(v), nil
		},
	}
}

// Email accepts a bare RFC 5322 address without a display name.
func Email() Rule {
	return Rule{
		Name: domain.RuleEmail,
		Check: func(_ context.Context, v string) (bool, error) {
			addr, err := mail.ParseAddress(v)
			if err != nil {
				return false, nil
			}
			return addr.Address == v && strings.Contains(addr.Address, "@"), nil
		},
	}
}

// Min accepts values at least n characters long.
func Min(n int) Rule {
	return Rule{
		Name:   domain.RuleMin,
		Params: []string{"min", strconv.Itoa(n)},
		Check: func(_ context.Context, v string) (bool, error) {
			return utf8.RuneCountInString(v) >= n, nil
		},
	}
}

// In accepts one of allowed.
func In(allowed ...string) Rule {
	return Rule{
		Name: domain.RuleIn,
		Check: func(_ context.Context, v string) (bool, error) {
			return slices.Contains(allowed, v), nil
		},
	}
}

// Unique accepts values for which taken reports false.
func Unique(taken func(ctx context.Context, value string) (bool, error)) Rule {
	return Rule{
		Name: domain.RuleUnique,
		Check: func(ctx context.Context, v string) (bool, error) {
			t, err := taken(ctx, v)
			if err != nil {
				return false, err
			}
			return !t, nil
		},
	}
}

// UniqueKey enforces natural-key uniqueness among live records in scope,
// ignoring the record with excludeID so a record may keep its own key.
func UniqueKey[R Record](store Store[R], scope Scope, excludeID uuid.UUID) Rule {
	return Unique(func(ctx context.Context, key string) (bool, error) {
		return store.KeyTaken(ctx, scope, key, excludeID)
	})
}

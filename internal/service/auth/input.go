package auth

import "github.com/heartmarshall/canvas-backend/internal/domain"

// maxPasswordBytes is the longest input bcrypt will hash.
const maxPasswordBytes = 72

// LoginPasswordInput holds parameters for email + password login.
type LoginPasswordInput struct {
	Email    string
	Password string
}

// Normalize prepares the email the same way user upserts store it.
func (i *LoginPasswordInput) Normalize() {
	i.Email = domain.NormalizeEmail(i.Email)
}

// Validate validates the login input.
func (i LoginPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Rule: domain.RuleRequired, Message: "required"})
	} else if len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Rule: domain.RuleRequired, Message: "required"})
	} else if len(i.Password) > maxPasswordBytes {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

package upsert

import "fmt"

// Hasher turns a plaintext secret into a one-way digest.
type Hasher interface {
	Hash(plaintext string) (string, error)
}

// ResolveLocale returns requested verbatim when it names a supported locale
// and fallback otherwise, including when requested is absent.
func ResolveLocale(requested *string, supported func(string) bool, fallback string) string {
	if requested == nil {
		return fallback
	}
	if *requested == "" || !supported(*requested) {
		return fallback
	}
	return *requested
}

// ApplySecret returns the digest to store. An absent plaintext keeps
// current untouched; a present one is hashed.
func ApplySecret(current, plaintext *string, h Hasher) (*string, error) {
	if plaintext == nil {
		return current, nil
	}
	digest, err := h.Hash(*plaintext)
	if err != nil {
		return nil, fmt.Errorf("apply secret: %w", err)
	}
	return &digest, nil
}

// Assign overwrites dst with *src when src is present.
func Assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

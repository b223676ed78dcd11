package topic

import "github.com/heartmarshall/canvas-backend/internal/domain"

// UpsertTopicInput holds the client-writable fields of a topic.
// A nil field was absent from the request.
type UpsertTopicInput struct {
	Name *string
	Slug *string
}

// Normalize returns a copy with the name trimmed and the slug in NFC form.
func (i UpsertTopicInput) Normalize() UpsertTopicInput {
	out := i
	if i.Name != nil {
		name := domain.NormalizeName(*i.Name)
		out.Name = &name
	}
	if i.Slug != nil {
		slug := domain.NormalizeKey(*i.Slug)
		out.Slug = &slug
	}
	return out
}

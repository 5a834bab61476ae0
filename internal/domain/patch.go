package domain

import (
	"sort"
	"strings"
)

// Patchable field names. Keys are matched case-insensitively.
const (
	PatchFieldContent = "content"
	PatchFieldAuthor  = "author"
)

// QuotePatch is a partial update. Nil fields are left untouched.
type QuotePatch struct {
	Content *string
	Author  *string
}

// ParseQuotePatch converts a decoded JSON object into a QuotePatch.
// Every key is checked before anything is returned, so a request carrying
// one unknown key is rejected as a whole.
func ParseQuotePatch(fields map[string]any) (QuotePatch, error) {
	var patch QuotePatch

	// Sorted so the reported key is stable when several are invalid.
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field := strings.ToLower(key)
		if field != PatchFieldContent && field != PatchFieldAuthor {
			return QuotePatch{}, NewValidationErrorWithValue(key, "Invalid field: "+key, key)
		}

		value, ok := fields[key].(string)
		if !ok {
			return QuotePatch{}, NewValidationErrorWithValue(key, "must be a string", fields[key])
		}

		switch field {
		case PatchFieldContent:
			if err := validateContent(value); err != nil {
				return QuotePatch{}, err
			}
			patch.Content = &value
		case PatchFieldAuthor:
			patch.Author = &value
		}
	}

	return patch, nil
}

// IsEmpty reports whether the patch changes nothing.
func (p QuotePatch) IsEmpty() bool {
	return p.Content == nil && p.Author == nil
}

// Apply writes the set fields onto q.
func (p QuotePatch) Apply(q *Quote) {
	if p.Content != nil {
		q.Content = *p.Content
	}

	if p.Author != nil {
		q.Author = *p.Author
	}
}

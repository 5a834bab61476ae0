package domain

import (
	"strconv"
	"strings"
)

// Quote is a quotation with its author, like counter and tags.
type Quote struct {
	// ID is assigned by the store on creation.
	ID int64

	// Content is the quoted text. Required.
	Content string

	// Author is optional.
	Author string

	// Likes only grows through Like; a full replace may set it directly.
	Likes int

	// TagAssignments links the quote to its tags.
	TagAssignments []TagAssignment
}

// Tag is a named label attachable to quotes.
type Tag struct {
	ID   int64
	Name string
}

// TagAssignment is the join between one quote and one tag.
type TagAssignment struct {
	QuoteID int64
	TagID   int64
	Tag     Tag
}

// NewQuote holds the caller-supplied fields of a quote to create.
type NewQuote struct {
	Content string
	Author  string
}

// Validate checks the fields required to create a quote.
func (n NewQuote) Validate() error {
	return validateContent(n.Content)
}

// Quote returns the quote to persist. Likes always starts at zero.
func (n NewQuote) Quote() *Quote {
	return &Quote{
		Content: n.Content,
		Author:  n.Author,
		Likes:   0,
	}
}

// Validate checks a quote submitted as a full replacement.
func (q *Quote) Validate() error {
	if err := validateContent(q.Content); err != nil {
		return err
	}

	if q.Likes < 0 {
		return NewValidationErrorWithValue("likes", "must not be negative", q.Likes)
	}

	return nil
}

// HasTag reports whether the quote carries the tag with the given id.
func (q *Quote) HasTag(tagID int64) bool {
	for _, ta := range q.TagAssignments {
		if ta.TagID == tagID {
			return true
		}
	}

	return false
}

// HasTagNamed reports whether the quote carries a tag with the given name,
// compared case-insensitively.
func (q *Quote) HasTagNamed(name string) bool {
	for _, ta := range q.TagAssignments {
		if strings.EqualFold(ta.Tag.Name, name) {
			return true
		}
	}

	return false
}

// TagNames returns the names of the quote's tags in assignment order.
func (q *Quote) TagNames() []string {
	names := make([]string, 0, len(q.TagAssignments))
	for _, ta := range q.TagAssignments {
		names = append(names, ta.Tag.Name)
	}

	return names
}

// NormalizeTagName trims a user-supplied tag name and rejects empty ones.
func NormalizeTagName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", NewValidationError("name", "tag name is required")
	}

	return trimmed, nil
}

// FormatID renders an entity id for messages and URLs.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return NewValidationError("content", "content is required")
	}

	return nil
}

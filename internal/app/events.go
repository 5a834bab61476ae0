package app

import "github.com/jsamuelsen/quotebook/internal/domain"

// Event routing keys.
const (
	EventQuoteCreated = "quote.created"
	EventQuoteUpdated = "quote.updated"
	EventQuoteLiked   = "quote.liked"
	EventTagCreated   = "tag.created"
	EventTagAttached  = "tag.attached"
	EventTagDetached  = "tag.detached"
)

// QuoteEvent reports a change to a quote's own fields.
type QuoteEvent struct {
	Type    string `json:"-"`
	QuoteID int64  `json:"quoteId"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Likes   int    `json:"likes"`
}

func newQuoteEvent(eventType string, q *domain.Quote) QuoteEvent {
	return QuoteEvent{
		Type:    eventType,
		QuoteID: q.ID,
		Content: q.Content,
		Author:  q.Author,
		Likes:   q.Likes,
	}
}

func (e QuoteEvent) EventType() string { return e.Type }
func (e QuoteEvent) Payload() any      { return e }

// TagEvent reports a tag being created, attached or detached.
// QuoteID is zero for tag.created.
type TagEvent struct {
	Type    string `json:"-"`
	QuoteID int64  `json:"quoteId,omitempty"`
	TagID   int64  `json:"tagId"`
	Name    string `json:"name,omitempty"`
}

func (e TagEvent) EventType() string { return e.Type }
func (e TagEvent) Payload() any      { return e }

package ports

import (
	"context"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// EventPublisher announces quote and tag changes to other systems.
// Publishing is best effort: callers log failures and carry on.
type EventPublisher interface {
	// Publish returns domain.ErrUnavailable if the broker is unreachable.
	Publish(ctx context.Context, event Event) error
}

// Event is a domain event that can be published.
type Event interface {
	// EventType is the routing key, e.g. "quote.liked".
	EventType() string

	// Payload is serialized as the message body.
	Payload() any
}

// Cache stores serialized values by key.
type Cache interface {
	// Get returns domain.ErrNotFound on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value. A ttlSeconds of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error

	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
}

// QuotesAPI is the remote quotes service as seen by clients.
// Errors are domain errors translated from the HTTP response.
type QuotesAPI interface {
	ListQuotes(ctx context.Context, page, pageSize int) ([]domain.Quote, error)
	GetQuote(ctx context.Context, id int64) (*domain.Quote, error)
	TopQuotes(ctx context.Context, count int) ([]domain.Quote, error)
	QuotesByTag(ctx context.Context, tagName string) ([]domain.Quote, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
	CreateQuote(ctx context.Context, q domain.NewQuote) (*domain.Quote, error)
	ReplaceQuote(ctx context.Context, q *domain.Quote) error
	PatchQuote(ctx context.Context, id int64, patch domain.QuotePatch) error
	LikeQuote(ctx context.Context, id int64) (*domain.Quote, error)
	AttachTag(ctx context.Context, quoteID int64, tagName string) (*domain.Quote, error)
	DetachTag(ctx context.Context, quoteID, tagID int64) (*domain.Quote, error)
}

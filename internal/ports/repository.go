// Package ports defines the interfaces the application layer depends on.
// Adapters implement them: the gorm store, the redis cache, the amqp
// publisher and the HTTP client for the quotes API.
//
// Methods take a context first and return domain types and domain errors
// (domain.ErrNotFound, domain.ErrConflict, ...), never driver errors.
package ports

import (
	"context"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// AllRows is the page size that disables pagination.
const AllRows = -1

// Page selects a window of an ordered listing. Number is 1-based.
// A Size of AllRows returns every row regardless of Number.
type Page struct {
	Number int
	Size   int
}

// Unpaged reports whether the page covers every row.
func (p Page) Unpaged() bool {
	return p.Size == AllRows
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	if p.Unpaged() || p.Number < 1 {
		return 0
	}

	return (p.Number - 1) * p.Size
}

// QuoteRepository persists quotes and their tag assignments.
// Every returned quote has its assignments and their tags loaded.
type QuoteRepository interface {
	// List returns quotes ordered by id.
	List(ctx context.Context, page Page) ([]domain.Quote, error)

	// Get returns domain.ErrNotFound when the id is unknown.
	Get(ctx context.Context, id int64) (*domain.Quote, error)

	// Exists reports whether a quote with the id is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// Top returns up to count quotes ordered by likes descending.
	Top(ctx context.Context, count int) ([]domain.Quote, error)

	// ListByTagName returns every quote carrying a tag whose name matches
	// case-insensitively.
	ListByTagName(ctx context.Context, name string) ([]domain.Quote, error)

	// Create stores q and sets its ID.
	Create(ctx context.Context, q *domain.Quote) error

	// Update overwrites content, author and likes of an existing quote.
	Update(ctx context.Context, q *domain.Quote) error

	// IncrementLikes adds one like in a single statement.
	// Returns domain.ErrNotFound when the id is unknown.
	IncrementLikes(ctx context.Context, id int64) error

	// AddTagAssignment links a quote and a tag.
	// Returns domain.ErrConflict when the pair already exists.
	AddTagAssignment(ctx context.Context, quoteID, tagID int64) error

	// RemoveTagAssignment deletes the pair and reports whether it existed.
	RemoveTagAssignment(ctx context.Context, quoteID, tagID int64) (bool, error)
}

// TagRepository persists tags. Names are not unique at the storage level.
type TagRepository interface {
	// List returns every tag ordered by id.
	List(ctx context.Context) ([]domain.Tag, error)

	// FindByName matches case-insensitively and returns the lowest id on
	// duplicates. Returns domain.ErrNotFound when nothing matches.
	FindByName(ctx context.Context, name string) (*domain.Tag, error)

	// Create stores t and sets its ID.
	Create(ctx context.Context, t *domain.Tag) error
}

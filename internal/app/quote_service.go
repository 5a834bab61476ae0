// Package app contains the application services behind the HTTP API.
package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

const tagsCacheKey = "tags:all"

// Duplicate attach and missing detach messages are part of the API contract.
const (
	msgTagAlreadyAssigned  = "Tag already assigned to quote."
	msgTagAssignmentAbsent = "Tag assignment not found."
)

// QuoteService implements the quote and tag use cases on top of the
// repositories. Cache and Events are optional.
type QuoteService struct {
	quotes   ports.QuoteRepository
	tags     ports.TagRepository
	cache    ports.Cache
	events   ports.EventPublisher
	tagTTL   int
	executor *Executor
	logger   *slog.Logger
}

// QuoteServiceConfig contains the service dependencies.
type QuoteServiceConfig struct {
	Quotes ports.QuoteRepository
	Tags   ports.TagRepository

	// Cache holds the tag list when set.
	Cache ports.Cache

	// TagCacheTTLSeconds is the lifetime of the cached tag list.
	TagCacheTTLSeconds int

	// Events receives change notifications when set.
	Events ports.EventPublisher

	Logger *slog.Logger
}

// NewQuoteService creates the service. It panics without repositories.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Quotes == nil || cfg.Tags == nil {
		panic("app: quote service requires quote and tag repositories")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		quotes:   cfg.Quotes,
		tags:     cfg.Tags,
		cache:    cfg.Cache,
		events:   cfg.Events,
		tagTTL:   cfg.TagCacheTTLSeconds,
		executor: NewExecutor(logger),
		logger:   logger,
	}
}

// List returns one page of quotes ordered by id. A pageSize of
// ports.AllRows returns every quote.
func (s *QuoteService) List(ctx context.Context, page, pageSize int) (quotes []domain.Quote, err error) {
	defer func() { observe("list", err) }()

	if page < 1 {
		return nil, domain.NewValidationErrorWithValue("page", "must be at least 1", page)
	}

	if pageSize == 0 || pageSize < ports.AllRows {
		return nil, domain.NewValidationErrorWithValue("pageSize", "must be positive or -1 for all", pageSize)
	}

	// No store can hold rows past an offset that overflows int.
	if pageSize != ports.AllRows && page-1 > math.MaxInt/pageSize {
		return []domain.Quote{}, nil
	}

	return s.quotes.List(ctx, ports.Page{Number: page, Size: pageSize})
}

// Get returns one quote with its tags.
func (s *QuoteService) Get(ctx context.Context, id int64) (q *domain.Quote, err error) {
	defer func() { observe("get", err) }()

	return s.quotes.Get(ctx, id)
}

// Top returns the count most liked quotes.
func (s *QuoteService) Top(ctx context.Context, count int) (quotes []domain.Quote, err error) {
	defer func() { observe("top", err) }()

	if count < 0 {
		return nil, domain.NewValidationErrorWithValue("count", "must not be negative", count)
	}

	return s.quotes.Top(ctx, count)
}

// ByTag returns every quote carrying a tag named name, ignoring case.
func (s *QuoteService) ByTag(ctx context.Context, name string) (quotes []domain.Quote, err error) {
	defer func() { observe("by_tag", err) }()

	return s.quotes.ListByTagName(ctx, name)
}

// ListTags returns all tags ordered by id, served from the cache when one
// is configured.
func (s *QuoteService) ListTags(ctx context.Context) (tags []domain.Tag, err error) {
	defer func() { observe("list_tags", err) }()

	if cached, ok := s.cachedTags(ctx); ok {
		return cached, nil
	}

	tags, err = s.tags.List(ctx)
	if err != nil {
		return nil, err
	}

	s.storeTags(ctx, tags)

	return tags, nil
}

// Create stores a new quote with zero likes.
func (s *QuoteService) Create(ctx context.Context, input domain.NewQuote) (q *domain.Quote, err error) {
	defer func() { observe("create", err) }()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	q = input.Quote()
	if err := s.quotes.Create(ctx, q); err != nil {
		s.logger.ErrorContext(ctx, "failed to create quote", slog.Any("error", err))
		return nil, err
	}

	s.logger.InfoContext(ctx, "quote created", slog.Int64("quote_id", q.ID))
	s.publish(ctx, newQuoteEvent(EventQuoteCreated, q))

	return q, nil
}

// Replace overwrites content, author and likes of quote id.
// The quote must exist before anything is written.
func (s *QuoteService) Replace(ctx context.Context, id int64, q *domain.Quote) (err error) {
	defer func() { observe("replace", err) }()

	if q.ID != id {
		return domain.NewValidationErrorWithValue("quoteId", "does not match the path id", q.ID)
	}

	_, err = Execute(ctx, s.executor, Operation[*domain.Quote, struct{}, struct{}, struct{}]{
		Name: "replace_quote",
		Validate: func(ctx context.Context, q *domain.Quote) error {
			if err := q.Validate(); err != nil {
				return err
			}

			return s.requireQuote(ctx, q.ID)
		},
		Perform: func(ctx context.Context, q *domain.Quote) (struct{}, error) {
			return struct{}{}, s.quotes.Update(ctx, q)
		},
		Archive: func(ctx context.Context, q *domain.Quote, _ struct{}) error {
			s.publish(ctx, newQuoteEvent(EventQuoteUpdated, q))
			return nil
		},
	}, q)

	return err
}

// Patch applies the set fields of patch to quote id. An empty patch only
// checks that the quote exists.
func (s *QuoteService) Patch(ctx context.Context, id int64, patch domain.QuotePatch) (err error) {
	defer func() { observe("patch", err) }()

	q, err := s.quotes.Get(ctx, id)
	if err != nil {
		return err
	}

	if patch.IsEmpty() {
		return nil
	}

	patch.Apply(q)
	if err := s.quotes.Update(ctx, q); err != nil {
		return err
	}

	s.publish(ctx, newQuoteEvent(EventQuoteUpdated, q))

	return nil
}

// Like adds one like and returns the updated quote.
func (s *QuoteService) Like(ctx context.Context, id int64) (q *domain.Quote, err error) {
	defer func() { observe("like", err) }()

	if err := s.quotes.IncrementLikes(ctx, id); err != nil {
		return nil, err
	}

	q, err = s.quotes.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, newQuoteEvent(EventQuoteLiked, q))

	return q, nil
}

type attachInput struct {
	quoteID int64
	name    string
}

type attachResult struct {
	quote *domain.Quote
	tag   *domain.Tag
}

// AttachTag links the tag named name to the quote, creating the tag when
// no case-insensitive match exists, and returns the re-read quote.
func (s *QuoteService) AttachTag(ctx context.Context, quoteID int64, name string) (q *domain.Quote, err error) {
	defer func() { observe("attach_tag", err) }()

	return Execute(ctx, s.executor, Operation[attachInput, *domain.Tag, attachResult, *domain.Quote]{
		Name: "attach_tag",
		Validate: func(ctx context.Context, in attachInput) error {
			if err := s.requireQuote(ctx, in.quoteID); err != nil {
				return err
			}

			_, err := domain.NormalizeTagName(in.name)

			return err
		},
		Perform: func(ctx context.Context, in attachInput) (*domain.Tag, error) {
			name, _ := domain.NormalizeTagName(in.name)

			tag, err := s.findOrCreateTag(ctx, name)
			if err != nil {
				return nil, err
			}

			current, err := s.quotes.Get(ctx, in.quoteID)
			if err != nil {
				return nil, err
			}

			if current.HasTag(tag.ID) {
				return nil, domain.NewConflictError("", msgTagAlreadyAssigned)
			}

			if err := s.quotes.AddTagAssignment(ctx, in.quoteID, tag.ID); err != nil {
				if domain.IsConflict(err) {
					return nil, domain.NewConflictError("", msgTagAlreadyAssigned)
				}

				return nil, err
			}

			return tag, nil
		},
		Verify: func(ctx context.Context, in attachInput, tag *domain.Tag) (attachResult, error) {
			updated, err := s.quotes.Get(ctx, in.quoteID)
			if err != nil {
				return attachResult{}, err
			}

			if !updated.HasTag(tag.ID) {
				return attachResult{}, domain.NewNotFoundError(domain.EntityTagAssignment, domain.FormatID(tag.ID))
			}

			return attachResult{quote: updated, tag: tag}, nil
		},
		Archive: func(ctx context.Context, in attachInput, res attachResult) error {
			s.logger.InfoContext(ctx, "tag attached",
				slog.Int64("quote_id", in.quoteID),
				slog.Int64("tag_id", res.tag.ID),
			)
			s.publish(ctx, TagEvent{Type: EventTagAttached, QuoteID: in.quoteID, TagID: res.tag.ID, Name: res.tag.Name})

			return nil
		},
		Respond: func(_ context.Context, _ attachInput, res attachResult) (*domain.Quote, error) {
			return res.quote, nil
		},
	}, attachInput{quoteID: quoteID, name: name})
}

// DetachTag removes one assignment and returns the quote. The tag itself
// is kept.
func (s *QuoteService) DetachTag(ctx context.Context, quoteID, tagID int64) (q *domain.Quote, err error) {
	defer func() { observe("detach_tag", err) }()

	if err := s.requireQuote(ctx, quoteID); err != nil {
		return nil, err
	}

	removed, err := s.quotes.RemoveTagAssignment(ctx, quoteID, tagID)
	if err != nil {
		return nil, err
	}

	if !removed {
		return nil, domain.NewNotFoundErrorWithMessage(
			domain.EntityTagAssignment,
			domain.FormatID(quoteID)+"/"+domain.FormatID(tagID),
			msgTagAssignmentAbsent,
		)
	}

	s.logger.InfoContext(ctx, "tag detached",
		slog.Int64("quote_id", quoteID),
		slog.Int64("tag_id", tagID),
	)
	s.publish(ctx, TagEvent{Type: EventTagDetached, QuoteID: quoteID, TagID: tagID})

	return s.quotes.Get(ctx, quoteID)
}

func (s *QuoteService) requireQuote(ctx context.Context, id int64) error {
	exists, err := s.quotes.Exists(ctx, id)
	if err != nil {
		return err
	}

	if !exists {
		return domain.QuoteNotFound(id)
	}

	return nil
}

// findOrCreateTag matches name case-insensitively. Two concurrent first
// attaches of a new name can each create a tag.
func (s *QuoteService) findOrCreateTag(ctx context.Context, name string) (*domain.Tag, error) {
	tag, err := s.tags.FindByName(ctx, name)
	if err == nil {
		return tag, nil
	}

	if !domain.IsNotFound(err) {
		return nil, err
	}

	tag = &domain.Tag{Name: name}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "tag created",
		slog.Int64("tag_id", tag.ID),
		slog.String("name", tag.Name),
	)
	s.invalidateTags(ctx)
	s.publish(ctx, TagEvent{Type: EventTagCreated, TagID: tag.ID, Name: tag.Name})

	return tag, nil
}

// publish sends event when a publisher is configured. Failures are logged
// and never fail the request.
func (s *QuoteService) publish(ctx context.Context, event ports.Event) {
	if s.events == nil {
		return
	}

	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "event not published",
			slog.String("event", event.EventType()),
			slog.Any("error", err),
		)
	}
}

func (s *QuoteService) cachedTags(ctx context.Context) ([]domain.Tag, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, tagsCacheKey)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.WarnContext(ctx, "tag cache read failed", slog.Any("error", err))
		}

		return nil, false
	}

	var tags []domain.Tag
	if err := json.Unmarshal(raw, &tags); err != nil {
		s.logger.WarnContext(ctx, "discarding corrupt tag cache entry", slog.Any("error", err))
		return nil, false
	}

	return tags, true
}

func (s *QuoteService) storeTags(ctx context.Context, tags []domain.Tag) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(tags)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, tagsCacheKey, raw, s.tagTTL); err != nil {
		s.logger.WarnContext(ctx, "tag cache write failed", slog.Any("error", err))
	}
}

func (s *QuoteService) invalidateTags(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, tagsCacheKey); err != nil {
		s.logger.WarnContext(ctx, "tag cache invalidation failed", slog.Any("error", err))
	}
}

// Package view holds the state of an interactive quotes client: which page
// or filter is shown, the add and edit forms and tag suggestions. Actions
// fetch through ports.QuotesAPI and only commit new state once every call
// they depend on succeeded.
package view

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

// Fixed sizes used by the quotes client.
const (
	PageSize = 10
	TopCount = 10
)

// Draft is the content of the add form. Tags is the raw comma separated
// input.
type Draft struct {
	Content string
	Author  string
	Tags    string
}

// Edit is the content of the edit form.
type Edit struct {
	Quote domain.Quote
	Tags  string
}

// State is a snapshot of everything the client shows.
type State struct {
	Page        int
	Filter      string
	FilterInput string
	TopMode     bool

	AddOpen bool
	Draft   Draft

	EditOpen bool
	Edit     Edit

	Suggestions []string
	Quotes      []domain.Quote
}

// ShowPagination reports whether page controls apply to the current view.
func (s State) ShowPagination() bool {
	return !s.TopMode && s.Filter == ""
}

// CanGoBack reports whether the previous page control is enabled.
func (s State) CanGoBack() bool {
	return s.ShowPagination() && s.Page > 1
}

// Controller drives State. All methods are safe for concurrent use; actions
// run one at a time.
type Controller struct {
	api    ports.QuotesAPI
	logger *slog.Logger

	mu    sync.Mutex
	state State
}

// NewController starts on page 1 with nothing loaded. Call Refresh to load
// the first page.
func NewController(api ports.QuotesAPI, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		api:    api,
		logger: logger.With(slog.String("component", "view")),
		state:  State{Page: 1},
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.clone()
}

// Refresh re-fetches the active view.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.refetch(ctx, "refresh", func(*State) {})
}

// NextPage moves forward one page. Ignored outside the paged list.
func (c *Controller) NextPage(ctx context.Context) error {
	c.mu.Lock()
	paged := c.state.ShowPagination()
	c.mu.Unlock()

	if !paged {
		return nil
	}

	return c.refetch(ctx, "next page", func(s *State) { s.Page++ })
}

// PrevPage moves back one page. Ignored on page 1.
func (c *Controller) PrevPage(ctx context.Context) error {
	c.mu.Lock()
	canGoBack := c.state.CanGoBack()
	c.mu.Unlock()

	if !canGoBack {
		return nil
	}

	return c.refetch(ctx, "previous page", func(s *State) { s.Page-- })
}

// ToggleTop switches the most liked view on or off.
func (c *Controller) ToggleTop(ctx context.Context) error {
	return c.refetch(ctx, "toggle top", func(s *State) { s.TopMode = !s.TopMode })
}

// SetFilterInput stores the text of the filter field without applying it.
func (c *Controller) SetFilterInput(input string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.FilterInput = input
}

// ApplyFilter filters by the tag in the filter field and goes to page 1.
func (c *Controller) ApplyFilter(ctx context.Context) error {
	return c.refetch(ctx, "apply filter", func(s *State) {
		s.Filter = strings.TrimSpace(s.FilterInput)
		s.Page = 1
	})
}

// ResetFilter clears the filter and top mode and goes to page 1.
func (c *Controller) ResetFilter(ctx context.Context) error {
	return c.refetch(ctx, "reset filter", func(s *State) {
		s.Filter = ""
		s.FilterInput = ""
		s.TopMode = false
		s.Page = 1
	})
}

// OpenAdd shows the add form.
func (c *Controller) OpenAdd() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.AddOpen = true
	c.state.Suggestions = nil
}

// CloseAdd hides the add form and keeps the draft.
func (c *Controller) CloseAdd() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.AddOpen = false
	c.state.Suggestions = nil
}

// SetDraft replaces the add form content. A change to the tag field
// refreshes suggestions.
func (c *Controller) SetDraft(ctx context.Context, draft Draft) error {
	c.mu.Lock()
	tagsChanged := draft.Tags != c.state.Draft.Tags
	c.state.Draft = draft
	c.mu.Unlock()

	if !tagsChanged {
		return nil
	}

	return c.suggest(ctx, draft.Tags)
}

// SubmitAdd runs CreateWithTags on the draft, then closes the form and
// re-fetches. Nothing is rolled back when an attach fails.
func (c *Controller) SubmitAdd(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := CreateWithTags(ctx, c.api, c.state.Draft); err != nil {
		return c.fail("submit add", err)
	}

	next := c.state.clone()
	next.AddOpen = false
	next.Draft = Draft{}
	next.Suggestions = nil

	return c.commit(ctx, "submit add", next)
}

// CreateWithTags creates the drafted quote, then attaches each tag token in
// order. The first failing attach stops the rest and is returned together
// with the created quote.
func CreateWithTags(ctx context.Context, api ports.QuotesAPI, draft Draft) (*domain.Quote, error) {
	created, err := api.CreateQuote(ctx, domain.NewQuote{Content: draft.Content, Author: draft.Author})
	if err != nil {
		return nil, err
	}

	for _, name := range SplitTags(draft.Tags) {
		updated, err := api.AttachTag(ctx, created.ID, name)
		if err != nil {
			return created, fmt.Errorf("quote %d created, attaching tag %q: %w", created.ID, name, err)
		}
		created = updated
	}

	return created, nil
}

// OpenEdit shows the edit form for q.
func (c *Controller) OpenEdit(q domain.Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.EditOpen = true
	c.state.Edit = Edit{Quote: cloneQuote(q)}
	c.state.Suggestions = nil
}

// CloseEdit hides the edit form.
func (c *Controller) CloseEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.EditOpen = false
	c.state.Edit = Edit{}
	c.state.Suggestions = nil
}

// SetEdit replaces the content, author and tag input of the edit form.
// Likes and tags of the quote under edit are kept. A change to the tag
// field refreshes suggestions.
func (c *Controller) SetEdit(ctx context.Context, content, author, tags string) error {
	c.mu.Lock()
	tagsChanged := tags != c.state.Edit.Tags
	c.state.Edit.Quote.Content = content
	c.state.Edit.Quote.Author = author
	c.state.Edit.Tags = tags
	c.mu.Unlock()

	if !tagsChanged {
		return nil
	}

	return c.suggest(ctx, tags)
}

// SubmitEdit replaces the quote, then attaches the typed tags it does not
// carry yet, one after another.
func (c *Controller) SubmitEdit(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.EditOpen {
		return nil
	}

	edited := c.state.Edit.Quote
	if err := c.api.ReplaceQuote(ctx, &edited); err != nil {
		return c.fail("submit edit", err, slog.Int64("quote_id", edited.ID))
	}

	for _, name := range SplitTags(c.state.Edit.Tags) {
		if edited.HasTagNamed(name) {
			continue
		}

		if _, err := c.api.AttachTag(ctx, edited.ID, name); err != nil {
			return c.fail("submit edit", err, slog.Int64("quote_id", edited.ID), slog.String("tag", name))
		}
	}

	next := c.state.clone()
	next.EditOpen = false
	next.Edit = Edit{}
	next.Suggestions = nil

	return c.commit(ctx, "submit edit", next)
}

// SelectSuggestion replaces the last tag token of the open form with name.
func (c *Controller) SelectSuggestion(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.EditOpen {
		c.state.Edit.Tags = ReplaceLastToken(c.state.Edit.Tags, name)
	} else {
		c.state.Draft.Tags = ReplaceLastToken(c.state.Draft.Tags, name)
	}

	c.state.Suggestions = nil
}

// Like adds a like to id and re-fetches the active view.
func (c *Controller) Like(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.api.LikeQuote(ctx, id); err != nil {
		return c.fail("like", err, slog.Int64("quote_id", id))
	}

	return c.commit(ctx, "like", c.state.clone())
}

// refetch applies change to a copy of the state and commits it once the
// fetch for the new view succeeded.
func (c *Controller) refetch(ctx context.Context, action string, change func(*State)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.clone()
	change(&next)

	return c.commit(ctx, action, next)
}

// commit fetches the quotes for next and makes it the current state.
// Callers hold c.mu.
func (c *Controller) commit(ctx context.Context, action string, next State) error {
	quotes, err := c.fetch(ctx, next)
	if err != nil {
		return c.fail(action, err)
	}

	next.Quotes = quotes
	c.state = next

	return nil
}

func (c *Controller) fetch(ctx context.Context, s State) ([]domain.Quote, error) {
	switch {
	case s.TopMode:
		return c.api.TopQuotes(ctx, TopCount)
	case s.Filter != "":
		return c.api.QuotesByTag(ctx, s.Filter)
	default:
		return c.api.ListQuotes(ctx, s.Page, PageSize)
	}
}

// suggest fills Suggestions with the tags whose name contains the last
// token of input.
func (c *Controller) suggest(ctx context.Context, input string) error {
	token := LastToken(input)
	if token == "" {
		c.mu.Lock()
		c.state.Suggestions = nil
		c.mu.Unlock()

		return nil
	}

	tags, err := c.api.ListTags(ctx)
	if err != nil {
		return c.fail("suggest tags", err)
	}

	suggestions := MatchTags(tags, token)

	c.mu.Lock()
	c.state.Suggestions = suggestions
	c.mu.Unlock()

	return nil
}

func (c *Controller) fail(action string, err error, attrs ...any) error {
	args := append([]any{slog.String("action", action), slog.Any("error", err)}, attrs...)
	c.logger.Error("quotes client action failed", args...)

	return err
}

func (s State) clone() State {
	out := s
	out.Suggestions = slices.Clone(s.Suggestions)
	out.Edit.Quote = cloneQuote(s.Edit.Quote)

	out.Quotes = make([]domain.Quote, len(s.Quotes))
	for i, q := range s.Quotes {
		out.Quotes[i] = cloneQuote(q)
	}

	return out
}

func cloneQuote(q domain.Quote) domain.Quote {
	q.TagAssignments = slices.Clone(q.TagAssignments)
	return q
}

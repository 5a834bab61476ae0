package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen/quotebook/internal/adapters/clients"
	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/platform/logging"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

// QuotesClientConfig contains configuration for the quotes client.
type QuotesClientConfig struct {
	// Client's BaseURL is the API root, e.g. http://localhost:8080/api/v1/quotes.
	Client *clients.Client

	// ServiceName labels errors and health results. Defaults to "quotes-api".
	ServiceName string

	Logger *slog.Logger
}

// QuotesClient implements ports.QuotesAPI over HTTP.
type QuotesClient struct {
	BaseAdapter
	logger *slog.Logger
}

var _ ports.QuotesAPI = (*QuotesClient)(nil)

// NewQuotesClient creates the client. It panics without a transport.
func NewQuotesClient(cfg QuotesClientConfig) *QuotesClient {
	if cfg.Client == nil {
		panic("acl: quotes client requires a transport")
	}

	name := cfg.ServiceName
	if name == "" {
		name = "quotes-api"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuotesClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, name),
		logger:      logger,
	}
}

// Wire format of the quotes API. Never exposed outside this package.
type (
	quoteWire struct {
		QuoteID        int64               `json:"quoteId"`
		Content        string              `json:"content"`
		Author         string              `json:"author"`
		Likes          int                 `json:"likes"`
		TagAssignments []tagAssignmentWire `json:"tagAssignments"`
	}

	tagAssignmentWire struct {
		QuoteID int64   `json:"quoteId"`
		TagID   int64   `json:"tagId"`
		Tag     tagWire `json:"tag"`
	}

	tagWire struct {
		TagID int64  `json:"tagId"`
		Name  string `json:"name"`
	}

	createQuoteWire struct {
		Content string `json:"content"`
		Author  string `json:"author"`
	}

	replaceQuoteWire struct {
		QuoteID int64  `json:"quoteId"`
		Content string `json:"content"`
		Author  string `json:"author"`
		Likes   int    `json:"likes"`
	}

	attachTagWire struct {
		Name string `json:"name"`
	}
)

// ListQuotes fetches one page. pageSize -1 returns every quote.
func (c *QuotesClient) ListQuotes(ctx context.Context, page, pageSize int) ([]domain.Quote, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	return c.getQuotes(ctx, "?"+query.Encode(), "list quotes")
}

// GetQuote fetches one quote.
func (c *QuotesClient) GetQuote(ctx context.Context, id int64) (*domain.Quote, error) {
	return c.quoteCall(ctx, http.MethodGet, quotePath(id), nil, "get quote", domain.FormatID(id))
}

// TopQuotes fetches the count most liked quotes.
func (c *QuotesClient) TopQuotes(ctx context.Context, count int) ([]domain.Quote, error) {
	return c.getQuotes(ctx, "/top?count="+strconv.Itoa(count), "top quotes")
}

// QuotesByTag fetches the quotes tagged tagName, ignoring case.
func (c *QuotesClient) QuotesByTag(ctx context.Context, tagName string) ([]domain.Quote, error) {
	return c.getQuotes(ctx, "/quotes_by_tag/"+url.PathEscape(tagName), "quotes by tag")
}

// ListTags fetches every tag.
func (c *QuotesClient) ListTags(ctx context.Context) ([]domain.Tag, error) {
	body, _, err := c.call(ctx, http.MethodGet, "/tags", nil, "list tags", "")
	if err != nil {
		return nil, err
	}

	wire, err := DecodeResponse[[]tagWire](body)
	if err != nil {
		return nil, c.malformed("list tags", err)
	}

	tags, err := TranslateSlice(*wire, translateTag)
	if err != nil {
		return nil, c.malformed("list tags", err)
	}

	return tags, nil
}

// CreateQuote posts a new quote and returns it as stored.
func (c *QuotesClient) CreateQuote(ctx context.Context, q domain.NewQuote) (*domain.Quote, error) {
	return c.quoteCall(ctx, http.MethodPost, "", createQuoteWire{Content: q.Content, Author: q.Author}, "create quote", "")
}

// ReplaceQuote overwrites content, author and likes of q.ID.
func (c *QuotesClient) ReplaceQuote(ctx context.Context, q *domain.Quote) error {
	body, _, err := c.call(ctx, http.MethodPut, quotePath(q.ID), replaceQuoteWire{
		QuoteID: q.ID,
		Content: q.Content,
		Author:  q.Author,
		Likes:   q.Likes,
	}, "replace quote", domain.FormatID(q.ID))
	if err != nil {
		return err
	}
	drain(body)

	return nil
}

// PatchQuote sends only the fields set in patch.
func (c *QuotesClient) PatchQuote(ctx context.Context, id int64, patch domain.QuotePatch) error {
	fields := make(map[string]string, 2)
	if patch.Content != nil {
		fields[domain.PatchFieldContent] = *patch.Content
	}
	if patch.Author != nil {
		fields[domain.PatchFieldAuthor] = *patch.Author
	}

	body, _, err := c.call(ctx, http.MethodPatch, quotePath(id), fields, "patch quote", domain.FormatID(id))
	if err != nil {
		return err
	}
	drain(body)

	return nil
}

// LikeQuote adds a like and returns the updated quote.
func (c *QuotesClient) LikeQuote(ctx context.Context, id int64) (*domain.Quote, error) {
	return c.quoteCall(ctx, http.MethodPost, quotePath(id)+"/like", nil, "like quote", domain.FormatID(id))
}

// AttachTag tags a quote, creating the tag on the server if needed.
func (c *QuotesClient) AttachTag(ctx context.Context, quoteID int64, tagName string) (*domain.Quote, error) {
	return c.quoteCall(ctx, http.MethodPost, quotePath(quoteID)+"/tags", attachTagWire{Name: tagName}, "attach tag", domain.FormatID(quoteID))
}

// DetachTag removes one tag assignment.
func (c *QuotesClient) DetachTag(ctx context.Context, quoteID, tagID int64) (*domain.Quote, error) {
	path := quotePath(quoteID) + "/tags/" + domain.FormatID(tagID)

	return c.quoteCall(ctx, http.MethodDelete, path, nil, "detach tag", domain.FormatID(quoteID))
}

// Name implements ports.HealthChecker.
func (c *QuotesClient) Name() string {
	return c.ServiceName()
}

// Check asks for an empty top list, which touches the API and its store.
func (c *QuotesClient) Check(ctx context.Context) error {
	if c.client.CircuitState() == clients.StateOpen {
		return domain.NewUnavailableError(c.ServiceName(), "circuit open")
	}

	body, _, err := c.call(ctx, http.MethodGet, "/top?count=0", nil, "health check", "")
	if err != nil {
		return err
	}
	drain(body)

	return nil
}

func (c *QuotesClient) quoteCall(ctx context.Context, method, path string, payload any, operation, entityID string) (*domain.Quote, error) {
	body, _, err := c.call(ctx, method, path, payload, operation, entityID)
	if err != nil {
		return nil, err
	}

	wire, err := DecodeResponse[quoteWire](body)
	if err != nil {
		return nil, c.malformed(operation, err)
	}

	q, err := translateQuote(wire)
	if err != nil {
		return nil, c.malformed(operation, err)
	}

	logging.Trace(ctx, "translated quote", slog.Int64("quote_id", q.ID), slog.String("operation", operation))

	return q, nil
}

func (c *QuotesClient) getQuotes(ctx context.Context, path, operation string) ([]domain.Quote, error) {
	body, _, err := c.call(ctx, http.MethodGet, path, nil, operation, "")
	if err != nil {
		return nil, err
	}

	wire, err := DecodeResponse[[]quoteWire](body)
	if err != nil {
		return nil, c.malformed(operation, err)
	}

	quotes, err := TranslateSlice(*wire, translateQuote)
	if err != nil {
		return nil, c.malformed(operation, err)
	}

	return quotes, nil
}

// malformed reports a 2xx answer the client could not use.
func (c *QuotesClient) malformed(operation string, err error) error {
	c.logger.Warn("unusable response from quotes API",
		slog.String("operation", operation),
		slog.Any("error", err),
	)

	return fmt.Errorf("%s: %w", operation, domain.NewUnavailableError(c.ServiceName(), "malformed response"))
}

func quotePath(id int64) string {
	return "/" + domain.FormatID(id)
}

func translateQuote(w *quoteWire) (*domain.Quote, error) {
	if w.QuoteID <= 0 {
		return nil, fmt.Errorf("quote without id")
	}

	q := &domain.Quote{
		ID:             w.QuoteID,
		Content:        w.Content,
		Author:         w.Author,
		Likes:          w.Likes,
		TagAssignments: make([]domain.TagAssignment, 0, len(w.TagAssignments)),
	}

	for _, ta := range w.TagAssignments {
		tag, err := translateTag(&ta.Tag)
		if err != nil {
			return nil, fmt.Errorf("quote %d: %w", w.QuoteID, err)
		}

		q.TagAssignments = append(q.TagAssignments, domain.TagAssignment{
			QuoteID: w.QuoteID,
			TagID:   ta.TagID,
			Tag:     *tag,
		})
	}

	return q, nil
}

func translateTag(w *tagWire) (*domain.Tag, error) {
	if w.TagID <= 0 {
		return nil, fmt.Errorf("tag without id")
	}

	return &domain.Tag{ID: w.TagID, Name: w.Name}, nil
}

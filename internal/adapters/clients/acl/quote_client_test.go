package acl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebook/internal/adapters/clients"
	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/platform/config"
)

const wildeJSON = `{"quoteId":7,"content":"I can resist everything except temptation.","author":"Oscar Wilde","likes":3,` +
	`"tagAssignments":[{"quoteId":7,"tagId":2,"tag":{"tagId":2,"name":"wit"}}]}`

// recorded is what the fake API saw.
type recorded struct {
	mu     sync.Mutex
	method string
	uri    string
	body   string
}

func newTransport(t *testing.T, baseURL string) *clients.Client {
	t.Helper()

	client, err := clients.New(&clients.Config{
		ServiceName: "quotes-api",
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   10,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 3,
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return client
}

// setupQuotesClient serves status and body for every request and records
// the last one.
func setupQuotesClient(t *testing.T, status int, body string) (*QuotesClient, *recorded) {
	t.Helper()

	rec := &recorded{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.method = r.Method
		rec.uri = r.URL.RequestURI()
		rec.body = string(raw)

		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	return NewQuotesClient(QuotesClientConfig{
		Client: newTransport(t, server.URL+"/api/v1/quotes"),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), rec
}

func TestNewQuotesClient(t *testing.T) {
	assert.Panics(t, func() {
		NewQuotesClient(QuotesClientConfig{})
	})

	c := NewQuotesClient(QuotesClientConfig{Client: newTransport(t, "http://localhost")})
	assert.Equal(t, "quotes-api", c.Name())
	assert.NotNil(t, c.logger)

	named := NewQuotesClient(QuotesClientConfig{Client: newTransport(t, "http://localhost"), ServiceName: "remote"})
	assert.Equal(t, "remote", named.Name())
}

func TestQuotesClient_Reads(t *testing.T) {
	tests := []struct {
		name    string
		call    func(context.Context, *QuotesClient) ([]domain.Quote, error)
		wantURI string
	}{
		{
			name: "list",
			call: func(ctx context.Context, c *QuotesClient) ([]domain.Quote, error) {
				return c.ListQuotes(ctx, 2, 10)
			},
			wantURI: "/api/v1/quotes?page=2&pageSize=10",
		},
		{
			name: "list all",
			call: func(ctx context.Context, c *QuotesClient) ([]domain.Quote, error) {
				return c.ListQuotes(ctx, 1, -1)
			},
			wantURI: "/api/v1/quotes?page=1&pageSize=-1",
		},
		{
			name: "top",
			call: func(ctx context.Context, c *QuotesClient) ([]domain.Quote, error) {
				return c.TopQuotes(ctx, 10)
			},
			wantURI: "/api/v1/quotes/top?count=10",
		},
		{
			name: "by tag escapes the name",
			call: func(ctx context.Context, c *QuotesClient) ([]domain.Quote, error) {
				return c.QuotesByTag(ctx, "dark humor")
			},
			wantURI: "/api/v1/quotes/quotes_by_tag/dark%20humor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := setupQuotesClient(t, http.StatusOK, "["+wildeJSON+"]")

			quotes, err := tt.call(context.Background(), client)

			require.NoError(t, err)
			require.Len(t, quotes, 1)
			assert.Equal(t, "Oscar Wilde", quotes[0].Author)
			assert.Equal(t, []string{"wit"}, quotes[0].TagNames())
			assert.Equal(t, http.MethodGet, rec.method)
			assert.Equal(t, tt.wantURI, rec.uri)
		})
	}
}

func TestQuotesClient_GetQuote(t *testing.T) {
	client, rec := setupQuotesClient(t, http.StatusOK, wildeJSON)

	q, err := client.GetQuote(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), q.ID)
	assert.Equal(t, 3, q.Likes)
	assert.Equal(t, "/api/v1/quotes/7", rec.uri)
}

func TestQuotesClient_GetQuote_NotFound(t *testing.T) {
	client, _ := setupQuotesClient(t, http.StatusNotFound,
		`{"error":{"code":"NOT_FOUND","message":"quote with id \"99\" not found"},"traceId":"t1"}`)

	_, err := client.GetQuote(context.Background(), 99)

	require.True(t, domain.IsNotFound(err))
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "99", notFound.ID)
}

func TestQuotesClient_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>"},
		{"quote without id", `{"content":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := setupQuotesClient(t, http.StatusOK, tt.body)

			_, err := client.GetQuote(context.Background(), 1)

			require.True(t, domain.IsUnavailable(err))
			assert.Contains(t, err.Error(), "malformed response")
		})
	}
}

func TestQuotesClient_ListTags(t *testing.T) {
	client, rec := setupQuotesClient(t, http.StatusOK, `[{"tagId":1,"name":"life"},{"tagId":2,"name":"wit"}]`)

	tags, err := client.ListTags(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Tag{{ID: 1, Name: "life"}, {ID: 2, Name: "wit"}}, tags)
	assert.Equal(t, "/api/v1/quotes/tags", rec.uri)
}

func TestQuotesClient_CreateQuote(t *testing.T) {
	client, rec := setupQuotesClient(t, http.StatusCreated, wildeJSON)

	q, err := client.CreateQuote(context.Background(), domain.NewQuote{
		Content: "I can resist everything except temptation.",
		Author:  "Oscar Wilde",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), q.ID)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/v1/quotes", rec.uri)
	assert.JSONEq(t, `{"content":"I can resist everything except temptation.","author":"Oscar Wilde"}`, rec.body)
}

func TestQuotesClient_ReplaceQuote(t *testing.T) {
	client, rec := setupQuotesClient(t, http.StatusNoContent, "")

	err := client.ReplaceQuote(context.Background(), &domain.Quote{ID: 7, Content: "c", Author: "a", Likes: 9})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/api/v1/quotes/7", rec.uri)
	assert.JSONEq(t, `{"quoteId":7,"content":"c","author":"a","likes":9}`, rec.body)
}

func TestQuotesClient_PatchQuote(t *testing.T) {
	author := "Wilde"

	tests := []struct {
		name     string
		patch    domain.QuotePatch
		wantBody string
	}{
		{"author only", domain.QuotePatch{Author: &author}, `{"author":"Wilde"}`},
		{"nothing set", domain.QuotePatch{}, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := setupQuotesClient(t, http.StatusNoContent, "")

			err := client.PatchQuote(context.Background(), 7, tt.patch)

			require.NoError(t, err)
			assert.Equal(t, http.MethodPatch, rec.method)
			assert.JSONEq(t, tt.wantBody, rec.body)
		})
	}
}

func TestQuotesClient_PatchQuote_InvalidField(t *testing.T) {
	client, _ := setupQuotesClient(t, http.StatusBadRequest,
		`{"error":{"code":"BAD_REQUEST","message":"Invalid field: likes"}}`)

	err := client.PatchQuote(context.Background(), 7, domain.QuotePatch{})

	require.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "Invalid field: likes")
}

func TestQuotesClient_LikeQuote(t *testing.T) {
	client, rec := setupQuotesClient(t, http.StatusOK, wildeJSON)

	q, err := client.LikeQuote(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 3, q.Likes)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/v1/quotes/7/like", rec.uri)
	assert.Empty(t, rec.body)
}

func TestQuotesClient_AttachTag(t *testing.T) {
	client, rec := setupQuotesClient(t, http.StatusOK, wildeJSON)

	q, err := client.AttachTag(context.Background(), 7, "wit")

	require.NoError(t, err)
	assert.True(t, q.HasTagNamed("WIT"))
	assert.Equal(t, "/api/v1/quotes/7/tags", rec.uri)

	var sent map[string]string
	require.NoError(t, json.Unmarshal([]byte(rec.body), &sent))
	assert.Equal(t, map[string]string{"name": "wit"}, sent)
}

func TestQuotesClient_AttachTag_Conflict(t *testing.T) {
	client, _ := setupQuotesClient(t, http.StatusBadRequest,
		`{"error":{"code":"CONFLICT","message":"Tag already assigned to quote."}}`)

	_, err := client.AttachTag(context.Background(), 7, "wit")

	require.True(t, domain.IsConflict(err))
	assert.Equal(t, "Tag already assigned to quote.", err.Error())
}

func TestQuotesClient_DetachTag(t *testing.T) {
	client, rec := setupQuotesClient(t, http.StatusOK,
		`{"quoteId":7,"content":"c","author":"a","likes":0,"tagAssignments":[]}`)

	q, err := client.DetachTag(context.Background(), 7, 2)

	require.NoError(t, err)
	assert.Empty(t, q.TagAssignments)
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/api/v1/quotes/7/tags/2", rec.uri)
}

func TestQuotesClient_DetachTag_NotFound(t *testing.T) {
	client, _ := setupQuotesClient(t, http.StatusNotFound,
		`{"error":{"code":"NOT_FOUND","message":"Tag assignment not found."}}`)

	_, err := client.DetachTag(context.Background(), 7, 2)

	require.True(t, domain.IsNotFound(err))
	assert.Equal(t, "Tag assignment not found.", err.Error())
}

func TestQuotesClient_Check(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		client, rec := setupQuotesClient(t, http.StatusOK, "[]")

		require.NoError(t, client.Check(context.Background()))
		assert.Equal(t, "/api/v1/quotes/top?count=0", rec.uri)
	})

	t.Run("unavailable", func(t *testing.T) {
		client, _ := setupQuotesClient(t, http.StatusServiceUnavailable, "")

		err := client.Check(context.Background())

		assert.True(t, domain.IsUnavailable(err))
	})
}

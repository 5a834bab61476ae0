//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	baseURL      string
	server       *quotesServer
	client       *http.Client
	response     *http.Response
	responseBody []byte

	// quoteID is the quote the scenario works on.
	quoteID int64
}

// newTestContext targets BASE_URL when set, otherwise a fresh in-process
// server per scenario.
func newTestContext() *testContext {
	return &testContext{
		baseURL: os.Getenv("BASE_URL"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (tc *testContext) start() error {
	if os.Getenv("BASE_URL") != "" {
		return nil
	}

	server, err := startQuotesServer()
	if err != nil {
		return err
	}

	tc.server = server
	tc.baseURL = server.URL

	return nil
}

// reset clears response state between scenarios.
func (tc *testContext) reset() {
	if tc.response != nil && tc.response.Body != nil {
		_ = tc.response.Body.Close()
	}
	tc.response = nil
	tc.responseBody = nil
	tc.quoteID = 0

	if tc.server != nil {
		tc.server.stop()
		tc.server = nil
	}
}

// InitializeScenario registers step definitions for each scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := newTestContext()

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, tc.start()
	})

	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^the service is running$`, tc.theServiceIsRunning)
	ctx.Step(`^I request GET "([^"]*)"$`, tc.iRequestGET)
	ctx.Step(`^I send (POST|PUT|PATCH) "([^"]*)" with:$`, tc.iSendWith)
	ctx.Step(`^I create a quote "([^"]*)" by "([^"]*)"$`, tc.iCreateAQuote)
	ctx.Step(`^a quote "([^"]*)" by "([^"]*)"$`, tc.aQuote)
	ctx.Step(`^(\d+) quotes exist$`, tc.quotesExist)
	ctx.Step(`^I like the quote (\d+) times?$`, tc.iLikeTheQuote)
	ctx.Step(`^I tag the quote with "([^"]*)"$`, tc.iTagTheQuote)
	ctx.Step(`^I remove the tag "([^"]*)" from the quote$`, tc.iRemoveTheTag)
	ctx.Step(`^I patch the quote with:$`, tc.iPatchTheQuote)
	ctx.Step(`^I replace the quote with:$`, tc.iReplaceTheQuote)
	ctx.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, tc.theResponseShouldContain)
	ctx.Step(`^the Location header should point at the quote$`, tc.theLocationHeaderShouldPointAtTheQuote)
	ctx.Step(`^the response should list (\d+) quotes?$`, tc.theResponseShouldListQuotes)
	ctx.Step(`^the quote should have (\d+) likes?$`, tc.theQuoteShouldHaveLikes)
	ctx.Step(`^the quote should have content "([^"]*)"$`, tc.theQuoteShouldHaveContent)
	ctx.Step(`^the quote should have tags "([^"]*)"$`, tc.theQuoteShouldHaveTags)
	ctx.Step(`^the quote should have no tags$`, tc.theQuoteShouldHaveNoTags)
	ctx.Step(`^there should be (\d+) tags?$`, tc.thereShouldBeTags)
}

// wire types as served by the API.
type (
	tagJSON struct {
		TagID int64  `json:"tagId"`
		Name  string `json:"name"`
	}

	assignmentJSON struct {
		TagID int64   `json:"tagId"`
		Tag   tagJSON `json:"tag"`
	}

	quoteJSON struct {
		QuoteID        int64            `json:"quoteId"`
		Content        string           `json:"content"`
		Author         string           `json:"author"`
		Likes          int              `json:"likes"`
		TagAssignments []assignmentJSON `json:"tagAssignments"`
	}
)

func (tc *testContext) theServiceIsRunning() error {
	if err := tc.do(http.MethodGet, "/-/live", ""); err != nil {
		return err
	}

	return tc.theResponseStatusShouldBe(http.StatusOK)
}

func (tc *testContext) iRequestGET(path string) error {
	return tc.do(http.MethodGet, path, "")
}

// iSendWith remembers the quote when the request created one.
func (tc *testContext) iSendWith(method, path string, body *godog.DocString) error {
	if err := tc.do(method, path, body.Content); err != nil {
		return err
	}

	if tc.response.StatusCode == http.StatusCreated {
		return tc.rememberQuote()
	}

	return nil
}

func (tc *testContext) iCreateAQuote(content, author string) error {
	body, err := json.Marshal(map[string]string{"content": content, "author": author})
	if err != nil {
		return err
	}

	if err := tc.do(http.MethodPost, apiRoot, string(body)); err != nil {
		return err
	}

	if tc.response.StatusCode != http.StatusCreated {
		return nil
	}

	return tc.rememberQuote()
}

func (tc *testContext) rememberQuote() error {
	var q quoteJSON
	if err := json.Unmarshal(tc.responseBody, &q); err != nil {
		return fmt.Errorf("decoding created quote: %w", err)
	}
	tc.quoteID = q.QuoteID

	return nil
}

func (tc *testContext) aQuote(content, author string) error {
	if err := tc.iCreateAQuote(content, author); err != nil {
		return err
	}

	return tc.theResponseStatusShouldBe(http.StatusCreated)
}

func (tc *testContext) quotesExist(n int) error {
	for i := 1; i <= n; i++ {
		if err := tc.aQuote(fmt.Sprintf("Quote number %d", i), "Anonymous"); err != nil {
			return err
		}
	}

	return nil
}

func (tc *testContext) iLikeTheQuote(times int) error {
	for i := 0; i < times; i++ {
		if err := tc.do(http.MethodPost, tc.quotePath()+"/like", ""); err != nil {
			return err
		}

		if err := tc.theResponseStatusShouldBe(http.StatusOK); err != nil {
			return err
		}
	}

	return nil
}

func (tc *testContext) iTagTheQuote(name string) error {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return err
	}

	return tc.do(http.MethodPost, tc.quotePath()+"/tags", string(body))
}

func (tc *testContext) iRemoveTheTag(name string) error {
	q, err := tc.fetchQuote()
	if err != nil {
		return err
	}

	for _, ta := range q.TagAssignments {
		if strings.EqualFold(ta.Tag.Name, name) {
			return tc.do(http.MethodDelete, fmt.Sprintf("%s/tags/%d", tc.quotePath(), ta.TagID), "")
		}
	}

	return fmt.Errorf("quote %d has no tag %q", tc.quoteID, name)
}

func (tc *testContext) iPatchTheQuote(body *godog.DocString) error {
	return tc.do(http.MethodPatch, tc.quotePath(), body.Content)
}

// iReplaceTheQuote substitutes {id} in the body with the scenario's quote.
func (tc *testContext) iReplaceTheQuote(body *godog.DocString) error {
	content := strings.ReplaceAll(body.Content, "{id}", fmt.Sprint(tc.quoteID))

	return tc.do(http.MethodPut, tc.quotePath(), content)
}

func (tc *testContext) theResponseStatusShouldBe(expectedCode int) error {
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}

	if tc.response.StatusCode != expectedCode {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedCode, tc.response.StatusCode, string(tc.responseBody))
	}

	return nil
}

func (tc *testContext) theResponseShouldContain(text string) error {
	if !strings.Contains(string(tc.responseBody), text) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, tc.responseBody)
	}

	return nil
}

func (tc *testContext) theLocationHeaderShouldPointAtTheQuote() error {
	want := tc.quotePath()
	if got := tc.response.Header.Get("Location"); got != want {
		return fmt.Errorf("expected Location %q, got %q", want, got)
	}

	return nil
}

func (tc *testContext) theResponseShouldListQuotes(n int) error {
	var quotes []quoteJSON
	if err := json.Unmarshal(tc.responseBody, &quotes); err != nil {
		return fmt.Errorf("decoding quote list: %w", err)
	}

	if len(quotes) != n {
		return fmt.Errorf("expected %d quotes, got %d", n, len(quotes))
	}

	return nil
}

func (tc *testContext) theQuoteShouldHaveLikes(n int) error {
	q, err := tc.fetchQuote()
	if err != nil {
		return err
	}

	if q.Likes != n {
		return fmt.Errorf("expected %d likes, got %d", n, q.Likes)
	}

	return nil
}

func (tc *testContext) theQuoteShouldHaveContent(content string) error {
	q, err := tc.fetchQuote()
	if err != nil {
		return err
	}

	if q.Content != content {
		return fmt.Errorf("expected content %q, got %q", content, q.Content)
	}

	return nil
}

func (tc *testContext) theQuoteShouldHaveTags(names string) error {
	q, err := tc.fetchQuote()
	if err != nil {
		return err
	}

	got := make([]string, 0, len(q.TagAssignments))
	for _, ta := range q.TagAssignments {
		got = append(got, ta.Tag.Name)
	}

	if strings.Join(got, ", ") != names {
		return fmt.Errorf("expected tags %q, got %q", names, strings.Join(got, ", "))
	}

	return nil
}

func (tc *testContext) theQuoteShouldHaveNoTags() error {
	q, err := tc.fetchQuote()
	if err != nil {
		return err
	}

	if len(q.TagAssignments) != 0 {
		return fmt.Errorf("expected no tags, got %d", len(q.TagAssignments))
	}

	return nil
}

func (tc *testContext) thereShouldBeTags(n int) error {
	body, _, err := tc.get(apiRoot + "/tags")
	if err != nil {
		return err
	}

	var tags []tagJSON
	if err := json.Unmarshal(body, &tags); err != nil {
		return fmt.Errorf("decoding tags: %w", err)
	}

	if len(tags) != n {
		return fmt.Errorf("expected %d tags, got %d", n, len(tags))
	}

	return nil
}

func (tc *testContext) quotePath() string {
	return fmt.Sprintf("%s/%d", apiRoot, tc.quoteID)
}

// fetchQuote reads the scenario's quote without touching the recorded
// response.
func (tc *testContext) fetchQuote() (*quoteJSON, error) {
	body, status, err := tc.get(tc.quotePath())
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, fmt.Errorf("fetching quote %d: status %d", tc.quoteID, status)
	}

	var q quoteJSON
	if err := json.Unmarshal(body, &q); err != nil {
		return nil, fmt.Errorf("decoding quote: %w", err)
	}

	return &q, nil
}

func (tc *testContext) get(path string) ([]byte, int, error) {
	resp, err := tc.client.Get(tc.baseURL + path)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)

	return body, resp.StatusCode, err
}

// do sends a request and records the response for later steps.
func (tc *testContext) do(method, path, body string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, tc.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

// TestFeatures runs the GoDog BDD test suite.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

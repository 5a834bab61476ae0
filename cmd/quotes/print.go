package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// quoteJSON mirrors the API's JSON shape for --json output.
type quoteJSON struct {
	QuoteID int64    `json:"quoteId"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Likes   int      `json:"likes"`
	Tags    []string `json:"tags"`
}

func printQuotes(w io.Writer, quotes []domain.Quote, asJSON bool) error {
	if asJSON {
		out := make([]quoteJSON, 0, len(quotes))
		for i := range quotes {
			q := &quotes[i]
			out = append(out, quoteJSON{
				QuoteID: q.ID,
				Content: q.Content,
				Author:  q.Author,
				Likes:   q.Likes,
				Tags:    q.TagNames(),
			})
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(out)
	}

	if len(quotes) == 0 {
		_, err := fmt.Fprintln(w, "No quotes.")
		return err
	}

	for i := range quotes {
		if err := printQuote(w, &quotes[i]); err != nil {
			return err
		}
	}

	return nil
}

func printQuote(w io.Writer, q *domain.Quote) error {
	author := q.Author
	if author == "" {
		author = "Unknown"
	}

	line := fmt.Sprintf("#%d  %q -- %s  (%d likes)", q.ID, q.Content, author, q.Likes)
	if len(q.TagAssignments) > 0 {
		tags := make([]string, 0, len(q.TagAssignments))
		for _, ta := range q.TagAssignments {
			tags = append(tags, fmt.Sprintf("%s[%d]", ta.Tag.Name, ta.TagID))
		}
		line += "  tags: " + strings.Join(tags, ", ")
	}

	_, err := fmt.Fprintln(w, line)

	return err
}

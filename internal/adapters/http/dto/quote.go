package dto

import "github.com/jsamuelsen/quotebook/internal/domain"

// QuoteResponse is the JSON form of a quote.
type QuoteResponse struct {
	QuoteID        int64                   `json:"quoteId"`
	Content        string                  `json:"content"`
	Author         string                  `json:"author"`
	Likes          int                     `json:"likes"`
	TagAssignments []TagAssignmentResponse `json:"tagAssignments"`
}

// TagAssignmentResponse nests the assigned tag.
type TagAssignmentResponse struct {
	QuoteID int64       `json:"quoteId"`
	TagID   int64       `json:"tagId"`
	Tag     TagResponse `json:"tag"`
}

// TagResponse is the JSON form of a tag.
type TagResponse struct {
	TagID int64  `json:"tagId"`
	Name  string `json:"name"`
}

// CreateQuoteRequest is the body of POST /. Likes and ids in the body are
// ignored.
type CreateQuoteRequest struct {
	Content string `json:"content" validate:"notempty"`
	Author  string `json:"author"`
}

// ReplaceQuoteRequest is the body of PUT /{id}.
type ReplaceQuoteRequest struct {
	QuoteID int64  `json:"quoteId"`
	Content string `json:"content" validate:"notempty"`
	Author  string `json:"author"`
	Likes   int    `json:"likes" validate:"gte=0"`
}

// AttachTagRequest is the body of POST /{id}/tags.
type AttachTagRequest struct {
	Name string `json:"name" validate:"notempty"`
}

// NewQuote converts the request into the domain input.
func (r CreateQuoteRequest) NewQuote() domain.NewQuote {
	return domain.NewQuote{Content: r.Content, Author: r.Author}
}

// Quote converts the request into the replacement quote.
func (r ReplaceQuoteRequest) Quote() *domain.Quote {
	return &domain.Quote{
		ID:      r.QuoteID,
		Content: r.Content,
		Author:  r.Author,
		Likes:   r.Likes,
	}
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	resp := QuoteResponse{
		QuoteID:        q.ID,
		Content:        q.Content,
		Author:         q.Author,
		Likes:          q.Likes,
		TagAssignments: make([]TagAssignmentResponse, 0, len(q.TagAssignments)),
	}

	for _, ta := range q.TagAssignments {
		resp.TagAssignments = append(resp.TagAssignments, TagAssignmentResponse{
			QuoteID: ta.QuoteID,
			TagID:   ta.TagID,
			Tag:     NewTagResponse(ta.Tag),
		})
	}

	return resp
}

// NewQuoteListResponse converts a slice of quotes. The result is never nil,
// so an empty listing encodes as [].
func NewQuoteListResponse(quotes []domain.Quote) []QuoteResponse {
	resp := make([]QuoteResponse, 0, len(quotes))
	for i := range quotes {
		resp = append(resp, NewQuoteResponse(&quotes[i]))
	}

	return resp
}

// NewTagResponse converts a domain tag.
func NewTagResponse(t domain.Tag) TagResponse {
	return TagResponse{TagID: t.ID, Name: t.Name}
}

// NewTagListResponse converts a slice of tags.
func NewTagListResponse(tags []domain.Tag) []TagResponse {
	resp := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		resp = append(resp, NewTagResponse(t))
	}

	return resp
}

// ToDomain converts a decoded response back into a domain quote.
func (r QuoteResponse) ToDomain() domain.Quote {
	q := domain.Quote{
		ID:             r.QuoteID,
		Content:        r.Content,
		Author:         r.Author,
		Likes:          r.Likes,
		TagAssignments: make([]domain.TagAssignment, 0, len(r.TagAssignments)),
	}

	for _, ta := range r.TagAssignments {
		q.TagAssignments = append(q.TagAssignments, domain.TagAssignment{
			QuoteID: ta.QuoteID,
			TagID:   ta.TagID,
			Tag:     ta.Tag.ToDomain(),
		})
	}

	return q
}

// ToDomain converts a decoded tag.
func (r TagResponse) ToDomain() domain.Tag {
	return domain.Tag{ID: r.TagID, Name: r.Name}
}

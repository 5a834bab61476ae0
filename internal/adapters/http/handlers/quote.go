package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/domain"
)

// QuoteHandler serves the quotes API.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// RegisterQuoteRoutes mounts the quote endpoints on rg, which is the API
// root group (e.g. /api/v1/quotes).
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	for _, root := range []string{"", "/"} {
		rg.GET(root, h.List)
		rg.POST(root, h.Create)
	}
	rg.GET("/top", h.Top)
	rg.GET("/tags", h.ListTags)
	rg.GET("/quotes_by_tag/:tagName", h.ByTag)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Replace)
	rg.PATCH("/:id", h.Patch)
	rg.POST("/:id/like", h.Like)
	rg.POST("/:id/tags", h.AttachTag)
	rg.DELETE("/:id/tags/:tagId", h.DetachTag)
}

// List handles GET / with optional page and pageSize (-1 for all).
func (h *QuoteHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "page and pageSize must be integers")
		return
	}

	quotes, err := h.service.List(c.Request.Context(), query.PageOrDefault(), query.PageSizeOrDefault())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(quotes))
}

// Get handles GET /{id}.
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	quote, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// Top handles GET /top?count=N.
func (h *QuoteHandler) Top(c *gin.Context) {
	var query dto.TopQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "count must be an integer")
		return
	}

	quotes, err := h.service.Top(c.Request.Context(), query.CountOrDefault())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(quotes))
}

// ByTag handles GET /quotes_by_tag/{tagName}.
func (h *QuoteHandler) ByTag(c *gin.Context) {
	quotes, err := h.service.ByTag(c.Request.Context(), c.Param("tagName"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(quotes))
}

// ListTags handles GET /tags.
func (h *QuoteHandler) ListTags(c *gin.Context) {
	tags, err := h.service.ListTags(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTagListResponse(tags))
}

// Create handles POST / and answers 201 with a Location header.
func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if !bind(c, &req) {
		return
	}

	quote, err := h.service.Create(c.Request.Context(), req.NewQuote())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Location", strings.TrimSuffix(c.Request.URL.Path, "/")+"/"+domain.FormatID(quote.ID))
	c.JSON(http.StatusCreated, dto.NewQuoteResponse(quote))
}

// Replace handles PUT /{id}. The body must carry the same quoteId.
func (h *QuoteHandler) Replace(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ReplaceQuoteRequest
	if !bind(c, &req) {
		return
	}

	if err := h.service.Replace(c.Request.Context(), id, req.Quote()); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Patch handles PATCH /{id}. Only content and author may be sent.
func (h *QuoteHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "request body must be a JSON object")
		return
	}

	patch, err := domain.ParseQuotePatch(fields)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := h.service.Patch(c.Request.Context(), id, patch); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Like handles POST /{id}/like.
func (h *QuoteHandler) Like(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	quote, err := h.service.Like(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// AttachTag handles POST /{id}/tags with {"name": "..."}.
func (h *QuoteHandler) AttachTag(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AttachTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "request body must be a JSON object")
		return
	}

	quote, err := h.service.AttachTag(c.Request.Context(), id, req.Name)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// DetachTag handles DELETE /{id}/tags/{tagId}.
func (h *QuoteHandler) DetachTag(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tagID, ok := pathID(c, "tagId")
	if !ok {
		return
	}

	quote, err := h.service.DetachTag(c.Request.Context(), id, tagID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, name+" must be an integer")
		return 0, false
	}

	return id, true
}

// bind decodes and validates a JSON body, writing the 400 itself on failure.
func bind(c *gin.Context, v any) bool {
	err := dto.BindAndValidate(c, v)
	if err == nil {
		return true
	}

	if dto.IsValidationError(err) {
		dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
		return false
	}

	dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "malformed JSON body")

	return false
}

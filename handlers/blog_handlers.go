package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"paceflow/blog-gateway/export"
	"paceflow/blog-gateway/models"
	"paceflow/blog-gateway/normalize"
	"paceflow/blog-gateway/utils"
)

// BlogListItem is one article card on the listing page: display title with
// topic fallback, plus a cleaned single-line preview of the content.
type BlogListItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Topic     string    `json:"topic"`
	CreatedAt time.Time `json:"created_at"`
	Tags      []string  `json:"tags,omitempty"`
	Preview   string    `json:"preview"`
}

// BlogDetail is a single article with its normalized content ready for
// display.
type BlogDetail struct {
	models.BlogPost
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SummarizeRequest defines the optional request body for a summary call.
type SummarizeRequest struct {
	Style string `json:"style"`
}

// ListBlogs godoc
// @Summary List generated articles
// @Description Refreshes the article cache from the blog service and returns the articles most recent first.
// @Tags blogs
// @Produce  json
// @Success 200 {array} BlogListItem "Articles, most recent first"
// @Failure 502 {object} ErrorResponse "Blog service unavailable and nothing cached"
// @Router /blogs [get]
func (h *ApplicationHandler) ListBlogs(c *fiber.Ctx) error {
	if err := h.Store.Refresh(c.UserContext()); err != nil {
		// A failed refresh never discards what was already displayed.
		h.Logger.WithError(err).Warn("Could not refresh article listing, serving cached articles")
		if len(h.Store.List()) == 0 {
			return utils.RespondWithError(c, fiber.StatusBadGateway, "Could not load articles from the blog service")
		}
	}

	posts := h.Store.List()
	items := make([]BlogListItem, 0, len(posts))
	for i := range posts {
		post := &posts[i]
		cleaned := normalize.Normalize(post.FinalPost)
		items = append(items, BlogListItem{
			ID:        post.ID,
			Title:     post.DisplayTitle(),
			Topic:     post.Topic,
			CreatedAt: post.CreatedAt,
			Tags:      post.Seo.Tags,
			Preview:   normalize.Preview(cleaned, normalize.DefaultPreviewLength),
		})
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, items)
}

// GetBlog godoc
// @Summary Get one article
// @Description Returns a single cached article with its normalized content.
// @Tags blogs
// @Produce  json
// @Param   id path string true "Article ID"
// @Success 200 {object} BlogDetail "The article"
// @Failure 404 {object} ErrorResponse "Unknown article ID"
// @Router /blogs/{id} [get]
func (h *ApplicationHandler) GetBlog(c *fiber.Ctx) error {
	id := c.Params("id")
	post, ok := h.Store.Get(id)
	if !ok {
		return utils.RespondWithError(c, fiber.StatusNotFound, "Article not found")
	}

	detail := BlogDetail{
		BlogPost: post,
		Title:    post.DisplayTitle(),
		Content:  normalize.Normalize(post.FinalPost),
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, detail)
}

// SummarizeBlog godoc
// @Summary Summarize an article
// @Description Sends the normalized article to the summarization service and returns the summary. Style defaults to "linkedin".
// @Tags blogs
// @Accept  json
// @Produce  json
// @Param   id path string true "Article ID"
// @Param   request body SummarizeRequest false "Summary style"
// @Success 200 {object} map[string]interface{} "The summary"
// @Failure 404 {object} ErrorResponse "Unknown article ID"
// @Failure 502 {object} ErrorResponse "Summarization service failed"
// @Router /blogs/{id}/summarize [post]
func (h *ApplicationHandler) SummarizeBlog(c *fiber.Ctx) error {
	id := c.Params("id")
	post, ok := h.Store.Get(id)
	if !ok {
		return utils.RespondWithError(c, fiber.StatusNotFound, "Article not found")
	}

	req := new(SummarizeRequest)
	// An empty body is fine; the style just defaults.
	_ = c.BodyParser(req)
	if req.Style == "" {
		req.Style = "linkedin"
	}

	content := normalize.Normalize(post.FinalPost)
	summary, err := h.Summarizer.Summarize(c.UserContext(), content, req.Style)
	if err != nil {
		h.Logger.WithError(err).WithField("post_id", id).Error("Summarization failed")
		return utils.RespondWithError(c, fiber.StatusBadGateway, "Could not generate a summary. Try again.")
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{
		"post_id": id,
		"style":   req.Style,
		"summary": summary,
	})
}

// ExportBlog godoc
// @Summary Export an article as HTML
// @Description Renders the normalized article to a standalone HTML file named from the article ID and returns it as a download.
// @Tags blogs
// @Produce  html
// @Param   id path string true "Article ID"
// @Success 200 {string} string "The exported file"
// @Failure 404 {object} ErrorResponse "Unknown article ID"
// @Failure 500 {object} ErrorResponse "Export failed"
// @Router /blogs/{id}/export [post]
func (h *ApplicationHandler) ExportBlog(c *fiber.Ctx) error {
	id := c.Params("id")
	post, ok := h.Store.Get(id)
	if !ok {
		return utils.RespondWithError(c, fiber.StatusNotFound, "Article not found")
	}

	path, err := export.WriteFile(&post, h.ExportDir)
	if err != nil {
		h.Logger.WithError(err).WithField("post_id", id).Error("Export failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Could not export the article")
	}

	h.Logger.WithFields(map[string]interface{}{"post_id": id, "path": path}).Info("Article exported")
	return c.Download(path, export.Filename(&post))
}

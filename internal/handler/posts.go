package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/BloggingApp/blog-store/internal/dto"
	"github.com/BloggingApp/blog-store/internal/richtext"
	"github.com/BloggingApp/blog-store/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsGetPublished(c *gin.Context) {
	posts := h.services.Post.GetPublishedPosts(c.Request.Context())

	c.JSON(http.StatusOK, dto.NewPostResponses(posts, h.services.Catalog.GetCatalog()))
}

func (h *Handler) postsGetBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))

	post := h.services.Post.GetPostBySlug(c.Request.Context(), slug)
	if post == nil || !post.IsPublished() {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errPostNotFound.Error()))
		return
	}

	html, err := richtext.RenderHTML(post.Content)
	if err != nil {
		h.logger.Sugar().Errorf("failed to render post(%s) content: %s", post.ID, err.Error())
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, errFailedToRenderDoc.Error()))
		return
	}

	response := dto.NewPostResponse(*post, h.services.Catalog.GetCatalog())
	response.HTML = html

	c.JSON(http.StatusOK, response)
}

func (h *Handler) postsGetRelated(c *gin.Context) {
	limit := service.DEFAULT_RELATED_LIMIT
	if limitString := c.Query("limit"); limitString != "" {
		parsed, err := strconv.Atoi(limitString)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errLimitMustBeInt.Error()))
			return
		}
		limit = parsed
	}

	posts := h.services.Post.RelatedPosts(c.Request.Context(), strings.TrimSpace(c.Param("slug")), limit)

	c.JSON(http.StatusOK, dto.NewPostResponses(posts, h.services.Catalog.GetCatalog()))
}

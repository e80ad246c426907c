package handler

import (
	"net/http"
	"strings"

	"github.com/BloggingApp/blog-store/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postIDParam(c *gin.Context) (string, bool) {
	postID := strings.TrimSpace(c.Param("postID"))
	if postID == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return "", false
	}
	return postID, true
}

func (h *Handler) dashboardPostsGet(c *gin.Context) {
	posts := h.services.Post.GetPosts(c.Request.Context())

	c.JSON(http.StatusOK, dto.NewPostResponses(posts, h.services.Catalog.GetCatalog()))
}

func (h *Handler) dashboardPostsGetByID(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	post := h.services.Post.GetPostByID(c.Request.Context(), postID)
	if post == nil {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errPostNotFound.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewPostResponse(*post, h.services.Catalog.GetCatalog()))
}

func (h *Handler) dashboardPostsCreate(c *gin.Context) {
	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	attrs := input.ToAttrs()
	if attrs.AuthorID == "" {
		attrs.AuthorID = c.GetString(ctxUserID)
	}

	createdPost, err := h.services.Post.CreatePost(c.Request.Context(), attrs)
	if err != nil {
		status, details := serviceError(err)
		c.JSON(status, dto.NewBasicResponse(false, details))
		return
	}

	c.JSON(http.StatusCreated, dto.NewPostResponse(*createdPost, h.services.Catalog.GetCatalog()))
}

func (h *Handler) dashboardPostsUpdate(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	var input dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updatedPost, err := h.services.Post.UpdatePost(c.Request.Context(), postID, input.ToUpdate())
	if err != nil {
		status, details := serviceError(err)
		c.JSON(status, dto.NewBasicResponse(false, details))
		return
	}
	if updatedPost == nil {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errPostNotFound.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewPostResponse(*updatedPost, h.services.Catalog.GetCatalog()))
}

func (h *Handler) dashboardPostsDelete(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.services.Post.DeletePost(c.Request.Context(), postID)
	if err != nil {
		status, details := serviceError(err)
		c.JSON(status, dto.NewBasicResponse(false, details))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errPostNotFound.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.DeletePostResponse{Deleted: true})
}

func (h *Handler) dashboardReset(c *gin.Context) {
	if err := h.services.Post.Reset(c.Request.Context()); err != nil {
		status, details := serviceError(err)
		c.JSON(status, dto.NewBasicResponse(false, details))
		return
	}

	h.logger.Sugar().Infof("posts reset by user(%s)", c.GetString(ctxUserID))

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "posts reset to the initial set"))
}

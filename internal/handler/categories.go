package handler

import (
	"net/http"
	"strings"

	"github.com/BloggingApp/blog-store/internal/dto"
	"github.com/BloggingApp/blog-store/internal/model"
	"github.com/gin-gonic/gin"
)

func (h *Handler) categoriesGet(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Catalog.GetCategories())
}

func (h *Handler) categoriesGetPosts(c *gin.Context) {
	categoryID := strings.TrimSpace(c.Param("categoryID"))
	if h.services.Catalog.GetCategoryByID(categoryID) == nil {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, errCategoryNotFound.Error()))
		return
	}

	published := []model.Post{}
	for _, p := range h.services.Post.GetPostsByCategory(c.Request.Context(), categoryID) {
		if p.IsPublished() {
			published = append(published, p)
		}
	}

	c.JSON(http.StatusOK, dto.NewPostResponses(published, h.services.Catalog.GetCatalog()))
}

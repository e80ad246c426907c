package handler

import (
	"net/http"
	"strings"

	"github.com/BloggingApp/blog-store/internal/dto"
	"github.com/BloggingApp/blog-store/pkg/utils"
	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "user-id"
	ctxRole   = "user-role"
)

var dashboardRoles = map[string]bool{
	"admin":  true,
	"editor": true,
}

// dashboardMiddleware lets through requests carrying a valid access token
// with an admin or editor role.
func (h *Handler) dashboardMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	accessToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if accessToken == "" {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	claims, err := utils.DecodeJWT(accessToken, []byte(h.cfg.AccessSecret))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		c.Abort()
		return
	}

	role := strings.ToLower(utils.ClaimString(claims, "role"))
	if !dashboardRoles[role] {
		c.JSON(http.StatusForbidden, dto.NewBasicResponse(false, errNoAccess.Error()))
		c.Abort()
		return
	}

	c.Set(ctxUserID, utils.ClaimString(claims, "sub"))
	c.Set(ctxRole, role)

	c.Next()
}

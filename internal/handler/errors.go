package handler

import (
	"errors"
	"net/http"

	"github.com/BloggingApp/blog-store/internal/service"
)

var (
	errNotAuthorized     = errors.New("user is not authorized")
	errNoAccess          = errors.New("no access")
	errInvalidPostID     = errors.New("invalid post ID")
	errPostNotFound      = errors.New("post not found")
	errCategoryNotFound  = errors.New("category not found")
	errLimitMustBeInt    = errors.New("limit must be a positive int")
	errFailedToRenderDoc = errors.New("failed to render post content")
)

// serviceError maps a service error to a status code and a message safe
// to show to the client.
func serviceError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, service.ErrConflict.Error()
	case errors.Is(err, service.ErrPersist):
		return http.StatusInternalServerError, service.ErrPersist.Error()
	default:
		return http.StatusInternalServerError, service.ErrInternal.Error()
	}
}

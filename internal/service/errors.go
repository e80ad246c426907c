package service

import "errors"

var (
	ErrInternal = errors.New("internal server error")
	ErrPersist  = errors.New("failed to persist posts")
	ErrConflict = errors.New("posts were modified concurrently, try again")
)

package dto

import "github.com/BloggingApp/blog-store/internal/model"

type PostResponse struct {
	Post    model.Post        `json:"post"`
	Display model.PostDisplay `json:"display"`
	HTML    string            `json:"html,omitempty"`
}

func NewPostResponse(post model.Post, catalog model.Catalog) PostResponse {
	return PostResponse{
		Post:    post,
		Display: model.Display(post, catalog),
	}
}

func NewPostResponses(posts []model.Post, catalog model.Catalog) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostResponse(p, catalog))
	}
	return out
}

type DeletePostResponse struct {
	Deleted bool `json:"deleted"`
}

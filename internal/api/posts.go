package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"
	"github.com/mitchellh/mapstructure"

	"vandar/client/internal/models"
)

type PostService struct {
	client *Client
}

func NewPostService(client *Client) *PostService {
	return &PostService{client: client}
}

type ListOptions struct {
	Page  int `url:"page,omitempty"`
	Limit int `url:"limit,omitempty"`
}

func (s *PostService) List(ctx context.Context, opts ListOptions) (models.PostList, error) {
	q, err := query.Values(opts)
	if err != nil {
		return models.PostList{}, fmt.Errorf("encode list options: %w", err)
	}

	var out models.PostList
	if err := s.client.do(ctx, http.MethodGet, "/posts", q, nil, &out, "Failed to fetch posts"); err != nil {
		return models.PostList{}, err
	}
	return out, nil
}

func (s *PostService) Get(ctx context.Context, id string) (models.Post, error) {
	var out models.Post
	if err := s.client.do(ctx, http.MethodGet, "/posts/"+url.PathEscape(id), nil, nil, &out, "Failed to fetch post"); err != nil {
		return models.Post{}, err
	}
	return out, nil
}

func (s *PostService) Create(ctx context.Context, input models.PostInput) (models.Post, error) {
	var out models.Post
	if err := s.client.do(ctx, http.MethodPost, "/posts", nil, input, &out, "Failed to create post"); err != nil {
		return models.Post{}, err
	}
	return out, nil
}

func (s *PostService) Update(ctx context.Context, id string, patch models.PostPatch) (models.Post, error) {
	var out models.Post
	if err := s.client.do(ctx, http.MethodPut, "/posts/"+url.PathEscape(id), nil, patch, &out, "Failed to update post"); err != nil {
		return models.Post{}, err
	}
	return out, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/posts/"+url.PathEscape(id), nil, nil, nil, "Failed to delete post")
}

func (s *PostService) Like(ctx context.Context, id string) (models.Post, error) {
	var out models.Post
	if err := s.client.do(ctx, http.MethodPost, "/posts/"+url.PathEscape(id)+"/like", nil, nil, &out, "Failed to like post"); err != nil {
		return models.Post{}, err
	}
	return out, nil
}

func (s *PostService) Mine(ctx context.Context) ([]models.Post, error) {
	var out []models.Post
	if err := s.client.do(ctx, http.MethodGet, "/posts/my-posts", nil, nil, &out, "Failed to fetch your posts"); err != nil {
		return nil, err
	}
	return out, nil
}

type SearchOptions struct {
	Query     string `url:"q" mapstructure:"-"`
	Tag       string `url:"tag,omitempty" mapstructure:"tag"`
	Author    string `url:"author,omitempty" mapstructure:"author"`
	Published *bool  `url:"published,omitempty" mapstructure:"published"`
}

func (s *PostService) Search(ctx context.Context, opts SearchOptions) (models.PostList, error) {
	q, err := query.Values(opts)
	if err != nil {
		return models.PostList{}, fmt.Errorf("encode search options: %w", err)
	}

	var out models.PostList
	if err := s.client.do(ctx, http.MethodGet, "/posts/search", q, nil, &out, "Failed to search posts"); err != nil {
		return models.PostList{}, err
	}
	return out, nil
}

// SearchWithFilters accepts loosely-typed filters (tag, author, published)
// alongside the free-text query.
func (s *PostService) SearchWithFilters(ctx context.Context, q string, filters map[string]any) (models.PostList, error) {
	opts := SearchOptions{Query: q}
	if len(filters) > 0 {
		if err := mapstructure.Decode(filters, &opts); err != nil {
			return models.PostList{}, fmt.Errorf("decode search filters: %w", err)
		}
	}
	return s.Search(ctx, opts)
}

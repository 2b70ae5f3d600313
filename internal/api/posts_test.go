package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vandar/client/internal/api"
	"vandar/client/internal/models"
)

func TestPostService_List(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/posts", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		json.NewEncoder(w).Encode(models.PostList{
			Posts: []models.Post{{ID: "a"}, {ID: "b"}},
			Total: 12,
		})
	}))

	list, err := api.NewPostService(client).List(context.Background(), api.ListOptions{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, list.Posts, 2)
	assert.Equal(t, 12, list.Total)
}

func TestPostService_GetEscapesID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/posts/a%2Fb", r.URL.EscapedPath())
		json.NewEncoder(w).Encode(models.Post{ID: "a/b"})
	}))

	post, err := api.NewPostService(client).Get(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "a/b", post.ID)
}

func TestPostService_Create(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/posts", r.URL.Path)

		var input models.PostInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "T", input.Title)
		assert.Equal(t, []string{"go", "testing"}, input.Tags)

		json.NewEncoder(w).Encode(models.Post{ID: "new", Title: input.Title, Tags: input.Tags})
	}))

	post, err := api.NewPostService(client).Create(context.Background(), models.PostInput{
		Title:   "T",
		Content: "body",
		Tags:    []string{"go", "testing"},
	})
	require.NoError(t, err)
	assert.Equal(t, "new", post.ID)
}

func TestPostService_UpdateSendsOnlyChangedFields(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/posts/42", r.URL.Path)

		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Equal(t, map[string]any{"title": "New title"}, raw)

		json.NewEncoder(w).Encode(models.Post{ID: "42", Title: "New title"})
	}))

	title := "New title"
	post, err := api.NewPostService(client).Update(context.Background(), "42", models.PostPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New title", post.Title)
}

func TestPostService_DeleteAndLike(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete && r.URL.Path == "/api/posts/42":
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodPost && r.URL.Path == "/api/posts/7/like":
			json.NewEncoder(w).Encode(models.Post{ID: "7", Likes: 3})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	svc := api.NewPostService(client)

	require.NoError(t, svc.Delete(context.Background(), "42"))

	post, err := svc.Like(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, 3, post.Likes)
}

func TestPostService_Mine(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/posts/my-posts", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Post{{ID: "m1"}, {ID: "m2"}})
	}))

	posts, err := api.NewPostService(client).Mine(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestPostService_SearchWithFilters(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/posts/search", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "golang", q.Get("q"))
		assert.Equal(t, "testing", q.Get("tag"))
		assert.Equal(t, "true", q.Get("published"))
		assert.Empty(t, q.Get("author"))

		json.NewEncoder(w).Encode(models.PostList{Posts: []models.Post{{ID: "s1"}}, Total: 1})
	}))

	list, err := api.NewPostService(client).SearchWithFilters(context.Background(), "golang", map[string]any{
		"tag":       "testing",
		"published": true,
	})
	require.NoError(t, err)
	assert.Len(t, list.Posts, 1)
}

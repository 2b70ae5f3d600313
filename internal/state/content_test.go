package state_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vandar/client/internal/models"
)

func TestFetchPosts(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/posts", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		writeJSON(w, models.PostList{
			Posts: []models.Post{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}},
			Total: 42,
		})
	}))

	require.NoError(t, store.FetchPosts(context.Background(), 1, 10))

	content := store.Content()
	assert.False(t, content.IsLoading)
	assert.Empty(t, content.Error)
	require.Len(t, content.Posts, 2)
	assert.Equal(t, "a", content.Posts[0].ID)
	assert.Equal(t, 42, content.TotalPosts)
}

func TestFetchPosts_FailureKeepsCache(t *testing.T) {
	fail := false
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			writeJSON(w, map[string]string{"message": "server on fire"})
			return
		}
		writeJSON(w, models.PostList{Posts: []models.Post{{ID: "a"}}, Total: 1})
	}))

	require.NoError(t, store.FetchPosts(context.Background(), 1, 10))

	fail = true
	err := store.FetchPosts(context.Background(), 2, 10)
	require.Error(t, err)

	content := store.Content()
	assert.False(t, content.IsLoading)
	assert.Equal(t, "server on fire", content.Error)
	assert.Len(t, content.Posts, 1)
}

func TestFetchPost(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/posts/7", r.URL.Path)
		writeJSON(w, models.Post{ID: "7", Title: "Seven"})
	}))

	require.NoError(t, store.FetchPost(context.Background(), "7"))

	content := store.Content()
	require.NotNil(t, content.CurrentPost)
	assert.Equal(t, "Seven", content.CurrentPost.Title)

	store.ClearCurrentPost()
	assert.Nil(t, store.Content().CurrentPost)
}

func TestCreatePost_PrependsKeepingOrder(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/posts":
			if r.Method == http.MethodGet {
				writeJSON(w, models.PostList{
					Posts: []models.Post{{ID: "old1"}, {ID: "old2"}},
					Total: 2,
				})
				return
			}
			writeJSON(w, models.Post{ID: "new", Title: "T"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	require.NoError(t, store.FetchPosts(context.Background(), 1, 10))

	post, err := store.CreatePost(context.Background(), models.PostInput{Title: "T", Content: "body"})
	require.NoError(t, err)
	assert.Equal(t, "new", post.ID)

	content := store.Content()
	require.Len(t, content.Posts, 3)
	assert.Equal(t, "new", content.Posts[0].ID)
	assert.Equal(t, "old1", content.Posts[1].ID)
	assert.Equal(t, "old2", content.Posts[2].ID)
}

func TestDeletePost_RemovesFromBothLists(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/posts":
			writeJSON(w, models.PostList{Posts: []models.Post{{ID: "42"}, {ID: "43"}}, Total: 2})
		case r.Method == http.MethodGet && r.URL.Path == "/api/posts/my-posts":
			writeJSON(w, []models.Post{{ID: "42"}, {ID: "99"}})
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	require.NoError(t, store.FetchPosts(context.Background(), 1, 10))
	require.NoError(t, store.FetchMyPosts(context.Background()))

	require.NoError(t, store.DeletePost(context.Background(), "42"))

	content := store.Content()
	require.Len(t, content.Posts, 1)
	assert.Equal(t, "43", content.Posts[0].ID)
	require.Len(t, content.MyPosts, 1)
	assert.Equal(t, "99", content.MyPosts[0].ID)

	// Deleting an id that is not cached is a no-op.
	require.NoError(t, store.DeletePost(context.Background(), "42"))
	assert.Len(t, store.Content().Posts, 1)
	assert.Len(t, store.Content().MyPosts, 1)
}

func TestLikePost_ReplacesMatchingEntries(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/posts":
			writeJSON(w, models.PostList{
				Posts: []models.Post{{ID: "7", Likes: 0}, {ID: "8", Likes: 5}},
				Total: 2,
			})
		case r.Method == http.MethodGet && r.URL.Path == "/api/posts/7":
			writeJSON(w, models.Post{ID: "7", Likes: 0})
		case r.Method == http.MethodPost && r.URL.Path == "/api/posts/7/like":
			writeJSON(w, models.Post{ID: "7", Likes: 1})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	require.NoError(t, store.FetchPosts(context.Background(), 1, 10))
	require.NoError(t, store.FetchPost(context.Background(), "7"))

	require.NoError(t, store.LikePost(context.Background(), "7"))

	content := store.Content()
	assert.Equal(t, 1, content.Posts[0].Likes)
	assert.Equal(t, 5, content.Posts[1].Likes)
	require.NotNil(t, content.CurrentPost)
	assert.Equal(t, 1, content.CurrentPost.Likes)
}

func TestUpdatePost_PatchesById(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/posts":
			writeJSON(w, models.PostList{
				Posts: []models.Post{{ID: "1", Title: "Old"}, {ID: "2", Title: "Other"}},
				Total: 2,
			})
		case r.Method == http.MethodGet && r.URL.Path == "/api/posts/my-posts":
			writeJSON(w, []models.Post{{ID: "1", Title: "Old"}})
		case r.Method == http.MethodPut && r.URL.Path == "/api/posts/1":
			writeJSON(w, models.Post{ID: "1", Title: "New"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	require.NoError(t, store.FetchPosts(context.Background(), 1, 10))
	require.NoError(t, store.FetchMyPosts(context.Background()))

	title := "New"
	_, err := store.UpdatePost(context.Background(), "1", models.PostPatch{Title: &title})
	require.NoError(t, err)

	content := store.Content()
	assert.Equal(t, "New", content.Posts[0].Title)
	assert.Equal(t, "Other", content.Posts[1].Title)
	assert.Equal(t, "New", content.MyPosts[0].Title)
}

func TestSearchPosts_ReplacesCollection(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/posts/search", r.URL.Path)
		assert.Equal(t, "golang", r.URL.Query().Get("q"))
		assert.Equal(t, "tips", r.URL.Query().Get("tag"))

		writeJSON(w, models.PostList{Posts: []models.Post{{ID: "s1"}}, Total: 1})
	}))

	require.NoError(t, store.SearchPosts(context.Background(), "golang", map[string]any{"tag": "tips"}))

	content := store.Content()
	require.Len(t, content.Posts, 1)
	assert.Equal(t, "s1", content.Posts[0].ID)
	assert.Equal(t, 1, content.TotalPosts)
}

// Snapshots returned by Content() must stay stable when a later mutation
// rewrites the cached collections.
func TestContentSnapshot_UnchangedByLaterMutations(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/posts":
			writeJSON(w, models.PostList{
				Posts: []models.Post{{ID: "42", Likes: 0}, {ID: "43", Likes: 0}},
				Total: 2,
			})
		case r.Method == http.MethodGet && r.URL.Path == "/api/posts/my-posts":
			writeJSON(w, []models.Post{{ID: "42"}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/posts/43/like":
			writeJSON(w, models.Post{ID: "43", Likes: 1})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/posts/42":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	require.NoError(t, store.FetchPosts(context.Background(), 1, 10))
	require.NoError(t, store.FetchMyPosts(context.Background()))
	snapshot := store.Content()

	require.NoError(t, store.LikePost(context.Background(), "43"))
	require.NoError(t, store.DeletePost(context.Background(), "42"))

	require.Len(t, snapshot.Posts, 2)
	assert.Equal(t, "42", snapshot.Posts[0].ID)
	assert.Equal(t, "43", snapshot.Posts[1].ID)
	assert.Zero(t, snapshot.Posts[1].Likes)
	require.Len(t, snapshot.MyPosts, 1)
	assert.Equal(t, "42", snapshot.MyPosts[0].ID)

	content := store.Content()
	require.Len(t, content.Posts, 1)
	assert.Equal(t, "43", content.Posts[0].ID)
	assert.Equal(t, 1, content.Posts[0].Likes)
	assert.Empty(t, content.MyPosts)
}

func TestSetPage(t *testing.T) {
	store, _ := newTestStore(t, http.NotFoundHandler())

	assert.Equal(t, 1, store.Content().CurrentPage)
	store.SetPage(3)
	assert.Equal(t, 3, store.Content().CurrentPage)
}

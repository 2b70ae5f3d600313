package state

import (
	"context"

	"vandar/client/internal/api"
	"vandar/client/internal/models"
)

// ContentState caches what the server returned, in server order, except for
// locally prepended new posts and locally removed deleted ones.
type ContentState struct {
	Posts       []models.Post
	CurrentPost *models.Post
	MyPosts     []models.Post
	IsLoading   bool
	Error       string
	TotalPosts  int
	CurrentPage int
}

func (s *Store) FetchPosts(ctx context.Context, page, limit int) error {
	s.beginFetch()

	list, err := s.posts.List(ctx, api.ListOptions{Page: page, Limit: limit})
	if err != nil {
		s.failContent(err)
		return err
	}

	s.update(func() {
		s.content.IsLoading = false
		s.content.Posts = list.Posts
		s.content.TotalPosts = list.Total
	})
	return nil
}

func (s *Store) FetchPost(ctx context.Context, id string) error {
	s.beginFetch()

	post, err := s.posts.Get(ctx, id)
	if err != nil {
		s.failContent(err)
		return err
	}

	s.update(func() {
		s.content.IsLoading = false
		s.content.CurrentPost = &post
	})
	return nil
}

func (s *Store) FetchMyPosts(ctx context.Context) error {
	s.beginFetch()

	posts, err := s.posts.Mine(ctx)
	if err != nil {
		s.failContent(err)
		return err
	}

	s.update(func() {
		s.content.IsLoading = false
		s.content.MyPosts = posts
	})
	return nil
}

func (s *Store) SearchPosts(ctx context.Context, query string, filters map[string]any) error {
	s.beginFetch()

	list, err := s.posts.SearchWithFilters(ctx, query, filters)
	if err != nil {
		s.failContent(err)
		return err
	}

	s.update(func() {
		s.content.IsLoading = false
		s.content.Posts = list.Posts
		s.content.TotalPosts = list.Total
	})
	return nil
}

// CreatePost prepends the created post; existing entries keep their order.
func (s *Store) CreatePost(ctx context.Context, input models.PostInput) (models.Post, error) {
	s.update(func() { s.content.IsLoading = true })

	post, err := s.posts.Create(ctx, input)
	if err != nil {
		s.update(func() {
			s.content.IsLoading = false
			s.content.Error = err.Error()
			s.pushNotification(SeverityError, err.Error())
		})
		return models.Post{}, err
	}

	s.update(func() {
		s.content.IsLoading = false
		s.content.Posts = append([]models.Post{post}, s.content.Posts...)
		s.pushNotification(SeveritySuccess, "Post created successfully!")
	})
	return post, nil
}

// UpdatePost patches the returned record into the cached collections by id.
func (s *Store) UpdatePost(ctx context.Context, id string, patch models.PostPatch) (models.Post, error) {
	s.update(func() { s.content.IsLoading = true })

	post, err := s.posts.Update(ctx, id, patch)
	if err != nil {
		s.update(func() {
			s.content.IsLoading = false
			s.content.Error = err.Error()
			s.pushNotification(SeverityError, err.Error())
		})
		return models.Post{}, err
	}

	s.update(func() {
		s.content.IsLoading = false
		s.content.Posts = replaceByID(s.content.Posts, post)
		s.content.MyPosts = replaceByID(s.content.MyPosts, post)
		if s.content.CurrentPost != nil && s.content.CurrentPost.ID == post.ID {
			s.content.CurrentPost = &post
		}
		s.pushNotification(SeveritySuccess, "Post updated successfully!")
	})
	return post, nil
}

// DeletePost removes the post from both cached lists; deleting an id that
// is not cached is a no-op.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		s.update(func() {
			s.content.Error = err.Error()
			s.pushNotification(SeverityError, err.Error())
		})
		return err
	}

	s.update(func() {
		s.content.Posts = removeByID(s.content.Posts, id)
		s.content.MyPosts = removeByID(s.content.MyPosts, id)
		s.pushNotification(SeveritySuccess, "Post deleted successfully!")
	})
	return nil
}

// LikePost swaps in the server-returned record wherever the id matches.
func (s *Store) LikePost(ctx context.Context, id string) error {
	post, err := s.posts.Like(ctx, id)
	if err != nil {
		s.update(func() { s.content.Error = err.Error() })
		return err
	}

	s.update(func() {
		s.content.Posts = replaceByID(s.content.Posts, post)
		if s.content.CurrentPost != nil && s.content.CurrentPost.ID == post.ID {
			s.content.CurrentPost = &post
		}
	})
	return nil
}

func (s *Store) ClearCurrentPost() {
	s.update(func() { s.content.CurrentPost = nil })
}

func (s *Store) SetPage(page int) {
	s.update(func() { s.content.CurrentPage = page })
}

func (s *Store) beginFetch() {
	s.update(func() {
		s.content.IsLoading = true
		s.content.Error = ""
	})
}

func (s *Store) failContent(err error) {
	s.update(func() {
		s.content.IsLoading = false
		s.content.Error = err.Error()
	})
}

// replaceByID and removeByID never mutate their input; snapshots handed out
// by the store share the backing array, so mutators rebuild the slice.
func replaceByID(posts []models.Post, post models.Post) []models.Post {
	for i := range posts {
		if posts[i].ID == post.ID {
			out := make([]models.Post, len(posts))
			copy(out, posts)
			out[i] = post
			return out
		}
	}
	return posts
}

func removeByID(posts []models.Post, id string) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vandar/client/internal/models"
)

func newPostsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Browse and manage posts",
	}

	cmd.AddCommand(
		newPostsListCommand(a),
		newPostsGetCommand(a),
		newPostsCreateCommand(a),
		newPostsUpdateCommand(a),
		newPostsDeleteCommand(a),
		newPostsLikeCommand(a),
		newPostsMineCommand(a),
		newPostsSearchCommand(a),
	)

	return cmd
}

func newPostsListCommand(a *app) *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List published posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.FetchPosts(cmd.Context(), page, limit); err != nil {
				return err
			}
			a.store.SetPage(page)

			content := a.store.Content()
			for _, p := range content.Posts {
				printPostLine(cmd, p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "page %d, %d posts total\n", content.CurrentPage, content.TotalPosts)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "posts per page")

	return cmd
}

func newPostsGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.FetchPost(cmd.Context(), args[0]); err != nil {
				return err
			}

			p := a.store.Content().CurrentPost
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", p.Title, p.Content)
			if len(p.Tags) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\ntags: %s\n", strings.Join(p.Tags, ", "))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d likes, %d comments, %d min read\n", p.Likes, p.Comments, p.ReadingTime)
			return nil
		},
	}
}

func newPostsCreateCommand(a *app) *cobra.Command {
	var input models.PostInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd); err != nil {
				return err
			}

			post, err := a.store.CreatePost(cmd.Context(), input)
			a.flushNotifications(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), post.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "post title")
	cmd.Flags().StringVar(&input.Content, "content", "", "post body")
	cmd.Flags().StringVar(&input.Excerpt, "excerpt", "", "short excerpt")
	cmd.Flags().StringSliceVar(&input.Tags, "tags", nil, "comma-separated tags")
	cmd.Flags().BoolVar(&input.Published, "publish", false, "publish immediately")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newPostsUpdateCommand(a *app) *cobra.Command {
	var title, content, excerpt string
	var tags []string
	var published bool

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update fields of a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd); err != nil {
				return err
			}

			var patch models.PostPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("content") {
				patch.Content = &content
			}
			if cmd.Flags().Changed("excerpt") {
				patch.Excerpt = &excerpt
			}
			if cmd.Flags().Changed("tags") {
				patch.Tags = tags
			}
			if cmd.Flags().Changed("publish") {
				patch.Published = &published
			}

			_, err := a.store.UpdatePost(cmd.Context(), args[0], patch)
			a.flushNotifications(cmd)
			return err
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&content, "content", "", "post body")
	cmd.Flags().StringVar(&excerpt, "excerpt", "", "short excerpt")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags")
	cmd.Flags().BoolVar(&published, "publish", false, "published flag")

	return cmd
}

func newPostsDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd); err != nil {
				return err
			}

			err := a.store.DeletePost(cmd.Context(), args[0])
			a.flushNotifications(cmd)
			return err
		},
	}
}

func newPostsLikeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "like ID",
		Short: "Like a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd); err != nil {
				return err
			}
			return a.store.LikePost(cmd.Context(), args[0])
		},
	}
}

func newPostsMineCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your own posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd); err != nil {
				return err
			}

			if err := a.store.FetchMyPosts(cmd.Context()); err != nil {
				return err
			}
			for _, p := range a.store.Content().MyPosts {
				printPostLine(cmd, p)
			}
			return nil
		},
	}
}

func newPostsSearchCommand(a *app) *cobra.Command {
	var tag, author string
	var published bool

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := map[string]any{}
			if tag != "" {
				filters["tag"] = tag
			}
			if author != "" {
				filters["author"] = author
			}
			if cmd.Flags().Changed("published") {
				filters["published"] = published
			}

			if err := a.store.SearchPosts(cmd.Context(), args[0], filters); err != nil {
				return err
			}
			for _, p := range a.store.Content().Posts {
				printPostLine(cmd, p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "filter by tag")
	cmd.Flags().StringVar(&author, "author", "", "filter by author id")
	cmd.Flags().BoolVar(&published, "published", false, "filter by published state")

	return cmd
}

func printPostLine(cmd *cobra.Command, p models.Post) {
	author := p.AuthorID
	if p.Author != nil {
		author = p.Author.Name
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %-40s  by %s  (%d likes)\n", p.ID, p.Title, author, p.Likes)
}

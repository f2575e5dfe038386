package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/microblog/internal/forms"
)

func TestAddComment(t *testing.T) {
	f := setup(t)
	posts := f.postService()
	svc := NewCommentService(f.comments, f.posts)
	ctx := context.Background()

	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	post, err := posts.Create(ctx, alice.ID, &forms.PostForm{Text: "hello"})
	require.NoError(t, err)

	c, err := svc.Add(ctx, bob.ID, post.ID, &forms.CommentForm{Text: "nice"})
	require.NoError(t, err)
	require.Equal(t, bob.ID, c.AuthorID)
	require.Equal(t, post.ID, c.PostID)
}

func TestAddComment_EmptyText(t *testing.T) {
	f := setup(t)
	posts := f.postService()
	svc := NewCommentService(f.comments, f.posts)
	ctx := context.Background()

	alice := f.user(t, "alice")
	post, err := posts.Create(ctx, alice.ID, &forms.PostForm{Text: "hello"})
	require.NoError(t, err)

	_, err = svc.Add(ctx, alice.ID, post.ID, &forms.CommentForm{Text: "  "})
	require.ErrorIs(t, err, ErrEmptyText)

	cnt, err := f.comments.CountByPost(ctx, post.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, cnt)
}

func TestAddComment_RequiresActor(t *testing.T) {
	f := setup(t)
	posts := f.postService()
	svc := NewCommentService(f.comments, f.posts)
	ctx := context.Background()

	alice := f.user(t, "alice")
	post, err := posts.Create(ctx, alice.ID, &forms.PostForm{Text: "hello"})
	require.NoError(t, err)

	_, err = svc.Add(ctx, "", post.ID, &forms.CommentForm{Text: "hi"})
	require.ErrorIs(t, err, ErrNotAuthenticated)

	cnt, err := f.comments.CountByPost(ctx, post.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, cnt)
}

func TestAddComment_UnknownPost(t *testing.T) {
	f := setup(t)
	svc := NewCommentService(f.comments, f.posts)
	alice := f.user(t, "alice")

	_, err := svc.Add(context.Background(), alice.ID, uuid.New().String(), &forms.CommentForm{Text: "hi"})
	require.ErrorIs(t, err, ErrPostNotFound)
}

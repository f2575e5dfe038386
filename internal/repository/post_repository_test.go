package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPostList_NewestFirst(t *testing.T) {
	db := setupDB(t)
	posts := NewPostRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		seedPost(t, db, author.ID, nil, fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	got, err := posts.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i := 0; i < len(got)-1; i++ {
		require.False(t, got[i].CreatedAt.Before(got[i+1].CreatedAt))
	}
	require.Equal(t, "post 4", got[0].Text)
	require.Equal(t, "post 0", got[4].Text)
}

func TestPostList_OffsetLimit(t *testing.T) {
	db := setupDB(t)
	posts := NewPostRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 13; i++ {
		seedPost(t, db, author.ID, nil, fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	page1, err := posts.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, page1, 10)

	page2, err := posts.List(ctx, 10, 10)
	require.NoError(t, err)
	require.Len(t, page2, 3)
	require.Equal(t, "post 2", page2[0].Text)
}

func TestListByAuthors(t *testing.T) {
	db := setupDB(t)
	posts := NewPostRepository(db)
	ctx := context.Background()

	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")
	base := time.Now().Add(-time.Hour)
	seedPost(t, db, a.ID, nil, "by alice", base)
	seedPost(t, db, b.ID, nil, "by bob", base.Add(time.Minute))

	got, err := posts.ListByAuthors(ctx, []string{b.ID}, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "by bob", got[0].Text)

	// empty author set means an empty listing, not an unscoped query
	got, err = posts.ListByAuthors(ctx, nil, 0, 10)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestPostGetByID_PreloadsRelations(t *testing.T) {
	db := setupDB(t)
	posts := NewPostRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	p := seedPost(t, db, author.ID, nil, "hello", time.Now())

	got, err := posts.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Author)
	require.Equal(t, "alice", got.Author.Username)
}

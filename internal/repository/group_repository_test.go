package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/microblog/internal/model"
)

func TestGroupDelete_KeepsPosts(t *testing.T) {
	db := setupDB(t)
	groups := NewGroupRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")
	g := &model.Group{ID: uuid.New().String(), Slug: "cats", Title: "Cats"}
	require.NoError(t, groups.Create(ctx, g))

	now := time.Now()
	p1 := seedPost(t, db, author.ID, &g.ID, "first", now)
	p2 := seedPost(t, db, author.ID, &g.ID, "second", now.Add(time.Second))

	require.NoError(t, groups.Delete(ctx, g.ID))

	_, err := groups.GetBySlug(ctx, "cats")
	require.Error(t, err)

	// posts survive with the group reference cleared
	for _, id := range []string{p1.ID, p2.ID} {
		got, err := posts.GetByID(ctx, id)
		require.NoError(t, err)
		require.Nil(t, got.GroupID)
	}
	cnt, err := posts.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, cnt)
}

func TestGroupSlugUnique(t *testing.T) {
	db := setupDB(t)
	groups := NewGroupRepository(db)
	ctx := context.Background()

	require.NoError(t, groups.Create(ctx, &model.Group{ID: uuid.New().String(), Slug: "cats", Title: "Cats"}))
	err := groups.Create(ctx, &model.Group{ID: uuid.New().String(), Slug: "cats", Title: "Other cats"})
	require.Error(t, err)
}

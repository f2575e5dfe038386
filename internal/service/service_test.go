package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

type fixture struct {
	db       *gorm.DB
	users    repository.UserRepository
	posts    repository.PostRepository
	groups   repository.GroupRepository
	comments repository.CommentRepository
	follows  repository.FollowRepository
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // keep the in-memory database on one connection
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{}))
	return &fixture{
		db:       db,
		users:    repository.NewUserRepository(db),
		posts:    repository.NewPostRepository(db),
		groups:   repository.NewGroupRepository(db),
		comments: repository.NewCommentRepository(db),
		follows:  repository.NewFollowRepository(db),
	}
}

func (f *fixture) user(t *testing.T, username string) *model.User {
	t.Helper()
	u := &model.User{ID: uuid.New().String(), Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixture) postService() PostService {
	return NewPostService(f.posts, f.groups, f.comments)
}

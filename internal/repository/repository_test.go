package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

func setupDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// one connection keeps the in-memory database alive across queries
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t testing.TB, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{ID: uuid.New().String(), Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedPost(t testing.TB, db *gorm.DB, authorID string, groupID *string, text string, at time.Time) *model.Post {
	t.Helper()
	p := &model.Post{
		ID:        uuid.New().String(),
		AuthorID:  authorID,
		GroupID:   groupID,
		Text:      text,
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/authz"
	"github.com/d60-Lab/microblog/internal/forms"
	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

type CommentService interface {
	// Add creates a comment bound to the acting user and the target post.
	Add(ctx context.Context, actorID, postID string, form *forms.CommentForm) (*model.Comment, error)
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) CommentService {
	return &commentService{comments: comments, posts: posts}
}

func (s *commentService) Add(ctx context.Context, actorID, postID string, form *forms.CommentForm) (*model.Comment, error) {
	if !authz.CanComment(actorID).Allowed() {
		return nil, ErrNotAuthenticated
	}
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if strings.TrimSpace(form.Text) == "" {
		return nil, ErrEmptyText
	}
	c := &model.Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		AuthorID:  actorID,
		Text:      form.Text,
		CreatedAt: time.Now(),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

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

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrGroupNotFound    = errors.New("group not found")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotAuthor        = errors.New("not the post author")
	ErrEmptyText        = errors.New("text must not be empty")
)

const previewRunes = 30

// PostDetail is the read model for a single post page.
type PostDetail struct {
	Post            *model.Post      `json:"post"`
	Preview         string           `json:"preview"`
	Comments        []*model.Comment `json:"comments"`
	AuthorPostCount int64            `json:"author_post_count"`
}

type PostService interface {
	// Create persists a new post authored by the acting user. The author
	// always comes from the session, never from the form.
	Create(ctx context.Context, actorID string, form *forms.PostForm) (*model.Post, error)
	// Edit updates text/group/image in place. Non-authors get ErrNotAuthor
	// and the post is left untouched.
	Edit(ctx context.Context, actorID, postID string, form *forms.PostForm) (*model.Post, error)
	Get(ctx context.Context, postID string) (*model.Post, error)
	Detail(ctx context.Context, postID string) (*PostDetail, error)
	Index(ctx context.Context, page int) (*PostPage, error)
	GroupPage(ctx context.Context, slug string, page int) (*model.Group, *PostPage, error)
	ProfilePage(ctx context.Context, authorID string, page int) (*PostPage, error)
}

type postService struct {
	posts    repository.PostRepository
	groups   repository.GroupRepository
	comments repository.CommentRepository
}

func NewPostService(posts repository.PostRepository, groups repository.GroupRepository, comments repository.CommentRepository) PostService {
	return &postService{posts: posts, groups: groups, comments: comments}
}

func (s *postService) Create(ctx context.Context, actorID string, form *forms.PostForm) (*model.Post, error) {
	if !authz.CanCreatePost(actorID).Allowed() {
		return nil, ErrNotAuthenticated
	}
	if strings.TrimSpace(form.Text) == "" {
		return nil, ErrEmptyText
	}
	now := time.Now()
	post := &model.Post{
		ID:        uuid.New().String(),
		AuthorID:  actorID,
		GroupID:   form.GroupID,
		Text:      form.Text,
		Image:     form.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Edit(ctx context.Context, actorID, postID string, form *forms.PostForm) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	switch authz.CanEditPost(actorID, post) {
	case authz.DenialNone:
	case authz.DenialNotAuthor:
		return nil, ErrNotAuthor
	default:
		return nil, ErrNotAuthenticated
	}
	if strings.TrimSpace(form.Text) == "" {
		return nil, ErrEmptyText
	}
	post.Text = form.Text
	post.GroupID = form.GroupID
	post.Image = form.Image
	post.UpdatedAt = time.Now()
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Get(ctx context.Context, postID string) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) Detail(ctx context.Context, postID string) (*PostDetail, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	count, err := s.posts.CountByAuthor(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}
	return &PostDetail{
		Post:            post,
		Preview:         preview(post.Text),
		Comments:        comments,
		AuthorPostCount: count,
	}, nil
}

func (s *postService) Index(ctx context.Context, page int) (*PostPage, error) {
	page = normalizePage(page)
	items, err := s.posts.List(ctx, (page-1)*ListPageSize, ListPageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.posts.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &PostPage{Items: items, Page: page, PageSize: ListPageSize, Total: total}, nil
}

func (s *postService) GroupPage(ctx context.Context, slug string, page int) (*model.Group, *PostPage, error) {
	group, err := s.groups.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrGroupNotFound
		}
		return nil, nil, err
	}
	page = normalizePage(page)
	items, err := s.posts.ListByGroup(ctx, group.ID, (page-1)*ListPageSize, ListPageSize)
	if err != nil {
		return nil, nil, err
	}
	total, err := s.posts.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, nil, err
	}
	return group, &PostPage{Items: items, Page: page, PageSize: ListPageSize, Total: total}, nil
}

func (s *postService) ProfilePage(ctx context.Context, authorID string, page int) (*PostPage, error) {
	page = normalizePage(page)
	items, err := s.posts.ListByAuthor(ctx, authorID, (page-1)*ListPageSize, ListPageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.posts.CountByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return &PostPage{Items: items, Page: page, PageSize: ListPageSize, Total: total}, nil
}

func preview(text string) string {
	r := []rune(text)
	if len(r) <= previewRunes {
		return text
	}
	return string(r[:previewRunes])
}

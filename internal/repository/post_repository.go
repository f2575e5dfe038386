package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]*model.Post, error)
	ListByGroup(ctx context.Context, groupID string, offset, limit int) ([]*model.Post, error)
	ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]*model.Post, error)
	ListByAuthors(ctx context.Context, authorIDs []string, offset, limit int) ([]*model.Post, error)
	Count(ctx context.Context) (int64, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
	CountByGroup(ctx context.Context, groupID string) (int64, error)
	CountByAuthors(ctx context.Context, authorIDs []string) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	// full save; author_id is never rebound by callers
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").Preload("Group").
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Post{}, "id = ?", id).Error
}

// listings are newest-first; id breaks created_at ties deterministically
func (r *postRepository) list(ctx context.Context, offset, limit int, cond func(*gorm.DB) *gorm.DB) ([]*model.Post, error) {
	var res []*model.Post
	q := r.db.WithContext(ctx).
		Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit)
	if cond != nil {
		q = cond(q)
	}
	err := q.Find(&res).Error
	return res, err
}

func (r *postRepository) List(ctx context.Context, offset, limit int) ([]*model.Post, error) {
	return r.list(ctx, offset, limit, nil)
}

func (r *postRepository) ListByGroup(ctx context.Context, groupID string, offset, limit int) ([]*model.Post, error) {
	return r.list(ctx, offset, limit, func(q *gorm.DB) *gorm.DB {
		return q.Where("group_id = ?", groupID)
	})
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]*model.Post, error) {
	return r.list(ctx, offset, limit, func(q *gorm.DB) *gorm.DB {
		return q.Where("author_id = ?", authorID)
	})
}

func (r *postRepository) ListByAuthors(ctx context.Context, authorIDs []string, offset, limit int) ([]*model.Post, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, offset, limit, func(q *gorm.DB) *gorm.DB {
		return q.Where("author_id IN ?", authorIDs)
	})
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Where("author_id = ?", authorID).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) CountByGroup(ctx context.Context, groupID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Where("group_id = ?", groupID).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) CountByAuthors(ctx context.Context, authorIDs []string) (int64, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Where("author_id IN ?", authorIDs).Count(&cnt).Error
	return cnt, err
}

package service

import (
	"context"

	"github.com/d60-Lab/microblog/internal/repository"
)

// FeedService assembles the per-user following feed: posts by followed
// authors only, newest-first. Pull model, no fanout.
type FeedService interface {
	Following(ctx context.Context, userID string, page int) (*PostPage, error)
}

type feedService struct {
	follows repository.FollowRepository
	posts   repository.PostRepository
}

func NewFeedService(follows repository.FollowRepository, posts repository.PostRepository) FeedService {
	return &feedService{follows: follows, posts: posts}
}

func (s *feedService) Following(ctx context.Context, userID string, page int) (*PostPage, error) {
	page = normalizePage(page)
	authorIDs, err := s.follows.ListAuthorIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.posts.ListByAuthors(ctx, authorIDs, (page-1)*FeedPageSize, FeedPageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.posts.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	return &PostPage{Items: items, Page: page, PageSize: FeedPageSize, Total: total}, nil
}

package service

import (
	"context"

	"github.com/d60-Lab/microblog/internal/authz"
	"github.com/d60-Lab/microblog/internal/repository"
)

// FollowOutcome reports what a Follow call did. Self-follow and duplicate
// follow are deliberate no-ops, not errors: callers redirect instead of
// failing.
type FollowOutcome int

const (
	FollowCreated FollowOutcome = iota
	FollowSelf
	FollowDuplicate
)

// RelationshipService 关系链服务
type RelationshipService interface {
	Follow(ctx context.Context, followerID, authorID string) (FollowOutcome, error)
	Unfollow(ctx context.Context, followerID, authorID string) error
	Following(ctx context.Context, followerID, authorID string) (bool, error)
}

type relationshipService struct {
	follows repository.FollowRepository
}

func NewRelationshipService(follows repository.FollowRepository) RelationshipService {
	return &relationshipService{follows: follows}
}

func (s *relationshipService) Follow(ctx context.Context, followerID, authorID string) (FollowOutcome, error) {
	exists := false
	if followerID != "" && followerID != authorID {
		var err error
		exists, err = s.follows.Exists(ctx, followerID, authorID)
		if err != nil {
			return 0, err
		}
	}
	switch authz.CanFollow(followerID, authorID, exists) {
	case authz.DenialNone:
	case authz.DenialSelfFollow:
		return FollowSelf, nil
	case authz.DenialAlreadyFollowing:
		return FollowDuplicate, nil
	default:
		return 0, ErrNotAuthenticated
	}
	// the unique (follower_id, author_id) index makes a racing duplicate
	// create a no-op as well
	if err := s.follows.Create(ctx, followerID, authorID); err != nil {
		return 0, err
	}
	return FollowCreated, nil
}

func (s *relationshipService) Unfollow(ctx context.Context, followerID, authorID string) error {
	if !authz.CanUnfollow(followerID).Allowed() {
		return ErrNotAuthenticated
	}
	return s.follows.Delete(ctx, followerID, authorID)
}

func (s *relationshipService) Following(ctx context.Context, followerID, authorID string) (bool, error) {
	return s.follows.Exists(ctx, followerID, authorID)
}

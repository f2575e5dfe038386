// Package authz holds the pure permission predicates. Each predicate takes
// the acting user's id (empty when unauthenticated) and the target resource
// and returns a Denial; callers map denials to redirect targets or no-op
// outcomes, never to hard errors.
package authz

import (
	"github.com/d60-Lab/microblog/internal/model"
)

// Denial says why an action is not allowed. DenialNone means allowed.
type Denial int

const (
	DenialNone Denial = iota
	DenialNotAuthenticated
	DenialNotAuthor
	DenialSelfFollow
	DenialAlreadyFollowing
)

func (d Denial) Allowed() bool { return d == DenialNone }

func (d Denial) String() string {
	switch d {
	case DenialNone:
		return "allowed"
	case DenialNotAuthenticated:
		return "not authenticated"
	case DenialNotAuthor:
		return "not the author"
	case DenialSelfFollow:
		return "cannot follow self"
	case DenialAlreadyFollowing:
		return "already following"
	}
	return "denied"
}

func CanCreatePost(actorID string) Denial {
	if actorID == "" {
		return DenialNotAuthenticated
	}
	return DenialNone
}

func CanEditPost(actorID string, post *model.Post) Denial {
	if actorID == "" {
		return DenialNotAuthenticated
	}
	if actorID != post.AuthorID {
		return DenialNotAuthor
	}
	return DenialNone
}

func CanComment(actorID string) Denial {
	if actorID == "" {
		return DenialNotAuthenticated
	}
	return DenialNone
}

// CanFollow needs the current edge state; the caller looks it up.
func CanFollow(actorID, targetID string, alreadyFollowing bool) Denial {
	if actorID == "" {
		return DenialNotAuthenticated
	}
	if actorID == targetID {
		return DenialSelfFollow
	}
	if alreadyFollowing {
		return DenialAlreadyFollowing
	}
	return DenialNone
}

// CanUnfollow is always allowed for an authenticated user; unfollowing an
// absent edge is a no-op downstream.
func CanUnfollow(actorID string) Denial {
	if actorID == "" {
		return DenialNotAuthenticated
	}
	return DenialNone
}

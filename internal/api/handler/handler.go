package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/cache"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/internal/service"
)

type Handler struct {
	users    repository.UserRepository
	posts    service.PostService
	comments service.CommentService
	rel      service.RelationshipService
	feed     service.FeedService
	auth     service.AuthService
	pages    *cache.PageCache
	indexTTL time.Duration
}

func New(
	users repository.UserRepository,
	posts service.PostService,
	comments service.CommentService,
	rel service.RelationshipService,
	feed service.FeedService,
	auth service.AuthService,
	pages *cache.PageCache,
	indexTTL time.Duration,
) *Handler {
	return &Handler{
		users:    users,
		posts:    posts,
		comments: comments,
		rel:      rel,
		feed:     feed,
		auth:     auth,
		pages:    pages,
		indexTTL: indexTTL,
	}
}

// actorID returns the authenticated user id set by the auth middleware.
func actorID(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.ContextUserID)
	return id, id != ""
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

// Profile serves an author's page: their posts, post count, and whether the
// viewer already follows them.
// @Summary Author profile
// @Tags profile
// @Produce json
// @Param username path string true "username"
// @Param page query int false "page number" default(1)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profile/{username} [get]
func (h *Handler) Profile(c *gin.Context) {
	author, err := h.users.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	posts, err := h.posts.ProfilePage(c.Request.Context(), author.ID, pageParam(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	following := false
	if viewerID, ok := actorID(c); ok {
		following, err = h.rel.Following(c.Request.Context(), viewerID, author.ID)
		if err != nil {
			response.InternalError(c, err)
			return
		}
	}
	response.Success(c, gin.H{
		"username":   author.Username,
		"posts":      posts,
		"post_count": posts.Total,
		"following":  following,
	})
}

// Follow creates the (follower, author) edge and sends the follower to
// their feed. Self-follow and re-follow are silent no-ops: back to the
// profile, no edge, no error.
// @Summary Follow an author
// @Tags profile
// @Param username path string true "username"
// @Success 302 "redirect to feed or profile"
// @Failure 404 {object} response.Response
// @Router /profile/{username}/follow [post]
func (h *Handler) Follow(c *gin.Context) {
	username := c.Param("username")
	author, err := h.users.GetByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	viewerID, _ := actorID(c)
	outcome, err := h.rel.Follow(c.Request.Context(), viewerID, author.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if outcome == service.FollowCreated {
		c.Redirect(http.StatusFound, "/follow")
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username)
}

// Unfollow deletes the edge if present and redirects to the profile either
// way.
// @Summary Unfollow an author
// @Tags profile
// @Param username path string true "username"
// @Success 302 "redirect to profile"
// @Failure 404 {object} response.Response
// @Router /profile/{username}/unfollow [post]
func (h *Handler) Unfollow(c *gin.Context) {
	username := c.Param("username")
	author, err := h.users.GetByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	viewerID, _ := actorID(c)
	if err := h.rel.Unfollow(c.Request.Context(), viewerID, author.ID); err != nil {
		response.InternalError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username)
}

// FollowIndex serves the following feed: posts by followed authors only.
// @Summary Following feed
// @Tags profile
// @Produce json
// @Param page query int false "page number" default(1)
// @Success 200 {object} response.Response{data=service.PostPage}
// @Router /follow [get]
func (h *Handler) FollowIndex(c *gin.Context) {
	viewerID, _ := actorID(c)
	feed, err := h.feed.Following(c.Request.Context(), viewerID, pageParam(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, feed)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/forms"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

// AddComment attaches a comment to a post and redirects to its detail page.
// An invalid comment (empty text) mutates nothing but still redirects —
// deliberately, so the submit flow always lands the user back on the post.
// @Summary Comment on a post
// @Tags posts
// @Accept json
// @Param id path string true "post id"
// @Param request body forms.CommentForm true "comment fields"
// @Success 302 "redirect to detail"
// @Failure 404 {object} response.Response
// @Router /posts/{id}/comment [post]
func (h *Handler) AddComment(c *gin.Context) {
	postID := c.Param("id")
	id, _ := actorID(c)
	var form forms.CommentForm
	// binding errors fall through: the empty form is simply invalid
	_ = c.ShouldBind(&form)
	_, err := h.comments.Add(c.Request.Context(), id, postID, &form)
	switch {
	case err == nil, errors.Is(err, service.ErrEmptyText):
		c.Redirect(http.StatusFound, "/posts/"+postID)
	case errors.Is(err, service.ErrPostNotFound):
		response.NotFound(c, "post not found")
	default:
		response.InternalError(c, err)
	}
}

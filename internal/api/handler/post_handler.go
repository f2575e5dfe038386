package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/microblog/internal/authz"
	"github.com/d60-Lab/microblog/internal/forms"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/logger"
	"github.com/d60-Lab/microblog/pkg/response"
)

// Index serves the front page listing.
// Rendered bytes are cached per page for the configured TTL; expiry is the
// only invalidation, so fresh writes may not show until the entry lapses.
// @Summary Front page post listing
// @Tags posts
// @Produce json
// @Param page query int false "page number" default(1)
// @Success 200 {object} response.Response{data=service.PostPage}
// @Router / [get]
func (h *Handler) Index(c *gin.Context) {
	page := pageParam(c)
	key := fmt.Sprintf("pages:index:%d", page)
	if body, ok := h.pages.Get(c.Request.Context(), key); ok {
		response.Raw(c, body)
		return
	}
	posts, err := h.posts.Index(c.Request.Context(), page)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	body, err := response.Render(posts)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.pages.Set(c.Request.Context(), key, body, h.indexTTL)
	response.Raw(c, body)
}

// GroupList serves the listing of one group's posts.
// @Summary Posts in a group
// @Tags posts
// @Produce json
// @Param slug path string true "group slug"
// @Param page query int false "page number" default(1)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /group/{slug} [get]
func (h *Handler) GroupList(c *gin.Context) {
	group, posts, err := h.posts.GroupPage(c.Request.Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.NotFound(c, "group not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"group": group, "posts": posts})
}

// PostDetail serves a single post with its comments and a short preview.
// @Summary Post detail
// @Tags posts
// @Produce json
// @Param id path string true "post id"
// @Success 200 {object} response.Response{data=service.PostDetail}
// @Failure 404 {object} response.Response
// @Router /posts/{id} [get]
func (h *Handler) PostDetail(c *gin.Context) {
	detail, err := h.posts.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	isAuthor := false
	if id, ok := actorID(c); ok {
		isAuthor = id == detail.Post.AuthorID
	}
	response.Success(c, gin.H{
		"post":              detail.Post,
		"preview":           detail.Preview,
		"comments":          detail.Comments,
		"author_post_count": detail.AuthorPostCount,
		"is_author":         isAuthor,
	})
}

// PostCreate creates a post authored by the session user and redirects to
// their profile. Invalid submissions come back with field errors.
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body forms.PostForm true "post fields"
// @Success 302 "redirect to profile"
// @Failure 400 {object} response.Response
// @Router /create [post]
func (h *Handler) PostCreate(c *gin.Context) {
	id, _ := actorID(c)
	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if errs := form.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, response.Response{Code: http.StatusBadRequest, Message: "validation failed", Data: gin.H{"errors": errs}})
		return
	}
	if _, err := h.posts.Create(c.Request.Context(), id, &form); err != nil {
		response.InternalError(c, err)
		return
	}
	actor, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	logger.Info("post created", zap.String("author", actor.Username))
	c.Redirect(http.StatusFound, "/profile/"+actor.Username)
}

// PostEdit updates a post in place. Non-authors are bounced to the detail
// page without any mutation; that is the whole authorization story here.
// @Summary Edit a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "post id"
// @Param request body forms.PostForm true "post fields"
// @Success 302 "redirect to detail"
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /posts/{id}/edit [post]
func (h *Handler) PostEdit(c *gin.Context) {
	postID := c.Param("id")
	post, err := h.posts.Get(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	id, _ := actorID(c)
	// non-authors bounce to the read view, no 403
	if !authz.CanEditPost(id, post).Allowed() {
		c.Redirect(http.StatusFound, "/posts/"+postID)
		return
	}
	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if errs := form.Validate(); errs != nil {
		c.JSON(http.StatusBadRequest, response.Response{Code: http.StatusBadRequest, Message: "validation failed", Data: gin.H{"errors": errs}})
		return
	}
	if _, err := h.posts.Edit(c.Request.Context(), id, postID, &form); err != nil {
		response.InternalError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+postID)
}

package httpapi

import (
	"errors"
	"net/http"

	"microblog-platform/internal/auth"
	"microblog-platform/internal/posts"
	"microblog-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h Handlers) ListPosts(c *gin.Context) {
	list, err := h.Posts.List(c.Request.Context())
	if err != nil {
		logger.FromGin(c).Error("listing posts failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "listing posts failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h Handlers) CreatePost(c *gin.Context) {
	var req posts.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "title and text (max 350 chars) are required"})
		return
	}

	id, err := auth.CurrentIdentity(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}

	p, err := h.Posts.Create(c.Request.Context(), req, id.UserID)
	if err != nil {
		logger.FromGin(c).Error("creating post failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "creating post failed"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h Handlers) UpdatePost(c *gin.Context) {
	id, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	var req posts.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "title and text (max 350 chars) are required"})
		return
	}

	p, err := h.Posts.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "updating post failed"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h Handlers) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	if err := h.Posts.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "deleting post failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post was deleted"})
}

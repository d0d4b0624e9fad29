package httpapi

import (
	"errors"
	"net/http"

	"microblog-platform/internal/auth"
	"microblog-platform/internal/reviews"

	"github.com/gin-gonic/gin"
)

func (h Handlers) ListReviews(c *gin.Context) {
	list, err := h.Reviews.List(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "listing reviews failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h Handlers) ListPostReviews(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	list, err := h.Reviews.ListByPost(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, reviews.ErrPostNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "listing reviews failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h Handlers) CreateReview(c *gin.Context) {
	var req reviews.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "comment, grade and post_id are required"})
		return
	}

	id, err := auth.CurrentIdentity(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}

	rev, err := h.Reviews.Create(c.Request.Context(), req, id.UserID)
	if err != nil {
		if errors.Is(err, reviews.ErrPostNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "creating review failed"})
		return
	}
	c.JSON(http.StatusCreated, rev)
}

func (h Handlers) DeleteReview(c *gin.Context) {
	id, ok := pathID(c, "review_id")
	if !ok {
		return
	}

	if err := h.Reviews.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, reviews.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "deleting review failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review was deleted"})
}

package main

import (
	"microblog-platform/internal/httpapi"
	"microblog-platform/internal/rbac"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to internal modules.
func registerRoutes(r *gin.Engine, h httpapi.Handlers, authMW gin.HandlerFunc) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// public
	r.POST("/users", h.RegisterUser)
	r.POST("/users/token", h.Login)
	r.POST("/users/refresh-token", h.RefreshToken)
	r.GET("/posts", h.ListPosts)
	r.GET("/reviews", h.ListReviews)
	r.GET("/reviews/posts/:post_id", h.ListPostReviews)

	// bearer-protected
	protected := r.Group("/")
	protected.Use(authMW)
	{
		protected.GET("/me", h.Me)

		usersGroup := protected.Group("/users")
		{
			usersGroup.GET("", rbac.RequireAdmin(), h.ListUsers)
			usersGroup.PUT("/:user_id", rbac.RequireAuthenticated(), h.UpdateUser)
			usersGroup.DELETE("/:user_id", rbac.RequireAuthenticated(), h.DeleteUser)
		}

		postsGroup := protected.Group("/posts")
		postsGroup.Use(rbac.RequireAuthenticated())
		{
			postsGroup.POST("", h.CreatePost)
			postsGroup.PUT("/:post_id", h.UpdatePost)
			postsGroup.DELETE("/:post_id", h.DeletePost)
		}

		reviewsGroup := protected.Group("/reviews")
		reviewsGroup.Use(rbac.RequireAuthenticated())
		{
			reviewsGroup.POST("", h.CreateReview)
			reviewsGroup.DELETE("/:review_id", h.DeleteReview)
		}
	}
}

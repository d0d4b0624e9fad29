package httpapi

import (
	"microblog-platform/internal/posts"
	"microblog-platform/internal/reviews"
	"microblog-platform/internal/users"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call internal services, return JSON.
type Handlers struct {
	Users   *users.Service
	Posts   *posts.Service
	Reviews *reviews.Service
}

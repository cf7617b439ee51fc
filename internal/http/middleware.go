package http

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Wirawat444/web-sc-linkhub/internal/auth"
)

const identityKey = "linkhub.identity"

// requireSession rejects requests the gate cannot resolve and stores
// the identity on the gin context for the handler.
func (h *Handler) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := h.gate.Resolve(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}
		c.Set(identityKey, *identity)
		c.Next()
	}
}

// requirePageSession is the HTML variant: anonymous visitors are sent
// to the login page instead of receiving a JSON error.
func (h *Handler) requirePageSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := h.gate.Resolve(c.Request)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(identityKey, *identity)
		c.Next()
	}
}

func mustIdentity(c *gin.Context) auth.Identity {
	return c.MustGet(identityKey).(auth.Identity)
}

func avatarKey(userID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		ext = ""
	}
	return userID + ext
}

func isImageContentType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nigel2421/wemisireact/session"
)

// RequireAdmin gates mutation endpoints on the session's privileged flag.
// Rejection happens before the handler runs, so a failed check has no
// partial effect.
func RequireAdmin(c *gin.Context) {
	sess := session.Current(c)
	if sess == nil || !sess.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}
	c.Next()
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ritamsamanta1/fish/config"
	"github.com/ritamsamanta1/fish/utils"
)

// AdminAuth gates privileged routes on the shared admin secret. The secret is
// presented verbatim in the Authorization header on every request; there are
// no sessions or tokens.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		password := c.GetHeader("Authorization")
		if !utils.CheckAdminPassword(cfg, password) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not Authorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

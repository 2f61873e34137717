package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yourname/calorietracker/internal"
	"github.com/yourname/calorietracker/internal/config"
	"github.com/yourname/calorietracker/internal/response"
	"github.com/yourname/calorietracker/internal/storage"
)

// UserKey is the gin context key holding the *internal.User.
const UserKey = "user"

// AuthMiddleware requires a bearer token. Development validates locally,
// other environments ask the remote auth service.
func AuthMiddleware(provider Provider, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			var user *internal.User
			var err error
			if cfg.Env == "development" {
				user, err = provider.ValidateTokenLocal(c.Request.Context(), token)
			} else {
				user, err = provider.ValidateTokenRemote(c.Request.Context(), token)
			}
			if err == nil {
				c.Set(UserKey, user)
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Unauthorized"))
	}
}

// DemoUserMiddleware signs every request in as the demo user.
func DemoUserMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(UserKey, DemoUser(token))
		c.Next()
	}
}

// NewProvider picks the provider matching cfg.Env. Development resolves
// tokens against users, which may be nil.
func NewProvider(cfg *config.Config, users storage.UserRepository, logger internal.Logger) Provider {
	if cfg.Env == "development" {
		return NewLocalAuthProvider(cfg.AuthToken, users, logger)
	}
	return NewRemoteAuthProvider(cfg.AuthServiceURL, logger)
}

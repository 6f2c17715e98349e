package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/store-admin-api/pkg/helpers"
)

const CtxUserIDKey = "userID"

// Identity resolves the caller from a bearer token or the access_token
// cookie issued by the identity provider. It never aborts: an absent or
// invalid token just leaves userID empty, and the service layer decides
// whether the operation needs one.
func Identity(tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				raw = cookie
			}
		}
		if raw != "" {
			if claims, err := tokens.Verify(raw); err == nil {
				c.Set(CtxUserIDKey, claims.UserID)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shawn910604/taipei-day-trip/internal/auth"
)

const claimsKey = "claims"

// TokenValidator verifies bearer tokens presented by clients.
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// AuthRequired rejects requests without a valid bearer token and stows the
// claims for the handler. The claim set is trusted as-is; handlers that need
// current identity re-read the member row.
func AuthRequired(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			errorJSON(c, http.StatusUnauthorized, "Missing token")
			c.Abort()
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			errorJSON(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func memberClaims(c *gin.Context) *auth.Claims {
	v, _ := c.Get(claimsKey)
	claims, _ := v.(*auth.Claims)
	return claims
}

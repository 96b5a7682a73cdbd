package middleware

import (
	"strings"

	"github.com/riquelima/SandyPetShop-v3/internal/auth"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Identity attaches the principal from a valid bearer token to the request
// context. It never rejects a request: anonymous callers reach the handlers
// and the access gate decides.
func Identity(secret []byte, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		claims, err := auth.Parse(secret, token)
		if err != nil {
			log.Debug("bearer token rejected", logger.String("error", err.Error()))
			c.Next()
			return
		}

		ctx := auth.WithPrincipal(c.Request.Context(), claims.Principal())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

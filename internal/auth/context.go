package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUsername = "username"
	CtxTokenID  = "token_jti"
)

// Username extracts the caller identity from the Gin context.
// This is set by JWTAuthMiddleware.
func Username(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUsername))
}

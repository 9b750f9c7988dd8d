package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/projects-service/internal/auth"
)

// JWTAuthMiddleware validates bearer tokens issued by the identity service
// and stores the caller identity in the context.
func JWTAuthMiddleware(verifier *auth.TokenVerifier, blocklist auth.Blocklist, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			unauthorized(c, auth.ErrMissingToken.Error())
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			logger.Debug("rejected bearer token", zap.Error(err), zap.String("path", c.FullPath()))
			unauthorized(c, rejectionMessage(err))
			return
		}

		if blocklist != nil && claims.ID != "" {
			revoked, err := blocklist.Contains(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Error("blocklist lookup failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
				c.Abort()
				return
			}
			if revoked {
				unauthorized(c, auth.ErrRevokedToken.Error())
				return
			}
		}

		c.Set(auth.CtxUsername, claims.Subject)
		c.Set(auth.CtxTokenID, claims.ID)

		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": msg})
	c.Abort()
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return auth.ErrExpiredToken.Error()
	case errors.Is(err, auth.ErrRefreshToken):
		return auth.ErrRefreshToken.Error()
	default:
		return auth.ErrInvalidToken.Error()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return strings.TrimSpace(bearerToken[7:])
	}
	return ""
}

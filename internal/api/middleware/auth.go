package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"kitchen-assistant/internal/infrastructure/config"
	"kitchen-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	// UserIDKey is the context key holding the authenticated user id
	UserIDKey = "user_id"

	// DevUserHeader names the user when token verification is disabled
	DevUserHeader = "X-User-ID"
	devUserID     = "local-user"
)

// ParseToken verifies an HS256 token and returns its subject
func ParseToken(tokenString string, cfg config.AuthConfig) (string, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid token claims")
	}
	return claims.Subject, nil
}

// Auth puts the caller's user id into the context. With verification disabled
// the id comes from the X-User-ID header.
func Auth(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled {
			userID := strings.TrimSpace(c.GetHeader(DevUserHeader))
			if userID == "" {
				userID = devUserID
			}
			c.Set(UserIDKey, userID)
			c.Next()
			return
		}

		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			unauthorized(c, "authorization header required")
			return
		}

		userID, err := ParseToken(parts[1], cfg)
		if err != nil {
			common.LogInfo("token validation failed",
				zap.String("error", err.Error()),
				zap.String("ip", c.ClientIP()),
			)
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, details string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, common.ErrorResponse{
		Code:    common.ErrCodeUnauthorized,
		Message: common.Localize(common.ErrCodeUnauthorized, GetLanguage(c)),
		Details: details,
	})
}

// UserID returns the id set by Auth
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

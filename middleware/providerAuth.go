package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"slotwise/utils"
)

const (
	authCachePrefix = "auth:provider:"
	authCacheTTL    = 15 * time.Minute
)

// JWTAuthProviderMiddleware validates the bearer token (minted by the
// external identity service) and ensures the caller only touches their
// own schedule. Verified tokens are cached in Redis by hash.
func JWTAuthProviderMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		computedHash := utils.HashToken(tokenString)
		cacheKey := authCachePrefix + computedHash

		// Check the authorization cache before parsing.
		authCache := utils.GetAuthCacheClient()
		if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			// Refresh TTL (sliding expiration) and proceed.
			if err := authCache.Expire(ctx, cacheKey, authCacheTTL).Err(); err != nil {
				logger.Error("Failed to refresh auth cache TTL", zap.Error(err))
			}
			authorizeProvider(c, cached)
			return
		} else if err != nil && err != redis.Nil {
			logger.Error("Error checking auth cache", zap.Error(err))
		}

		// Cache miss: verify the signature and extract the subject.
		providerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || providerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if err := authCache.Set(ctx, cacheKey, providerID, authCacheTTL).Err(); err != nil {
			logger.Error("Failed to set auth cache", zap.Error(err))
		}

		authorizeProvider(c, providerID)
	}
}

// authorizeProvider rejects requests whose path provider differs from
// the token's subject, then continues the chain.
func authorizeProvider(c *gin.Context, providerID string) {
	if pathProvider := c.Param("providerId"); pathProvider != "" && pathProvider != providerID {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Cannot modify another provider's schedule"})
		return
	}
	c.Set("providerID", providerID)
	c.Next()
}

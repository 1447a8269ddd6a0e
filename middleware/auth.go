package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"profast/utils"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ContextEmailKey is the gin context key holding the verified email claim.
const ContextEmailKey = "userEmail"

// authCacheTTL caps how long a verified token skips re-verification. A cache
// entry is always bounded by the token's own expiry as well, so a cached
// identity never outlives the provider's acceptance.
const authCacheTTL = time.Hour

// TokenVerifier validates a bearer token against the identity provider.
// *auth.Client satisfies it; tests substitute a stub.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseAuthMiddleware enforces the authorization gate: a missing or blank
// Bearer token is a 401, a token the identity provider rejects is a 403.
// Verified tokens attach their email claim to the context. Verified token
// hashes are cached in redis until the earlier of authCacheTTL and the
// token's expiry, so repeat requests skip the provider round trip without
// outliving the provider's decision; when the cache is down every token is
// verified directly.
func FirebaseAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		ctx := c.Request.Context()
		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
		authCache := utils.GetAuthCacheClient()

		if authCache != nil {
			cachedEmail, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil && cachedEmail != "" {
				c.Set(ContextEmailKey, cachedEmail)
				c.Next()
				return
			}
			if err != nil && err != redis.Nil {
				logger.Warn("auth cache lookup failed, falling back to token verification", zap.Error(err))
			}
		}

		token, err := verifier.VerifyIDToken(ctx, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		email, _ := token.Claims["email"].(string)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		if authCache != nil {
			ttl := authCacheTTL
			if remaining := time.Until(time.Unix(token.Expires, 0)); remaining < ttl {
				ttl = remaining
			}
			if ttl > 0 {
				_ = authCache.Set(ctx, cacheKey, email, ttl).Err()
			}
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

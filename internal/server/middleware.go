package server

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"nftfy-api/internal/apperrors"
	"nftfy-api/internal/token"
	"nftfy-api/services/api/helpers"
	"nftfy-api/utils"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// CORSMiddleware sets the cross-origin headers the browser front-end
// needs and short-circuits preflight requests
func CORSMiddleware(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

// AuthMiddleware validates the bearer token and stores the caller's
// identity on the request context
func AuthMiddleware(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, token.ErrInvalidToken, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(helpers.CtxUserID, claims.UserID)
		c.Set(helpers.CtxUserRole, claims.Role)
		c.Next()
	}
}

// RequireRole rejects callers whose token role is not in the allowed set
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(helpers.CtxUserRole)
		if _, ok := allowed[role]; !ok {
			utils.JSONError(c, http.StatusForbidden, apperrors.ErrForbidden, "insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ipLimiter hands out one token bucket per client IP. Buckets are never
// evicted; the map is bounded by the number of distinct client IPs seen.
type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newIPLimiter(limit rate.Limit, burst int) *ipLimiter {
	return &ipLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter
}

// BidRateLimitMiddleware throttles bid placement per client IP
func BidRateLimitMiddleware(perSecond float64, burst int) gin.HandlerFunc {
	limiters := newIPLimiter(rate.Limit(perSecond), burst)

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			utils.JSONError(c, http.StatusTooManyRequests, apperrors.ErrForbidden, "too many bids, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}

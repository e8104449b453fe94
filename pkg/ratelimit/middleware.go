package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"varsity/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Middleware enforces per-IP rate limits, classified by route
func Middleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := getClientIP(c)
		limitType := getRateLimitType(c.FullPath())

		result, err := rateLimiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Rate limit check failed", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			response.RespondJSON(c, "error", http.StatusTooManyRequests,
				"Rate limit exceeded", nil, map[string]interface{}{
					"limit":      result.Limit,
					"reset_time": result.ResetTime,
				})
			c.Abort()
			return
		}

		c.Next()
	}
}

func getRateLimitType(path string) RateLimitType {
	switch {
	// Health/monitoring endpoints
	case strings.HasPrefix(path, "/health"),
		strings.HasPrefix(path, "/ping"),
		strings.HasPrefix(path, "/status"):
		return RateLimitTypeHealth

	// Admin endpoints (catch-all for admin)
	case strings.Contains(path, "/admin/"):
		return RateLimitTypeAdmin

	// Analytics endpoints
	case strings.Contains(path, "/analytics"):
		return RateLimitTypeAnalytics

	// Authentication endpoints
	case strings.Contains(path, "/auth/"):
		return RateLimitTypeAuth

	// Ticket ordering flow
	case strings.Contains(path, "/orders") ||
		strings.Contains(path, "/tickets"):
		return RateLimitTypeOrder

	// Enrollment flow
	case strings.Contains(path, "/enrollments"):
		return RateLimitTypeEnrollment

	// Public browsing endpoints
	case strings.Contains(path, "/fixtures"),
		strings.Contains(path, "/teams"),
		strings.Contains(path, "/stadiums"),
		strings.Contains(path, "/courses"),
		strings.Contains(path, "/rooms"),
		strings.Contains(path, "/sections"):
		return RateLimitTypePublic

	// User-specific endpoints
	case strings.Contains(path, "/users/"):
		return RateLimitTypeUser

	default:
		return RateLimitTypeDefault
	}
}

// getClientIP extracts the real client IP
func getClientIP(c *gin.Context) string {
	// Check X-Forwarded-For header
	xForwardedFor := c.GetHeader("X-Forwarded-For")
	if xForwardedFor != "" {
		ips := strings.Split(xForwardedFor, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	// Check X-Real-IP header
	xRealIP := c.GetHeader("X-Real-IP")
	if xRealIP != "" {
		if net.ParseIP(xRealIP) != nil {
			return xRealIP
		}
	}

	// Fall back to RemoteAddr
	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}

	return ip
}

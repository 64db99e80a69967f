package rest

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/ad402/payverify/internal/metrics"
	"github.com/ad402/payverify/internal/pkg/logger"
	"github.com/ad402/payverify/internal/ratelimit"
)

// rateLimitByIP applies the IP rule to every request it wraps. Requests
// without a known client IP pass.
func (s *Server) rateLimitByIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.allow(w, r, s.ipRule, ClientIP(r.Context()), "Too many requests from this IP address") {
			return
		}
		next.ServeHTTP(w, r)
	})
}

// allow counts a hit for subject under rule. It writes the rate limit headers
// and, when the limit is exceeded, the 429 response, returning false.
//
// Store failures let the request through.
func (s *Server) allow(w http.ResponseWriter, r *http.Request, rule ratelimit.Rule, subject, message string) bool {
	if s.limiter == nil || subject == "" {
		return true
	}

	decision, err := s.limiter.Allow(r.Context(), rule, subject)
	if err != nil {
		logger.Warn(r.Context(), "rate limit check failed",
			"ratelimit.rule", rule.Name,
			"error", err,
		)
		return true
	}

	h := w.Header()
	h.Set("X-RateLimit-Limit", strconv.FormatInt(decision.Limit, 10))
	h.Set("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))
	h.Set("X-RateLimit-Reset", decision.ResetAt.UTC().Format(time.RFC3339))

	if decision.Allowed {
		return true
	}

	retryAfter := int64(math.Ceil(decision.RetryAfter(s.now()).Seconds()))
	h.Set("Retry-After", strconv.FormatInt(retryAfter, 10))

	s.metrics.IncCounter(metrics.EventRateLimited, nil)
	logger.Info(r.Context(), "rate limit exceeded",
		"ratelimit.rule", rule.Name,
		"ratelimit.subject", subject,
	)

	writeJSON(w, http.StatusTooManyRequests, map[string]any{
		"error":      "Rate limit exceeded",
		"message":    message,
		"retryAfter": fmt.Sprintf("%d seconds", retryAfter),
	})
	return false
}

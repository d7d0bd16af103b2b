package httpserver

import (
	"math"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	apperrors "github.com/pscheid92/feedbackpulse/internal/platform/errors"
	"golang.org/x/time/rate"
)

const (
	// Idle per-client limiters are dropped after this long.
	rateLimiterExpiry = 5 * time.Minute
	msgRateLimited    = "Trop de requêtes, veuillez réessayer plus tard"
)

// newRateLimiter limits requests per client IP. Denied requests get a
// structured 429 with Retry-After set to the time one token takes to refill.
func newRateLimiter(ratePerSecond float64, burst int) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(ratePerSecond),
			Burst:     burst,
			ExpiresIn: rateLimiterExpiry,
		},
	)
	retryAfter := retryAfterSeconds(ratePerSecond)

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		Store: store,
		DenyHandler: func(c echo.Context, identifier string, _ error) error {
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
			return apperrors.RateLimitedError(msgRateLimited).
				WithField("client_ip", identifier).
				WithField("retry_after", retryAfter)
		},
	})
}

func retryAfterSeconds(ratePerSecond float64) int {
	if ratePerSecond <= 0 {
		return int(rateLimiterExpiry.Seconds())
	}
	return max(1, int(math.Ceil(1/ratePerSecond)))
}

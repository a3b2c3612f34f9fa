package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// Fixed-window counter per client key; the window expires with the key.
var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimitMiddleware throttles the public booking endpoint with a
// redis-backed fixed window so the limit holds across instances. Redis
// being down fails open: a throttling outage must not block bookings.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration, log zerolog.Logger) gin.HandlerFunc {
	if limit <= 0 {
		limit = 30
	}
	if window <= 0 {
		window = time.Minute
	}

	return func(c *gin.Context) {
		key := "rl:bookings:" + c.ClientIP()

		count, err := rateLimitScript.Run(
			c.Request.Context(), rdb,
			[]string{key},
			window.Milliseconds(),
		).Int64()
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate_limit_exceeded",
			})
			return
		}

		c.Next()
	}
}

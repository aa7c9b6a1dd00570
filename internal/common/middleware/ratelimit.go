package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"sneakr-backend/internal/platform/redis"
)

// LoginRateLimit is a fixed-window counter keyed by client IP, backed
// by Redis. On Redis failure the request is let through: losing the
// limiter must not take logins down with it.
//
// INCR and EXPIRE go out in one pipeline, and the expiry uses NX so a
// counter that somehow lost its TTL picks one up on the next request
// instead of rate-limiting the IP forever.
func LoginRateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:login:%s", c.ClientIP())
		ctx := c.Request.Context()

		var incr *goredis.IntCmd
		_, err := rdb.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			pipe.ExpireNX(ctx, key, window)
			return nil
		})
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable")
			c.Next()
			return
		}

		if incr.Val() > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts"})
			return
		}

		c.Next()
	}
}

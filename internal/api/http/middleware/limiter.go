package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

// NewLimiterWithRedis rate-limits clients with a sliding window counted
// in Redis, so the limit holds across engine instances.
func NewLimiterWithRedis(rdb *redis.Client, max int, window time.Duration) fiber.Handler {
	if max <= 0 {
		max = 20
	}
	if window <= 0 {
		window = 30 * time.Second
	}
	return limiter.New(limiter.Config{
		Storage: fiberredis.NewFromConnection(rdb),

		Max:               max,
		Expiration:        window,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}

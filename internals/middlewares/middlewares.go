package middlewares

import (
	"github.com/gofiber/fiber/v2"

	logger "tuitionpay_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the global chain: recovery, CORS, access log,
// rate limiter. Auth is attached per route group, not here.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}

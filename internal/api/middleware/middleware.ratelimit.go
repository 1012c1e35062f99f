package middleware

import (
	"github.com/gofiber/fiber/v3"

	basehdl "open_market/internal/api/base/handler"
	"open_market/internal/common"
	"open_market/internal/logger"
	"open_market/internal/utility"
)

// NewRateLimiter giới hạn số request trên mỗi IP trong một cửa sổ thời gian.
// Store đếm được inject từ ngoài (utility.Cache có TTL = window) để test có
// thể thay store và để giới hạn bộ nhớ của bộ đếm là tường minh. Cửa sổ neo
// tại request đầu tiên của mỗi IP; hết TTL thì bộ đếm tự reset.
// Health check và preflight CORS không bị tính.
func NewRateLimiter(store *utility.Cache, max int64) fiber.Handler {
	return func(c fiber.Ctx) error {
		if c.Path() == "/health" || c.Method() == fiber.MethodOptions {
			return c.Next()
		}

		count := store.Increment("rate:" + c.IP())
		if count > max {
			logger.WithRequest(c).WithField("count", count).Warn("Request bị từ chối do vượt rate limit")
			return basehdl.ErrorResponse(c, common.NewError(
				common.ErrCodeBusinessOperation,
				common.MsgTooManyRequests,
				common.StatusTooManyRequests,
				nil,
			))
		}

		return c.Next()
	}
}

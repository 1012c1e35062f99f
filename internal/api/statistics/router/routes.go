// Package router đăng ký các route thuộc domain Statistics.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"open_market/internal/api/middleware"
	apirouter "open_market/internal/api/router"
	statshdl "open_market/internal/api/statistics/handler"
)

// Register đăng ký route thống kê lên v1. API thống kê chỉ dành cho admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	statisticsHandler, err := statshdl.NewStatisticsHandler()
	if err != nil {
		return fmt.Errorf("create statistics handler: %w", err)
	}

	adminMiddleware := middleware.AuthMiddleware("admin")
	apirouter.RegisterRouteWithMiddleware(v1, "/statistics", "GET", "/orders", []fiber.Handler{adminMiddleware}, statisticsHandler.HandleOrderStats)

	return nil
}

// Package basehdl chứa các helper response dùng chung cho mọi HTTP handler.
// Format response thống nhất toàn ứng dụng: thành công {"ok":1, "item": ...},
// lỗi {"ok":0, "code": ..., "message": ...}.
package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"open_market/internal/common"
	"open_market/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	// Set Content-Type với charset=utf-8 trước khi gọi JSON
	c.Set("Content-Type", "application/json; charset=utf-8")
	// Trả về JSON response
	return c.Status(statusCode).JSON(data)
}

// OKResponse trả về response thành công với payload đặt trong key "item"
func OKResponse(c fiber.Ctx, item interface{}) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"ok":   1,
		"item": item,
	})
}

// ErrorResponse trả về response lỗi theo format thống nhất. err được map về
// HTTP status + mã lỗi: *common.Error giữ nguyên status của nó, lỗi khác
// thành internal server error.
func ErrorResponse(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		body := fiber.Map{
			"ok":      0,
			"code":    customErr.Code.Code,
			"message": customErr.Message,
		}
		if customErr.Details != nil {
			body["details"] = customErr.Details
		}
		return JSONResponse(c, customErr.StatusCode, body)
	}

	// Không phải custom error thì không lộ chi tiết nội bộ cho client
	logger.WithRequest(c).WithError(err).Error("Lỗi không xác định khi xử lý request")
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"ok":      0,
		"code":    common.ErrCodeInternalServer.Code,
		"message": common.MsgInternalError,
	})
}

// ValidationErrorResponse trả về lỗi 400 cho input không hợp lệ, kèm message
// mô tả cụ thể trường bị sai.
func ValidationErrorResponse(c fiber.Ctx, code common.ErrorCode, message string) error {
	return JSONResponse(c, common.StatusBadRequest, fiber.Map{
		"ok":      0,
		"code":    code.Code,
		"message": message,
	})
}

// SafeHandlerWrapper bọc handler với recover để bắt panic và trả response an
// toàn cho client thay vì làm rơi kết nối.
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.WithRequest(c).WithField("stack", string(debug.Stack())).
				Error(fmt.Sprintf("Panic khi xử lý request: %v", r))
			_ = ErrorResponse(c, common.NewError(
				common.ErrCodeInternalServer,
				common.MsgInternalError,
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return fn()
}

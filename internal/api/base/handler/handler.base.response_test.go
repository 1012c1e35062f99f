// Package basehdl - Test format response thống nhất.
package basehdl

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"

	"open_market/internal/common"
)

func TestOKResponse_KetQuaRongLaMangRong(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return OKResponse(c, make([]struct{}, 0))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	assert.NoError(t, err)
	assert.Equal(t, common.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	// Kết quả rỗng phải serialize thành mảng rỗng, không phải null hay dòng 0
	assert.JSONEq(t, `{"ok":1,"item":[]}`, string(body))
}

func TestErrorResponse_CustomError(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return ErrorResponse(c, common.ErrTokenExpired)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	assert.NoError(t, err)
	assert.Equal(t, common.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), common.ErrCodeAuthToken.Code)
	assert.Contains(t, string(body), `"ok":0`)
}

func TestErrorResponse_LoiKhongXacDinh(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return ErrorResponse(c, errors.New("chi tiết nội bộ không được lộ"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	assert.NoError(t, err)
	assert.Equal(t, common.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "chi tiết nội bộ", "lỗi không xác định không được lộ message gốc")
	assert.Contains(t, string(body), common.ErrCodeInternalServer.Code)
}

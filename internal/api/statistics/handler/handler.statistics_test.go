// Package statshdl - Test các nhánh validate của API thống kê
// (request không hợp lệ bị chặn trước khi truy vấn database).
package statshdl

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"open_market/internal/common"
	"open_market/internal/global"
)

var setupOnce sync.Once

// setupTestApp dựng app Fiber với handler thống kê. Client mongo chưa kết nối
// tới server nào; các test chỉ đi qua nhánh validate nên không chạm database.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	setupOnce.Do(func() {
		global.MongoDB_ColNames.Users = "user"
		global.MongoDB_ColNames.Orders = "order"
		global.InitValidator()

		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
		if err != nil {
			t.Fatalf("tạo mongo client thất bại: %v", err)
		}
		db := client.Database("open_market_test")
		if _, err := global.RegistryCollections.Register(global.MongoDB_ColNames.Users, db.Collection(global.MongoDB_ColNames.Users)); err != nil {
			t.Fatalf("đăng ký collection user thất bại: %v", err)
		}
		if _, err := global.RegistryCollections.Register(global.MongoDB_ColNames.Orders, db.Collection(global.MongoDB_ColNames.Orders)); err != nil {
			t.Fatalf("đăng ký collection order thất bại: %v", err)
		}
	})

	handler, err := NewStatisticsHandler()
	require.NoError(t, err, "tạo StatisticsHandler thất bại")

	app := fiber.New()
	app.Get("/api/v1/statistics/orders", handler.HandleOrderStats)
	return app
}

func doRequest(t *testing.T, app *fiber.App, url string) (int, map[string]interface{}) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &result))
	return resp.StatusCode, result
}

func TestHandleOrderStats_ByKhongHopLe(t *testing.T) {
	app := setupTestApp(t)

	status, result := doRequest(t, app, "/api/v1/statistics/orders?by=category")
	assert.Equal(t, common.StatusBadRequest, status)
	assert.Equal(t, float64(0), result["ok"])
	assert.Equal(t, common.ErrCodeValidationInput.Code, result["code"])
}

func TestHandleOrderStats_StartSaiDinhDang(t *testing.T) {
	app := setupTestApp(t)

	status, result := doRequest(t, app, "/api/v1/statistics/orders?start=2024-01-01")
	assert.Equal(t, common.StatusBadRequest, status)
	assert.Equal(t, float64(0), result["ok"])
}

func TestHandleOrderStats_StartSauFinish(t *testing.T) {
	app := setupTestApp(t)

	status, result := doRequest(t, app, "/api/v1/statistics/orders?start=2024.02.01&finish=2024.01.01")
	assert.Equal(t, common.StatusBadRequest, status)
	assert.Equal(t, float64(0), result["ok"])
	assert.Contains(t, result["message"], "start")
}

func TestHandleOrderStats_KhoangQuaMotNam(t *testing.T) {
	app := setupTestApp(t)

	status, result := doRequest(t, app, "/api/v1/statistics/orders?start=2022.01.01&finish=2024.01.01")
	assert.Equal(t, common.StatusBadRequest, status)
	assert.Equal(t, float64(0), result["ok"])
}

func TestHandleOrderStats_CustomKhongPhaiJSON(t *testing.T) {
	app := setupTestApp(t)

	status, result := doRequest(t, app, "/api/v1/statistics/orders?custom=%7Bhong")
	assert.Equal(t, common.StatusBadRequest, status)
	assert.Equal(t, float64(0), result["ok"])
}

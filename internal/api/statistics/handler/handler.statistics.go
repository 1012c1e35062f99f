// Package statshdl chứa HTTP handler cho API thống kê đơn hàng.
package statshdl

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "open_market/internal/api/base/handler"
	statsdto "open_market/internal/api/statistics/dto"
	statssvc "open_market/internal/api/statistics/service"
	"open_market/internal/common"
	"open_market/internal/global"
	"open_market/internal/logger"
)

// StatisticsHandler xử lý API thống kê: GET /statistics/orders với 4 chế độ
// báo cáo chọn bằng query param by.
type StatisticsHandler struct {
	StatisticsService *statssvc.StatisticsService
}

// NewStatisticsHandler tạo mới StatisticsHandler
func NewStatisticsHandler() (*StatisticsHandler, error) {
	svc, err := statssvc.NewStatisticsService()
	if err != nil {
		return nil, fmt.Errorf("tạo StatisticsService: %w", err)
	}
	return &StatisticsHandler{StatisticsService: svc}, nil
}

// HandleOrderStats xử lý GET /statistics/orders.
// URL: GET /api/v1/statistics/orders?by=seller&start=yyyy.mm.dd&finish=yyyy.mm.dd&custom={...}
// Không truyền by thì trả về thống kê tổng; start/finish mặc định là
// 1 tuần trước → hôm nay; custom là chuỗi JSON lọc thêm trên đơn hàng.
func (h *StatisticsHandler) HandleOrderStats(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var q statsdto.OrderStatsQuery
		if err := c.Bind().Query(&q); err != nil {
			return basehdl.ValidationErrorResponse(c, common.ErrCodeValidationInput, common.MsgBadRequest)
		}
		q.ApplyDefaults(time.Now())

		if err := global.Validate.Struct(&q); err != nil {
			return basehdl.ValidationErrorResponse(c, common.ErrCodeValidationInput,
				"Query không hợp lệ: by phải là seller|product|day, start/finish phải có dạng yyyy.mm.dd, custom phải là JSON")
		}
		if err := q.Validate(); err != nil {
			return basehdl.ValidationErrorResponse(c, common.ErrCodeValidationInput, err.Error())
		}

		custom, err := q.CustomFilter()
		if err != nil {
			return basehdl.ValidationErrorResponse(c, common.ErrCodeValidationFormat, err.Error())
		}

		match := statssvc.BuildOrderMatch(q.Start, q.Finish, custom)

		var item interface{}
		switch q.By {
		case statsdto.BySeller:
			item, err = h.StatisticsService.OrdersBySeller(c.Context(), match)
		case statsdto.ByProduct:
			item, err = h.StatisticsService.OrdersByProduct(c.Context(), match)
		case statsdto.ByDay:
			item, err = h.StatisticsService.OrdersByDay(c.Context(), match, q.Start, q.Finish)
		default:
			item, err = h.StatisticsService.Orders(c.Context(), match)
		}
		if err != nil {
			logger.WithRequest(c).WithError(err).WithField("by", q.By).Error("Thống kê đơn hàng thất bại")
			return basehdl.ErrorResponse(c, err)
		}

		return basehdl.OKResponse(c, item)
	})
}

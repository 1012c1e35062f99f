// Package statssvc - service thống kê bán hàng trên collection đơn hàng.
// Bốn chế độ báo cáo (tổng, theo người bán, theo sản phẩm, theo ngày) đều
// chạy aggregation pipeline phía MongoDB; phần hậu xử lý phía Go gồm tra cứu
// thông tin người bán và lấp ngày trống cho báo cáo theo ngày.
package statssvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	authmodels "open_market/internal/api/auth/models"
	authsvc "open_market/internal/api/auth/service"
	basesvc "open_market/internal/api/base/service"
	statsdto "open_market/internal/api/statistics/dto"
	models "open_market/internal/api/statistics/models"
	"open_market/internal/common"
	"open_market/internal/global"
)

// unknownSellerName là tên hiển thị khi id người bán trong đơn hàng không
// còn tồn tại trong collection user. Dòng thống kê vẫn giữ nguyên số liệu.
const unknownSellerName = "unknown"

// SellerLookup tra cứu thông tin hiển thị của người bán theo danh sách id.
// Tách interface để test merge không cần MongoDB.
type SellerLookup interface {
	FindByIds(ctx context.Context, ids []int64) (map[int64]authmodels.User, error)
}

// StatisticsService là cấu trúc chứa các phương thức thống kê đơn hàng
type StatisticsService struct {
	orderService *basesvc.BaseServiceMongoImpl[models.Order]
	sellerLookup SellerLookup
	queryTimeout time.Duration
}

// NewStatisticsService tạo mới StatisticsService
func NewStatisticsService() (*StatisticsService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection: %w", global.MongoDB_ColNames.Orders, common.ErrNotFound)
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}

	timeout := 10 * time.Second
	if global.MongoDB_ServerConfig != nil && global.MongoDB_ServerConfig.QueryTimeout > 0 {
		timeout = time.Duration(global.MongoDB_ServerConfig.QueryTimeout) * time.Second
	}

	return &StatisticsService{
		orderService: basesvc.NewBaseServiceMongo[models.Order](orderCollection),
		sellerLookup: userService,
		queryTimeout: timeout,
	}, nil
}

// aggregate chạy pipeline trên collection đơn hàng và decode toàn bộ kết quả.
// Slice trả về luôn khác nil để kết quả rỗng serialize thành [] thay vì null.
func aggregate[T any](ctx context.Context, collection *mongo.Collection, pipeline []bson.M, timeout time.Duration) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, newQueryError(err)
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, newQueryError(err)
	}
	return results, nil
}

// Orders thống kê tổng số lượng bán và doanh thu của các đơn hàng khớp match.
// Không có đơn hàng nào khớp thì trả về slice rỗng, không trả dòng 0.
func (s *StatisticsService) Orders(ctx context.Context, match bson.M) ([]statsdto.SalesTotalsRow, error) {
	return aggregate[statsdto.SalesTotalsRow](ctx, s.orderService.Collection(), buildTotalsPipeline(match), s.queryTimeout)
}

// OrdersBySeller thống kê theo người bán, xếp hạng theo doanh thu giảm dần,
// kèm tên/ảnh người bán tra cứu từ collection user trong một truy vấn $in.
func (s *StatisticsService) OrdersBySeller(ctx context.Context, match bson.M) ([]statsdto.SellerSalesRow, error) {
	rows, err := aggregate[statsdto.SellerSalesRow](ctx, s.orderService.Collection(), buildSellerPipeline(match), s.queryTimeout)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.SellerID)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	sellers, err := s.sellerLookup.FindByIds(lookupCtx, ids)
	if err != nil {
		return nil, newQueryError(err)
	}

	return mergeSellerInfo(rows, sellers), nil
}

// OrdersByProduct thống kê theo sản phẩm, xếp hạng theo doanh thu giảm dần.
func (s *StatisticsService) OrdersByProduct(ctx context.Context, match bson.M) ([]statsdto.ProductSalesRow, error) {
	return aggregate[statsdto.ProductSalesRow](ctx, s.orderService.Collection(), buildProductPipeline(match), s.queryTimeout)
}

// OrdersByDay thống kê theo ngày trong khoảng [start, finish]. Các ngày không
// có đơn hàng được lấp bằng dòng 0 để chuỗi trả về liên tục theo lịch.
func (s *StatisticsService) OrdersByDay(ctx context.Context, match bson.M, start string, finish string) ([]statsdto.DailySalesRow, error) {
	rows, err := aggregate[statsdto.DailySalesRow](ctx, s.orderService.Collection(), buildDailyPipeline(match), s.queryTimeout)
	if err != nil {
		return nil, err
	}

	filled, err := fillDailyGaps(rows, start, finish)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusUnprocessable,
			map[string]interface{}{"error": err.Error()})
	}
	return filled, nil
}

// newQueryError bọc lỗi truy vấn MongoDB thành lỗi ứng dụng thống nhất
func newQueryError(err error) *common.Error {
	return common.NewError(common.ErrCodeDatabaseQuery, common.MsgDatabaseError, common.StatusInternalServerError,
		map[string]interface{}{"error": err.Error()})
}

// mergeSellerInfo gắn tên/ảnh người bán vào các dòng thống kê, giữ nguyên
// thứ tự xếp hạng. Người bán không còn trong collection user được gắn tên
// "unknown" thay vì loại bỏ dòng, để tổng các dòng vẫn khớp thống kê tổng.
func mergeSellerInfo(rows []statsdto.SellerSalesRow, sellers map[int64]authmodels.User) []statsdto.SellerSalesRow {
	merged := make([]statsdto.SellerSalesRow, len(rows))
	for i, row := range rows {
		if seller, exist := sellers[row.SellerID]; exist {
			row.SellerName = seller.Name
			row.SellerImage = seller.Image
		} else {
			row.SellerName = unknownSellerName
		}
		merged[i] = row
	}
	return merged
}

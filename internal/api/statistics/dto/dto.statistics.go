// Package statsdto - DTO cho API thống kê đơn hàng.
package statsdto

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Định dạng ngày dùng trong toàn bộ API thống kê.
const (
	// DateFormat là định dạng ngày của query param start/finish
	DateFormat = "2006.01.02"
	// DateTimeFormat là định dạng createdAt lưu trong collection order
	DateTimeFormat = "2006.01.02 15:04:05"
)

// Các giá trị hợp lệ của query param by.
const (
	BySeller  = "seller"
	ByProduct = "product"
	ByDay     = "day"
)

// OrderStatsQuery là query params của GET /statistics/orders.
// start/finish mặc định (1 tuần trước → hôm nay) được áp trong ApplyDefaults.
type OrderStatsQuery struct {
	By     string `query:"by" validate:"omitempty,oneof=seller product day"`
	Start  string `query:"start" validate:"omitempty,datetime=2006.01.02"`
	Finish string `query:"finish" validate:"omitempty,datetime=2006.01.02"`
	Custom string `query:"custom" validate:"omitempty,json"`
}

// ApplyDefaults áp giá trị mặc định cho khoảng ngày: start = 1 tuần trước,
// finish = hôm nay.
func (q *OrderStatsQuery) ApplyDefaults(now time.Time) {
	if q.Start == "" {
		q.Start = now.AddDate(0, 0, -7).Format(DateFormat)
	}
	if q.Finish == "" {
		q.Finish = now.Format(DateFormat)
	}
}

// Validate kiểm tra ràng buộc giữa các field sau khi đã qua validator:
// start ≤ finish và khoảng cách không quá 1 năm.
func (q *OrderStatsQuery) Validate() error {
	start, err := time.Parse(DateFormat, q.Start)
	if err != nil {
		return fmt.Errorf("start không đúng định dạng yyyy.mm.dd: %w", err)
	}
	finish, err := time.Parse(DateFormat, q.Finish)
	if err != nil {
		return fmt.Errorf("finish không đúng định dạng yyyy.mm.dd: %w", err)
	}
	if start.After(finish) {
		return fmt.Errorf("start phải nhỏ hơn hoặc bằng finish")
	}
	if finish.After(start.AddDate(1, 0, 0)) {
		return fmt.Errorf("khoảng cách giữa start và finish không được vượt quá 1 năm")
	}
	return nil
}

// CustomFilter parse query param custom (chuỗi JSON) thành bson.M.
// Caller không được đưa key createdAt vào custom; nếu có, nó sẽ ghi đè
// điều kiện khoảng ngày khi merge.
func (q *OrderStatsQuery) CustomFilter() (bson.M, error) {
	if q.Custom == "" {
		return nil, nil
	}
	var filter bson.M
	if err := json.Unmarshal([]byte(q.Custom), &filter); err != nil {
		return nil, fmt.Errorf("custom phải là chuỗi JSON hợp lệ: %w", err)
	}
	return filter, nil
}

// SalesTotalsRow là dòng kết quả cho thống kê tổng (không group).
type SalesTotalsRow struct {
	TotalQuantity int64 `json:"totalQuantity" bson:"totalQuantity"`
	TotalSales    int64 `json:"totalSales" bson:"totalSales"`
}

// SellerSalesRow là dòng kết quả thống kê theo người bán, đã kèm thông tin
// hiển thị tra cứu từ collection user.
type SellerSalesRow struct {
	SellerID      int64  `json:"sellerId" bson:"sellerId"`
	SellerName    string `json:"sellerName" bson:"sellerName"`
	SellerImage   string `json:"sellerImage,omitempty" bson:"sellerImage,omitempty"`
	TotalQuantity int64  `json:"totalQuantity" bson:"totalQuantity"`
	TotalSales    int64  `json:"totalSales" bson:"totalSales"`
}

// ProductSalesRow là dòng kết quả thống kê theo sản phẩm.
// ProductUnitPrice là đơn giá suy ra từ line item đầu tiên của group
// (price / quantity) — một xấp xỉ có chủ đích, không phải trung bình thật.
type ProductSalesRow struct {
	ProductID        int64   `json:"productId" bson:"_id"`
	ProductName      string  `json:"productName" bson:"productName"`
	ProductImage     string  `json:"productImage,omitempty" bson:"productImage,omitempty"`
	ProductUnitPrice float64 `json:"productUnitPrice" bson:"productPrice"`
	TotalQuantity    int64   `json:"totalQuantity" bson:"totalQuantity"`
	TotalSales       int64   `json:"totalSales" bson:"totalSales"`
}

// DailySalesRow là dòng kết quả thống kê theo ngày. Sau bước lấp ngày trống,
// mỗi ngày trong khoảng yêu cầu có đúng một dòng.
type DailySalesRow struct {
	Date          string `json:"date" bson:"_id"`
	TotalQuantity int64  `json:"totalQuantity" bson:"totalQuantity"`
	TotalSales    int64  `json:"totalSales" bson:"totalSales"`
}

// Package models - model đơn hàng (Order) do engine thống kê đọc.
// Đơn hàng được tạo bởi hệ thống đặt hàng (ngoài phạm vi service này) và
// bất biến sau khi ghi; engine chỉ chạy aggregation trên collection này.
package models

// OrderProduct là một line item trong đơn hàng.
// Price là thành tiền của line item (line total), không phải đơn giá;
// quy ước này được pipeline thống kê dựa vào khi cộng totalSales.
type OrderProduct struct {
	ProductID int64  `json:"_id" bson:"_id"`
	SellerID  int64  `json:"seller_id" bson:"seller_id"`
	Quantity  int64  `json:"quantity" bson:"quantity"`
	Price     int64  `json:"price" bson:"price"`
	Name      string `json:"name" bson:"name"`
	Image     string `json:"image,omitempty" bson:"image,omitempty"`
}

// Order định nghĩa mô hình đơn hàng.
// CreatedAt lưu dạng chuỗi "YYYY.MM.DD HH:mm:ss" đã chuẩn hóa timezone lúc
// ghi; 10 ký tự đầu là ngày, pipeline theo-ngày group trên prefix này.
// Đơn hàng có thể mang thêm field tùy ý (ví dụ cost.total) — engine không
// đọc các field đó nhưng predicate custom có thể lọc trên chúng.
type Order struct {
	ID        int64          `json:"_id" bson:"_id"`
	UserID    int64          `json:"user_id,omitempty" bson:"user_id,omitempty"`
	CreatedAt string         `json:"createdAt" bson:"createdAt"`
	Products  []OrderProduct `json:"products" bson:"products"`
}

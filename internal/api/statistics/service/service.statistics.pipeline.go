package statssvc

import (
	"go.mongodb.org/mongo-driver/bson"

	statsdto "open_market/internal/api/statistics/dto"
)

// endOfDaySuffix đưa finish (chỉ có phần ngày) về biên trên bao gồm cả ngày
// đó, vì createdAt lưu đến độ phân giải giây.
const endOfDaySuffix = " 23:59:59"

// BuildOrderMatch dựng stage $match cho khoảng ngày [start, finish] (bao gồm
// hai biên) cộng với predicate custom. Key trong custom ghi đè điều kiện cùng
// tên, kể cả createdAt.
func BuildOrderMatch(start string, finish string, custom bson.M) bson.M {
	match := bson.M{}

	createdAt := bson.M{}
	if start != "" {
		createdAt["$gte"] = start
	}
	if finish != "" {
		createdAt["$lte"] = finish + endOfDaySuffix
	}
	if len(createdAt) > 0 {
		match["createdAt"] = createdAt
	}

	for key, value := range custom {
		match[key] = value
	}

	return match
}

// buildTotalsPipeline dựng pipeline thống kê tổng: gộp mọi line item của các
// đơn hàng khớp match thành đúng một dòng. Không có đơn hàng khớp thì pipeline
// trả về 0 dòng (không trả dòng toàn 0).
func buildTotalsPipeline(match bson.M) []bson.M {
	return []bson.M{
		{"$match": match},
		{"$unwind": "$products"},
		{"$group": bson.M{
			"_id":           nil,
			"totalQuantity": bson.M{"$sum": "$products.quantity"},
			"totalSales":    bson.M{"$sum": "$products.price"},
		}},
		{"$project": bson.M{
			"_id":           0,
			"totalQuantity": 1,
			"totalSales":    1,
		}},
	}
}

// buildSellerPipeline dựng pipeline thống kê theo người bán, xếp hạng theo
// totalSales giảm dần. Thông tin hiển thị của người bán được tra cứu sau ở
// tầng service, không $lookup trong pipeline.
func buildSellerPipeline(match bson.M) []bson.M {
	return []bson.M{
		{"$match": match},
		{"$unwind": "$products"},
		{"$group": bson.M{
			"_id":           "$products.seller_id",
			"totalQuantity": bson.M{"$sum": "$products.quantity"},
			"totalSales":    bson.M{"$sum": "$products.price"},
		}},
		{"$sort": bson.M{"totalSales": -1}},
		{"$project": bson.M{
			"_id":           0,
			"sellerId":      "$_id",
			"totalQuantity": 1,
			"totalSales":    1,
		}},
	}
}

// buildProductPipeline dựng pipeline thống kê theo sản phẩm, xếp hạng theo
// totalSales giảm dần. Tên/ảnh/đơn giá lấy từ line item đầu tiên của mỗi
// group; sắp theo _id đơn hàng trước khi unwind để "đầu tiên" ổn định giữa
// các lần chạy. Đơn giá suy ra bằng price/quantity vì price là thành tiền.
func buildProductPipeline(match bson.M) []bson.M {
	return []bson.M{
		{"$match": match},
		{"$sort": bson.M{"_id": 1}},
		{"$unwind": "$products"},
		{"$group": bson.M{
			"_id":           "$products._id",
			"productName":   bson.M{"$first": "$products.name"},
			"productImage":  bson.M{"$first": "$products.image"},
			"productPrice":  bson.M{"$first": bson.M{"$divide": []interface{}{"$products.price", "$products.quantity"}}},
			"totalQuantity": bson.M{"$sum": "$products.quantity"},
			"totalSales":    bson.M{"$sum": "$products.price"},
		}},
		{"$sort": bson.M{"totalSales": -1}},
	}
}

// buildDailyPipeline dựng pipeline thống kê theo ngày, group trên 10 ký tự
// đầu của createdAt (phần ngày của định dạng lưu trữ) và sắp tăng dần theo
// ngày. Ngày không có đơn hàng sẽ được lấp sau ở tầng service.
func buildDailyPipeline(match bson.M) []bson.M {
	return []bson.M{
		{"$match": match},
		{"$unwind": "$products"},
		{"$group": bson.M{
			"_id":           bson.M{"$substrCP": []interface{}{"$createdAt", 0, len(statsdto.DateFormat)}},
			"totalQuantity": bson.M{"$sum": "$products.quantity"},
			"totalSales":    bson.M{"$sum": "$products.price"},
		}},
		{"$sort": bson.M{"_id": 1}},
	}
}

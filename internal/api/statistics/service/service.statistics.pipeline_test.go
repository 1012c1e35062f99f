// Package statssvc - Test hình dạng các aggregation pipeline và match builder.
package statssvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildOrderMatch_KhoangNgay(t *testing.T) {
	match := BuildOrderMatch("2024.01.01", "2024.01.31", nil)

	createdAt, ok := match["createdAt"].(bson.M)
	if !ok {
		t.Fatalf("match phải có điều kiện createdAt, nhận được %+v", match)
	}
	if createdAt["$gte"] != "2024.01.01" {
		t.Errorf("$gte phải là start, nhận được %v", createdAt["$gte"])
	}
	if createdAt["$lte"] != "2024.01.31 23:59:59" {
		t.Errorf("$lte phải bao trọn ngày finish, nhận được %v", createdAt["$lte"])
	}
}

func TestBuildOrderMatch_ThieuBien(t *testing.T) {
	match := BuildOrderMatch("", "", nil)
	if _, ok := match["createdAt"]; ok {
		t.Errorf("không có start/finish thì không được có điều kiện createdAt: %+v", match)
	}

	match = BuildOrderMatch("2024.01.01", "", nil)
	createdAt := match["createdAt"].(bson.M)
	if _, ok := createdAt["$lte"]; ok {
		t.Errorf("không có finish thì không được có $lte: %+v", createdAt)
	}
}

func TestBuildOrderMatch_CustomMerge(t *testing.T) {
	custom := bson.M{"products.seller_id": int64(3)}
	match := BuildOrderMatch("2024.01.01", "2024.01.31", custom)

	if match["products.seller_id"] != int64(3) {
		t.Errorf("điều kiện custom phải được merge vào match: %+v", match)
	}
	if _, ok := match["createdAt"]; !ok {
		t.Errorf("merge custom không được làm mất điều kiện createdAt: %+v", match)
	}
}

func TestBuildOrderMatch_CustomGhiDeCreatedAt(t *testing.T) {
	custom := bson.M{"createdAt": bson.M{"$gte": "2020.01.01"}}
	match := BuildOrderMatch("2024.01.01", "2024.01.31", custom)

	createdAt := match["createdAt"].(bson.M)
	if createdAt["$gte"] != "2020.01.01" {
		t.Errorf("custom có createdAt thì phải ghi đè khoảng ngày: %+v", createdAt)
	}
}

// stageKey trả về stage thứ i của pipeline nếu nó có đúng một key như mong đợi
func stageValue(t *testing.T, pipeline []bson.M, i int, key string) bson.M {
	t.Helper()
	if i >= len(pipeline) {
		t.Fatalf("pipeline chỉ có %d stage, cần stage %d", len(pipeline), i)
	}
	value, ok := pipeline[i][key]
	if !ok {
		t.Fatalf("stage %d phải là %s, nhận được %+v", i, key, pipeline[i])
	}
	m, ok := value.(bson.M)
	if !ok {
		t.Fatalf("stage %s phải là bson.M, nhận được %T", key, value)
	}
	return m
}

func TestBuildTotalsPipeline(t *testing.T) {
	match := BuildOrderMatch("2024.01.01", "2024.01.31", nil)
	pipeline := buildTotalsPipeline(match)

	if len(pipeline) != 4 {
		t.Fatalf("pipeline tổng phải có 4 stage, nhận được %d", len(pipeline))
	}
	if pipeline[1]["$unwind"] != "$products" {
		t.Errorf("stage 2 phải unwind products: %+v", pipeline[1])
	}

	group := stageValue(t, pipeline, 2, "$group")
	if group["_id"] != nil {
		t.Errorf("thống kê tổng phải group với _id nil: %+v", group)
	}
	sum := group["totalSales"].(bson.M)
	if sum["$sum"] != "$products.price" {
		t.Errorf("totalSales phải cộng thành tiền line item: %+v", sum)
	}

	project := stageValue(t, pipeline, 3, "$project")
	if project["_id"] != 0 {
		t.Errorf("dòng tổng không được lộ _id: %+v", project)
	}
}

func TestBuildSellerPipeline(t *testing.T) {
	pipeline := buildSellerPipeline(bson.M{})

	group := stageValue(t, pipeline, 2, "$group")
	if group["_id"] != "$products.seller_id" {
		t.Errorf("phải group theo seller_id của line item: %+v", group)
	}

	sort := stageValue(t, pipeline, 3, "$sort")
	if sort["totalSales"] != -1 {
		t.Errorf("xếp hạng người bán phải theo totalSales giảm dần: %+v", sort)
	}

	project := stageValue(t, pipeline, 4, "$project")
	if project["sellerId"] != "$_id" {
		t.Errorf("project phải đổi _id thành sellerId: %+v", project)
	}
}

func TestBuildProductPipeline(t *testing.T) {
	pipeline := buildProductPipeline(bson.M{})

	// Sắp theo _id đơn hàng trước khi unwind để $first ổn định
	orderSort := stageValue(t, pipeline, 1, "$sort")
	if orderSort["_id"] != 1 {
		t.Errorf("pipeline sản phẩm phải sắp đơn hàng theo _id trước khi unwind: %+v", orderSort)
	}

	group := stageValue(t, pipeline, 3, "$group")
	if group["_id"] != "$products._id" {
		t.Errorf("phải group theo _id sản phẩm của line item: %+v", group)
	}

	first := group["productName"].(bson.M)
	if first["$first"] != "$products.name" {
		t.Errorf("productName phải lấy từ line item đầu tiên: %+v", first)
	}

	price := group["productPrice"].(bson.M)
	divide := price["$first"].(bson.M)["$divide"].([]interface{})
	if divide[0] != "$products.price" || divide[1] != "$products.quantity" {
		t.Errorf("đơn giá phải là price/quantity: %+v", divide)
	}

	sort := stageValue(t, pipeline, 4, "$sort")
	if sort["totalSales"] != -1 {
		t.Errorf("xếp hạng sản phẩm phải theo totalSales giảm dần: %+v", sort)
	}
}

func TestBuildDailyPipeline(t *testing.T) {
	pipeline := buildDailyPipeline(bson.M{})

	group := stageValue(t, pipeline, 2, "$group")
	substr, ok := group["_id"].(bson.M)
	if !ok {
		t.Fatalf("group theo ngày phải dùng biểu thức substr: %+v", group)
	}
	args := substr["$substrCP"].([]interface{})
	if args[0] != "$createdAt" || args[1] != 0 || args[2] != 10 {
		t.Errorf("phải lấy 10 ký tự đầu của createdAt làm khóa ngày: %+v", args)
	}

	sort := stageValue(t, pipeline, 3, "$sort")
	if sort["_id"] != 1 {
		t.Errorf("báo cáo theo ngày phải sắp tăng dần theo ngày: %+v", sort)
	}
}

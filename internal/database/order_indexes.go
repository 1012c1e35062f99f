// Package database - Index phục vụ aggregation thống kê đơn hàng (nested fields).
package database

import (
	"context"
	"strings"

	"open_market/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateOrderStatisticsIndexes tạo các index hỗ trợ pipeline thống kê:
// lọc theo createdAt và group theo products.seller_id / products._id.
func CreateOrderStatisticsIndexes(ctx context.Context, db *mongo.Database) error {
	orders := db.Collection(global.MongoDB_ColNames.Orders)

	// order: createdAt — mọi pipeline thống kê đều $match theo khoảng ngày
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: 1}},
		Options: options.Index().SetName("order_created_at"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// order: (createdAt, products.seller_id) — thống kê theo người bán
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "createdAt", Value: 1},
			{Key: "products.seller_id", Value: 1},
		},
		Options: options.Index().SetName("order_created_at_seller"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

// isIndexExistsError kiểm tra lỗi trả về do index đã tồn tại (với options khác)
func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "IndexOptionsConflict") ||
		strings.Contains(msg, "IndexKeySpecsConflict") ||
		strings.Contains(msg, "already exists")
}

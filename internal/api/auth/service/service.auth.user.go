// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"fmt"

	models "open_market/internal/api/auth/models"
	basesvc "open_market/internal/api/base/service"
	"open_market/internal/common"
	"open_market/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection: %w", global.MongoDB_ColNames.Users, common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// FindByIds tra cứu nhiều user theo danh sách _id, trả về map theo id.
// Id không tồn tại trong collection sẽ không có trong map kết quả.
func (s *UserService) FindByIds(ctx context.Context, ids []int64) (map[int64]models.User, error) {
	if len(ids) == 0 {
		return map[int64]models.User{}, nil
	}

	users, err := s.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
	if err != nil {
		return nil, err
	}

	result := make(map[int64]models.User, len(users))
	for _, u := range users {
		result[u.ID] = u
	}
	return result, nil
}

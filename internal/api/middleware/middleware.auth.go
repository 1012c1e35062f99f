// Package middleware chứa các middleware HTTP của ứng dụng.
package middleware

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"

	basehdl "open_market/internal/api/base/handler"
	models "open_market/internal/api/auth/models"
	authsvc "open_market/internal/api/auth/service"
	"open_market/internal/common"
	"open_market/internal/global"
	"open_market/internal/logger"
	"open_market/internal/utility"
)

// AuthManager quản lý xác thực người dùng cho các route cần đăng nhập
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache // Cache user theo userId để giảm truy vấn mỗi request
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}

	return &AuthManager{
		UserCRUD: userService,
		// Cache với thời gian sống 5 phút, dọn dẹp mỗi 10 phút, tối đa 10000 user
		Cache: utility.NewCache(5*time.Minute, 10*time.Minute, 10000),
	}, nil
}

// findUser lấy user theo id từ cache hoặc database
func (am *AuthManager) findUser(ctx context.Context, userID int64) (models.User, error) {
	cacheKey := "auth_user:" + utility.Int64ToString(userID)
	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(models.User), nil
	}

	user, err := am.UserCRUD.FindOneById(ctx, userID)
	if err != nil {
		return user, err
	}

	am.Cache.Set(cacheKey, user)
	return user, nil
}

// AuthMiddleware xác thực JWT Bearer token và kiểm tra loại tài khoản.
// requireType là loại tài khoản bắt buộc ("admin" cho API thống kê); truyền
// chuỗi rỗng nếu chỉ cần đăng nhập. Token hợp lệ thì userId được lưu vào
// Locals để handler và logger dùng.
func AuthMiddleware(requireType string) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header Authorization
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.WithRequest(c).Warn("Thiếu header Authorization")
			return basehdl.ErrorResponse(c, common.ErrTokenMissing)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			logger.WithRequest(c).Warn("Header Authorization không đúng định dạng Bearer")
			return basehdl.ErrorResponse(c, common.ErrTokenInvalid)
		}
		tokenString := parts[1]

		// Parse và verify chữ ký token
		claims := &models.JwtToken{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("phương thức ký token không được hỗ trợ")
			}
			return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
		})
		if err != nil {
			var validationErr *jwt.ValidationError
			if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
				return basehdl.ErrorResponse(c, common.ErrTokenExpired)
			}
			logger.WithRequest(c).WithError(err).Warn("Token không hợp lệ")
			return basehdl.ErrorResponse(c, common.ErrTokenInvalid)
		}
		if !token.Valid {
			return basehdl.ErrorResponse(c, common.ErrTokenInvalid)
		}

		// Kiểm tra user còn tồn tại và không bị khóa
		authManager := GetAuthManager()
		user, err := authManager.findUser(c.Context(), claims.UserID)
		if err != nil {
			if common.IsNotFound(err) {
				logger.WithRequest(c).WithField("user_id", claims.UserID).Warn("User trong token không còn tồn tại")
				return basehdl.ErrorResponse(c, common.ErrTokenInvalid)
			}
			return basehdl.ErrorResponse(c, err)
		}
		if user.IsBlock {
			return basehdl.ErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Tài khoản đã bị khóa",
				common.StatusForbidden,
				nil,
			))
		}

		// Lưu thông tin user vào context cho handler và logger
		c.Locals("userId", user.ID)
		c.Locals("userType", user.Type)

		// Kiểm tra loại tài khoản nếu route yêu cầu
		if requireType != "" && user.Type != requireType {
			logger.WithRequest(c).WithField("user_type", user.Type).Warn("Loại tài khoản không đủ quyền truy cập")
			return basehdl.ErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				common.MsgForbidden,
				common.StatusForbidden,
				nil,
			))
		}

		return c.Next()
	}
}

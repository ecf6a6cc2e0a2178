package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"larpit/larp-directory/config"
	"larpit/larp-directory/internal/dto"
	"larpit/larp-directory/internal/model/user"
	"larpit/larp-directory/pkg/response"
)

// contextUserKey 上下文中当前用户的键
const contextUserKey = "current_user"

// Claims JWT 载荷
// 只携带用户ID，角色等信息每次从数据库读取，保证角色变更立即生效
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// parseToken 从 cookie 或 Authorization header 中解析 token
func parseToken(c *gin.Context) (*Claims, error) {
	var tokenString string

	// 优先从 cookie 中获取 access_token
	tokenString, err := c.Cookie("access_token")
	if err != nil || tokenString == "" {
		// cookie 中没有时尝试 Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return nil, fmt.Errorf("未提供认证令牌")
		}
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenString = authHeader[7:]
		} else {
			return nil, fmt.Errorf("认证格式错误")
		}
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Conf.JWT.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("无效的认证令牌")
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("认证令牌无效")
}

// loadUser 按 token 里的用户ID加载当前用户记录
func loadUser(db *gorm.DB, claims *Claims) (*user.User, error) {
	var u user.User
	if err := db.First(&u, claims.UserID).Error; err != nil {
		return nil, fmt.Errorf("用户不存在")
	}
	return &u, nil
}

// JWTAuth JWT 认证中间件（必需认证）
func JWTAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage(err.Error()),
			))
			c.Abort()
			return
		}

		u, err := loadUser(db, claims)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage(err.Error()),
			))
			c.Abort()
			return
		}

		c.Set(contextUserKey, u)
		c.Next()
	}
}

// OptionalJWTAuth 可选认证中间件：有有效 token 就加载用户，没有也放行
// 匿名提交入口用这个，业务层按 submitter 是否为 nil 区分匿名/登录
func OptionalJWTAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c)
		if err == nil && claims != nil {
			if u, err := loadUser(db, claims); err == nil {
				c.Set(contextUserKey, u)
			}
		}
		c.Next()
	}
}

// CurrentUser 取出中间件放入上下文的当前用户，匿名请求返回 nil
func CurrentUser(c *gin.Context) *user.User {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil
	}
	u, ok := value.(*user.User)
	if !ok {
		return nil
	}
	return u
}

package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"larpit/larp-directory/internal/middleware"
)

// SetupRoutes 注册用户管理路由（管理员）
func SetupRoutes(router *gin.RouterGroup, db *gorm.DB) {
	handler := NewHandler(NewService(NewRepository(db)))

	users := router.Group("/users", middleware.JWTAuth(db))
	{
		users.GET("", handler.ListUsers)
		users.PUT("/:id/role", handler.ChangeRole)
	}
}

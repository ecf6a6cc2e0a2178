package moderation

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"larpit/larp-directory/internal/middleware"
	"larpit/larp-directory/internal/model/larp"
	pkgdb "larpit/larp-directory/pkg/database"
)

// SetupRoutes 注册审核流程相关路由
func SetupRoutes(router *gin.RouterGroup, db *gorm.DB, redis *pkgdb.RedisClient, notifier Notifier, defaultLanguage larp.Language) {
	service := NewService(db, redis, notifier, defaultLanguage)
	handler := NewHandler(service)

	group := router.Group("/moderation")
	{
		// 提交入口：匿名和登录都可以，业务层按身份决定初始状态
		group.POST("/requests", middleware.OptionalJWTAuth(db), handler.Submit)

		// 邮箱验证链接，无需认证
		group.GET("/verify/:code", handler.Verify)

		// 撤回：提交人本人或审核员
		group.POST("/requests/:id/withdraw", middleware.JWTAuth(db), handler.Withdraw)

		// 审核员队列与决定
		authed := group.Group("", middleware.JWTAuth(db))
		{
			authed.GET("/requests", handler.ListRequests)
			authed.GET("/requests/:id", handler.GetRequest)
			authed.POST("/requests/:id/resolve", handler.Resolve)
			authed.POST("/requests/:id/check", handler.MarkChecked)
		}
	}
}

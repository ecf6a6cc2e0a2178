package larp

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes 注册条目读路由，全部公开
func SetupRoutes(router *gin.RouterGroup, db *gorm.DB) {
	handler := NewHandler(NewService(NewRepository(db)))

	larps := router.Group("/larps")
	{
		larps.GET("", handler.ListLarps)
		larps.GET("/:idOrAlias", handler.GetLarp)
	}
}

package model

import (
	"gorm.io/gorm"

	"larpit/larp-directory/internal/model/larp"
	"larpit/larp-directory/internal/model/moderation"
	"larpit/larp-directory/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 用户模型
		&user.User{},
		// 条目相关模型
		&larp.Municipality{},
		&larp.Larp{},
		&larp.Link{},
		&larp.RelatedUser{},
		&larp.RelatedLarp{},
		// 审核请求
		&moderation.Request{},
	)
	if err != nil {
		return err
	}
	return nil
}

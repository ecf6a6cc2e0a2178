// Package user 用户模型
package user

import "time"

// Role 用户全局角色，封闭集合
type Role string

const (
	// 首次登录/首次提交，身份未建立信任
	RoleNotVerified Role = "not_verified"
	// 有过已通过的提交，后续提交免前置审核
	RoleVerified Role = "verified"
	// 审核员
	RoleModerator Role = "moderator"
	// 管理员
	RoleAdmin Role = "admin"
)

// Valid 角色是否在封闭集合内
func (r Role) Valid() bool {
	switch r {
	case RoleNotVerified, RoleVerified, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// User 用户表
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// 显示名称
	DisplayName string `gorm:"type:varchar(255);not null" json:"display_name"`
	// 邮箱，唯一
	Email string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	// 全局角色，见 Role
	Role      Role      `gorm:"type:varchar(50);not null;default:'not_verified'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

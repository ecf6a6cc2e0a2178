// Package permission 统一权限判定
// 提供基于用户全局角色的纯函数判定，无副作用；nil 用户一律按最低权限处理
package permission

import (
	"larpit/larp-directory/internal/model/user"
)

// CanModerate 是否可以审核（审核员和管理员）
func CanModerate(u *user.User) bool {
	if u == nil {
		return false
	}
	switch u.Role {
	case user.RoleModerator, user.RoleAdmin:
		return true
	case user.RoleNotVerified, user.RoleVerified:
		return false
	}
	return false
}

// CanManageUsers 是否可以管理用户（仅管理员）
func CanManageUsers(u *user.User) bool {
	if u == nil {
		return false
	}
	return u.Role == user.RoleAdmin
}

// CanEditPages 是否可以编辑内容页（与审核权限共用同一道门）
func CanEditPages(u *user.User) bool {
	return CanModerate(u)
}

// CanCreateListingWithoutPreModeration 新条目是否免前置审核
// 有过已通过提交的用户（verified 及以上）直接发布，不用等审核员
func CanCreateListingWithoutPreModeration(u *user.User) bool {
	if u == nil {
		return false
	}
	switch u.Role {
	case user.RoleVerified, user.RoleModerator, user.RoleAdmin:
		return true
	case user.RoleNotVerified:
		return false
	}
	return false
}

// CanCreateListingWithoutPostModeration 新条目是否连事后抽查都免掉
// 只有审核员和管理员的提交完全跳过审核
func CanCreateListingWithoutPostModeration(u *user.User) bool {
	return CanModerate(u)
}

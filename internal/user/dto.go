package user

import (
	model "larpit/larp-directory/internal/model/user"
)

// ChangeRoleDTO 修改用户角色
type ChangeRoleDTO struct {
	Role string `json:"role" binding:"required,oneof=not_verified verified moderator admin"`
}

// UserListResponse 用户分页列表
type UserListResponse struct {
	Users    []model.User `json:"users"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

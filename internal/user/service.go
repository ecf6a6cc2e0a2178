package user

import (
	"errors"

	"gorm.io/gorm"

	model "larpit/larp-directory/internal/model/user"
	"larpit/larp-directory/internal/permission"
	"larpit/larp-directory/pkg/response"
)

// Service 用户管理服务（管理员）
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// ListUsers 分页查询用户
func (s *Service) ListUsers(actor *model.User, role model.Role, page, pageSize int) (*UserListResponse, *response.BusinessError) {
	if !permission.CanManageUsers(actor) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("需要管理员权限"),
		)
	}
	if role != "" && !role.Valid() {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("未知的用户角色"),
		)
	}

	users, total, err := s.repo.List(role, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询用户列表失败"),
			response.WithError(err),
		)
	}

	return &UserListResponse{
		Users:    users,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ChangeRole 修改用户角色
// 管理员不能改自己的角色，防止把最后一个管理员降级后锁死系统
func (s *Service) ChangeRole(actor *model.User, targetID uint, role model.Role) (*model.User, *response.BusinessError) {
	if !permission.CanManageUsers(actor) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("需要管理员权限"),
		)
	}
	if !role.Valid() {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("未知的用户角色"),
		)
	}
	if actor.ID == targetID {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("不能修改自己的角色"),
		)
	}

	target, err := s.repo.GetByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("用户不存在"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询用户失败"),
			response.WithError(err),
		)
	}

	if err := s.repo.UpdateRole(target.ID, role); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("修改角色失败"),
			response.WithError(err),
		)
	}

	target.Role = role
	return target, nil
}

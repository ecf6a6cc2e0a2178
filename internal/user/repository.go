package user

import (
	"gorm.io/gorm"

	model "larpit/larp-directory/internal/model/user"
)

// Repository 用户仓储
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List 分页查询用户，可按角色过滤
func (r *Repository) List(role model.Role, offset, limit int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	query := r.db.Model(&model.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).Order("id").Find(&users).Error
	return users, total, err
}

// GetByID 按ID查询用户
func (r *Repository) GetByID(id uint) (*model.User, error) {
	var u model.User
	err := r.db.First(&u, id).Error
	return &u, err
}

// UpdateRole 更新用户角色
func (r *Repository) UpdateRole(id uint, role model.Role) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).Update("role", role).Error
}

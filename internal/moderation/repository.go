package moderation

import (
	"time"

	"gorm.io/gorm"

	"larpit/larp-directory/internal/model/larp"
	modmodel "larpit/larp-directory/internal/model/moderation"
	"larpit/larp-directory/internal/model/user"
)

// RequestRepository 审核请求仓储层
type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) GetByID(id uint) (*modmodel.Request, error) {
	var req modmodel.Request
	err := r.db.First(&req, id).Error
	return &req, err
}

// GetByCode 按验证码查找请求
func (r *RequestRepository) GetByCode(code string) (*modmodel.Request, error) {
	var req modmodel.Request
	err := r.db.Where("verification_code = ?", code).First(&req).Error
	return &req, err
}

// ListByStatus 按状态分页查询请求，最新在前
func (r *RequestRepository) ListByStatus(status modmodel.Status, offset, limit int) ([]modmodel.Request, int64, error) {
	var requests []modmodel.Request
	var total int64

	query := r.db.Model(&modmodel.Request{}).Where("status = ?", status)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&requests).Error
	return requests, total, err
}

// MarkVerified 把待验证请求标记为已验证
// WHERE 条件带上旧状态，并发竞争时后到的一方更新 0 行
func (r *RequestRepository) MarkVerified(tx *gorm.DB, id uint, verifiedAt time.Time) (bool, error) {
	result := tx.Model(&modmodel.Request{}).
		Where("id = ? AND status = ?", id, modmodel.StatusPendingVerification).
		Updates(map[string]interface{}{
			"status":      modmodel.StatusVerified,
			"verified_at": verifiedAt,
		})
	return result.RowsAffected > 0, result.Error
}

// TransitionStatus 状态迁移，带前置状态条件
// 返回 false 表示请求已被并发操作改走，调用方应报状态冲突
func (r *RequestRepository) TransitionStatus(tx *gorm.DB, id uint, from []modmodel.Status, updates map[string]interface{}) (bool, error) {
	result := tx.Model(&modmodel.Request{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	return result.RowsAffected > 0, result.Error
}

// GetUserRelations 查询用户与条目的关系角色集合
func (r *RequestRepository) GetUserRelations(larpID uint, userID uint) ([]larp.RelationRole, error) {
	var rows []larp.RelatedUser
	err := r.db.Where("larp_id = ? AND user_id = ?", larpID, userID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	roles := make([]larp.RelationRole, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, row.Role)
	}
	return roles, nil
}

// GetLarp 查询目标条目
func (r *RequestRepository) GetLarp(id uint) (*larp.Larp, error) {
	var l larp.Larp
	err := r.db.First(&l, id).Error
	return &l, err
}

// GetUser 查询用户
func (r *RequestRepository) GetUser(id uint) (*user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return &u, err
}

package larp

import (
	"gorm.io/gorm"

	model "larpit/larp-directory/internal/model/larp"
)

// Repository 条目读仓储
// 注意：条目内容的写入只发生在审核流程里（internal/moderation），
// 这里只提供读取
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List 分页查询条目，支持按名称模糊搜索，按开始日期倒序
func (r *Repository) List(search string, offset, limit int) ([]model.Larp, int64, error) {
	var larps []model.Larp
	var total int64

	query := r.db.Model(&model.Larp{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).
		Order("starts_at DESC NULLS LAST, id DESC").
		Find(&larps).Error
	return larps, total, err
}

// GetByID 按ID查询条目
func (r *Repository) GetByID(id uint) (*model.Larp, error) {
	var l model.Larp
	err := r.db.First(&l, id).Error
	return &l, err
}

// GetByAlias 按别名查询条目
func (r *Repository) GetByAlias(alias string) (*model.Larp, error) {
	var l model.Larp
	err := r.db.Where("alias = ?", alias).First(&l).Error
	return &l, err
}

// GetLinks 查询条目的外链
func (r *Repository) GetLinks(larpID uint) ([]model.Link, error) {
	var links []model.Link
	err := r.db.Where("larp_id = ?", larpID).Order("id").Find(&links).Error
	return links, err
}

// GetMunicipality 查询市镇
func (r *Repository) GetMunicipality(id uint) (*model.Municipality, error) {
	var m model.Municipality
	err := r.db.First(&m, id).Error
	return &m, err
}

// GetRelatedLarps 查询条目间关系（双向）
func (r *Repository) GetRelatedLarps(larpID uint) ([]model.RelatedLarp, error) {
	var relations []model.RelatedLarp
	err := r.db.Where("left_id = ? OR right_id = ?", larpID, larpID).Find(&relations).Error
	return relations, err
}

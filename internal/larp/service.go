package larp

import (
	"errors"

	"gorm.io/gorm"

	model "larpit/larp-directory/internal/model/larp"
	"larpit/larp-directory/pkg/response"
)

// Service 条目读服务
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// ListLarps 分页查询条目列表
func (s *Service) ListLarps(search string, page, pageSize int) (*LarpListResponse, *response.BusinessError) {
	larps, total, err := s.repo.List(search, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询条目列表失败"),
			response.WithError(err),
		)
	}

	items := make([]LarpListItem, 0, len(larps))
	for i := range larps {
		items = append(items, newListItem(&larps[i]))
	}

	return &LarpListResponse{
		Larps:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetLarp 按ID查询条目详情
func (s *Service) GetLarp(id uint) (*LarpResponse, *response.BusinessError) {
	l, err := s.repo.GetByID(id)
	if err != nil {
		return nil, s.notFoundOr(err)
	}
	return s.buildDetail(l)
}

// GetLarpByAlias 按别名查询条目详情
func (s *Service) GetLarpByAlias(alias string) (*LarpResponse, *response.BusinessError) {
	l, err := s.repo.GetByAlias(alias)
	if err != nil {
		return nil, s.notFoundOr(err)
	}
	return s.buildDetail(l)
}

// buildDetail 组装详情：补市镇名称和外链
func (s *Service) buildDetail(l *model.Larp) (*LarpResponse, *response.BusinessError) {
	var municipality *string
	if l.MunicipalityID != nil {
		if m, err := s.repo.GetMunicipality(*l.MunicipalityID); err == nil {
			municipality = &m.Name
		}
	}

	links, err := s.repo.GetLinks(l.ID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询条目外链失败"),
			response.WithError(err),
		)
	}

	resp := newLarpResponse(l, municipality, links)

	related, bizErr := s.relatedListings(l)
	if bizErr != nil {
		return nil, bizErr
	}
	resp.RelatedLarps = related

	return &resp, nil
}

// relatedListings 解析条目间关系（续作/重开/战役），补上对端条目的名称
// 关系是有向存储的，取对端时两个方向都要看；对端已不存在的边直接跳过
func (s *Service) relatedListings(l *model.Larp) ([]RelatedLarpResponse, *response.BusinessError) {
	relations, err := s.repo.GetRelatedLarps(l.ID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询条目关系失败"),
			response.WithError(err),
		)
	}

	var related []RelatedLarpResponse
	for _, rel := range relations {
		otherID := rel.RightID
		if otherID == l.ID {
			otherID = rel.LeftID
		}
		other, err := s.repo.GetByID(otherID)
		if err != nil {
			continue
		}
		related = append(related, RelatedLarpResponse{
			ID:    other.ID,
			Alias: other.Alias,
			Name:  other.Name,
			Type:  rel.Type,
		})
	}
	return related, nil
}

func (s *Service) notFoundOr(err error) *response.BusinessError {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("条目不存在"),
		)
	}
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage("查询条目失败"),
		response.WithError(err),
	)
}

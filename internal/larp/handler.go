package larp

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"larpit/larp-directory/internal/dto"
)

// Handler 条目读处理器
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListLarps 条目列表
// GET /api/larps?search=&page=1&pageSize=20
func (h *Handler) ListLarps(c *gin.Context) {
	search := c.Query("search")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	result, bizErr := h.service.ListLarps(search, page, pageSize)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

// GetLarp 条目详情
// GET /api/larps/:idOrAlias
// 纯数字按ID查，否则按别名查
func (h *Handler) GetLarp(c *gin.Context) {
	idOrAlias := c.Param("idOrAlias")

	if id, err := strconv.ParseUint(idOrAlias, 10, 32); err == nil {
		result, bizErr := h.service.GetLarp(uint(id))
		if bizErr != nil {
			dto.ErrorResponse(c, bizErr)
			return
		}
		dto.SuccessResponse(c, result)
		return
	}

	result, bizErr := h.service.GetLarpByAlias(idOrAlias)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}
	dto.SuccessResponse(c, result)
}

package user

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"larpit/larp-directory/internal/dto"
	"larpit/larp-directory/internal/middleware"
	model "larpit/larp-directory/internal/model/user"
	"larpit/larp-directory/pkg/response"
)

// Handler 用户管理处理器
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListUsers 用户列表
// GET /api/users?role=&page=1&pageSize=20（管理员）
func (h *Handler) ListUsers(c *gin.Context) {
	role := model.Role(c.Query("role"))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	result, bizErr := h.service.ListUsers(middleware.CurrentUser(c), role, page, pageSize)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

// ChangeRole 修改用户角色
// PUT /api/users/:id/role（管理员）
func (h *Handler) ChangeRole(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的用户ID"),
		))
		return
	}

	var req ChangeRoleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.service.ChangeRole(middleware.CurrentUser(c), uint(targetID), model.Role(req.Role))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

package moderation

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"larpit/larp-directory/internal/dto"
	"larpit/larp-directory/internal/middleware"
	modmodel "larpit/larp-directory/internal/model/moderation"
	"larpit/larp-directory/pkg/response"
)

// Handler 审核请求处理器
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Submit 提交审核请求
// POST /api/moderation/requests（可选认证）
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.service.Submit(req.toInput(), middleware.CurrentUser(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, newRequestResponse(result))
}

// Verify 邮箱验证
// GET /api/moderation/verify/:code
func (h *Handler) Verify(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("缺少验证码"),
		))
		return
	}

	result, bizErr := h.service.Verify(code)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	// 验证页只需要知道请求当前走到哪一步
	dto.SuccessResponse(c, gin.H{
		"id":     result.ID,
		"status": result.Status,
	})
}

// ListRequests 审核队列
// GET /api/moderation/requests?status=verified&page=1&pageSize=20（审核员）
func (h *Handler) ListRequests(c *gin.Context) {
	status := modmodel.Status(c.DefaultQuery("status", string(modmodel.StatusVerified)))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	requests, total, bizErr := h.service.ListRequests(status, middleware.CurrentUser(c), (page-1)*pageSize, pageSize)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	items := make([]RequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, newRequestResponse(&requests[i]))
	}

	dto.SuccessResponse(c, RequestListResponse{
		Requests: items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetRequest 请求详情
// GET /api/moderation/requests/:id（审核员）
func (h *Handler) GetRequest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, bizErr := h.service.GetRequest(id, middleware.CurrentUser(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, newRequestResponse(result))
}

// Resolve 批准/驳回请求
// POST /api/moderation/requests/:id/resolve（审核员）
func (h *Handler) Resolve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ResolveRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.service.Resolve(id, middleware.CurrentUser(c), Decision(req.Decision), req.Message)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, newRequestResponse(result))
}

// MarkChecked 抽查结单
// POST /api/moderation/requests/:id/check（审核员）
func (h *Handler) MarkChecked(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CheckRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, bizErr := h.service.MarkChecked(id, middleware.CurrentUser(c), req.Message)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, newRequestResponse(result))
}

// Withdraw 撤回请求
// POST /api/moderation/requests/:id/withdraw（提交人或审核员）
func (h *Handler) Withdraw(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, bizErr := h.service.Withdraw(id, middleware.CurrentUser(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, newRequestResponse(result))
}

// parseID 解析路径里的请求ID，失败时直接写响应
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("无效的请求ID"),
		))
		return 0, false
	}
	return uint(id), true
}

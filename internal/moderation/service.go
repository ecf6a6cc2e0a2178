package moderation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"larpit/larp-directory/internal/model/larp"
	modmodel "larpit/larp-directory/internal/model/moderation"
	"larpit/larp-directory/internal/model/user"
	"larpit/larp-directory/internal/permission"
	pkgdb "larpit/larp-directory/pkg/database"
	"larpit/larp-directory/pkg/response"
)

const (
	// 确认邮件重发冷却时间（同一邮箱）
	resendCooldown = 60 * time.Second
	// Redis Key 前缀
	redisKeyPrefix = "moderation:verify:"
)

// Decision 审核决定
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// SubmitInput 提交请求的类型化输入（由 handler 层从 DTO 转换）
type SubmitInput struct {
	Action            modmodel.Action
	LarpID            *uint
	Content           ContentInput
	Message           string
	LinksAdd          []LinkSpec
	LinksRemove       []uint
	SubmitterName     string
	SubmitterEmail    string
	SubmitterRelation larp.RelationRole
	CatAnswer         string
}

// Service 审核请求生命周期
// 状态机的唯一持有者：条目内容只能经由这里的已批准请求写入
type Service struct {
	db              *gorm.DB
	repo            *RequestRepository
	redis           *pkgdb.RedisClient // 可为 nil，nil 时不做重发限流
	notifier        Notifier
	defaultLanguage larp.Language
}

func NewService(db *gorm.DB, redis *pkgdb.RedisClient, notifier Notifier, defaultLanguage larp.Language) *Service {
	return &Service{
		db:              db,
		repo:            NewRequestRepository(db),
		redis:           redis,
		notifier:        notifier,
		defaultLanguage: defaultLanguage,
	}
}

// Submit 创建审核请求
// 流程：校验内容 → 计算初始状态 → 落库；按初始状态触发副作用：
// 待验证发确认邮件，直接发布的在同一事务里把内容写到条目上
func (s *Service) Submit(in SubmitInput, submitter *user.User) (*modmodel.Request, *response.BusinessError) {
	if !in.Action.Valid() {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("未知的请求动作"),
		)
	}

	// 1. 内容校验，整体通过或整体拒绝
	var fieldErrs []FieldError
	content, errs := ValidateContent(in.Content, s.defaultLanguage)
	fieldErrs = append(fieldErrs, errs...)
	fieldErrs = append(fieldErrs, ValidateMessage(in.Message)...)
	fieldErrs = append(fieldErrs, ValidateLinks(in.LinksAdd)...)
	if len(fieldErrs) > 0 {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage(FieldErrorMessage(fieldErrs)),
		)
	}

	// 2. 提交人信息：登录用户以账号为准，匿名提交必须带邮箱并回答反自动化问题
	submitterName := in.SubmitterName
	submitterEmail := in.SubmitterEmail
	var submitterUserID *uint
	if submitter != nil {
		submitterUserID = &submitter.ID
		if submitterName == "" {
			submitterName = submitter.DisplayName
		}
		if submitterEmail == "" {
			submitterEmail = submitter.Email
		}
	} else {
		if submitterEmail == "" {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage("提交内容校验失败: submitter_email: 必填"),
			)
		}
		if !CheckCatAnswer(in.CatAnswer) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage("提交内容校验失败: cat: 答案不正确"),
			)
		}
	}

	// 3. 计算初始状态
	var status modmodel.Status
	switch in.Action {
	case modmodel.ActionCreate:
		status = InitialCreateStatus(submitter)
	case modmodel.ActionUpdate, modmodel.ActionClaim:
		if in.LarpID == nil {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage("编辑/认领请求必须指定目标条目"),
			)
		}
		if _, err := s.repo.GetLarp(*in.LarpID); err != nil {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("目标条目不存在"),
			)
		}
		var relations []larp.RelationRole
		if submitter != nil {
			var err error
			relations, err = s.repo.GetUserRelations(*in.LarpID, submitter.ID)
			if err != nil {
				return nil, response.NewBusinessError(
					response.WithErrorCode(response.Fail),
					response.WithErrorMessage("查询条目关系失败"),
					response.WithError(err),
				)
			}
		}
		resolved, ok := InitialEditStatus(in.Action, submitter, relations)
		if !ok {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Forbidden),
				response.WithErrorMessage("没有提交该请求的权限"),
			)
		}
		status = resolved
	}

	// 4. 待验证的提交先过重发限流（防邮件轰炸，仅作廉价过滤）
	if status == modmodel.StatusPendingVerification {
		if bizErr := s.checkResendThrottle(submitterEmail); bizErr != nil {
			return nil, bizErr
		}
	}

	// 5. 序列化内容快照
	contentJSON, err := MarshalContent(content)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("序列化内容快照失败"),
			response.WithError(err),
		)
	}
	linkAddJSON, linkRemoveJSON, err := marshalLinkSets(in.LinksAdd, in.LinksRemove)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("序列化外链集合失败"),
			response.WithError(err),
		)
	}

	now := time.Now()
	req := &modmodel.Request{
		CreatedAt:         now,
		Action:            in.Action,
		Status:            status,
		SubmitterName:     submitterName,
		SubmitterEmail:    submitterEmail,
		SubmitterRelation: string(in.SubmitterRelation),
		SubmitterUserID:   submitterUserID,
		Message:           in.Message,
		ContentJSON:       contentJSON,
		LinkAddJSON:       linkAddJSON,
		LinkRemoveJSON:    linkRemoveJSON,
		LarpID:            in.LarpID,
		VerificationCode:  uuid.NewString(),
	}

	// 6. 落库 + 按状态触发副作用，同一事务内全部成功或全部失败
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		switch status {
		case modmodel.StatusPendingVerification:
			if err := tx.Create(req).Error; err != nil {
				return err
			}
			// 确认邮件发送失败时整个提交失败（非生产环境由 notifier 记日志放行）
			return s.notifier.SendVerification(content.Language, submitterEmail, req.VerificationCode)

		case modmodel.StatusVerified:
			return tx.Create(req).Error

		case modmodel.StatusAutoApproved, modmodel.StatusApproved:
			if in.Action != modmodel.ActionCreate {
				// 编辑/认领内容的实际应用尚未实现，宁可大声失败也不半吊子生效
				return errNotImplemented
			}
			if status == modmodel.StatusApproved {
				// 审核员/管理员的提交完全免审，创建即结单
				req.ResolvedAt = &now
				req.ResolvedBy = submitterUserID
				req.ResolvedMessage = "自动批准（提交人可免审核）"
			}
			if err := tx.Create(req).Error; err != nil {
				return err
			}
			_, err := s.applyCreate(tx, req, content, submitter)
			return err

		case modmodel.StatusRejected, modmodel.StatusWithdrawn:
			// 初始状态不可能是终态
			return fmt.Errorf("非法初始状态: %s", status)
		}
		return fmt.Errorf("非法初始状态: %s", status)
	})

	if txErr != nil {
		if errors.Is(txErr, errNotImplemented) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotImplemented),
				response.WithErrorMessage("编辑/认领请求的直接生效尚未实现"),
			)
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建审核请求失败"),
			response.WithError(txErr),
		)
	}

	return req, nil
}

// Verify 邮箱验证
// 验证码只匹配待验证状态的请求；已过该状态的请求重复验证是幂等的
// 无操作（用户重复点邮件链接不报错），未知验证码一律按未找到处理
func (s *Service) Verify(code string) (*modmodel.Request, *response.BusinessError) {
	req, err := s.repo.GetByCode(code)
	if err != nil {
		// 不区分"格式不对"和"不存在"，避免泄露验证码是否被使用过
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("验证链接无效"),
		)
	}

	switch req.Status {
	case modmodel.StatusPendingVerification:
		// 并发验证时后到的一方更新 0 行，同样按幂等成功处理
		if _, err := s.repo.MarkVerified(s.db, req.ID, time.Now()); err != nil {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Fail),
				response.WithErrorMessage("验证失败"),
				response.WithError(err),
			)
		}
		return s.reload(req.ID)

	case modmodel.StatusVerified, modmodel.StatusAutoApproved,
		modmodel.StatusApproved, modmodel.StatusRejected, modmodel.StatusWithdrawn:
		// 幂等：重复点击邮件链接直接回到确认页
		return req, nil
	}

	return req, nil
}

// Resolve 审核员批准/驳回请求
func (s *Service) Resolve(requestID uint, actor *user.User, decision Decision, reason string) (*modmodel.Request, *response.BusinessError) {
	if !permission.CanModerate(actor) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("需要审核员权限"),
		)
	}

	req, err := s.repo.GetByID(requestID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("请求不存在"),
		)
	}

	switch decision {
	case DecisionApprove:
		return s.approve(req, actor, reason)
	case DecisionReject:
		return s.reject(req, actor, reason)
	}

	return nil, response.NewBusinessError(
		response.WithErrorCode(response.InvalidParameter),
		response.WithErrorMessage("未知的审核决定"),
	)
}

// approve 批准：CREATE 请求在同一事务里创建条目、挂关系、提升提交人信任并结单
// 崩溃不会留下"已批准却没有条目"或"有条目却没结单"的中间态
func (s *Service) approve(req *modmodel.Request, actor *user.User, reason string) (*modmodel.Request, *response.BusinessError) {
	switch req.Status {
	case modmodel.StatusApproved, modmodel.StatusRejected, modmodel.StatusWithdrawn:
		return nil, errAlreadyResolved()

	case modmodel.StatusAutoApproved:
		// 条目在提交时已经发布，这里只是抽查结单，不再碰条目
		return s.MarkChecked(req.ID, actor, reason)

	case modmodel.StatusPendingVerification, modmodel.StatusVerified:
		// 继续走正式批准
	}

	if req.LarpID != nil && req.Action == modmodel.ActionCreate {
		// CREATE 请求的目标条目不应已存在
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.StateConflict),
			response.WithErrorMessage("该请求的条目已存在"),
		)
	}

	switch req.Action {
	case modmodel.ActionUpdate, modmodel.ActionClaim:
		// 已有状态判定逻辑，但批准后的内容应用还没实现：大声失败
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotImplemented),
			response.WithErrorMessage("编辑/认领请求的批准尚未实现"),
		)
	case modmodel.ActionCreate:
		// 继续
	}

	// 读取快照时重新校验
	content, fieldErrs := ParseContent(req.ContentJSON)
	if len(fieldErrs) > 0 {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage(FieldErrorMessage(fieldErrs)),
		)
	}

	now := time.Now()
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := s.repo.TransitionStatus(tx, req.ID,
			[]modmodel.Status{modmodel.StatusPendingVerification, modmodel.StatusVerified},
			map[string]interface{}{
				"status":           modmodel.StatusApproved,
				"resolved_at":      now,
				"resolved_by":      actor.ID,
				"resolved_message": reason,
			})
		if err != nil {
			return err
		}
		if !ok {
			return errStateConflict
		}

		req.Status = modmodel.StatusApproved
		req.ResolvedAt = &now
		req.ResolvedBy = &actor.ID
		req.ResolvedMessage = reason

		var submitter *user.User
		if req.SubmitterUserID != nil {
			submitter, err = s.repo.GetUser(*req.SubmitterUserID)
			if err != nil {
				return err
			}
		}

		_, err = s.applyCreate(tx, req, content, submitter)
		return err
	})

	if txErr != nil {
		if errors.Is(txErr, errStateConflict) {
			return nil, errAlreadyResolved()
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("批准失败"),
			response.WithError(txErr),
		)
	}

	return s.reload(req.ID)
}

// reject 驳回：只改状态和结单元数据，绝不碰条目
func (s *Service) reject(req *modmodel.Request, actor *user.User, reason string) (*modmodel.Request, *response.BusinessError) {
	switch req.Status {
	case modmodel.StatusApproved, modmodel.StatusRejected, modmodel.StatusWithdrawn:
		return nil, errAlreadyResolved()
	case modmodel.StatusPendingVerification, modmodel.StatusVerified, modmodel.StatusAutoApproved:
		// 非终态都可以驳回
	}

	now := time.Now()
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := s.repo.TransitionStatus(tx, req.ID,
			[]modmodel.Status{modmodel.StatusPendingVerification, modmodel.StatusVerified, modmodel.StatusAutoApproved},
			map[string]interface{}{
				"status":           modmodel.StatusRejected,
				"resolved_at":      now,
				"resolved_by":      actor.ID,
				"resolved_message": reason,
			})
		if err != nil {
			return err
		}
		if !ok {
			return errStateConflict
		}
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, errStateConflict) {
			return nil, errAlreadyResolved()
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("驳回失败"),
			response.WithError(txErr),
		)
	}

	return s.reload(req.ID)
}

// MarkChecked 抽查结单：AUTO_APPROVED → APPROVED
// 条目在提交时已经创建，这一步只补结单元数据，不再改动条目
func (s *Service) MarkChecked(requestID uint, actor *user.User, reason string) (*modmodel.Request, *response.BusinessError) {
	if !permission.CanModerate(actor) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("需要审核员权限"),
		)
	}

	req, err := s.repo.GetByID(requestID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("请求不存在"),
		)
	}

	switch req.Status {
	case modmodel.StatusAutoApproved:
		// 继续
	case modmodel.StatusPendingVerification, modmodel.StatusVerified,
		modmodel.StatusApproved, modmodel.StatusRejected, modmodel.StatusWithdrawn:
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.StateConflict),
			response.WithErrorMessage("只有已自动发布的请求可以抽查结单"),
		)
	}

	now := time.Now()
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := s.repo.TransitionStatus(tx, req.ID,
			[]modmodel.Status{modmodel.StatusAutoApproved},
			map[string]interface{}{
				"status":           modmodel.StatusApproved,
				"resolved_at":      now,
				"resolved_by":      actor.ID,
				"resolved_message": reason,
			})
		if err != nil {
			return err
		}
		if !ok {
			return errStateConflict
		}
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, errStateConflict) {
			return nil, errAlreadyResolved()
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("结单失败"),
			response.WithError(txErr),
		)
	}

	return s.reload(req.ID)
}

// Withdraw 撤回：提交人本人或审核员把非终态请求置为已撤回
// 不设置结单元数据（resolvedAt/resolvedBy 只属于人工批准/驳回）
func (s *Service) Withdraw(requestID uint, actor *user.User) (*modmodel.Request, *response.BusinessError) {
	req, err := s.repo.GetByID(requestID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("请求不存在"),
		)
	}

	isOwner := actor != nil && req.SubmitterUserID != nil && *req.SubmitterUserID == actor.ID
	if !isOwner && !permission.CanModerate(actor) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("只有提交人或审核员可以撤回"),
		)
	}

	if req.Status.Terminal() {
		return nil, errAlreadyResolved()
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := s.repo.TransitionStatus(tx, req.ID,
			[]modmodel.Status{modmodel.StatusPendingVerification, modmodel.StatusVerified, modmodel.StatusAutoApproved},
			map[string]interface{}{"status": modmodel.StatusWithdrawn})
		if err != nil {
			return err
		}
		if !ok {
			return errStateConflict
		}
		return nil
	})

	if txErr != nil {
		if errors.Is(txErr, errStateConflict) {
			return nil, errAlreadyResolved()
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("撤回失败"),
			response.WithError(txErr),
		)
	}

	return s.reload(req.ID)
}

// GetRequest 查询单个请求（审核员）
func (s *Service) GetRequest(requestID uint, actor *user.User) (*modmodel.Request, *response.BusinessError) {
	if !permission.CanModerate(actor) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("需要审核员权限"),
		)
	}
	req, err := s.repo.GetByID(requestID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("请求不存在"),
		)
	}
	return req, nil
}

// ListRequests 按状态分页查询请求队列（审核员）
func (s *Service) ListRequests(status modmodel.Status, actor *user.User, offset, limit int) ([]modmodel.Request, int64, *response.BusinessError) {
	if !permission.CanModerate(actor) {
		return nil, 0, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("需要审核员权限"),
		)
	}
	if !status.Valid() {
		return nil, 0, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("未知的请求状态"),
		)
	}
	requests, total, err := s.repo.ListByStatus(status, offset, limit)
	if err != nil {
		return nil, 0, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询请求队列失败"),
			response.WithError(err),
		)
	}
	return requests, total, nil
}

// ===== 内部辅助 =====

var (
	errStateConflict  = errors.New("state conflict")
	errNotImplemented = errors.New("not implemented")
)

func errAlreadyResolved() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.StateConflict),
		response.WithErrorMessage("该请求已结单"),
	)
}

// checkResendThrottle 同一邮箱的确认邮件冷却检查
// Redis 未配置时直接放行（与 cat 问题一样只是廉价过滤）
func (s *Service) checkResendThrottle(emailAddr string) *response.BusinessError {
	if s.redis == nil {
		return nil
	}
	ctx := context.Background()
	key := redisKeyPrefix + emailAddr
	ok, err := s.redis.SetNX(ctx, key, time.Now().Unix(), resendCooldown).Result()
	if err != nil {
		// Redis 故障不阻塞提交
		return nil
	}
	if !ok {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("确认邮件发送过于频繁，请稍后再试"),
		)
	}
	return nil
}

// applyCreate 把 CREATE 请求的内容快照物化为条目
// 必须在事务内调用；同时写入外链、提交人关系并提升提交人信任等级
func (s *Service) applyCreate(tx *gorm.DB, req *modmodel.Request, content Content, submitter *user.User) (*larp.Larp, error) {
	now := time.Now()
	listing := &larp.Larp{
		Name:            content.Name,
		Tagline:         content.Tagline,
		Language:        content.Language,
		LocationText:    content.LocationText,
		MunicipalityID:  content.MunicipalityID,
		FluffText:       content.FluffText,
		Description:     content.Description,
		StartsAt:        parseDate(content.StartsAt),
		EndsAt:          parseDate(content.EndsAt),
		SignupStartsAt:  parseDate(content.SignupStartsAt),
		SignupEndsAt:    parseDate(content.SignupEndsAt),
		MinParticipants: content.MinParticipants,
		MaxParticipants: content.MaxParticipants,
		Openness:        content.Openness,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if listing.Openness == "" {
		listing.Openness = larp.OpennessOpen
	}

	if err := tx.Create(listing).Error; err != nil {
		return nil, err
	}

	// 外链
	links, err := unmarshalLinkAdd(req.LinkAddJSON)
	if err != nil {
		return nil, err
	}
	for _, spec := range links {
		if err := tx.Create(&larp.Link{
			LarpID: listing.ID,
			Type:   spec.Type,
			URL:    spec.URL,
		}).Error; err != nil {
			return nil, err
		}
	}

	// 提交人：匿名提交在首次批准时建档，已有用户视情况提升信任等级
	owner, err := s.ensureSubmitterUser(tx, req, submitter)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		if err := tx.Create(&larp.RelatedUser{
			LarpID:    listing.ID,
			UserID:    owner.ID,
			Role:      larp.RelationCreator,
			CreatedAt: now,
		}).Error; err != nil {
			return nil, err
		}
		// 提交人自述为 GM 或义工时把该关系也挂上
		switch larp.RelationRole(req.SubmitterRelation) {
		case larp.RelationGameMaster, larp.RelationVolunteer:
			if err := tx.Create(&larp.RelatedUser{
				LarpID:    listing.ID,
				UserID:    owner.ID,
				Role:      larp.RelationRole(req.SubmitterRelation),
				CreatedAt: now,
			}).Error; err != nil {
				return nil, err
			}
		}
	}

	// 请求回填目标条目
	if err := tx.Model(&modmodel.Request{}).
		Where("id = ?", req.ID).
		Update("larp_id", listing.ID).Error; err != nil {
		return nil, err
	}
	req.LarpID = &listing.ID

	return listing, nil
}

// ensureSubmitterUser 解析提交人对应的用户记录
// 匿名提交首次批准时按快照邮箱建档（直接给 verified，相当于首次提交即通过）；
// 已关联用户若还是 not_verified 则提升为 verified，之后的提交免前置审核
func (s *Service) ensureSubmitterUser(tx *gorm.DB, req *modmodel.Request, submitter *user.User) (*user.User, error) {
	if submitter != nil {
		if submitter.Role == user.RoleNotVerified {
			if err := tx.Model(&user.User{}).
				Where("id = ? AND role = ?", submitter.ID, user.RoleNotVerified).
				Update("role", user.RoleVerified).Error; err != nil {
				return nil, err
			}
			submitter.Role = user.RoleVerified
		}
		return submitter, nil
	}

	if req.SubmitterEmail == "" {
		return nil, nil
	}

	var existing user.User
	err := tx.Where("email = ?", req.SubmitterEmail).First(&existing).Error
	if err == nil {
		if existing.Role == user.RoleNotVerified {
			if err := tx.Model(&user.User{}).
				Where("id = ? AND role = ?", existing.ID, user.RoleNotVerified).
				Update("role", user.RoleVerified).Error; err != nil {
				return nil, err
			}
			existing.Role = user.RoleVerified
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &user.User{
		DisplayName: req.SubmitterName,
		Email:       req.SubmitterEmail,
		Role:        user.RoleVerified,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := tx.Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) reload(id uint) (*modmodel.Request, *response.BusinessError) {
	req, err := s.repo.GetByID(id)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("读取请求失败"),
			response.WithError(err),
		)
	}
	return req, nil
}

// parseDate 把快照里的日历日期转成时间值（内容已过校验，格式错误按空处理）
func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

// Package moderation 审核请求模型
package moderation

import (
	"time"
)

// Action 请求动作：录入新条目 / 编辑条目 / 认领条目
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionClaim  Action = "claim"
)

// Valid 动作是否在封闭集合内
func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionClaim:
		return true
	}
	return false
}

// Status 请求状态
type Status string

const (
	// 等待邮箱验证（匿名提交）
	StatusPendingVerification Status = "pending_verification"
	// 已验证/已登录，等待人工审核
	StatusVerified Status = "verified"
	// 已自动发布，等待事后抽查
	StatusAutoApproved Status = "auto_approved"
	// 已批准（终态）
	StatusApproved Status = "approved"
	// 已驳回（终态）
	StatusRejected Status = "rejected"
	// 已撤回（终态）
	StatusWithdrawn Status = "withdrawn"
)

// Valid 状态是否在封闭集合内
func (s Status) Valid() bool {
	switch s {
	case StatusPendingVerification, StatusVerified, StatusAutoApproved,
		StatusApproved, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// Terminal 是否终态
// AUTO_APPROVED 不算终态：条目已发布，但请求本身还等待审核员抽查结单
func (s Status) Terminal() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusWithdrawn:
		return true
	case StatusPendingVerification, StatusVerified, StatusAutoApproved:
		return false
	}
	return false
}

// Request 审核请求表
// 请求一经创建内容快照不可变，只有状态和结单元数据会更新；请求永不删除
type Request struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// 创建时间（显式字段，用于展示"提交于"）
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	// 请求动作
	Action Action `gorm:"type:varchar(50);not null" json:"action"`
	// 当前状态
	Status Status `gorm:"type:varchar(50);not null;index" json:"status"`
	// 提交人快照（匿名提交时没有关联用户）
	SubmitterName  string `gorm:"type:varchar(255)" json:"submitter_name"`
	SubmitterEmail string `gorm:"type:varchar(255);not null" json:"submitter_email"`
	// 提交人自述与条目的关系（如 game_master / volunteer），可为空
	SubmitterRelation string `gorm:"type:varchar(50)" json:"submitter_relation,omitempty"`
	// 关联用户ID（登录提交时设置）
	SubmitterUserID *uint `gorm:"index" json:"submitter_user_id,omitempty"`
	// 提交人留言
	Message string `gorm:"type:text" json:"message,omitempty"`
	// 内容快照（校验后的规范化提交，JSON，创建后不可变，读取时重新校验）
	ContentJSON string `gorm:"type:text;not null" json:"content_json"`
	// 待添加/待移除的外链集合（JSON 数组，可为空）
	LinkAddJSON    string `gorm:"type:text" json:"link_add_json,omitempty"`
	LinkRemoveJSON string `gorm:"type:text" json:"link_remove_json,omitempty"`
	// 目标条目（CREATE 请求在批准前为空，批准后指向新建条目）
	LarpID *uint `gorm:"index" json:"larp_id,omitempty"`
	// 邮箱验证码，唯一
	// 注意：验证后不清空，用户重复点击邮件链接时作幂等键使用
	VerificationCode string `gorm:"type:varchar(64);not null;uniqueIndex" json:"-"`
	// 验证时间
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	// 结单元数据：当且仅当经人工批准/驳回时设置
	// AUTO_APPROVED 刻意留空，等待事后抽查
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	ResolvedBy      *uint      `gorm:"index" json:"resolved_by,omitempty"`
	ResolvedMessage string     `gorm:"type:text" json:"resolved_message,omitempty"`
}

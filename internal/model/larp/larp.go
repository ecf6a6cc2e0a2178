// Package larp 游戏条目相关模型
package larp

import (
	"time"
)

// Language 支持的条目语言
type Language string

const (
	LanguageFinnish Language = "fi"
	LanguageEnglish Language = "en"
	LanguageSwedish Language = "sv"
)

// Valid 语言是否在支持集合内
func (l Language) Valid() bool {
	switch l {
	case LanguageFinnish, LanguageEnglish, LanguageSwedish:
		return true
	}
	return false
}

// Openness 报名开放程度
type Openness string

const (
	OpennessOpen       Openness = "open"
	OpennessInviteOnly Openness = "invite_only"
	OpennessClosed     Openness = "closed"
)

// Valid 开放程度是否在封闭集合内
func (o Openness) Valid() bool {
	switch o {
	case OpennessOpen, OpennessInviteOnly, OpennessClosed:
		return true
	}
	return false
}

// Larp 游戏条目表
// 注意：条目内容只能通过已批准的审核请求写入（见 internal/moderation），
// 其他组件不允许直接修改内容字段
type Larp struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// 可选的人类可读别名，唯一（如 "velmun-varjot-2026"）
	Alias *string `gorm:"type:varchar(100);uniqueIndex" json:"alias,omitempty"`
	// 游戏名称
	Name string `gorm:"type:varchar(200);not null" json:"name"`
	// 一句话简介
	Tagline string `gorm:"type:varchar(500)" json:"tagline,omitempty"`
	// 条目语言
	Language Language `gorm:"type:varchar(10);not null;default:'fi'" json:"language"`
	// 地点描述（自由文本）
	LocationText string `gorm:"type:varchar(200)" json:"location_text,omitempty"`
	// 所属市镇
	MunicipalityID *uint `gorm:"index" json:"municipality_id,omitempty"`
	// 氛围文本
	FluffText string `gorm:"type:text" json:"fluff_text,omitempty"`
	// 详细描述
	Description string `gorm:"type:text" json:"description,omitempty"`
	// 游戏起止日期（日历日期，无时区）
	StartsAt *time.Time `gorm:"type:date" json:"starts_at,omitempty"`
	EndsAt   *time.Time `gorm:"type:date" json:"ends_at,omitempty"`
	// 报名起止日期
	SignupStartsAt *time.Time `gorm:"type:date" json:"signup_starts_at,omitempty"`
	SignupEndsAt   *time.Time `gorm:"type:date" json:"signup_ends_at,omitempty"`
	// 参与人数
	MinParticipants *int `json:"min_participants,omitempty"`
	MaxParticipants *int `json:"max_participants,omitempty"`
	// 报名开放程度
	Openness  Openness  `gorm:"type:varchar(50);default:'open'" json:"openness"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Municipality 市镇表
type Municipality struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
}

// LinkType 外链类型
type LinkType string

const (
	LinkTypeHomepage    LinkType = "homepage"
	LinkTypePhotos      LinkType = "photos"
	LinkTypeSocial      LinkType = "social"
	LinkTypePlayerGuide LinkType = "player_guide"
)

// Valid 链接类型是否在封闭集合内
func (t LinkType) Valid() bool {
	switch t {
	case LinkTypeHomepage, LinkTypePhotos, LinkTypeSocial, LinkTypePlayerGuide:
		return true
	}
	return false
}

// Link 条目外链表
type Link struct {
	ID     uint     `gorm:"primaryKey" json:"id"`
	LarpID uint     `gorm:"not null;index" json:"larp_id"`
	Type   LinkType `gorm:"type:varchar(50);not null" json:"type"`
	URL    string   `gorm:"type:varchar(500);not null" json:"url"`
}

// RelationRole 用户与条目的关系角色
type RelationRole string

const (
	RelationCreator    RelationRole = "creator"
	RelationGameMaster RelationRole = "game_master"
	RelationVolunteer  RelationRole = "volunteer"
	RelationPlayer     RelationRole = "player"
	RelationEditor     RelationRole = "editor"
	RelationFavorite   RelationRole = "favorite"
	RelationTeamMember RelationRole = "team_member"
)

// Valid 关系角色是否在封闭集合内
func (r RelationRole) Valid() bool {
	switch r {
	case RelationCreator, RelationGameMaster, RelationVolunteer,
		RelationPlayer, RelationEditor, RelationFavorite, RelationTeamMember:
		return true
	}
	return false
}

// RelatedUser 用户-条目关系表
// 同一用户可以对同一条目持有多个角色（如既是 creator 又是 game_master）
type RelatedUser struct {
	LarpID    uint         `gorm:"primaryKey" json:"larp_id"`
	UserID    uint         `gorm:"primaryKey" json:"user_id"`
	Role      RelationRole `gorm:"primaryKey;type:varchar(50)" json:"role"`
	CreatedAt time.Time    `json:"created_at"`
}

// RelatedLarpType 条目间关系类型
type RelatedLarpType string

const (
	RelatedLarpSequel   RelatedLarpType = "sequel"
	RelatedLarpRerun    RelatedLarpType = "rerun"
	RelatedLarpCampaign RelatedLarpType = "campaign"
)

// RelatedLarp 条目-条目关系表（有向：left → right）
type RelatedLarp struct {
	LeftID    uint            `gorm:"primaryKey" json:"left_id"`
	RightID   uint            `gorm:"primaryKey" json:"right_id"`
	Type      RelatedLarpType `gorm:"primaryKey;type:varchar(50)" json:"type"`
	CreatedAt time.Time       `json:"created_at"`
}

package moderation

import (
	"fmt"
	"strings"
	"time"

	"larpit/larp-directory/internal/model/larp"
)

// 字段长度上限
const (
	maxNameLength        = 200
	maxTaglineLength     = 500
	maxLocationLength    = 200
	maxFluffLength       = 2000
	maxDescriptionLength = 2000
	maxMessageLength     = 2000
)

// 日历日期格式，不带时间和时区
const dateLayout = "2006-01-02"

// FieldError 单个字段的校验错误
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ContentInput 待校验的提交内容（由 handler 层的类型化 DTO 转换而来，
// 未经类型化的 map 不允许越过校验器边界）
type ContentInput struct {
	Name            string
	Tagline         string
	Language        string
	LocationText    string
	MunicipalityID  *uint
	FluffText       string
	Description     string
	StartsAt        string
	EndsAt          string
	SignupStartsAt  string
	SignupEndsAt    string
	MinParticipants *int
	MaxParticipants *int
	Openness        string
}

// ValidateContent 校验并规范化提交内容
// 校验失败时返回所有出错字段，整个提交被拒绝，不做部分接受
func ValidateContent(in ContentInput, defaultLanguage larp.Language) (Content, []FieldError) {
	var errs []FieldError
	c := Content{}

	// 名称必填，1-200 字符
	c.Name = strings.TrimSpace(in.Name)
	if c.Name == "" {
		errs = append(errs, FieldError{Field: "name", Reason: "必填"})
	} else if len([]rune(c.Name)) > maxNameLength {
		errs = append(errs, FieldError{Field: "name", Reason: fmt.Sprintf("长度不能超过 %d", maxNameLength)})
	}

	// 可选文本字段，有长度上限
	c.Tagline = checkBoundedText(in.Tagline, "tagline", maxTaglineLength, &errs)
	c.LocationText = checkBoundedText(in.LocationText, "location_text", maxLocationLength, &errs)
	c.FluffText = checkBoundedText(in.FluffText, "fluff_text", maxFluffLength, &errs)
	c.Description = checkBoundedText(in.Description, "description", maxDescriptionLength, &errs)

	// 语言：缺省用配置的默认语言，否则必须在支持集合内
	if in.Language == "" {
		c.Language = defaultLanguage
	} else {
		lang := larp.Language(in.Language)
		if !lang.Valid() {
			errs = append(errs, FieldError{Field: "language", Reason: "不支持的语言"})
		}
		c.Language = lang
	}

	// 日期字段：空值映射为逻辑空，格式错误整体拒绝
	c.StartsAt = checkDate(in.StartsAt, "starts_at", &errs)
	c.EndsAt = checkDate(in.EndsAt, "ends_at", &errs)
	c.SignupStartsAt = checkDate(in.SignupStartsAt, "signup_starts_at", &errs)
	c.SignupEndsAt = checkDate(in.SignupEndsAt, "signup_ends_at", &errs)

	// 参与人数非负
	if in.MinParticipants != nil && *in.MinParticipants < 0 {
		errs = append(errs, FieldError{Field: "min_participants", Reason: "不能为负数"})
	}
	if in.MaxParticipants != nil && *in.MaxParticipants < 0 {
		errs = append(errs, FieldError{Field: "max_participants", Reason: "不能为负数"})
	}
	c.MinParticipants = in.MinParticipants
	c.MaxParticipants = in.MaxParticipants

	// 开放程度
	if in.Openness != "" {
		openness := larp.Openness(in.Openness)
		if !openness.Valid() {
			errs = append(errs, FieldError{Field: "openness", Reason: "不支持的开放程度"})
		}
		c.Openness = openness
	}

	c.MunicipalityID = in.MunicipalityID

	if len(errs) > 0 {
		return Content{}, errs
	}
	return Compact(c), nil
}

// revalidate 读取快照时的再校验（与 ValidateContent 同一套规则）
func revalidate(c Content) (Content, []FieldError) {
	in := ContentInput{
		Name:            c.Name,
		Tagline:         c.Tagline,
		Language:        string(c.Language),
		LocationText:    c.LocationText,
		MunicipalityID:  c.MunicipalityID,
		FluffText:       c.FluffText,
		Description:     c.Description,
		MinParticipants: c.MinParticipants,
		MaxParticipants: c.MaxParticipants,
		Openness:        string(c.Openness),
	}
	if c.StartsAt != nil {
		in.StartsAt = *c.StartsAt
	}
	if c.EndsAt != nil {
		in.EndsAt = *c.EndsAt
	}
	if c.SignupStartsAt != nil {
		in.SignupStartsAt = *c.SignupStartsAt
	}
	if c.SignupEndsAt != nil {
		in.SignupEndsAt = *c.SignupEndsAt
	}
	// 快照里的语言已经是规范值，再校验时不再套默认语言
	return ValidateContent(in, c.Language)
}

// checkBoundedText 校验可选文本字段的长度上限
func checkBoundedText(value, field string, max int, errs *[]FieldError) string {
	trimmed := strings.TrimSpace(value)
	if len([]rune(trimmed)) > max {
		*errs = append(*errs, FieldError{Field: field, Reason: fmt.Sprintf("长度不能超过 %d", max)})
	}
	return trimmed
}

// checkDate 校验日历日期字段，空值返回 nil
func checkDate(value, field string, errs *[]FieldError) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, trimmed); err != nil {
		*errs = append(*errs, FieldError{Field: field, Reason: "日期格式应为 YYYY-MM-DD"})
		return nil
	}
	return &trimmed
}

// ValidateMessage 校验提交留言长度
func ValidateMessage(message string) []FieldError {
	if len([]rune(message)) > maxMessageLength {
		return []FieldError{{Field: "message", Reason: fmt.Sprintf("长度不能超过 %d", maxMessageLength)}}
	}
	return nil
}

// ValidateLinks 校验待添加的外链集合
func ValidateLinks(links []LinkSpec) []FieldError {
	var errs []FieldError
	for i, link := range links {
		if !link.Type.Valid() {
			errs = append(errs, FieldError{Field: fmt.Sprintf("links[%d].type", i), Reason: "不支持的链接类型"})
		}
		if strings.TrimSpace(link.URL) == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("links[%d].url", i), Reason: "必填"})
		} else if len(link.URL) > 500 {
			errs = append(errs, FieldError{Field: fmt.Sprintf("links[%d].url", i), Reason: "长度不能超过 500"})
		}
	}
	return errs
}

// catTokens 反自动化问题的可接受答案（各语言里"猫"的说法）
// 只是过滤脚本的廉价手段，不是安全控制
var catTokens = []string{"kissa", "kisu", "mirri", "misse", "cat", "katt"}

// CheckCatAnswer 大小写不敏感地检查答案里是否包含任一可接受词
// 仅对匿名提交启用
func CheckCatAnswer(answer string) bool {
	lowered := strings.ToLower(answer)
	for _, token := range catTokens {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}

// FieldErrorMessage 把字段错误拼成用户可读的消息
func FieldErrorMessage(errs []FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Reason))
	}
	return "提交内容校验失败: " + strings.Join(parts, "; ")
}

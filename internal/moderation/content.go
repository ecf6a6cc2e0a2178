package moderation

import (
	"encoding/json"
	"strings"

	"larpit/larp-directory/internal/model/larp"
)

// Content 规范化后的提交内容快照
// 由校验器产出，按原样序列化存入请求记录，读取时重新校验
// 日期一律是 "2006-01-02" 格式的日历日期，不带时间和时区
type Content struct {
	Name            string        `json:"name"`
	Tagline         string        `json:"tagline,omitempty"`
	Language        larp.Language `json:"language,omitempty"`
	LocationText    string        `json:"location_text,omitempty"`
	MunicipalityID  *uint         `json:"municipality_id,omitempty"`
	FluffText       string        `json:"fluff_text,omitempty"`
	Description     string        `json:"description,omitempty"`
	StartsAt        *string       `json:"starts_at,omitempty"`
	EndsAt          *string       `json:"ends_at,omitempty"`
	SignupStartsAt  *string       `json:"signup_starts_at,omitempty"`
	SignupEndsAt    *string       `json:"signup_ends_at,omitempty"`
	MinParticipants *int          `json:"min_participants,omitempty"`
	MaxParticipants *int          `json:"max_participants,omitempty"`
	Openness        larp.Openness `json:"openness,omitempty"`
}

// LinkSpec 待添加的外链
type LinkSpec struct {
	Type larp.LinkType `json:"type"`
	URL  string        `json:"url"`
}

// Compact 压缩内容：去掉空字符串和空指针字段
// UPDATE 请求依赖这一步：部分编辑不会用空值覆盖条目的已有字段
// 幂等：对已压缩内容再压缩不产生变化
func Compact(c Content) Content {
	c.Name = strings.TrimSpace(c.Name)
	c.Tagline = strings.TrimSpace(c.Tagline)
	c.LocationText = strings.TrimSpace(c.LocationText)
	c.FluffText = strings.TrimSpace(c.FluffText)
	c.Description = strings.TrimSpace(c.Description)

	c.StartsAt = compactString(c.StartsAt)
	c.EndsAt = compactString(c.EndsAt)
	c.SignupStartsAt = compactString(c.SignupStartsAt)
	c.SignupEndsAt = compactString(c.SignupEndsAt)

	return c
}

func compactString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// MarshalContent 序列化内容快照
func MarshalContent(c Content) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// marshalLinkSets 序列化待添加/待移除的外链集合，空集合存空串
func marshalLinkSets(add []LinkSpec, remove []uint) (string, string, error) {
	var addJSON, removeJSON string
	if len(add) > 0 {
		data, err := json.Marshal(add)
		if err != nil {
			return "", "", err
		}
		addJSON = string(data)
	}
	if len(remove) > 0 {
		data, err := json.Marshal(remove)
		if err != nil {
			return "", "", err
		}
		removeJSON = string(data)
	}
	return addJSON, removeJSON, nil
}

// unmarshalLinkAdd 反序列化待添加的外链集合
func unmarshalLinkAdd(raw string) ([]LinkSpec, error) {
	if raw == "" {
		return nil, nil
	}
	var links []LinkSpec
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return nil, err
	}
	return links, nil
}

// ParseContent 反序列化并重新校验内容快照
// 快照创建后不可变，但读取时仍然过一遍校验，防止脏数据流向条目
func ParseContent(raw string) (Content, []FieldError) {
	var c Content
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Content{}, []FieldError{{Field: "content", Reason: "快照解析失败"}}
	}
	return revalidate(c)
}

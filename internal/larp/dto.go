package larp

import (
	"time"

	model "larpit/larp-directory/internal/model/larp"
)

// 对外展示的日期格式：日历日期，不带时间和时区
const dateLayout = "2006-01-02"

// LinkResponse 外链
type LinkResponse struct {
	Type model.LinkType `json:"type"`
	URL  string         `json:"url"`
}

// RelatedLarpResponse 关联条目（续作/重开/战役）
type RelatedLarpResponse struct {
	ID    uint                  `json:"id"`
	Alias *string               `json:"alias,omitempty"`
	Name  string                `json:"name"`
	Type  model.RelatedLarpType `json:"type"`
}

// LarpResponse 条目详情
// 日期字段序列化为 "YYYY-MM-DD" 字符串
type LarpResponse struct {
	ID              uint                  `json:"id"`
	Alias           *string               `json:"alias,omitempty"`
	Name            string                `json:"name"`
	Tagline         string                `json:"tagline,omitempty"`
	Language        model.Language        `json:"language"`
	LocationText    string                `json:"location_text,omitempty"`
	Municipality    *string               `json:"municipality,omitempty"`
	FluffText       string                `json:"fluff_text,omitempty"`
	Description     string                `json:"description,omitempty"`
	StartsAt        *string               `json:"starts_at,omitempty"`
	EndsAt          *string               `json:"ends_at,omitempty"`
	SignupStartsAt  *string               `json:"signup_starts_at,omitempty"`
	SignupEndsAt    *string               `json:"signup_ends_at,omitempty"`
	MinParticipants *int                  `json:"min_participants,omitempty"`
	MaxParticipants *int                  `json:"max_participants,omitempty"`
	Openness        model.Openness        `json:"openness"`
	Links           []LinkResponse        `json:"links,omitempty"`
	RelatedLarps    []RelatedLarpResponse `json:"related_larps,omitempty"`
}

// LarpListItem 列表项，比详情瘦
type LarpListItem struct {
	ID           uint           `json:"id"`
	Alias        *string        `json:"alias,omitempty"`
	Name         string         `json:"name"`
	Tagline      string         `json:"tagline,omitempty"`
	Language     model.Language `json:"language"`
	LocationText string         `json:"location_text,omitempty"`
	StartsAt     *string        `json:"starts_at,omitempty"`
	EndsAt       *string        `json:"ends_at,omitempty"`
	Openness     model.Openness `json:"openness"`
}

// LarpListResponse 分页列表
type LarpListResponse struct {
	Larps    []LarpListItem `json:"larps"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// formatDate 时间值转日历日期字符串
func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func newListItem(l *model.Larp) LarpListItem {
	return LarpListItem{
		ID:           l.ID,
		Alias:        l.Alias,
		Name:         l.Name,
		Tagline:      l.Tagline,
		Language:     l.Language,
		LocationText: l.LocationText,
		StartsAt:     formatDate(l.StartsAt),
		EndsAt:       formatDate(l.EndsAt),
		Openness:     l.Openness,
	}
}

func newLarpResponse(l *model.Larp, municipality *string, links []model.Link) LarpResponse {
	resp := LarpResponse{
		ID:              l.ID,
		Alias:           l.Alias,
		Name:            l.Name,
		Tagline:         l.Tagline,
		Language:        l.Language,
		LocationText:    l.LocationText,
		Municipality:    municipality,
		FluffText:       l.FluffText,
		Description:     l.Description,
		StartsAt:        formatDate(l.StartsAt),
		EndsAt:          formatDate(l.EndsAt),
		SignupStartsAt:  formatDate(l.SignupStartsAt),
		SignupEndsAt:    formatDate(l.SignupEndsAt),
		MinParticipants: l.MinParticipants,
		MaxParticipants: l.MaxParticipants,
		Openness:        l.Openness,
	}
	for _, link := range links {
		resp.Links = append(resp.Links, LinkResponse{Type: link.Type, URL: link.URL})
	}
	return resp
}

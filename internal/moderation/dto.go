package moderation

import (
	"larpit/larp-directory/internal/model/larp"
	modmodel "larpit/larp-directory/internal/model/moderation"
)

// ContentDTO 提交内容
type ContentDTO struct {
	Name            string `json:"name" binding:"required"`
	Tagline         string `json:"tagline"`
	Language        string `json:"language" binding:"omitempty,oneof=fi en sv"`
	LocationText    string `json:"location_text"`
	MunicipalityID  *uint  `json:"municipality_id"`
	FluffText       string `json:"fluff_text"`
	Description     string `json:"description"`
	StartsAt        string `json:"starts_at"`
	EndsAt          string `json:"ends_at"`
	SignupStartsAt  string `json:"signup_starts_at"`
	SignupEndsAt    string `json:"signup_ends_at"`
	MinParticipants *int   `json:"min_participants"`
	MaxParticipants *int   `json:"max_participants"`
	Openness        string `json:"openness" binding:"omitempty,oneof=open invite_only closed"`
}

// LinkDTO 待添加的外链
type LinkDTO struct {
	Type string `json:"type" binding:"required,oneof=homepage photos social player_guide"`
	URL  string `json:"url" binding:"required,max=500"`
}

// SubmitRequestDTO 提交审核请求
// 匿名提交必须带 submitter_email 和 cat_answer，登录提交两者都可省略
type SubmitRequestDTO struct {
	Action            string     `json:"action" binding:"required,oneof=create update claim"`
	LarpID            *uint      `json:"larp_id"`
	Content           ContentDTO `json:"content" binding:"required"`
	Message           string     `json:"message" binding:"max=2000"`
	LinksAdd          []LinkDTO  `json:"links_add" binding:"dive"`
	LinksRemove       []uint     `json:"links_remove"`
	SubmitterName     string     `json:"submitter_name" binding:"max=255"`
	SubmitterEmail    string     `json:"submitter_email" binding:"omitempty,email,max=255"`
	SubmitterRelation string     `json:"submitter_relation" binding:"omitempty,oneof=creator game_master volunteer player editor favorite team_member"`
	CatAnswer         string     `json:"cat_answer"`
}

// toInput DTO 转业务层类型化输入
func (d SubmitRequestDTO) toInput() SubmitInput {
	links := make([]LinkSpec, 0, len(d.LinksAdd))
	for _, l := range d.LinksAdd {
		links = append(links, LinkSpec{Type: larp.LinkType(l.Type), URL: l.URL})
	}
	return SubmitInput{
		Action: modmodel.Action(d.Action),
		LarpID: d.LarpID,
		Content: ContentInput{
			Name:            d.Content.Name,
			Tagline:         d.Content.Tagline,
			Language:        d.Content.Language,
			LocationText:    d.Content.LocationText,
			MunicipalityID:  d.Content.MunicipalityID,
			FluffText:       d.Content.FluffText,
			Description:     d.Content.Description,
			StartsAt:        d.Content.StartsAt,
			EndsAt:          d.Content.EndsAt,
			SignupStartsAt:  d.Content.SignupStartsAt,
			SignupEndsAt:    d.Content.SignupEndsAt,
			MinParticipants: d.Content.MinParticipants,
			MaxParticipants: d.Content.MaxParticipants,
			Openness:        d.Content.Openness,
		},
		Message:           d.Message,
		LinksAdd:          links,
		LinksRemove:       d.LinksRemove,
		SubmitterName:     d.SubmitterName,
		SubmitterEmail:    d.SubmitterEmail,
		SubmitterRelation: larp.RelationRole(d.SubmitterRelation),
		CatAnswer:         d.CatAnswer,
	}
}

// ResolveRequestDTO 审核决定
type ResolveRequestDTO struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
	Message  string `json:"message" binding:"max=2000"`
}

// CheckRequestDTO 抽查结单
type CheckRequestDTO struct {
	Message string `json:"message" binding:"max=2000"`
}

// RequestResponse 请求详情响应
// 内容快照解析为结构化对象返回，原始 JSON 不直接暴露
type RequestResponse struct {
	*modmodel.Request
	Content     *Content   `json:"content,omitempty"`
	LinksAdd    []LinkSpec `json:"links_add,omitempty"`
	ContentJSON string     `json:"content_json,omitempty"`
}

// newRequestResponse 构造请求详情响应，快照解析失败时退回原始 JSON
func newRequestResponse(req *modmodel.Request) RequestResponse {
	resp := RequestResponse{Request: req}
	content, errs := ParseContent(req.ContentJSON)
	if len(errs) == 0 {
		resp.Content = &content
	} else {
		resp.ContentJSON = req.ContentJSON
	}
	if links, err := unmarshalLinkAdd(req.LinkAddJSON); err == nil {
		resp.LinksAdd = links
	}
	return resp
}

// RequestListResponse 请求队列分页响应
type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

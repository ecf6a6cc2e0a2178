package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template 邮件模板
type Template struct {
	tmpl *template.Template
}

// NewTemplate 从 HTML 字符串创建模板
func NewTemplate(htmlContent string) (*Template, error) {
	tmpl, err := template.New("email").Parse(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("解析邮件模板失败: %w", err)
	}
	return &Template{tmpl: tmpl}, nil
}

// Render 渲染模板
func (t *Template) Render(data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("渲染邮件模板失败: %w", err)
	}
	return buf.String(), nil
}

// VerificationLinkTemplate 提交确认邮件模板
// 用于游戏录入/编辑请求的邮箱验证，点击链接完成确认
const VerificationLinkTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #4CAF50; color: white; padding: 20px; text-align: center; }
        .content { background-color: #f9f9f9; padding: 30px; border: 1px solid #ddd; }
        .button { display: inline-block; padding: 12px 24px; background-color: #4CAF50;
                  color: white; text-decoration: none; border-radius: 4px; margin: 20px 0; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
        </div>
        <div class="content">
            <p>{{.Greeting}}</p>
            <p>{{.Message}}</p>
            <div style="text-align: center;">
                <a href="{{.VerifyURL}}" class="button">{{.ButtonText}}</a>
            </div>
            <p>{{.IgnoreHint}}</p>
        </div>
        <div class="footer">
            <p>{{.FooterText}}</p>
        </div>
    </div>
</body>
</html>
`

// VerificationLinkData 提交确认模板数据
type VerificationLinkData struct {
	Title      string // 邮件标题
	Greeting   string // 问候语
	Message    string // 提示信息
	VerifyURL  string // 确认链接
	ButtonText string // 按钮文字
	IgnoreHint string // 非本人操作提示
	FooterText string // 页脚
}

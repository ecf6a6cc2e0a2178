package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// Config 邮件服务配置
type Config struct {
	Host     string `koanf:"host"`     // SMTP 服务器地址，如 smtp.gmail.com
	Port     int    `koanf:"port"`     // SMTP 端口，通常 587 (TLS) 或 465 (SSL)
	Username string `koanf:"username"` // 发件人邮箱
	Password string `koanf:"password"` // 邮箱密码或授权码
	UseTLS   bool   `koanf:"tls"`      // 是否使用 TLS，默认 true
	From     string `koanf:"from"`     // 发件人显示名称，如 "Larpit <noreply@larpit.example>"
}

// Message 邮件消息
// TextBody 和 HTMLBody 同时存在时按 multipart/alternative 发送
type Message struct {
	From     string   // 发件人显示名称
	To       []string // 收件人列表
	Subject  string   // 邮件主题
	TextBody string   // 纯文本正文
	HTMLBody string   // HTML 正文（可选）
}

// Client 邮件客户端
type Client struct {
	config *Config
}

// NewClient 创建邮件客户端
func NewClient(config *Config) *Client {
	// 设置默认端口
	if config.Port == 0 {
		config.Port = 587
	}
	return &Client{config: config}
}

const multipartBoundary = "larpit-mail-boundary"

// buildBody 组装邮件头和正文
func buildBody(msg *Message) string {
	headers := make([]string, 0, 8)
	headers = append(headers, fmt.Sprintf("From: %s", msg.From))
	headers = append(headers, fmt.Sprintf("To: %s", strings.Join(msg.To, ", ")))
	headers = append(headers, fmt.Sprintf("Subject: %s", msg.Subject))
	headers = append(headers, "MIME-Version: 1.0")

	// 只有文本正文
	if msg.HTMLBody == "" {
		headers = append(headers, "Content-Type: text/plain; charset=UTF-8")
		return strings.Join(headers, "\r\n") + "\r\n\r\n" + msg.TextBody
	}

	// 文本 + HTML 双份正文
	headers = append(headers, fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q", multipartBoundary))
	var b strings.Builder
	b.WriteString(strings.Join(headers, "\r\n"))
	b.WriteString("\r\n\r\n")
	b.WriteString(fmt.Sprintf("--%s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n", multipartBoundary, msg.TextBody))
	b.WriteString(fmt.Sprintf("--%s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n", multipartBoundary, msg.HTMLBody))
	b.WriteString(fmt.Sprintf("--%s--\r\n", multipartBoundary))
	return b.String()
}

// Send 发送邮件
func (c *Client) Send(msg *Message) error {
	if msg.From == "" {
		msg.From = c.config.From
	}
	if msg.From == "" {
		return fmt.Errorf("发件人不能为空")
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("收件人不能为空")
	}
	if msg.Subject == "" {
		return fmt.Errorf("邮件主题不能为空")
	}

	message := buildBody(msg)

	auth := smtp.PlainAuth("", c.config.Username, c.config.Password, c.config.Host)
	addr := fmt.Sprintf("%s:%d", c.config.Host, c.config.Port)

	// 根据配置选择是否使用 TLS
	if c.config.UseTLS || c.config.Port == 587 {
		return c.sendWithTLS(addr, auth, msg.From, msg.To, []byte(message))
	}

	return smtp.SendMail(addr, auth, msg.From, msg.To, []byte(message))
}

// sendWithTLS 使用 TLS 发送邮件
func (c *Client) sendWithTLS(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	// 连接到 SMTP 服务器
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("连接 SMTP 服务器失败: %w", err)
	}
	defer client.Close()

	// 发送 STARTTLS 命令
	if err = client.StartTLS(&tls.Config{ServerName: c.config.Host}); err != nil {
		return fmt.Errorf("启动 TLS 失败: %w", err)
	}

	// 认证
	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP 认证失败: %w", err)
	}

	// 设置发件人
	if err = client.Mail(from); err != nil {
		return fmt.Errorf("设置发件人失败: %w", err)
	}

	// 设置收件人
	for _, recipient := range to {
		if err = client.Rcpt(recipient); err != nil {
			return fmt.Errorf("设置收件人失败: %w", err)
		}
	}

	// 发送邮件内容
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("准备发送邮件内容失败: %w", err)
	}

	_, err = w.Write(msg)
	if err != nil {
		return fmt.Errorf("写入邮件内容失败: %w", err)
	}

	err = w.Close()
	if err != nil {
		return fmt.Errorf("关闭邮件内容写入失败: %w", err)
	}

	return client.Quit()
}

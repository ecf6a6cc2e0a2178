package moderation

import (
	"fmt"
	"log"

	"larpit/larp-directory/internal/model/larp"
	"larpit/larp-directory/pkg/email"
)

// MailSender 邮件发送接口（外部协作方）
type MailSender interface {
	Send(msg *email.Message) error
}

// Notifier 生命周期事件通知接口
type Notifier interface {
	// SendVerification 发送提交确认邮件
	SendVerification(locale larp.Language, recipient, code string) error
}

// verificationTexts 确认邮件的本地化文案
type verificationTexts struct {
	Subject    string
	Greeting   string
	Message    string
	ButtonText string
	IgnoreHint string
	FooterText string
}

// 各语言文案；缺省回落到芬兰语
var verificationLocales = map[larp.Language]verificationTexts{
	larp.LanguageFinnish: {
		Subject:    "Larpit – vahvista sähköpostiosoitteesi",
		Greeting:   "Hei,",
		Message:    "Kiitos ilmoituksestasi! Vahvista sähköpostiosoitteesi klikkaamalla alla olevaa linkkiä, niin ilmoitus siirtyy käsittelyyn.",
		ButtonText: "Vahvista sähköpostiosoite",
		IgnoreHint: "Jos et tehnyt tätä ilmoitusta, voit jättää tämän viestin huomiotta.",
		FooterText: "Tämä viesti on lähetetty automaattisesti, älä vastaa siihen.",
	},
	larp.LanguageEnglish: {
		Subject:    "Larpit – confirm your email address",
		Greeting:   "Hi,",
		Message:    "Thanks for your submission! Click the link below to confirm your email address so your submission can move forward.",
		ButtonText: "Confirm email address",
		IgnoreHint: "If you did not make this submission, you can ignore this message.",
		FooterText: "This message was sent automatically, please do not reply.",
	},
	larp.LanguageSwedish: {
		Subject:    "Larpit – bekräfta din e-postadress",
		Greeting:   "Hej,",
		Message:    "Tack för din anmälan! Klicka på länken nedan för att bekräfta din e-postadress så att anmälan kan behandlas.",
		ButtonText: "Bekräfta e-postadress",
		IgnoreHint: "Om du inte gjorde den här anmälan kan du ignorera det här meddelandet.",
		FooterText: "Det här meddelandet skickades automatiskt, svara inte på det.",
	},
}

// MailNotifier 基于 SMTP 的通知实现
// sender 为 nil 表示邮件服务未配置：非生产环境打日志后当成功处理，
// 生产环境在配置加载阶段就会直接失败（见 config.validate），不会走到这里
type MailNotifier struct {
	sender     MailSender
	baseURL    string
	production bool
}

func NewMailNotifier(sender MailSender, baseURL string, production bool) *MailNotifier {
	return &MailNotifier{
		sender:     sender,
		baseURL:    baseURL,
		production: production,
	}
}

// SendVerification 渲染本地化的主题/文本/HTML 三件套并交给邮件服务
func (n *MailNotifier) SendVerification(locale larp.Language, recipient, code string) error {
	texts, ok := verificationLocales[locale]
	if !ok {
		texts = verificationLocales[larp.LanguageFinnish]
	}

	verifyURL := fmt.Sprintf("%s/moderation/verify/%s", n.baseURL, code)

	if n.sender == nil {
		if n.production {
			// 配置校验会在启动时拦住这种情况，这里只是兜底
			return fmt.Errorf("邮件服务未配置")
		}
		// 非生产环境：打印本应发送的邮件，继续流程
		log.Printf("[moderation] 邮件服务未配置，跳过发送。收件人=%s 主题=%q 链接=%s",
			recipient, texts.Subject, verifyURL)
		return nil
	}

	textBody := fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s\n\n%s",
		texts.Greeting, texts.Message, verifyURL, texts.IgnoreHint, texts.FooterText)

	tmpl, err := email.NewTemplate(email.VerificationLinkTemplate)
	if err != nil {
		return err
	}
	htmlBody, err := tmpl.Render(email.VerificationLinkData{
		Title:      texts.Subject,
		Greeting:   texts.Greeting,
		Message:    texts.Message,
		VerifyURL:  verifyURL,
		ButtonText: texts.ButtonText,
		IgnoreHint: texts.IgnoreHint,
		FooterText: texts.FooterText,
	})
	if err != nil {
		return err
	}

	return n.sender.Send(&email.Message{
		To:       []string{recipient},
		Subject:  texts.Subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	})
}

package push

import (
	"strings"

	"movecar-service/internal/i18n"
)

// Content is the channel-independent notification payload. Each channel
// renders it into its own wire format.
type Content struct {
	Phrases     i18n.Phrases
	CarTitle    string
	Body        string // requester's free-form message
	HasLocation bool
	ConfirmURL  string
}

// Title renders the notification headline, e.g. "🚗 挪车请求：车主".
func (c Content) Title() string {
	return "🚗 " + c.Phrases.Request + "：" + c.CarTitle
}

// PlainText renders the multi-line plain-text body.
func (c Content) PlainText() string {
	var b strings.Builder
	b.WriteString("🚗 " + c.Phrases.Request + "【" + c.CarTitle + "】")
	b.WriteString("\n💬 " + c.Phrases.Message + ": " + c.Body)
	if c.HasLocation {
		b.WriteString("\n📍 " + c.Phrases.LocationAttached)
	}
	return b.String()
}

// HTML renders the body for channels that accept HTML, with the confirmation
// deep-link appended.
func (c Content) HTML() string {
	msg := strings.ReplaceAll(c.PlainText(), "\n", "<br>")
	return msg + `<br><br><a href="` + c.ConfirmURL + `" style="font-weight:bold;color:#0093E9;font-size:18px;">【` + c.Phrases.Confirm + `】</a>`
}

// TelegramHTML renders the Telegram-flavored HTML body.
func (c Content) TelegramHTML() string {
	var b strings.Builder
	b.WriteString("🚗 <b>" + c.Phrases.Request + "：" + c.CarTitle + "</b>")
	b.WriteString("\n💬 " + c.Phrases.Message + ": " + c.Body)
	if c.HasLocation {
		b.WriteString("\n📍 " + c.Phrases.LocationAttached)
	}
	b.WriteString("\n<a href=\"" + c.ConfirmURL + "\">【" + c.Phrases.Confirm + "】</a>")
	return b.String()
}

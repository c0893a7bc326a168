package bot

// WEB APP KEYBOARDS
//
// telegram-bot-api v5.5.1 predates Mini Apps, so the web_app markup is
// declared here and assigned to MessageConfig.ReplyMarkup, which the
// library marshals as plain JSON.

type WebAppInfo struct {
	URL string `json:"url"`
}

type WebAppButton struct {
	Text   string     `json:"text"`
	WebApp WebAppInfo `json:"web_app"`
}

type InlineWebAppKeyboard struct {
	InlineKeyboard [][]WebAppButton `json:"inline_keyboard"`
}

// MenuButtonWebApp is the chat menu button that launches a Mini App.
type MenuButtonWebApp struct {
	Type   string     `json:"type"`
	Text   string     `json:"text"`
	WebApp WebAppInfo `json:"web_app"`
}

func NewWebAppButton(text, url string) WebAppButton {
	return WebAppButton{Text: text, WebApp: WebAppInfo{URL: url}}
}

func NewInlineWebAppKeyboard(rows ...[]WebAppButton) InlineWebAppKeyboard {
	return InlineWebAppKeyboard{InlineKeyboard: rows}
}

func NewMenuButtonWebApp(text, url string) MenuButtonWebApp {
	return MenuButtonWebApp{Type: "web_app", Text: text, WebApp: WebAppInfo{URL: url}}
}

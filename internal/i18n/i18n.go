// Package i18n holds the backend phrase tables used to compose notification
// texts and map-pin labels. The client pages carry their own translations.
package i18n

// DefaultLang is used when the client sends no language or an unknown one.
const DefaultLang = "zh-CN"

// Phrases are the server-side strings for one language.
type Phrases struct {
	Request          string // notification headline
	Message          string // label for the requester's free-form message
	LocationAttached string // appended when a requester location exists
	Confirm          string // confirm-link text
	RequesterLabel   string // map-pin label for the requester's position
	OwnerLabel       string // map-pin label for the owner's position
}

var phrases = map[string]Phrases{
	"zh-CN": {
		Request:          "挪车请求",
		Message:          "留言",
		LocationAttached: "已附带对方位置",
		Confirm:          "点击确认前往",
		RequesterLabel:   "扫码者位置",
		OwnerLabel:       "车主位置",
	},
	"zh-TW": {
		Request:          "挪車請求",
		Message:          "留言",
		LocationAttached: "已附帶對方位置",
		Confirm:          "點擊確認前往",
		RequesterLabel:   "掃碼者位置",
		OwnerLabel:       "車主位置",
	},
	"en": {
		Request:          "Move Car Request",
		Message:          "Message",
		LocationAttached: "Location attached",
		Confirm:          "Click to confirm",
		RequesterLabel:   "Requester Location",
		OwnerLabel:       "Owner Location",
	},
}

// For returns the phrase set for lang, falling back to DefaultLang.
func For(lang string) Phrases {
	if p, ok := phrases[lang]; ok {
		return p
	}
	return phrases[DefaultLang]
}

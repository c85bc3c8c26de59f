package finance

import (
	"strings"
	"unicode/utf8"
)

// Label is a transaction name split into its icon and text. Names are stored
// as "<icon> <text>"; older rows may lack the icon.
type Label struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

func (l Label) String() string {
	if l.Icon == "" {
		return l.Text
	}
	return l.Icon + " " + l.Text
}

type Category struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// Categories is the icon palette offered by the entry form.
var Categories = []Category{
	{Icon: "🍱", Label: "飲食"},
	{Icon: "🥤", Label: "飲料"},
	{Icon: "🚗", Label: "交通"},
	{Icon: "🛍️", Label: "購物"},
	{Icon: "🎬", Label: "娛樂"},
	{Icon: "🏠", Label: "居家"},
	{Icon: "💊", Label: "醫療"},
	{Icon: "💸", Label: "其他"},
}

// iconKeywords is checked in order against names without an icon token.
var iconKeywords = []struct {
	icon     string
	keywords []string
}{
	{icon: "🍱", keywords: []string{"食", "餐", "便當"}},
	{icon: "🥤", keywords: []string{"飲", "茶"}},
	{icon: "🚗", keywords: []string{"車", "油"}},
}

// ParseLabel decodes a stored transaction name. Anything before the first
// space is the icon. Without a space the icon is inferred from keywords, or
// else taken from the first character of the name.
func ParseLabel(name string) Label {
	if icon, text, ok := strings.Cut(name, " "); ok {
		return Label{Icon: icon, Text: text}
	}
	for _, k := range iconKeywords {
		for _, kw := range k.keywords {
			if strings.Contains(name, kw) {
				return Label{Icon: k.icon, Text: name}
			}
		}
	}
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return Label{Text: name}
	}
	return Label{Icon: name[:size], Text: name}
}

// SplitLabel is used when editing: names without an icon token get the first
// category icon instead of an inferred one.
func SplitLabel(name string) Label {
	if icon, text, ok := strings.Cut(name, " "); ok {
		return Label{Icon: icon, Text: text}
	}
	return Label{Icon: Categories[0].Icon, Text: name}
}

type QuickAdd struct {
	Amount int64  `json:"amount"`
	Name   string `json:"name"`
}

// QuickAdds are the one-tap expense buttons.
var QuickAdds = []QuickAdd{
	{Amount: 100, Name: "🍱 食物"},
	{Amount: 60, Name: "🥤 飲料"},
}

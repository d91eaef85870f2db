package catalog

import (
	"strings"
	"sync"
)

// Color is a Minecraft chat color.
type Color struct {
	TypeName  string `json:"type_name" yaml:"type_name"`
	CleanName string `json:"clean_name" yaml:"clean_name"`
	ChatCode  string `json:"chat_code" yaml:"chat_code"`
	Hex       string `json:"hex" yaml:"hex"`
}

var colors = []Color{
	{TypeName: "DARK_RED", CleanName: "Dark Red", ChatCode: "§4", Hex: "AA0000"},
	{TypeName: "RED", CleanName: "Red", ChatCode: "§c", Hex: "FF5555"},
	{TypeName: "GOLD", CleanName: "Gold", ChatCode: "§6", Hex: "FFAA00"},
	{TypeName: "YELLOW", CleanName: "Yellow", ChatCode: "§e", Hex: "FFFF55"},
	{TypeName: "DARK_GREEN", CleanName: "Dark Green", ChatCode: "§2", Hex: "00AA00"},
	{TypeName: "GREEN", CleanName: "Green", ChatCode: "§a", Hex: "55FF55"},
	{TypeName: "AQUA", CleanName: "Aqua", ChatCode: "§b", Hex: "55FFFF"},
	{TypeName: "DARK_AQUA", CleanName: "Dark Aqua", ChatCode: "§3", Hex: "00AAAA"},
	{TypeName: "DARK_BLUE", CleanName: "Dark Blue", ChatCode: "§1", Hex: "0000AA"},
	{TypeName: "BLUE", CleanName: "Blue", ChatCode: "§9", Hex: "5555FF"},
	{TypeName: "LIGHT_PURPLE", CleanName: "Light Purple", ChatCode: "§d", Hex: "FF55FF"},
	{TypeName: "DARK_PURPLE", CleanName: "Dark Purple", ChatCode: "§5", Hex: "AA00AA"},
	{TypeName: "WHITE", CleanName: "White", ChatCode: "§f", Hex: "FFFFFF"},
	{TypeName: "GRAY", CleanName: "Gray", ChatCode: "§7", Hex: "AAAAAA"},
	{TypeName: "DARK_GRAY", CleanName: "Dark Gray", ChatCode: "§8", Hex: "555555"},
	{TypeName: "BLACK", CleanName: "Black", ChatCode: "§0", Hex: "000000"},
}

type colorIndex struct {
	byType map[string]*Color
	byCode map[string]*Color
}

var loadColors = sync.OnceValue(func() colorIndex {
	idx := colorIndex{
		byType: make(map[string]*Color, len(colors)),
		byCode: make(map[string]*Color, len(colors)),
	}
	for i := range colors {
		c := &colors[i]
		idx.byType[c.TypeName] = c
		idx.byCode[c.ChatCode] = c
	}
	return idx
})

// ColorByTypeName looks up a color by type name, e.g. "DARK_AQUA".
func ColorByTypeName(typeName string) *Color {
	return loadColors().byType[typeName]
}

// ColorByChatCode looks up a color by its chat code. Both "§b" and "b" are accepted.
func ColorByChatCode(code string) *Color {
	if !strings.HasPrefix(code, "§") {
		code = "§" + strings.ToLower(code)
	}
	return loadColors().byCode[code]
}

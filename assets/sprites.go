package assets

import "fmt"

// Sprite resource names.
const (
	SpriteMap           = "map"
	SpriteDrone         = "drone"
	SpriteFruits        = "fruits"
	SpriteHeroFront     = "hero_front"
	SpriteHeroBack      = "hero_back"
	SpriteHeroLeft      = "hero_left"
	SpriteHeroRight     = "hero_right"
	SpriteJoystickBase  = "joystickBase"
	SpriteJoystickThumb = "joystickThumb"
	SpriteActionButton  = "actionBtn"
)

// NPCSprite returns the sprite name for the n-th NPC (0-based), cycling
// through count portraits.
func NPCSprite(n, count int) string {
	if count <= 0 {
		count = 1
	}
	return fmt.Sprintf("npc%d", n%count+1)
}

// npcGlyphs stand in for the 24 resident portraits on a terminal.
var npcGlyphs = []string{
	"👩", "👨", "🧑", "👵", "👴", "🧒", "👷", "🧑‍🍳",
	"🧑‍🔧", "🧑‍🎨", "🧑‍⚕️", "💂", "🧑‍💼", "🧑‍🎓", "🧕", "👲",
	"🧔", "👱", "🧓", "👮", "🧑‍🌾", "🧑‍🏭", "🕵️", "🧑‍🚀",
}

var glyphs = map[string]string{
	SpriteDrone:         "🛸",
	SpriteFruits:        "🍎",
	SpriteHeroFront:     "🧍",
	SpriteHeroBack:      "🚶",
	SpriteHeroLeft:      "👈",
	SpriteHeroRight:     "👉",
	SpriteJoystickBase:  "◯",
	SpriteJoystickThumb: "●",
	SpriteActionButton:  "Ⓐ",
}

// Glyph maps a sprite name to the terminal glyph drawn for it.
// Unknown names render as "?".
func Glyph(sprite string) string {
	if g, ok := glyphs[sprite]; ok {
		return g
	}
	var n int
	if _, err := fmt.Sscanf(sprite, "npc%d", &n); err == nil && n >= 1 {
		return npcGlyphs[(n-1)%len(npcGlyphs)]
	}
	return "?"
}

// Package icon renders status glyphs in the variant the user picked.
//
// Variants are emoji, nerd-font glyphs, plain ASCII, kaomoji and Unicode squares.
package icon

import (
	"github.com/spf13/viper"
	"github.com/trixio-cli/trixio/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists every accepted value of icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a glyph.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Search
	Movie
	TV
	Play
	Lock
	Relay
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(◕‿◕)", squares: "🟩"},
	Fail:     {emoji: "💀", nerd: "", plain: "✗", kaomoji: "(╥﹏╥)", squares: "🟥"},
	Progress: {emoji: "⏳", nerd: "", plain: "…", kaomoji: "(・_・)", squares: "🟨"},
	Search:   {emoji: "🔍", nerd: "", plain: "?", kaomoji: "(ಠ_ಠ)", squares: "🟦"},
	Movie:    {emoji: "🎬", nerd: "", plain: "M", kaomoji: "(⌐■_■)", squares: "🟪"},
	TV:       {emoji: "📺", nerd: "", plain: "T", kaomoji: "(°ロ°)", squares: "🟫"},
	Play:     {emoji: "▶️", nerd: "", plain: ">", kaomoji: "(ง'̀-'́)ง", squares: "🟧"},
	Lock:     {emoji: "🔒", nerd: "", plain: "#", kaomoji: "(￢_￢)", squares: "⬛"},
	Relay:    {emoji: "🔀", nerd: "", plain: "~", kaomoji: "(~˘▾˘)~", squares: "⬜"},
}

// Get renders i in the configured variant, or "" for an unknown variant.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.get()
}

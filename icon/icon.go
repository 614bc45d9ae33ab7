// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/spf13/viper"
	"github.com/valtips-cli/valtips/key"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

type Icon int

const (
	Favorite Icon = iota + 1
	NotFavorite
	Success
	Fail
	Progress
	Video
	Map
	Agent
	Key
	Link
)

type def struct {
	emoji string
	nerd  string
	plain string
}

var icons = map[Icon]def{
	Favorite:    {emoji: "⭐", nerd: "", plain: "*"},
	NotFavorite: {emoji: "☆", nerd: "", plain: " "},
	Success:     {emoji: "✅", nerd: "", plain: "+"},
	Fail:        {emoji: "❌", nerd: "", plain: "x"},
	Progress:    {emoji: "⏳", nerd: "", plain: "..."},
	Video:       {emoji: "🎬", nerd: "", plain: ">"},
	Map:         {emoji: "🗺️", nerd: "", plain: "#"},
	Agent:       {emoji: "🎯", nerd: "", plain: "@"},
	Key:         {emoji: "🔑", nerd: "", plain: "~"},
	Link:        {emoji: "🔗", nerd: "", plain: "->"},
}

// Get returns the icon in the configured variant. Unknown variants render nothing.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}

	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

// Star is Favorite or NotFavorite.
func Star(favorite bool) string {
	if favorite {
		return Get(Favorite)
	}
	return Get(NotFavorite)
}

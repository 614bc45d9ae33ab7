package tui

import (
	"strings"

	"github.com/valtips-cli/valtips/icon"
	"github.com/valtips-cli/valtips/style"
	"github.com/valtips-cli/valtips/valorant"
	"github.com/valtips-cli/valtips/youtube"
)

// listItem adapts agents, maps and videos to list.Item.
type listItem struct {
	internal any
	favorite bool
}

func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case *valorant.Agent:
		return icon.Star(t.favorite) + " " + e.DisplayName
	case *valorant.Map:
		return e.DisplayName
	case youtube.Video:
		return e.Title
	default:
		return t.FilterValue()
	}
}

func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case *valorant.Agent:
		if name := e.RoleName(); name != "" {
			return style.Role(name)
		}
		return style.Faint("no role")
	case *valorant.Map:
		return style.Faint(e.Coordinates)
	case youtube.Video:
		return style.Faint(e.URL())
	default:
		return ""
	}
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *valorant.Agent:
		return strings.ToLower(e.DisplayName)
	case *valorant.Map:
		return strings.ToLower(e.DisplayName)
	case youtube.Video:
		return e.Title
	default:
		return ""
	}
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/valtips-cli/valtips/color"
	"github.com/valtips-cli/valtips/icon"
	"github.com/valtips-cli/valtips/style"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	switch b.state {
	case loadingState:
		return b.viewLoading()
	case agentsState:
		return listExtraPaddingStyle.Render(b.agentsC.View())
	case mapsState:
		return listExtraPaddingStyle.Render(b.mapsC.View())
	case videosState:
		return b.viewVideos()
	case errorState:
		return b.viewError()
	default:
		return "Unknown state"
	}
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(true, []string{
		style.Title("Loading"),
		"",
		b.spinnerC.View() + " " + b.progressStatus,
	})
}

func (b *statefulBubble) viewVideos() string {
	if b.loading {
		return b.renderLines(true, []string{
			style.Title(b.videosC.Title),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		})
	}

	return listExtraPaddingStyle.Render(b.videosC.View())
}

func (b *statefulBubble) viewError() string {
	errorMsg := style.Fg(color.Red)(b.lastError.Error())
	if b.width > 0 {
		errorMsg = wrap.String(errorMsg, b.width)
	}
	return b.renderLines(true, []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " An error occurred:",
		"",
		errorMsg,
	})
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}

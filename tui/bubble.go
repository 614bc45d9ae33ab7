package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/valtips-cli/valtips/color"
	"github.com/valtips-cli/valtips/util"
	"github.com/valtips-cli/valtips/valorant"
	"github.com/valtips-cli/valtips/youtube"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	loading       bool
	// busy drops key presses while the catalog is loading
	busy bool

	keymap *statefulKeymap

	spinnerC spinner.Model
	helpC    help.Model
	agentsC  list.Model
	mapsC    list.Model
	videosC  list.Model

	agents        []*valorant.Agent
	maps          []*valorant.Map
	roles         []*valorant.Role
	roleIndex     int // -1 for every role
	favoritesOnly bool
	favorites     map[string]bool

	selectedAgent *valorant.Agent
	selectedMap   *valorant.Map

	pager       *youtube.Pager
	loadingMore bool

	favoriteUpdates   <-chan []string
	cancelSubscribers func()

	progressStatus string
	lastError      error
	retry          tea.Cmd

	width, height int

	options *Options
}

func (b *statefulBubble) raiseError(err error, retry tea.Cmd) {
	b.lastError = err
	b.retry = retry
	b.stopLoading()
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth, listHeight := width-xx, height-yy
	for _, l := range []*list.Model{&b.agentsC, &b.mapsC, &b.videosC} {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func (b *statefulBubble) startLoading(status string) tea.Cmd {
	b.loading = true
	b.busy = true
	b.progressStatus = status
	return b.spinnerC.Tick
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
	b.busy = false
	b.progressStatus = ""
}

// close releases the favorites subscription.
func (b *statefulBubble) close() {
	if b.cancelSubscribers != nil {
		b.cancelSubscribers()
	}
}

func newBubble(options *Options) *statefulBubble {
	bubble := &statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        newStatefulKeymap(),
		roleIndex:     -1,
		favoritesOnly: options.FavoritesOnly,
		favorites:     make(map[string]bool),
		pager:         youtube.NewPager(options.Searcher),
		options:       options,
	}

	if options.Favorites != nil {
		bubble.favoriteUpdates, bubble.cancelSubscribers = options.Favorites.Subscribe()
	}

	makeList := func(title string, titleColor lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(color.Valorant).
			Foreground(color.Valorant).
			Padding(0, 0, 0, 1)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		l := list.New([]list.Item{}, delegate, 0, 0)
		l.KeyMap = bubble.keymap.forList()
		l.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		l.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		l.Title = title
		l.Styles.Title = lipgloss.NewStyle().Foreground(color.Cream).Background(titleColor).Padding(0, 1)
		l.Styles.NoItems = paddingStyle
		l.StatusMessageLifetime = 5 * time.Second
		return l
	}

	bubble.agentsC = makeList("Agents", color.Valorant)
	bubble.agentsC.SetStatusBarItemName("agent", "agents")

	bubble.mapsC = makeList("Maps", color.Ink)
	bubble.mapsC.SetStatusBarItemName("map", "maps")

	bubble.videosC = makeList("Videos", color.Red)
	bubble.videosC.SetStatusBarItemName("video", "videos")
	bubble.videosC.SetFilteringEnabled(false)

	bubble.helpC = help.New()
	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(color.Valorant)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return bubble
}

package tui

import (
	"errors"
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/valtips-cli/valtips/log"
	"github.com/valtips-cli/valtips/open"
	"github.com/valtips-cli/valtips/valorant"
	"github.com/valtips-cli/valtips/youtube"
)

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.startLoading("Loading agents and maps"), b.loadCatalog(), b.waitForFavorites())
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case error:
		b.raiseError(msg, b.loadCatalog())
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		if !b.loading {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	case favoritesMsg:
		b.setFavorites(msg)
		return b, tea.Batch(b.refreshAgents(), b.waitForFavorites())
	case videosMsg:
		return b, b.handleVideos(msg)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		back := bubblesKey.Matches(msg, b.keymap.back)

		// a video search may be left while it runs, the catalog load may not
		if b.busy && b.state != errorState && !(back && b.state == videosState) {
			return b, nil
		}

		if back && !b.filtering() {
			b.previousState()
			b.stopLoading()
			return b, nil
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case agentsState:
		return b.updateAgents(msg)
	case mapsState:
		return b.updateMaps(msg)
	case videosState:
		return b.updateVideos(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

// filtering reports whether the active list is taking text input.
func (b *statefulBubble) filtering() bool {
	switch b.state {
	case agentsState:
		return b.agentsC.FilterState() != list.Unfiltered
	case mapsState:
		return b.mapsC.FilterState() != list.Unfiltered
	default:
		return false
	}
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	catalog, ok := msg.(catalogMsg)
	if !ok {
		return b, nil
	}

	b.agents = catalog.agents
	b.maps = catalog.maps
	b.roles = valorant.Roles(catalog.agents)

	cmd := b.mapsC.SetItems(lo.Map(catalog.maps, func(m *valorant.Map, _ int) list.Item {
		return &listItem{internal: m}
	}))

	b.stopLoading()
	b.setState(agentsState)
	return b, tea.Batch(cmd, b.refreshAgents())
}

func (b *statefulBubble) selectedAgentItem() *valorant.Agent {
	if item, ok := b.agentsC.SelectedItem().(*listItem); ok {
		agent, _ := item.internal.(*valorant.Agent)
		return agent
	}
	return nil
}

func (b *statefulBubble) updateAgents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && !b.filtering() {
		switch {
		case bubblesKey.Matches(msg, b.keymap.toggleFavorite):
			return b, b.toggleFavorite(b.selectedAgentItem())
		case bubblesKey.Matches(msg, b.keymap.favoritesOnly):
			b.favoritesOnly = !b.favoritesOnly
			return b, b.refreshAgents()
		case bubblesKey.Matches(msg, b.keymap.cycleRole):
			b.roleIndex++
			if b.roleIndex >= len(b.roles) {
				b.roleIndex = -1
			}
			return b, b.refreshAgents()
		case bubblesKey.Matches(msg, b.keymap.confirm):
			agent := b.selectedAgentItem()
			if agent == nil {
				return b, nil
			}
			b.selectedAgent = agent
			b.mapsC.Title = agent.DisplayName + " · Maps"

			if b.selectedMap == nil {
				if m, ok := valorant.DefaultMap(b.maps); ok {
					b.selectedMap = m
					b.mapsC.Select(0)
				}
			}
			b.newState(mapsState)
			return b, nil
		}
	}

	b.agentsC, cmd = b.agentsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateMaps(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && !b.filtering() {
		switch {
		case bubblesKey.Matches(msg, b.keymap.toggleFavorite):
			return b, b.toggleFavorite(b.selectedAgent)
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.mapsC.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}
			b.selectedMap = item.internal.(*valorant.Map)
			return b, b.selectVideos()
		}
	}

	b.mapsC, cmd = b.mapsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateVideos(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.openURL):
			item, ok := b.videosC.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}
			video := item.internal.(youtube.Video)
			if err := open.Start(video.URL()); err != nil {
				log.Error(err)
				return b, b.videosC.NewStatusMessage("Could not open " + video.URL())
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.toggleFavorite):
			return b, b.toggleFavorite(b.selectedAgent)
		case bubblesKey.Matches(msg, b.keymap.changeMap):
			b.newState(mapsState)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.retry):
			b.loadingMore = false
			return b, b.maybeLoadMore()
		}
	}

	b.videosC, cmd = b.videosC.Update(msg)
	return b, tea.Batch(cmd, b.maybeLoadMore())
}

func (b *statefulBubble) handleVideos(msg videosMsg) tea.Cmd {
	if msg.more {
		b.loadingMore = false
	}

	switch {
	case errors.Is(msg.err, youtube.ErrStale), errors.Is(msg.err, youtube.ErrBusy), errors.Is(msg.err, youtube.ErrExhausted):
		return nil
	case msg.err != nil && msg.more:
		log.Warn(msg.err)
		return b.videosC.NewStatusMessage(fmt.Sprintf("Could not load more: %s (r to retry)", msg.err))
	case msg.err != nil:
		b.raiseError(msg.err, b.fetchVideos(false))
		return nil
	}

	if !msg.more {
		b.stopLoading()
		if b.state == errorState {
			b.previousState()
		}
	}

	cmd := b.refreshVideos()
	if len(b.videosC.Items()) == 0 {
		return tea.Batch(cmd, b.videosC.NewStatusMessage("No videos found"))
	}
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.retry) && b.retry != nil:
			retry := b.retry
			b.retry = nil
			b.previousState()
			if b.agents == nil {
				b.setState(loadingState)
			}
			return b, tea.Batch(b.startLoading("Retrying"), retry)
		}
	}

	return b, nil
}

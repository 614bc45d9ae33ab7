package tui

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/valtips-cli/valtips/log"
	"github.com/valtips-cli/valtips/query"
	"github.com/valtips-cli/valtips/valorant"
	"github.com/valtips-cli/valtips/youtube"
)

type catalogMsg struct {
	agents []*valorant.Agent
	maps   []*valorant.Map
}

type favoritesMsg []string

type videosMsg struct {
	more bool
	err  error
}

func (b *statefulBubble) loadCatalog() tea.Cmd {
	catalog := b.options.Catalog

	return func() tea.Msg {
		var (
			msg               catalogMsg
			agentsErr, mapErr error
			wg                sync.WaitGroup
			ctx               = context.Background()
		)

		wg.Add(2)
		go func() {
			defer wg.Done()
			msg.agents, agentsErr = catalog.Agents(ctx)
		}()
		go func() {
			defer wg.Done()
			msg.maps, mapErr = catalog.Maps(ctx)
		}()
		wg.Wait()

		if agentsErr != nil {
			return agentsErr
		}
		if mapErr != nil {
			return mapErr
		}
		return msg
	}
}

// waitForFavorites delivers the next favorites snapshot. It must be
// re-issued after every favoritesMsg.
func (b *statefulBubble) waitForFavorites() tea.Cmd {
	updates := b.favoriteUpdates
	if updates == nil {
		return nil
	}

	return func() tea.Msg {
		ids, ok := <-updates
		if !ok {
			return nil
		}
		return favoritesMsg(ids)
	}
}

func (b *statefulBubble) fetchVideos(more bool) tea.Cmd {
	pager := b.pager

	return func() tea.Msg {
		var err error
		if more {
			_, err = pager.LoadMore(context.Background())
		} else {
			_, err = pager.Load(context.Background())
		}
		return videosMsg{more: more, err: err}
	}
}

// selectVideos binds the pager to the selected agent and map and loads the first page.
func (b *statefulBubble) selectVideos() tea.Cmd {
	b.pager.Reset(b.selectedAgent.DisplayName, b.selectedMap.DisplayName)
	b.loadingMore = false
	b.videosC.Title = b.selectedAgent.DisplayName + " · " + b.selectedMap.DisplayName
	cmd := b.videosC.SetItems(nil)

	b.remember(query.Agent, b.selectedAgent.DisplayName)
	b.remember(query.Map, b.selectedMap.DisplayName)

	b.newState(videosState)
	return tea.Batch(cmd, b.startLoading("Searching videos"), b.fetchVideos(false))
}

func (b *statefulBubble) remember(kind query.Kind, name string) {
	if b.options.History == nil {
		return
	}
	if err := b.options.History.Remember(kind, name, 1); err != nil {
		log.Warn(err)
	}
}

func (b *statefulBubble) setFavorites(ids []string) {
	b.favorites = lo.SliceToMap(ids, func(id string) (string, bool) { return id, true })
}

func (b *statefulBubble) isFavorite(id string) bool {
	return b.favorites[id]
}

// refreshAgents re-applies the favorites and role filters, keeping the cursor on
// the same agent when it is still listed.
func (b *statefulBubble) refreshAgents() tea.Cmd {
	opts := valorant.FilterOptions{
		FavoritesOnly: b.favoritesOnly,
		IsFavorite:    b.isFavorite,
	}

	title := "Agents"
	if b.roleIndex >= 0 && b.roleIndex < len(b.roles) {
		opts.RoleID = b.roles[b.roleIndex].UUID
		title += " · " + b.roles[b.roleIndex].DisplayName
	}
	if b.favoritesOnly {
		title += " · favorites"
	}
	b.agentsC.Title = title

	var selectedID string
	if item, ok := b.agentsC.SelectedItem().(*listItem); ok {
		if agent, ok := item.internal.(*valorant.Agent); ok {
			selectedID = agent.UUID
		}
	}

	filtered := valorant.Filter(b.agents, opts)
	items := lo.Map(filtered, func(a *valorant.Agent, _ int) list.Item {
		return &listItem{internal: a, favorite: b.isFavorite(a.UUID)}
	})

	cmd := b.agentsC.SetItems(items)
	if _, index, ok := lo.FindIndexOf(filtered, func(a *valorant.Agent) bool { return a.UUID == selectedID }); ok {
		b.agentsC.Select(index)
	}
	return cmd
}

func (b *statefulBubble) refreshVideos() tea.Cmd {
	items := lo.Map(b.pager.Videos(), func(v youtube.Video, _ int) list.Item {
		return &listItem{internal: v}
	})
	return b.videosC.SetItems(items)
}

func (b *statefulBubble) toggleFavorite(agent *valorant.Agent) tea.Cmd {
	if agent == nil || b.options.Favorites == nil {
		return nil
	}

	if b.options.Favorites.Toggle(agent.UUID) {
		return b.agentsC.NewStatusMessage(agent.DisplayName + " added to favorites")
	}
	return b.agentsC.NewStatusMessage(agent.DisplayName + " removed from favorites")
}

// nearEnd reports whether the cursor is on the last loaded video.
func (b *statefulBubble) nearEnd() bool {
	n := len(b.videosC.Items())
	return n > 0 && b.videosC.Index() >= n-1
}

func (b *statefulBubble) maybeLoadMore() tea.Cmd {
	if b.loadingMore || !b.nearEnd() || !b.pager.HasMore() || b.pager.State() == youtube.Fetching {
		return nil
	}

	b.loadingMore = true
	return tea.Batch(b.videosC.NewStatusMessage("Loading more..."), b.fetchVideos(true))
}

// Package tui is the interactive agent and video browser.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/valtips-cli/valtips/favorites"
	"github.com/valtips-cli/valtips/query"
	"github.com/valtips-cli/valtips/valorant"
	"github.com/valtips-cli/valtips/youtube"
)

// Catalog lists agents and maps. *valorant.Client implements it.
type Catalog interface {
	Agents(ctx context.Context) ([]*valorant.Agent, error)
	Maps(ctx context.Context) ([]*valorant.Map, error)
}

type Options struct {
	// FavoritesOnly starts with the favorites filter on.
	FavoritesOnly bool

	Catalog   Catalog
	Favorites *favorites.Store
	Searcher  youtube.Searcher
	// History is optional. Selected agents and maps are remembered in it.
	History *query.History
}

func Run(options *Options) error {
	bubble := newBubble(options)
	defer bubble.close()

	bubble.setState(loadingState)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}

package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/valtips-cli/valtips/icon"
	"github.com/valtips-cli/valtips/log"
	"github.com/valtips-cli/valtips/query"
	"github.com/valtips-cli/valtips/util"
	"github.com/valtips-cli/valtips/valorant"
)

// fetch runs f behind an erasable progress line.
func fetch[T any](what string, f func() (T, error)) T {
	erase := func() {}
	if util.IsTerminal() {
		erase = util.PrintErasable(fmt.Sprintf("%s Fetching %s...", icon.Get(icon.Progress), what))
	}

	value, err := f()
	erase()
	handleErr(err)
	return value
}

func fetchAgents(ctx context.Context, client *valorant.Client) []*valorant.Agent {
	return fetch("agents", func() ([]*valorant.Agent, error) { return client.Agents(ctx) })
}

func fetchMaps(ctx context.Context, client *valorant.Client) []*valorant.Map {
	return fetch("maps", func() ([]*valorant.Map, error) { return client.Maps(ctx) })
}

// resolveAgent finds the agent named by arg and remembers it for completion.
func resolveAgent(ctx context.Context, client *valorant.Client, arg string) *valorant.Agent {
	agent, err := valorant.FindAgent(fetchAgents(ctx, client), arg)
	handleErr(err)
	remember(query.Agent, agent.DisplayName)
	return agent
}

// resolveMap finds the map named by arg, or the default map when arg is empty.
func resolveMap(ctx context.Context, client *valorant.Client, arg string) *valorant.Map {
	maps := fetchMaps(ctx, client)

	if arg == "" {
		m, ok := valorant.DefaultMap(maps)
		if !ok {
			handleErr(fmt.Errorf("map: %w", valorant.ErrNotFound))
		}
		return m
	}

	m, err := valorant.FindMap(maps, arg)
	handleErr(err)
	remember(query.Map, m.DisplayName)
	return m
}

func remember(kind query.Kind, name string) {
	if err := query.Default().Remember(kind, name, 1); err != nil {
		log.Warn(err)
	}
}

func completionFor(kind query.Kind) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.Default().Suggest(kind, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

func printJSON(cmd *cobra.Command, v any) {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	lo.Must0(encoder.Encode(v))
}

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/valtips-cli/valtips/color"
	"github.com/valtips-cli/valtips/favorites"
	"github.com/valtips-cli/valtips/icon"
	"github.com/valtips-cli/valtips/query"
	"github.com/valtips-cli/valtips/style"
	"github.com/valtips-cli/valtips/util"
	"github.com/valtips-cli/valtips/valorant"
)

// agentOutput is an agent as printed by --json.
type agentOutput struct {
	*valorant.Agent
	Favorite bool `json:"favorite" jsonschema:"description=Whether the agent is marked as favorite."`
}

func toOutput(agents []*valorant.Agent, store *favorites.Store) []agentOutput {
	return lo.Map(agents, func(a *valorant.Agent, _ int) agentOutput {
		return agentOutput{Agent: a, Favorite: store.IsFavorite(a.UUID)}
	})
}

func printAgents(cmd *cobra.Command, agents []*valorant.Agent, store *favorites.Store) {
	width := lo.Max(lo.Map(agents, func(a *valorant.Agent, _ int) int { return len(a.DisplayName) }))

	for _, a := range agents {
		cmd.Printf("%s %s %s\n",
			style.Fg(color.Valorant)(icon.Star(store.IsFavorite(a.UUID))),
			style.Bold(a.DisplayName+strings.Repeat(" ", width-len(a.DisplayName))),
			style.Role(a.RoleName()),
		)
	}
}

func init() {
	rootCmd.AddCommand(agentsCmd)

	agentsCmd.Flags().StringP("role", "r", "", "Only agents with this role")
	agentsCmd.Flags().StringP("name", "n", "", "Only agents whose name contains this")
	agentsCmd.Flags().BoolP("favorites", "f", false, "Only favorite agents")
	agentsCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	agentsCmd.SetOut(os.Stdout)
}

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List playable agents",
	Example: "  valtips agents --role duelist\n" +
		"  valtips agents --favorites --json",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			client = newCatalogClient()
			store  = favorites.Default()
			agents = fetchAgents(cmd.Context(), client)
			opts   = valorant.FilterOptions{
				FavoritesOnly: lo.Must(cmd.Flags().GetBool("favorites")),
				IsFavorite:    store.IsFavorite,
				Name:          lo.Must(cmd.Flags().GetString("name")),
			}
		)

		if role := lo.Must(cmd.Flags().GetString("role")); role != "" {
			r, err := valorant.FindRole(agents, role)
			handleErr(err)
			opts.RoleID = r.UUID
		}

		agents = valorant.Filter(agents, opts)

		if lo.Must(cmd.Flags().GetBool("json")) {
			printJSON(cmd, toOutput(agents, store))
			return
		}

		if len(agents) == 0 {
			cmd.Println(style.Faint("No agents match"))
			return
		}
		printAgents(cmd, agents, store)
	},
}

func init() {
	rootCmd.AddCommand(agentCmd)

	agentCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	agentCmd.SetOut(os.Stdout)
}

var agentCmd = &cobra.Command{
	Use:               "agent <name|uuid>",
	Short:             "Show one agent",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionFor(query.Agent),
	Run: func(cmd *cobra.Command, args []string) {
		client := newCatalogClient()
		store := favorites.Default()

		agent := resolveAgent(cmd.Context(), client, args[0])
		// the list entry is enough when the detail request fails
		if detailed, err := client.Agent(cmd.Context(), agent.UUID); err == nil {
			agent = detailed
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			printJSON(cmd, agentOutput{Agent: agent, Favorite: store.IsFavorite(agent.UUID)})
			return
		}

		width := 80
		if w, _, err := util.TerminalSize(); err == nil && w > 0 {
			width = min(w, 100)
		}

		cmd.Printf("%s %s\n", style.Title(agent.DisplayName), style.Fg(color.Valorant)(icon.Star(store.IsFavorite(agent.UUID))))
		if role := agent.RoleName(); role != "" {
			cmd.Printf("%s %s\n", style.Faint("Role"), style.Role(role))
		}
		cmd.Printf("%s %s\n", style.Faint("UUID"), agent.UUID)
		if agent.Description != "" {
			cmd.Println()
			cmd.Println(wordwrap.String(agent.Description, width))
		}
		if agent.DisplayIcon != "" {
			cmd.Printf("\n%s %s\n", icon.Get(icon.Link), style.Faint(agent.DisplayIcon))
		}
	},
}

func init() {
	rootCmd.AddCommand(mapsCmd)

	mapsCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	mapsCmd.SetOut(os.Stdout)
}

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List maps",
	Run: func(cmd *cobra.Command, args []string) {
		maps := fetchMaps(cmd.Context(), newCatalogClient())

		if lo.Must(cmd.Flags().GetBool("json")) {
			printJSON(cmd, maps)
			return
		}

		for i, m := range maps {
			line := fmt.Sprintf("%s %s", icon.Get(icon.Map), style.Bold(m.DisplayName))
			if i == 0 {
				line += " " + style.Faint("(default)")
			}
			cmd.Println(line)
		}
	},
}

func newCatalogClient() *valorant.Client {
	return valorant.NewClient()
}

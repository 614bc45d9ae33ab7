package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/google/uuid"
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

func init() {
	rootCmd.AddCommand(favCmd)
}

var favCmd = &cobra.Command{
	Use:     "fav",
	Aliases: []string{"favorites"},
	Short:   "Manage favorite agents",
}

func init() {
	favCmd.AddCommand(favToggleCmd)
	favToggleCmd.SetOut(os.Stdout)
}

var favToggleCmd = &cobra.Command{
	Use:               "toggle <name|uuid>",
	Short:             "Add or remove an agent from favorites",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionFor(query.Agent),
	Run: func(cmd *cobra.Command, args []string) {
		store := favorites.Default()
		defer store.Flush()

		// a uuid is toggled as is, so favorites work without the catalog
		id, name := args[0], args[0]
		if _, err := uuid.Parse(id); err != nil {
			agent := resolveAgent(cmd.Context(), newCatalogClient(), args[0])
			id, name = agent.UUID, agent.DisplayName
		}

		if store.Toggle(id) {
			cmd.Printf("%s %s added to favorites\n", style.Fg(color.Valorant)(icon.Get(icon.Favorite)), style.Bold(name))
		} else {
			cmd.Printf("%s %s removed from favorites\n", icon.Get(icon.Success), style.Bold(name))
		}
	},
}

func init() {
	favCmd.AddCommand(favListCmd)
	favListCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	favListCmd.SetOut(os.Stdout)
}

var favListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite agents",
	Run: func(cmd *cobra.Command, args []string) {
		store := favorites.Default()
		if store.Len() == 0 {
			if lo.Must(cmd.Flags().GetBool("json")) {
				printJSON(cmd, []agentOutput{})
				return
			}
			cmd.Println(style.Faint("No favorites yet. Add one with " + style.Fg(color.Yellow)("valtips fav toggle <agent>")))
			return
		}

		agents := valorant.FavoriteAgents(fetchAgents(cmd.Context(), newCatalogClient()), store.IsFavorite)

		if lo.Must(cmd.Flags().GetBool("json")) {
			printJSON(cmd, toOutput(agents, store))
			return
		}

		printAgents(cmd, agents, store)

		// favorites no longer in the catalog
		known := lo.Map(agents, func(a *valorant.Agent, _ int) string { return a.UUID })
		if unknown, _ := lo.Difference(store.IDs(), known); len(unknown) > 0 {
			cmd.Println(style.Faint(fmt.Sprintf("\n%s not in the catalog: %v", util.Quantify(len(unknown), "favorite", "favorites"), unknown)))
		}
	},
}

func init() {
	favCmd.AddCommand(favClearCmd)
	favClearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var favClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every favorite",
	Run: func(cmd *cobra.Command, args []string) {
		store := favorites.Default()
		defer store.Flush()

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirmed bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("Remove %s?", util.Quantify(store.Len(), "favorite", "favorites")),
				Default: false,
			}, &confirmed))

			if !confirmed {
				return
			}
		}

		store.Clear()
		fmt.Printf("%s Favorites cleared\n", icon.Get(icon.Success))
	},
}

package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/valtips-cli/valtips/icon"
	"github.com/valtips-cli/valtips/util"
	"github.com/valtips-cli/valtips/where"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort string
	location func() string
}

var clearTargets = []clearTarget{
	{"catalog cache", "catalog", "c", where.Catalog},
	{"queries history", "queries", "q", where.Queries},
	{"cache directory", "cache", "a", where.Cache},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, t := range clearTargets {
		clearCmd.Flags().BoolP(t.argLong, t.argShort, false, "clear "+t.name)
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached data",
	Long:  "Clear cached data. Favorites are kept, see `valtips fav clear`.",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, t := range selected {
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), t.name))
			err := util.Delete(t.location())
			erase()
			if err != nil && !isNotExist(err) {
				handleErr(err)
			}
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(t.name))
		}
	},
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

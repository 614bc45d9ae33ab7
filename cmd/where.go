package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/valtips-cli/valtips/color"
	"github.com/valtips-cli/valtips/style"
	"github.com/valtips-cli/valtips/where"
)

type whereTarget struct {
	name    string
	where   func() string
	argLong string
}

var wherePaths = []whereTarget{
	{"Config", where.Config, "config"},
	{"Favorites", where.Favorites, "favorites"},
	{"Cache", where.Cache, "cache"},
	{"Logs", where.Logs, "logs"},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range wherePaths {
		whereCmd.Flags().Bool(t.argLong, false, t.name+" path")
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where files are stored",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(t.argLong)) {
				cmd.Println(t.where())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		for i, t := range wherePaths {
			cmd.Printf("%s %s\n", header(t.name+"?"), style.Fg(color.Yellow)("--"+t.argLong))
			cmd.Println(t.where())

			if i < len(wherePaths)-1 {
				cmd.Println()
			}
		}
	},
}

// Package cmd is the valtips command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/valtips-cli/valtips/color"
	"github.com/valtips-cli/valtips/constant"
	"github.com/valtips-cli/valtips/favorites"
	"github.com/valtips-cli/valtips/icon"
	"github.com/valtips-cli/valtips/key"
	"github.com/valtips-cli/valtips/log"
	"github.com/valtips-cli/valtips/query"
	"github.com/valtips-cli/valtips/style"
	"github.com/valtips-cli/valtips/tui"
	"github.com/valtips-cli/valtips/valorant"
	"github.com/valtips-cli/valtips/version"
	"github.com/valtips-cli/valtips/youtube"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().BoolP("favorites", "f", false, "Start with only favorite agents shown")
	lo.Must0(viper.BindPFlag(key.FavoritesShowOnly, rootCmd.Flags().Lookup("favorites")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.Context())
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Browse agents and find tip videos for every map",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Valorant).Render("    - Agent tips and lineups for every map, from your terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(tui.Run(&tui.Options{
			FavoritesOnly: viper.GetBool(key.FavoritesShowOnly),
			Catalog:       valorant.NewClient(),
			Favorites:     favorites.Default(),
			Searcher:      youtube.NewClient(),
			History:       query.Default(),
		}))
		favorites.Default().Flush()
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiRed + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

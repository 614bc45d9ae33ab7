package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/valtips-cli/valtips/auth"
	"github.com/valtips-cli/valtips/color"
	"github.com/valtips-cli/valtips/icon"
	"github.com/valtips-cli/valtips/key"
	"github.com/valtips-cli/valtips/style"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the YouTube Data API key",
	Long: `Manage the YouTube Data API key used for video search.

The key is read from the ` + key.YouTubeAPIKey + ` config value (or its environment
variable) first, then from the system keyring.`,
}

func init() {
	authCmd.AddCommand(authSetCmd)
}

var authSetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Save the API key to the system keyring",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var apiKey string
		if len(args) == 1 {
			apiKey = args[0]
		} else {
			handleErr(survey.AskOne(&survey.Password{
				Message: "YouTube Data API key:",
			}, &apiKey, survey.WithValidator(survey.Required)))
		}

		apiKey = strings.TrimSpace(apiKey)
		if apiKey == "" {
			handleErr(errors.New("api key is empty"))
		}

		handleErr(auth.SetAPIKey(apiKey))
		fmt.Printf("%s API key saved to the keyring\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authUnsetCmd)
}

var authUnsetCmd = &cobra.Command{
	Use:   "unset",
	Short: "Remove the API key from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteAPIKey())
		fmt.Printf("%s API key removed from the keyring\n", icon.Get(icon.Success))
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
	authStatusCmd.SetOut(os.Stdout)
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the API key comes from",
	Run: func(cmd *cobra.Command, args []string) {
		apiKey, source := auth.APIKey()
		if source == auth.SourceNone {
			cmd.Printf("%s No API key. Video search returns no results until one is set with %s\n",
				icon.Get(icon.Fail), style.Fg(color.Yellow)("valtips auth set"))
			return
		}

		cmd.Printf("%s API key %s from %s\n", icon.Get(icon.Key), style.Faint(mask(apiKey)), style.Bold(string(source)))
	},
}

// mask keeps the last four characters.
func mask(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/valtips-cli/valtips/color"
	"github.com/valtips-cli/valtips/icon"
	"github.com/valtips-cli/valtips/open"
	"github.com/valtips-cli/valtips/query"
	"github.com/valtips-cli/valtips/style"
	"github.com/valtips-cli/valtips/util"
	"github.com/valtips-cli/valtips/youtube"
)

// videosOutput is what `videos --json` prints.
type videosOutput struct {
	Agent  string          `json:"agent" jsonschema:"description=Agent the videos were searched for."`
	Map    string          `json:"map" jsonschema:"description=Map the videos were searched for."`
	Videos []youtube.Video `json:"videos"`
	// NextPageToken continues the search with --page-token.
	NextPageToken string `json:"nextPageToken,omitempty" jsonschema:"description=Pass to --page-token to fetch the following page."`
}

func init() {
	rootCmd.AddCommand(videosCmd)

	videosCmd.Flags().StringP("agent", "a", "", "Agent name or uuid")
	videosCmd.Flags().StringP("map", "m", "", "Map name or uuid (defaults to the first map)")
	videosCmd.Flags().StringP("page-token", "t", "", "Continue from this page token")
	videosCmd.Flags().IntP("pages", "p", 1, "Number of pages to fetch")
	videosCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	videosCmd.Flags().IntP("open", "o", 0, "Open the n-th video (starting from 1)")

	lo.Must0(videosCmd.MarkFlagRequired("agent"))
	lo.Must0(videosCmd.RegisterFlagCompletionFunc("agent", completionFor(query.Agent)))
	lo.Must0(videosCmd.RegisterFlagCompletionFunc("map", completionFor(query.Map)))
	videosCmd.SetOut(os.Stdout)
}

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "Search tip videos for an agent on a map",
	Example: "  valtips videos --agent jett --map ascent\n" +
		"  valtips videos -a sage --pages 3 --json",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ctx     = cmd.Context()
			catalog = newCatalogClient()
			agent   = resolveAgent(ctx, catalog, lo.Must(cmd.Flags().GetString("agent")))
			m       = resolveMap(ctx, catalog, lo.Must(cmd.Flags().GetString("map")))
			pages   = lo.Must(cmd.Flags().GetInt("pages"))
			token   = mo.EmptyableToOption(lo.Must(cmd.Flags().GetString("page-token")))
			client  = youtube.NewClient()
			videos  = make([]youtube.Video, 0)
		)

		for i := 0; i < max(pages, 1); i++ {
			page := fetch("videos", func() (*youtube.Page, error) {
				return client.Search(ctx, youtube.Query{
					Entity:    agent.DisplayName,
					Context:   m.DisplayName,
					PageToken: token,
				})
			})

			videos = append(videos, page.Videos...)
			token = page.NextPageToken
			if token.IsAbsent() {
				break
			}
		}

		if n := lo.Must(cmd.Flags().GetInt("open")); n != 0 {
			if n < 1 || n > len(videos) {
				handleErr(fmt.Errorf("--open %d is out of range, got %s", n, util.Quantify(len(videos), "video", "videos")))
			}
			handleErr(open.Start(videos[n-1].URL()))
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			printJSON(cmd, videosOutput{
				Agent:         agent.DisplayName,
				Map:           m.DisplayName,
				Videos:        videos,
				NextPageToken: token.OrEmpty(),
			})
			return
		}

		cmd.Printf("%s %s\n\n", style.Title(agent.DisplayName+" · "+m.DisplayName), style.Faint(util.Quantify(len(videos), "video", "videos")))
		if len(videos) == 0 {
			cmd.Println(style.Faint("No videos found"))
			return
		}

		width := 80
		if w, _, err := util.TerminalSize(); err == nil && w > 0 {
			width = w
		}

		for i, v := range videos {
			cmd.Printf("%s %s\n   %s\n",
				style.Fg(color.Valorant)(fmt.Sprintf("%2d", i+1)),
				util.Truncate(v.Title, width-4),
				style.Faint(icon.Get(icon.Video)+" "+v.URL()),
			)
		}

		if next, ok := token.Get(); ok {
			cmd.Printf("\n%s %s\n", style.Faint("More:"), style.Fg(color.Yellow)("--page-token "+next))
		}
	},
}

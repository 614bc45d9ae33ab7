package cmd

import (
	"os"
	"path/filepath"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/valtips-cli/valtips/valorant"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("agents", "a", false, "Schema of `agents --json` and `fav list --json`")
	schemaCmd.Flags().BoolP("maps", "m", false, "Schema of `maps --json`")
	schemaCmd.Flags().BoolP("videos", "V", false, "Schema of `videos --json` (default)")
	schemaCmd.MarkFlagsMutuallyExclusive("agents", "maps", "videos")
	schemaCmd.SetOut(os.Stdout)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of --json outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			if t.PkgPath() == "" {
				return t.Name()
			}
			return filepath.Base(t.PkgPath()) + "." + t.Name()
		}

		var schema *jsonschema.Schema
		switch {
		case lo.Must(cmd.Flags().GetBool("agents")):
			schema = reflector.Reflect([]agentOutput{})
		case lo.Must(cmd.Flags().GetBool("maps")):
			schema = reflector.Reflect([]*valorant.Map{})
		default:
			schema = reflector.Reflect(&videosOutput{})
		}

		printJSON(cmd, schema)
	},
}

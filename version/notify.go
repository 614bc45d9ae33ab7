package version

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"github.com/valtips-cli/valtips/color"
	"github.com/valtips-cli/valtips/constant"
	"github.com/valtips-cli/valtips/icon"
	"github.com/valtips-cli/valtips/key"
	"github.com/valtips-cli/valtips/style"
	"github.com/valtips-cli/valtips/util"
)

// Notify prints a banner when a newer release exists. Failures are silent.
func Notify(ctx context.Context) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(icon.Get(icon.Progress) + " Checking for a new version...")
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if cmp, err := Compare(latest, constant.Version); err != nil || cmp <= 0 {
		return
	}

	fmt.Printf("\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/valtips-cli/valtips/releases/tag/v"+latest),
	)
}

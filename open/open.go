// Package open hands a URL to the system handler or a chosen application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"github.com/valtips-cli/valtips/constant"
	"github.com/valtips-cli/valtips/key"
	"github.com/valtips-cli/valtips/log"
)

// Start opens url without waiting, using open.with when it is set.
func Start(url string) error {
	cmd, err := Command(runtime.GOOS, url, viper.GetString(key.OpenWith))
	if err != nil {
		return err
	}

	log.Infof("opening %s with %s", url, cmd.Path)
	return cmd.Start()
}

// Command builds the command that opens url on goos. An empty app means the default handler.
func Command(goos, url, app string) (*exec.Cmd, error) {
	if app == "" {
		switch goos {
		case constant.Windows:
			rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
			return exec.Command(rundll, "url.dll,FileProtocolHandler", url), nil
		case constant.Darwin:
			return exec.Command("open", url), nil
		case constant.Linux:
			return exec.Command("xdg-open", url), nil
		case constant.Android:
			return exec.Command("termux-open-url", url), nil
		}
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}

	switch goos {
	case constant.Windows:
		// start treats & as a command separator
		return exec.Command("cmd", "/C", "start", "", app, strings.ReplaceAll(url, "&", "^&")), nil
	case constant.Darwin:
		return exec.Command("open", "-a", app, url), nil
	case constant.Linux, constant.Android:
		return exec.Command(app, url), nil
	}
	return nil, fmt.Errorf("unsupported OS: %s", goos)
}

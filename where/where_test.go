package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/valtips-cli/valtips/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestDirectories(t *testing.T) {
	Convey("Directory resolvers create what they return", t, func() {
		for name, fn := range map[string]func() string{
			"config":  Config,
			"cache":   Cache,
			"logs":    Logs,
			"catalog": Catalog,
		} {
			Convey(name, func() {
				path := fn()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}
	})
}

func TestConfigOverride(t *testing.T) {
	Convey("Given VALTIPS_CONFIG_PATH", t, func() {
		custom := filepath.Join(os.TempDir(), "valtips-where-test")
		t.Setenv(EnvConfigPath, custom)

		Convey("Config and its children live under it", func() {
			So(Config(), ShouldEqual, custom)
			So(Favorites(), ShouldEqual, filepath.Join(custom, "favorites.json"))
			So(filepath.Dir(Logs()), ShouldEqual, custom)
		})
	})
}

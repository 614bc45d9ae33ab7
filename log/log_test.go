package log

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/valtips-cli/valtips/filesystem"
	"github.com/valtips-cli/valtips/key"
	"github.com/valtips-cli/valtips/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup is a no-op", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)
			Info("dropped")
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		Convey("Setup creates today's file and messages land in it", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)

			Infof("favorite %s toggled", "abc")

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "favorite abc toggled")
		})
	})
}

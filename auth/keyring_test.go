package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/valtips-cli/valtips/key"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

func TestAPIKey(t *testing.T) {
	Convey("Resolving the API key", t, func() {
		viper.Set(key.YouTubeAPIKey, "")
		_ = DeleteAPIKey()

		Convey("Nothing configured", func() {
			k, src := APIKey()
			So(k, ShouldBeEmpty)
			So(src, ShouldEqual, SourceNone)
		})

		Convey("Keyring only", func() {
			So(SetAPIKey("from-keyring"), ShouldBeNil)
			k, src := APIKey()
			So(k, ShouldEqual, "from-keyring")
			So(src, ShouldEqual, SourceKeyring)
		})

		Convey("Config wins over the keyring", func() {
			So(SetAPIKey("from-keyring"), ShouldBeNil)
			viper.Set(key.YouTubeAPIKey, "from-config")
			k, src := APIKey()
			So(k, ShouldEqual, "from-config")
			So(src, ShouldEqual, SourceConfig)
		})

		Convey("Empty keys are rejected and deleting twice is fine", func() {
			So(SetAPIKey(""), ShouldNotBeNil)
			So(DeleteAPIKey(), ShouldBeNil)
			So(DeleteAPIKey(), ShouldBeNil)
		})

		Reset(func() { viper.Set(key.YouTubeAPIKey, "") })
	})
}

package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/valtips-cli/valtips/key"
)

func TestParseValue(t *testing.T) {
	Convey("Values follow the type of the default", t, func() {
		v, err := parseValue(key.YouTubePageSize, "20")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 20)

		v, err = parseValue(key.FavoritesShowOnly, "true")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, true)

		v, err = parseValue(key.YouTubeTopicSuffix, "valorant lineups")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "valorant lineups")

		_, err = parseValue(key.YouTubePageSize, "many")
		So(err, ShouldNotBeNil)
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("Unknown keys suggest the closest one", t, func() {
		So(errUnknownKey("youtube.page_sise").Error(), ShouldContainSubstring, key.YouTubePageSize)
	})
}

func TestMask(t *testing.T) {
	Convey("mask keeps the last four characters", t, func() {
		So(mask("AIzaSyABCD1234"), ShouldEqual, "**********1234")
		So(mask("abc"), ShouldEqual, "***")
	})
}

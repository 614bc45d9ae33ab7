package style

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderers(t *testing.T) {
	Convey("Renderers keep the text", t, func() {
		So(Bold("Jett"), ShouldContainSubstring, "Jett")
		So(Title("Agents"), ShouldContainSubstring, "Agents")
		So(Role("Duelist"), ShouldContainSubstring, "Duelist")
	})

	Convey("Unknown roles are returned unchanged", t, func() {
		So(Role("Healer"), ShouldEqual, "Healer")
	})
}

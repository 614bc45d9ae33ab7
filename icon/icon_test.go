package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/valtips-cli/valtips/key"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		for _, variant := range AvailableVariants() {
			Convey("variant="+variant, func() {
				viper.Set(key.IconsVariant, variant)
				for i := range icons {
					So(Get(i), ShouldNotBeEmpty)
				}
			})
		}

		Convey("An unknown variant renders nothing", func() {
			viper.Set(key.IconsVariant, "kaomoji")
			So(Get(Success), ShouldBeEmpty)
		})

		Convey("An unknown icon renders nothing", func() {
			viper.Set(key.IconsVariant, plain)
			So(Get(Icon(999)), ShouldBeEmpty)
		})

		Convey("Star follows the favorite state", func() {
			viper.Set(key.IconsVariant, plain)
			So(Star(true), ShouldEqual, "*")
			So(Star(false), ShouldEqual, " ")
		})
	})
}

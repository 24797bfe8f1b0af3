package icon

import (
	"testing"

	"github.com/coll-cli/coll/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	for _, target := range []Icon{Success, Fail, Progress, Mark} {
		Convey("Given a registered icon", t, func() {
			Convey("It renders for each variant", func() {
				for _, variant := range AvailableVariants() {
					viper.Set(key.IconsVariant, variant)
					So(Get(target), ShouldNotBeEmpty)
				}
			})

			Convey("It returns empty for an unknown variant", func() {
				viper.Set(key.IconsVariant, "")
				So(Get(target), ShouldBeEmpty)
			})
		})
	}
}

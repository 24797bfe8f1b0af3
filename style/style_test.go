package style

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBracket(t *testing.T) {
	Convey("Bracket keeps the rendered content", t, func() {
		So(Bracket("[1, 2]"), ShouldContainSubstring, "1, 2")
		So(Bracket(""), ShouldEqual, "")
	})
}

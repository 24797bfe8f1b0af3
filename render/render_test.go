package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/coll-cli/coll/collection"
	. "github.com/smartystreets/goconvey/convey"
)

func TestOutput(t *testing.T) {
	Convey("Given a collection", t, func() {
		c := collection.New("alpha", "beta", "gamma")
		out := NewOutput("greek", c)

		Convey("The output captures its state", func() {
			So(out.Name, ShouldEqual, "greek")
			So(out.Count, ShouldEqual, 3)
			So(out.Capacity, ShouldEqual, 16)
			So(out.Items, ShouldResemble, []string{"alpha", "beta", "gamma"})
			So(out.Rendered, ShouldEqual, "[alpha, beta, gamma]")
		})

		Convey("JSON writes a decodable object", func() {
			var buf bytes.Buffer
			So(JSON(&buf, out), ShouldBeNil)

			var decoded Output
			So(json.Unmarshal(buf.Bytes(), &decoded), ShouldBeNil)
			So(decoded, ShouldResemble, *out)
		})

		Convey("Text writes a header and the rendering", func() {
			var buf bytes.Buffer
			So(Text(&buf, out, Options{ShowCapacity: true}), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "3 elements")
			So(buf.String(), ShouldContainSubstring, "capacity 16")
			So(buf.String(), ShouldContainSubstring, "alpha, beta, gamma")
		})

		Convey("Text wraps to the requested width", func() {
			var buf bytes.Buffer
			So(Text(&buf, out, Options{Width: 8}), ShouldBeNil)
			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(len(lines), ShouldBeGreaterThan, 2)
			So(buf.String(), ShouldNotContainSubstring, "capacity")
		})

		Convey("Result summarizes a mutation", func() {
			var buf bytes.Buffer
			So(Result(&buf, "+", "added to", out), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "added to")
			So(buf.String(), ShouldContainSubstring, "[alpha, beta, gamma]")
		})
	})

	Convey("An empty collection renders as []", t, func() {
		var buf bytes.Buffer
		So(Text(&buf, NewOutput("empty", collection.New[string]()), Options{}), ShouldBeNil)
		So(buf.String(), ShouldContainSubstring, "0 elements")
		So(buf.String(), ShouldContainSubstring, "[]")
	})
}

package script

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/coll-cli/coll/collection"
	. "github.com/smartystreets/goconvey/convey"
)

func run(src string, c *collection.Collection[string], options *Options) (*Report, string, error) {
	var out bytes.Buffer
	options.Out = &out
	report, err := Run(strings.NewReader(src), c, options)
	return report, out.String(), err
}

func TestParse(t *testing.T) {
	Convey("Given script lines", t, func() {
		Convey("Blank lines and comments are skipped", func() {
			for _, raw := range []string{"", "   ", "# a comment"} {
				line, err := Parse(1, raw)
				So(err, ShouldBeNil)
				So(line.IsAbsent(), ShouldBeTrue)
			}
		})

		Convey("Operations are split into arguments", func() {
			line, err := Parse(3, "  INSERT 2 100 ")
			So(err, ShouldBeNil)
			So(line.MustGet(), ShouldResemble, Line{Number: 3, Op: "insert", Args: []string{"2", "100"}})
		})

		Convey("Unknown operations suggest the closest one", func() {
			_, err := Parse(7, "exchnage 0 1")
			So(errors.Is(err, ErrUnknownOp), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "line 7")
			So(err.Error(), ShouldContainSubstring, "did you mean exchange?")

			_, err = Parse(8, "frobnicate")
			So(errors.Is(err, ErrUnknownOp), ShouldBeTrue)
			So(err.Error(), ShouldNotContainSubstring, "did you mean")
		})

		Convey("Argument counts are checked", func() {
			_, err := Parse(1, "insert 2")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "usage: insert <index> <value>")

			_, err = Parse(1, "remove 1 2")
			So(err, ShouldNotBeNil)

			_, err = Parse(1, "add")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Ops lists every usage", t, func() {
		So(Ops(), ShouldHaveLength, len(ops))
		So(Ops(), ShouldContain, "exchange <i> <j>")
	})
}

func TestRun(t *testing.T) {
	Convey("Given a script building a collection", t, func() {
		c := collection.New[string]()
		src := `
# build
add 1 2 3 4 5
insert 2 100
exchange 0 5
remove 1
print
count
capacity
get 0
`
		report, out, err := run(src, c, &Options{})

		So(err, ShouldBeNil)
		So(report.Executed, ShouldEqual, 8)
		So(report.Failed, ShouldEqual, 0)
		So(c.String(), ShouldEqual, "[5, 100, 3, 4, 1]")
		So(out, ShouldEqual, "[5, 100, 3, 4, 1]\n5\n16\n5\n")
	})

	Convey("Given a script with failing lines", t, func() {
		c := collection.New("a", "b", "c")
		src := "remove -2\nadd d\nget 100\nexchange 0 x\n"

		Convey("Failures are reported and the rest still runs", func() {
			report, _, err := run(src, c, &Options{})
			So(err, ShouldBeNil)
			So(report.Executed, ShouldEqual, 4)
			So(report.Failed, ShouldEqual, 3)
			So(errors.Is(report.Errors[0], collection.ErrOutOfRange), ShouldBeTrue)
			So(report.Errors[0].Error(), ShouldStartWith, "line 1: remove:")
			So(c.String(), ShouldEqual, "[a, b, c, d]")
		})

		Convey("StopOnError aborts on the first failure", func() {
			report, _, err := run(src, c, &Options{StopOnError: true})
			So(errors.Is(err, collection.ErrOutOfRange), ShouldBeTrue)
			So(report.Executed, ShouldEqual, 1)
			So(c.String(), ShouldEqual, "[a, b, c]")
		})
	})

	Convey("Given reserve requests", t, func() {
		c := collection.New("a")

		Convey("A valid request grows the capacity", func() {
			report, out, err := run("reserve 40\ncapacity\n", c, &Options{})
			So(err, ShouldBeNil)
			So(report.Failed, ShouldEqual, 0)
			So(out, ShouldEqual, "64\n")
		})

		Convey("Requests beyond the limit fail without touching the collection", func() {
			src := fmt.Sprintf("reserve %d\nreserve %d\nreserve -1\nundo\n", collection.MaxCapacity+1, math.MaxInt)
			report, _, err := run(src, c, &Options{})
			So(err, ShouldBeNil)
			So(report.Failed, ShouldEqual, 4)
			for _, failure := range report.Errors[:3] {
				So(errors.Is(failure, collection.ErrInvalidCapacity), ShouldBeTrue)
			}
			So(errors.Is(report.Errors[3], ErrNothingToUndo), ShouldBeTrue)
			So(c.Capacity(), ShouldEqual, collection.DefaultCapacity)
			So(c.String(), ShouldEqual, "[a]")
		})
	})

	Convey("Given options without an output writer", t, func() {
		options := &Options{}
		_, err := Run(strings.NewReader("add x\n"), collection.New[string](), options)
		So(err, ShouldBeNil)

		Convey("The caller's options are left untouched", func() {
			So(options.Out, ShouldBeNil)
		})
	})

	Convey("Given echo is enabled", t, func() {
		_, out, err := run("add x\nprint\n", collection.New[string](), &Options{Echo: true})
		So(err, ShouldBeNil)
		So(out, ShouldEqual, "> add x\n> print\n[x]\n")
	})
}

func TestUndo(t *testing.T) {
	Convey("Given a sequence of mutations", t, func() {
		c := collection.New("a", "b")
		src := "add c\nexchange 0 2\nremove 5\nundo\nprint\nundo\nprint\nundo\n"

		report, out, err := run(src, c, &Options{})
		So(err, ShouldBeNil)

		Convey("Undo reverts successful mutations in reverse order", func() {
			So(out, ShouldEqual, "[a, b, c]\n[a, b]\n")
			So(c.String(), ShouldEqual, "[a, b]")
		})

		Convey("Undo on an empty history fails", func() {
			So(report.Failed, ShouldEqual, 2)
			So(errors.Is(report.Errors[1], ErrNothingToUndo), ShouldBeTrue)
		})
	})

	Convey("Undo after clear restores the elements", t, func() {
		c := collection.New[string]()
		_, out, err := run("add 1 2 3\nclear\nundo\nprint\n", c, &Options{})
		So(err, ShouldBeNil)
		So(out, ShouldEqual, "[1, 2, 3]\n")
	})
}

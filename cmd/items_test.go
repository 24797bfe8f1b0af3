package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/coll-cli/coll/collection"
	"github.com/coll-cli/coll/config"
	"github.com/coll-cli/coll/filesystem"
	"github.com/coll-cli/coll/key"
	"github.com/coll-cli/coll/store"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestMutate(t *testing.T) {
	Convey("Given an empty store", t, func() {
		var out bytes.Buffer

		Convey("Adding then removing persists each step", func() {
			So(mutateNamed(&out, "chores", "added to", func(c *collection.Collection[string]) error {
				c.AddRange("dishes", "laundry", "trash")
				return nil
			}), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "added to")
			So(out.String(), ShouldContainSubstring, "[dishes, laundry, trash]")

			So(mutateNamed(&out, "chores", "removed from", func(c *collection.Collection[string]) error {
				return c.RemoveAt(1)
			}), ShouldBeNil)

			loaded, err := store.Load("chores")
			So(err, ShouldBeNil)
			So(loaded.String(), ShouldEqual, "[dishes, trash]")
			So(loaded.Capacity(), ShouldEqual, collection.DefaultCapacity)
		})

		Convey("A failing mutation leaves the stored collection unchanged", func() {
			So(store.Save("fixed", collection.New("a")), ShouldBeNil)

			err := mutateNamed(&out, "fixed", "removed from", func(c *collection.Collection[string]) error {
				if err := c.RemoveAt(0); err != nil {
					return err
				}
				return c.RemoveAt(5)
			})
			So(errors.Is(err, collection.ErrOutOfRange), ShouldBeTrue)

			loaded, err := store.Load("fixed")
			So(err, ShouldBeNil)
			So(loaded.String(), ShouldEqual, "[a]")
		})
	})
}

func TestItemCommands(t *testing.T) {
	Convey("Given the add and remove commands", t, func() {
		rootCmd.SetArgs([]string{"add", "--name", "letters", "x", "y", "z"})
		So(rootCmd.Execute(), ShouldBeNil)

		rootCmd.SetArgs([]string{"remove", "--name", "letters", "0"})
		So(rootCmd.Execute(), ShouldBeNil)

		Convey("The store holds the result", func() {
			loaded, err := store.Load("letters")
			So(err, ShouldBeNil)
			So(loaded.String(), ShouldEqual, "[y, z]")
		})
	})
}

func TestShowCapacityFlag(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		So(config.Setup(), ShouldBeNil)
		So(viper.GetBool(key.CollectionShowCapacity), ShouldBeFalse)

		Convey("Passing --capacity turns it on", func() {
			So(showCmd.Flags().Set("capacity", "true"), ShouldBeNil)
			So(viper.GetBool(key.CollectionShowCapacity), ShouldBeTrue)
			So(showCmd.Flags().Set("capacity", "false"), ShouldBeNil)
		})
	})
}

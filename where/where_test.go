package where

import (
	"path/filepath"
	"testing"

	"github.com/coll-cli/coll/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override", func() {
			t.Setenv(EnvConfigPath, "/custom/coll")
			So(Config(), ShouldEqual, "/custom/coll")
			So(lo.Must(filesystem.API().IsDir("/custom/coll")), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Store() lives in the data directory", func() {
			So(filepath.Dir(Store()), ShouldEqual, Data())
			So(filepath.Base(Store()), ShouldEqual, StoreFile)
			So(lo.Must(filesystem.API().IsDir(Data())), ShouldBeTrue)
		})

		Convey("Store() honours the override", func() {
			t.Setenv(EnvStorePath, "/projects/shopping/lists.json")
			So(Store(), ShouldEqual, "/projects/shopping/lists.json")
			So(lo.Must(filesystem.API().IsDir("/projects/shopping")), ShouldBeTrue)
		})
	})
}

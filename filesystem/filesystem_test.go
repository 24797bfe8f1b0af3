package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to a fresh MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
			So(API().WriteFile("/tmp/a.json", []byte("[]"), 0644), ShouldBeNil)

			SetMemMapFs()
			exists, err := API().Exists("/tmp/a.json")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("GacheFs writes through the active backend", t, func() {
		SetMemMapFs()
		var fs GacheFs

		So(fs.MkdirAll("/data/coll", os.ModePerm), ShouldBeNil)
		f, err := fs.OpenFile("/data/coll/store.json", os.O_CREATE|os.O_WRONLY, 0644)
		So(err, ShouldBeNil)
		_, err = f.Write([]byte("{}"))
		So(err, ShouldBeNil)
		So(f.Close(), ShouldBeNil)

		data, err := API().ReadFile("/data/coll/store.json")
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, "{}")
	})
}

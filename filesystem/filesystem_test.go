package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestLstat(t *testing.T) {
	Convey("Lstat on a backend without symlink support", t, func() {
		SetMemMapFs()

		Convey("Should fall back to Stat", func() {
			So(API().WriteFile("/plain.txt", []byte("data"), 0644), ShouldBeNil)

			info, err := Lstat("/plain.txt")
			So(err, ShouldBeNil)
			So(info.Name(), ShouldEqual, "plain.txt")
		})

		Convey("Readlink should report no support", func() {
			_, ok := Readlink("/plain.txt")
			So(ok, ShouldBeFalse)
		})
	})
}

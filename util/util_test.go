package util

import (
	"testing"

	"github.com/filesan-cli/filesan/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/file.txt"), ShouldEqual, "file")
		So(FileStem("file"), ShouldEqual, "file")
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()

		Convey("Should remove a file", func() {
			So(fs.WriteFile("/doomed.txt", []byte("x"), 0644), ShouldBeNil)
			So(Delete("/doomed.txt"), ShouldBeNil)
			So(lo.Must(fs.Exists("/doomed.txt")), ShouldBeFalse)
		})

		Convey("Should remove a directory recursively", func() {
			So(fs.WriteFile("/doomed/nested/file.txt", []byte("x"), 0644), ShouldBeNil)
			So(Delete("/doomed"), ShouldBeNil)
			So(lo.Must(fs.Exists("/doomed")), ShouldBeFalse)
		})
	})
}

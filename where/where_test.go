package where

import (
	"path/filepath"
	"testing"

	"github.com/filesan-cli/filesan/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Journal()", func() {
			So(Journal("/data"), ShouldEqual, filepath.Join("/data", ".filesan_history.json"))
		})

		Convey("Lock()", func() {
			So(Lock("/data"), ShouldEqual, filepath.Join("/data", ".filesan.lock"))
		})
	})
}

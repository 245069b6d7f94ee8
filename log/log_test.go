package log

import (
	"testing"

	"github.com/filesan-cli/filesan/filesystem"
	"github.com/filesan-cli/filesan/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestRotate(t *testing.T) {
	Convey("Given a log file over the size limit", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		viper.Set(key.LogsMaxSize, 8)
		viper.Set(key.LogsBackupCount, 2)

		So(fs.WriteFile("/logs/filesan.log", []byte("0123456789"), 0666), ShouldBeNil)

		Convey("When rotating", func() {
			rotate("/logs/filesan.log")

			Convey("The file becomes the first backup", func() {
				So(lo.Must(fs.Exists("/logs/filesan.log.1")), ShouldBeTrue)
				So(lo.Must(fs.Exists("/logs/filesan.log")), ShouldBeFalse)
			})

			Convey("A second rotation shifts the backups", func() {
				So(fs.WriteFile("/logs/filesan.log", []byte("abcdefghij"), 0666), ShouldBeNil)
				rotate("/logs/filesan.log")

				So(string(lo.Must(fs.ReadFile("/logs/filesan.log.1"))), ShouldEqual, "abcdefghij")
				So(string(lo.Must(fs.ReadFile("/logs/filesan.log.2"))), ShouldEqual, "0123456789")
			})
		})

		Convey("A file under the limit is left alone", func() {
			So(fs.WriteFile("/logs/small.log", []byte("ok"), 0666), ShouldBeNil)
			rotate("/logs/small.log")
			So(lo.Must(fs.Exists("/logs/small.log")), ShouldBeTrue)
		})
	})
}

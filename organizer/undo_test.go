package organizer

import (
	"testing"

	"github.com/filesan-cli/filesan/collision"
	"github.com/filesan-cli/filesan/filesystem"
	"github.com/filesan-cli/filesan/journal"
	"github.com/filesan-cli/filesan/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestUndoNoHistory(t *testing.T) {
	Convey("Undo without a committed journal reports no history", t, func() {
		filesystem.SetMemMapFs()
		lo.Must0(filesystem.API().MkdirAll("/data", 0755))

		_, err := Undo("/data")
		So(err, ShouldWrap, journal.ErrNoHistory)
	})
}

func TestUndoStaleRecord(t *testing.T) {
	Convey("Given an organized run whose destination was later removed", t, func() {
		viper.Set(key.OrganizeDuplicateStrategy, string(collision.Rename))
		seed("/data", map[string]string{
			"a.pdf": "doc",
			"b.jpg": "img",
		})
		fs := filesystem.API()

		_, err := lo.Must(New("/data")).Organize(false, false)
		So(err, ShouldBeNil)

		// The user deletes one organized file before undoing.
		So(fs.Remove("/data/Images/b.jpg"), ShouldBeNil)

		Convey("Undo reports the stale record and still restores the rest", func() {
			stats, err := Undo("/data")
			So(err, ShouldBeNil)

			So(stats.Organized, ShouldEqual, 1)
			So(stats.Errors, ShouldEqual, 1)
			So(lo.Must(fs.Exists("/data/a.pdf")), ShouldBeTrue)

			Convey("The journal is deleted regardless", func() {
				_, err := journal.Load("/data")
				So(err, ShouldWrap, journal.ErrNoHistory)
			})
		})
	})
}

func TestUndoIgnoresNonMovedRecords(t *testing.T) {
	Convey("Given a journal mixing moved and skipped records", t, func() {
		viper.Set(key.OrganizeDuplicateStrategy, string(collision.Skip))
		defer viper.Set(key.OrganizeDuplicateStrategy, string(collision.Rename))

		seed("/data", map[string]string{
			"a.pdf": "new",
			"b.jpg": "img",
		})
		fs := filesystem.API()
		lo.Must0(fs.WriteFile("/data/Documents/a.pdf", []byte("occupant"), 0644))

		_, err := lo.Must(New("/data")).Organize(false, false)
		So(err, ShouldBeNil)

		Convey("Undo reverses only the moved record", func() {
			stats, err := Undo("/data")
			So(err, ShouldBeNil)

			So(stats.Organized, ShouldEqual, 1)
			So(stats.Skipped, ShouldEqual, 1)
			So(stats.Errors, ShouldEqual, 0)

			So(lo.Must(fs.Exists("/data/b.jpg")), ShouldBeTrue)
			So(string(lo.Must(fs.ReadFile("/data/Documents/a.pdf"))), ShouldEqual, "occupant")
		})
	})
}

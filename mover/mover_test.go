package mover

import (
	"testing"

	"github.com/filesan-cli/filesan/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func candidateAt(path string, content string) Candidate {
	fs := filesystem.API()
	lo.Must0(fs.WriteFile(path, []byte(content), 0644))
	info := lo.Must(fs.Stat(path))
	return Candidate{Path: path, Ext: "", Size: info.Size()}
}

func TestMove(t *testing.T) {
	Convey("Given a mover with an ignore policy", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		m := New([]string{"thumbs.db"}, []string{"node_modules"}, true)

		Convey("A plain file is moved and its category folder created", func() {
			c := candidateAt("/root/report.pdf", "content")

			rec := m.Move(c, "/root/Documents/report.pdf")

			So(rec.Outcome, ShouldEqual, Moved)
			So(rec.Source, ShouldEqual, "/root/report.pdf")
			So(rec.Destination, ShouldEqual, "/root/Documents/report.pdf")
			So(lo.Must(fs.Exists("/root/report.pdf")), ShouldBeFalse)
			So(string(lo.Must(fs.ReadFile("/root/Documents/report.pdf"))), ShouldEqual, "content")
		})

		Convey("An ignored file name is skipped, not moved", func() {
			c := candidateAt("/root/Thumbs.db", "junk")

			rec := m.Move(c, "/root/Other/Thumbs.db")

			So(rec.Outcome, ShouldEqual, Skipped)
			So(rec.Detail, ShouldEqual, DetailIgnored)
			So(lo.Must(fs.Exists("/root/Thumbs.db")), ShouldBeTrue)
		})

		Convey("A file inside an ignored folder is skipped", func() {
			c := candidateAt("/root/node_modules/pkg/index.js", "js")

			rec := m.Move(c, "/root/Code/index.js")

			So(rec.Outcome, ShouldEqual, Skipped)
			So(rec.Detail, ShouldEqual, DetailIgnored)
		})

		Convey("A symlink is skipped when symlink moves are disabled", func() {
			noLinks := New(nil, nil, false)
			c := Candidate{Path: "/root/link", Symlink: true}

			rec := noLinks.Move(c, "/root/Other/link")

			So(rec.Outcome, ShouldEqual, Skipped)
			So(rec.Detail, ShouldEqual, DetailSymlinkSkipped)
		})

		Convey("A missing source yields an errored record, never a panic", func() {
			c := Candidate{Path: "/root/ghost.txt", Size: 4}

			rec := m.Move(c, "/root/Documents/ghost.txt")

			So(rec.Outcome, ShouldEqual, Errored)
			So(rec.Detail, ShouldEqual, DetailMoveFailed)
		})
	})
}

func TestIgnored(t *testing.T) {
	Convey("Ignore matching", t, func() {
		m := New([]string{".ds_store"}, []string{".git"}, true)

		Convey("File names match case-insensitively", func() {
			So(m.ignored("/root/.DS_Store"), ShouldBeTrue)
		})

		Convey("Any ancestor folder name matches", func() {
			So(m.ignored("/root/.git/objects/ab/cdef"), ShouldBeTrue)
		})

		Convey("Unrelated paths do not match", func() {
			So(m.ignored("/root/notes.txt"), ShouldBeFalse)
		})
	})
}

package collision

import (
	"testing"
	"time"

	"github.com/filesan-cli/filesan/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestResolve(t *testing.T) {
	Convey("Given a destination path", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		Convey("A free destination is returned unchanged regardless of strategy", func() {
			for _, strategy := range Strategies() {
				res, err := Resolve("/dst/free.txt", strategy)
				So(err, ShouldBeNil)
				So(res.MustGet(), ShouldResemble, Resolution{Path: "/dst/free.txt"})
			}
		})

		Convey("With an occupied destination", func() {
			So(fs.WriteFile("/dst/taken.txt", []byte("occupant"), 0644), ShouldBeNil)

			Convey("skip yields no destination", func() {
				res, err := Resolve("/dst/taken.txt", Skip)
				So(err, ShouldBeNil)
				So(res.IsAbsent(), ShouldBeTrue)
			})

			Convey("overwrite keeps the original destination and flags the overwrite", func() {
				res, err := Resolve("/dst/taken.txt", Overwrite)
				So(err, ShouldBeNil)
				So(res.MustGet(), ShouldResemble, Resolution{Path: "/dst/taken.txt", Collided: true, Overwrite: true})
			})

			Convey("rename produces a timestamped path distinct from the occupant", func() {
				now = func() time.Time { return time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC) }
				defer func() { now = time.Now }()

				res, err := Resolve("/dst/taken.txt", Rename)
				So(err, ShouldBeNil)
				So(res.MustGet().Path, ShouldEqual, "/dst/taken_20240601_123045.txt")
				So(res.MustGet().Collided, ShouldBeTrue)
				So(lo.Must(fs.Exists(res.MustGet().Path)), ShouldBeFalse)
			})

			Convey("rename fails after a single retry when the stamped name also collides", func() {
				now = func() time.Time { return time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC) }
				defer func() { now = time.Now }()

				So(fs.WriteFile("/dst/taken_20240601_123045.txt", []byte("also taken"), 0644), ShouldBeNil)

				_, err := Resolve("/dst/taken.txt", Rename)
				So(err, ShouldWrap, ErrExhausted)
			})
		})

		Convey("An unknown strategy is rejected once the destination collides", func() {
			So(fs.WriteFile("/dst/taken.txt", []byte("occupant"), 0644), ShouldBeNil)

			_, err := Resolve("/dst/taken.txt", Strategy("merge"))
			So(err, ShouldWrap, ErrUnknownStrategy)
		})

		Convey("An unknown strategy passes through when the destination is free", func() {
			res, err := Resolve("/dst/free.txt", Strategy("merge"))
			So(err, ShouldBeNil)
			So(res.MustGet(), ShouldResemble, Resolution{Path: "/dst/free.txt"})
		})
	})
}

func TestValid(t *testing.T) {
	Convey("Strategy validity", t, func() {
		So(Rename.Valid(), ShouldBeTrue)
		So(Skip.Valid(), ShouldBeTrue)
		So(Overwrite.Valid(), ShouldBeTrue)
		So(Strategy("merge").Valid(), ShouldBeFalse)
	})
}

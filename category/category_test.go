package category

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("Given a loaded category table", t, func() {
		table, err := New(map[string][]string{
			"documents": {".pdf", ".txt"},
			"images":    {".jpg", ".PNG"},
		}, "Other")
		So(err, ShouldBeNil)

		Convey("Known extensions resolve to their category", func() {
			So(table.Resolve(".pdf"), ShouldEqual, "Documents")
			So(table.Resolve(".jpg"), ShouldEqual, "Images")
		})

		Convey("Lookup is case-insensitive", func() {
			So(table.Resolve(".PDF"), ShouldEqual, "Documents")
			So(table.Resolve(".png"), ShouldEqual, "Images")
		})

		Convey("Unknown extensions resolve to the fallback", func() {
			So(table.Resolve(".xyz"), ShouldEqual, "Other")
		})

		Convey("A missing extension resolves to the fallback", func() {
			So(table.Resolve(""), ShouldEqual, "Other")
		})

		Convey("Names includes the fallback", func() {
			So(table.Names(), ShouldResemble, []string{"Documents", "Images", "Other"})
		})
	})
}

func TestDuplicateRegistration(t *testing.T) {
	Convey("Given two categories claiming the same extension", t, func() {
		table, err := New(map[string][]string{
			"archives": {".zip"},
			"bundles":  {".zip"},
		}, "Other")

		Convey("Loading succeeds and the later registration wins", func() {
			So(err, ShouldBeNil)
			So(table.Resolve(".zip"), ShouldEqual, "Bundles")
		})
	})
}

func TestValidation(t *testing.T) {
	Convey("Malformed tables are rejected at load time", t, func() {
		Convey("Extension without a leading dot", func() {
			_, err := New(map[string][]string{"documents": {"pdf"}}, "Other")
			So(err, ShouldNotBeNil)
		})

		Convey("Empty extension", func() {
			_, err := New(map[string][]string{"documents": {""}}, "Other")
			So(err, ShouldNotBeNil)
		})

		Convey("Bare dot", func() {
			_, err := New(map[string][]string{"documents": {"."}}, "Other")
			So(err, ShouldNotBeNil)
		})

		Convey("Empty fallback name", func() {
			_, err := New(map[string][]string{"documents": {".pdf"}}, "")
			So(err, ShouldNotBeNil)
		})
	})
}

package config

import (
	"testing"

	"github.com/filesan-cli/filesan/filesystem"
	"github.com/filesan-cli/filesan/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				val := viper.Get(name)
				So(val, ShouldNotBeNil)
			}
		})

		Convey("Should carry the factory category table", func() {
			_ = Setup()
			categories := viper.GetStringMapStringSlice(key.OrganizeCategories)
			So(len(categories), ShouldBeGreaterThan, 0)
			So(viper.GetString(key.OrganizeDefaultCategory), ShouldEqual, "Other")
			So(viper.GetString(key.OrganizeDuplicateStrategy), ShouldEqual, "rename")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("organize.duplicate.strategy")
			So(result, ShouldEqual, "organize_duplicate_strategy")
		})
	})
}

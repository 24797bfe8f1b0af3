package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/coll-cli/coll/constant"
	"github.com/coll-cli/coll/filesystem"
	"github.com/coll-cli/coll/key"
	"github.com/coll-cli/coll/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should register every defined key", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.CollectionDefault), ShouldEqual, "default")
			So(viper.GetInt(key.BenchCount), ShouldEqual, 1000000)
			So(viper.GetBool(key.CollectionShowCapacity), ShouldBeFalse)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("script.stop_on_error"), ShouldEqual, "script_stop_on_error")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given registered fields", t, func() {
		Convey("Env is prefixed and upper-cased", func() {
			field := Default[key.LogsLevel]
			So(field.Env(), ShouldEqual, "COLL_LOGS_LEVEL")
		})

		Convey("Pretty describes the field", func() {
			field := Default[key.LogsLevel]
			So(field.Pretty(), ShouldContainSubstring, key.LogsLevel)
			So(field.Type(), ShouldEqual, "string")
		})

		Convey("Parse follows the default value type", func() {
			field := Default[key.BenchCount]
			v, err := field.Parse([]string{"42"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 42)

			_, err = field.Parse([]string{"many"})
			So(err, ShouldNotBeNil)

			field = Default[key.ScriptEcho]
			v, err = field.Parse([]string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			field = Default[key.CollectionDefault]
			v, err = field.Parse([]string{"todo"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "todo")

			_, err = field.Parse(nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given a config file with unusable values", t, func() {
		path := filepath.Join(where.Config(), constant.App+".toml")
		reset := func() {
			So(filesystem.API().Remove(path), ShouldBeNil)
			viper.Reset()
			So(Setup(), ShouldBeNil)
		}

		cases := map[string]string{
			"[bench]\ncount = -1\n":             key.BenchCount,
			"[icons]\nvariant = \"sparkles\"\n": key.IconsVariant,
			"[logs]\nlevel = \"loud\"\n":        key.LogsLevel,
			"[collection]\ndefault = \"  \"\n":  key.CollectionDefault,
		}

		for contents, name := range cases {
			So(filesystem.API().WriteFile(path, []byte(contents), 0o644), ShouldBeNil)

			err := Setup()
			So(errors.Is(err, ErrInvalidValue), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, name)

			reset()
		}
	})
}

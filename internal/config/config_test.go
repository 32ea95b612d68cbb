package config_test

import (
	"testing"

	"github.com/redlinehq/redline/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given a default config", t, func() {
		cfg := config.New()

		Convey("Then sane defaults are set", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.MetricsAddr, ShouldEqual, ":9090")
			So(cfg.CatalogPath, ShouldEqual, "catalog.yaml")
			So(cfg.ProfilePath, ShouldEqual, "profile.yaml")
			So(cfg.Seed, ShouldEqual, 42)
			So(cfg.StartingMoney, ShouldEqual, 10_000)
			So(cfg.PrestigeMoneyThreshold, ShouldEqual, 250_000)
			So(cfg.PrestigeResetMoney, ShouldEqual, 5_000)
		})
	})
}

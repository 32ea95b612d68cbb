package upgrade_test

import (
	"testing"

	"github.com/redlinehq/redline/internal/domain/model"
	"github.com/redlinehq/redline/internal/domain/upgrade"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCostForLevel(t *testing.T) {
	Convey("Given an upgrade definition with a growth curve", t, func() {
		def := model.UpgradeDefinition{
			Category:   "engine",
			MaxLevel:   5,
			BaseCost:   1000,
			CostGrowth: 1.5,
			Deltas:     make([]model.StatDelta, 5),
		}

		Convey("When buying the first level", func() {
			cost, err := upgrade.CostForLevel(def, 0)

			Convey("Then it costs exactly the base cost", func() {
				So(err, ShouldBeNil)
				So(cost, ShouldEqual, 1000)
			})
		})

		Convey("When buying deeper levels", func() {
			cost1, err1 := upgrade.CostForLevel(def, 1)
			cost2, err2 := upgrade.CostForLevel(def, 2)

			Convey("Then the exponent applies per current level", func() {
				So(err1, ShouldBeNil)
				So(cost1, ShouldEqual, 1500) // 1000 * 1.5
				So(err2, ShouldBeNil)
				So(cost2, ShouldEqual, 2250) // 1000 * 1.5^2
			})
		})

		Convey("When walking the whole curve", func() {
			Convey("Then cost is monotonically non-decreasing", func() {
				prev := int64(0)
				for level := 0; level < def.MaxLevel; level++ {
					cost, err := upgrade.CostForLevel(def, level)
					So(err, ShouldBeNil)
					So(cost, ShouldBeGreaterThanOrEqualTo, prev)
					prev = cost
				}
			})
		})

		Convey("When one level below max", func() {
			cost, err := upgrade.CostForLevel(def, def.MaxLevel-1)

			Convey("Then a finite cost is returned", func() {
				So(err, ShouldBeNil)
				So(cost, ShouldBeGreaterThan, 0)
			})
		})

		Convey("When already at max level", func() {
			_, err := upgrade.CostForLevel(def, def.MaxLevel)

			Convey("Then ErrAtMaxLevel is returned", func() {
				So(err, ShouldWrap, upgrade.ErrAtMaxLevel)
			})
		})

		Convey("When the level is negative", func() {
			_, err := upgrade.CostForLevel(def, -1)

			Convey("Then ErrInvalidLevel is returned", func() {
				So(err, ShouldWrap, upgrade.ErrInvalidLevel)
			})
		})
	})

	Convey("Given a definition with growth exactly 1", t, func() {
		def := model.UpgradeDefinition{
			Category:   "tires",
			MaxLevel:   3,
			BaseCost:   400,
			CostGrowth: 1.0,
			Deltas:     make([]model.StatDelta, 3),
		}

		Convey("Then every level costs the base cost", func() {
			for level := 0; level < def.MaxLevel; level++ {
				cost, err := upgrade.CostForLevel(def, level)
				So(err, ShouldBeNil)
				So(cost, ShouldEqual, 400)
			}
		})
	})
}

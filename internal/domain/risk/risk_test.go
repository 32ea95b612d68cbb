package risk_test

import (
	"math/rand"
	"testing"

	"github.com/redlinehq/redline/internal/domain/model"
	"github.com/redlinehq/redline/internal/domain/risk"
	. "github.com/smartystreets/goconvey/convey"
)

func TestHeatBounds(t *testing.T) {
	Convey("Given a risk system and a ledger", t, func() {
		sys := risk.New()
		ledger := model.NewPlayerLedger(0)

		Convey("When adding heat within range", func() {
			err := sys.AddHeat(ledger, 30)

			Convey("Then heat accrues exactly", func() {
				So(err, ShouldBeNil)
				So(ledger.Heat, ShouldEqual, 30)
			})
		})

		Convey("When adding heat past the ceiling", func() {
			err := sys.AddHeat(ledger, 500)

			Convey("Then heat clamps at 100", func() {
				So(err, ShouldBeNil)
				So(ledger.Heat, ShouldEqual, 100)
			})
		})

		Convey("When adding negative heat", func() {
			ledger.Heat = 40
			err := sys.AddHeat(ledger, -10)

			Convey("Then the amount is rejected and heat is unchanged", func() {
				So(err, ShouldWrap, risk.ErrInvalidAmount)
				So(ledger.Heat, ShouldEqual, 40)
			})
		})

		Convey("When decaying past the floor", func() {
			ledger.Heat = 10
			err := sys.DecayHeat(ledger, 1.0, 3600)

			Convey("Then heat floors at 0", func() {
				So(err, ShouldBeNil)
				So(ledger.Heat, ShouldEqual, 0)
			})
		})

		Convey("When decaying a partial interval", func() {
			ledger.Heat = 50
			err := sys.DecayHeat(ledger, 0.1, 120)

			Convey("Then rate times elapsed is subtracted", func() {
				So(err, ShouldBeNil)
				So(ledger.Heat, ShouldAlmostEqual, 38, 0.0001)
			})
		})

		Convey("When decay inputs are negative", func() {
			ledger.Heat = 50
			err := sys.DecayHeat(ledger, -1, 10)

			Convey("Then the call is rejected", func() {
				So(err, ShouldWrap, risk.ErrInvalidAmount)
				So(ledger.Heat, ShouldEqual, 50)
			})
		})
	})
}

func TestShouldTriggerEncounter(t *testing.T) {
	Convey("Given a risk system with default tiers", t, func() {
		sys := risk.New()

		Convey("When heat is below the low threshold", func() {
			rng := rand.New(rand.NewSource(1))

			Convey("Then an encounter never triggers", func() {
				for i := 0; i < 1000; i++ {
					So(sys.ShouldTriggerEncounter(20, rng), ShouldBeFalse)
				}
			})
		})

		Convey("When heat sits above the high threshold", func() {
			rng := rand.New(rand.NewSource(99))
			const trials = 20000
			hits := 0
			for i := 0; i < trials; i++ {
				if sys.ShouldTriggerEncounter(90, rng) {
					hits++
				}
			}

			Convey("Then the trigger frequency matches the high-tier probability", func() {
				So(float64(hits)/trials, ShouldAlmostEqual, 0.40, 0.02)
			})
		})

		Convey("When heat climbs through the tiers", func() {
			freq := func(heat float64) float64 {
				rng := rand.New(rand.NewSource(7))
				const trials = 20000
				hits := 0
				for i := 0; i < trials; i++ {
					if sys.ShouldTriggerEncounter(heat, rng) {
						hits++
					}
				}
				return float64(hits) / trials
			}

			Convey("Then each tier triggers more often than the last", func() {
				low := freq(30)
				medium := freq(60)
				high := freq(90)
				So(low, ShouldBeLessThan, medium)
				So(medium, ShouldBeLessThan, high)
			})
		})
	})
}

func TestResolveEncounter(t *testing.T) {
	Convey("Given a pursuit at high heat", t, func() {
		ledger := model.NewPlayerLedger(0)
		ledger.Heat = 80
		stats := model.AggregatedStats{
			BaseStats: model.BaseStats{Grip: 70, Suspension: 60},
		}

		Convey("When the escape roll always succeeds", func() {
			sys := risk.New(risk.WithEscapeTuning(1.0, 0, 0.35))
			outcome := sys.ResolveEncounter(ledger, stats, rand.New(rand.NewSource(1)))

			Convey("Then only a fraction of heat is shed and no fine is due", func() {
				So(outcome.Escaped, ShouldBeTrue)
				So(outcome.Fine, ShouldEqual, 0)
				So(outcome.HeatRemoved, ShouldAlmostEqual, 28, 0.0001)
				So(ledger.Heat, ShouldAlmostEqual, 52, 0.0001)
			})
		})

		Convey("When the escape roll always fails", func() {
			sys := risk.New(risk.WithEscapeTuning(0, 0, 0.35))
			outcome := sys.ResolveEncounter(ledger, stats, rand.New(rand.NewSource(1)))

			Convey("Then the fine scales with heat and all heat clears", func() {
				So(outcome.Escaped, ShouldBeFalse)
				So(outcome.Fine, ShouldEqual, 1000+int64(80*25.0))
				So(outcome.HeatRemoved, ShouldEqual, 80)
				So(ledger.Heat, ShouldEqual, 0)
			})

			Convey("And the ledger's money is untouched by the risk system", func() {
				So(ledger.Money, ShouldEqual, 0)
			})
		})

		Convey("When grip and suspension are high", func() {
			sys := risk.New()
			const trials = 20000
			escapes := 0
			rng := rand.New(rand.NewSource(5))
			for i := 0; i < trials; i++ {
				l := model.NewPlayerLedger(0)
				l.Heat = 80
				if sys.ResolveEncounter(l, stats, rng).Escaped {
					escapes++
				}
			}

			Convey("Then the escape rate matches base plus the per-point bonus", func() {
				expected := 0.25 + (70+60)*0.002
				So(float64(escapes)/trials, ShouldAlmostEqual, expected, 0.02)
			})
		})
	})
}

package economy_test

import (
	"testing"

	"github.com/redlinehq/redline/internal/domain/economy"
	"github.com/redlinehq/redline/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTrySpend(t *testing.T) {
	Convey("Given a ledger with a balance", t, func() {
		econ := economy.New()
		ledger := model.NewPlayerLedger(1000)

		Convey("When spending within the balance", func() {
			err := econ.TrySpend(ledger, 600)

			Convey("Then exactly the amount is deducted", func() {
				So(err, ShouldBeNil)
				So(ledger.Money, ShouldEqual, 400)
			})
		})

		Convey("When spending more than the balance", func() {
			err := econ.TrySpend(ledger, 1001)

			Convey("Then the spend fails and the ledger is unchanged", func() {
				So(err, ShouldWrap, economy.ErrInsufficientFunds)
				So(ledger.Money, ShouldEqual, 1000)
			})
		})

		Convey("When spending a negative amount", func() {
			err := econ.TrySpend(ledger, -5)

			Convey("Then the spend is rejected and the ledger is unchanged", func() {
				So(err, ShouldWrap, economy.ErrInvalidAmount)
				So(ledger.Money, ShouldEqual, 1000)
			})
		})

		Convey("When spending the exact balance", func() {
			err := econ.TrySpend(ledger, 1000)

			Convey("Then money lands on zero, never below", func() {
				So(err, ShouldBeNil)
				So(ledger.Money, ShouldEqual, 0)
			})
		})
	})
}

func TestAddMoney(t *testing.T) {
	Convey("Given a ledger", t, func() {
		econ := economy.New()
		ledger := model.NewPlayerLedger(100)

		Convey("When crediting a positive amount", func() {
			err := econ.AddMoney(ledger, 250)

			Convey("Then the balance grows", func() {
				So(err, ShouldBeNil)
				So(ledger.Money, ShouldEqual, 350)
			})
		})

		Convey("When crediting a negative amount", func() {
			err := econ.AddMoney(ledger, -250)

			Convey("Then the ledger stays untouched", func() {
				So(err, ShouldWrap, economy.ErrInvalidAmount)
				So(ledger.Money, ShouldEqual, 100)
			})
		})
	})
}

func TestRacePayout(t *testing.T) {
	Convey("Given the default payout tables", t, func() {
		econ := economy.New()

		Convey("When the race was not won", func() {
			Convey("Then the payout is exactly zero for any inputs", func() {
				So(econ.RacePayout(model.Unsanctioned, 4, false, 3.0, 3.0), ShouldEqual, 0)
				So(econ.RacePayout(model.Sanctioned, 0, false, 0.5, 1.0), ShouldEqual, 0)
			})
		})

		Convey("When winning at tier 4 unsanctioned with no modifiers", func() {
			amount := econ.RacePayout(model.Unsanctioned, 4, true, 1.0, 1.0)

			Convey("Then the table's fifth entry is the base payout", func() {
				So(amount, ShouldEqual, 3600)
			})
		})

		Convey("When comparing the two classes tier by tier", func() {
			Convey("Then sanctioned payouts exceed unsanctioned at every tier", func() {
				for tier := 0; tier <= 4; tier++ {
					unsanctioned := econ.RacePayout(model.Unsanctioned, tier, true, 1.0, 1.0)
					sanctioned := econ.RacePayout(model.Sanctioned, tier, true, 1.0, 1.0)
					So(sanctioned, ShouldBeGreaterThan, unsanctioned)
				}
			})
		})

		Convey("When the tier is out of range", func() {
			Convey("Then it clamps into 0..4", func() {
				So(econ.RacePayout(model.Unsanctioned, 9, true, 1.0, 1.0), ShouldEqual, 3600)
				So(econ.RacePayout(model.Unsanctioned, -3, true, 1.0, 1.0), ShouldEqual, 500)
			})
		})

		Convey("When an income multiplier is supplied", func() {
			amount := econ.RacePayout(model.Sanctioned, 2, true, 1.0, 1.3)

			Convey("Then the payout scales by it and truncates", func() {
				So(amount, ShouldEqual, int64(2200*1.3))
			})
		})

		Convey("When the income multiplier dips below one", func() {
			amount := econ.RacePayout(model.Unsanctioned, 0, true, 1.0, 0.5)

			Convey("Then it is treated as no bonus", func() {
				So(amount, ShouldEqual, 500)
			})
		})

		Convey("When the payout multiplier scales the base", func() {
			amount := econ.RacePayout(model.Unsanctioned, 1, true, 0.5, 1.0)

			Convey("Then the result truncates to whole currency", func() {
				So(amount, ShouldEqual, 450)
			})
		})
	})
}

package depreciation

import (
	"time"

	"github.com/shopspring/decimal"
)

// daysInYear is the fixed denominator for daily proration. Periods are
// prorated against a 365-day year regardless of leap years; a leap-year
// period simply counts 366 days against it.
const daysInYear = 365

// decliningBalanceMultiplier is the rate multiplier for the declining-balance
// strategy (2.0 = double-declining).
var decliningBalanceMultiplier = decimal.NewFromInt(2)

// DaysInPeriod returns the number of days in the inclusive date range
// [start, end]. Both bounds are normalised to midnight UTC before counting,
// so a period of a single day yields 1.
func DaysInPeriod(start, end time.Time) int64 {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int64(e.Sub(s)/(24*time.Hour)) + 1
}

// StraightLineAmount computes the raw straight-line depreciation for one
// period, rounded to 2 decimal places half away from zero.
// A non-positive useful life yields zero rather than dividing by zero.
func StraightLineAmount(purchasePrice, salvageValue decimal.Decimal, usefulLifeYears int, periodStart, periodEnd time.Time) decimal.Decimal {
	if usefulLifeYears <= 0 {
		return decimal.Zero
	}

	annual := purchasePrice.Sub(salvageValue).Div(decimal.NewFromInt(int64(usefulLifeYears)))
	daily := annual.Div(decimal.NewFromInt(daysInYear))
	days := decimal.NewFromInt(DaysInPeriod(periodStart, periodEnd))
	return daily.Mul(days).Round(2)
}

// DecliningBalanceAmount computes the raw double-declining-balance
// depreciation for one period against the current book value, rounded to
// 2 decimal places half away from zero. Same zero-guard as straight-line.
func DecliningBalanceAmount(bookValue decimal.Decimal, usefulLifeYears int, periodStart, periodEnd time.Time) decimal.Decimal {
	if usefulLifeYears <= 0 {
		return decimal.Zero
	}

	annualRate := decliningBalanceMultiplier.Div(decimal.NewFromInt(int64(usefulLifeYears)))
	annual := bookValue.Mul(annualRate)
	daily := annual.Div(decimal.NewFromInt(daysInYear))
	days := decimal.NewFromInt(DaysInPeriod(periodStart, periodEnd))
	return daily.Mul(days).Round(2)
}

// SalvageValue derives the absolute salvage floor from a purchase price and a
// whole-number percentage (0-100).
func SalvageValue(purchasePrice decimal.Decimal, salvagePercent int) decimal.Decimal {
	return purchasePrice.Mul(decimal.NewFromInt(int64(salvagePercent))).Div(decimal.NewFromInt(100))
}

package depreciation_test

import (
	"testing"
	"time"

	"github.com/hecate-codex/asset_mgmt_app/internal/utils/depreciation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInPeriod(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int64
	}{
		{"single day", date(2024, time.March, 1), date(2024, time.March, 1), 1},
		{"full non-leap year", date(2023, time.January, 1), date(2023, time.December, 31), 365},
		{"full leap year", date(2024, time.January, 1), date(2024, time.December, 31), 366},
		{"one month", date(2024, time.June, 1), date(2024, time.June, 30), 30},
		{"bounds with time-of-day noise", time.Date(2024, time.March, 1, 17, 30, 0, 0, time.UTC), time.Date(2024, time.March, 2, 3, 0, 0, 0, time.UTC), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, depreciation.DaysInPeriod(tt.start, tt.end))
		})
	}
}

func TestStraightLineAmount(t *testing.T) {
	purchase := decimal.NewFromInt(12000)
	salvage := decimal.NewFromInt(1200)

	t.Run("full leap year period", func(t *testing.T) {
		// annual = (12000-1200)/5 = 2160; 2160/365*366 = 2165.92
		got := depreciation.StraightLineAmount(purchase, salvage, 5, date(2024, time.January, 1), date(2024, time.December, 31))
		assert.True(t, got.Equal(decimal.RequireFromString("2165.92")), "got %s", got)
	})

	t.Run("full non-leap year period", func(t *testing.T) {
		got := depreciation.StraightLineAmount(purchase, salvage, 5, date(2023, time.January, 1), date(2023, time.December, 31))
		assert.True(t, got.Equal(decimal.RequireFromString("2160.00")), "got %s", got)
	})

	t.Run("zero useful life yields zero", func(t *testing.T) {
		got := depreciation.StraightLineAmount(purchase, salvage, 0, date(2024, time.January, 1), date(2024, time.December, 31))
		assert.True(t, got.IsZero())
	})

	t.Run("negative useful life yields zero", func(t *testing.T) {
		got := depreciation.StraightLineAmount(purchase, salvage, -3, date(2024, time.January, 1), date(2024, time.December, 31))
		assert.True(t, got.IsZero())
	})

	t.Run("rounds half away from zero", func(t *testing.T) {
		// annual = 1000/3 = 333.33..; one day = 0.913.. -> 0.91
		got := depreciation.StraightLineAmount(decimal.NewFromInt(1000), decimal.Zero, 3, date(2024, time.March, 1), date(2024, time.March, 1))
		assert.True(t, got.Equal(decimal.RequireFromString("0.91")), "got %s", got)
	})
}

func TestDecliningBalanceAmount(t *testing.T) {
	t.Run("full leap year period", func(t *testing.T) {
		// rate = 2/5 = 0.4; annual = 12000*0.4 = 4800; 4800/365*366 = 4813.15
		got := depreciation.DecliningBalanceAmount(decimal.NewFromInt(12000), 5, date(2024, time.January, 1), date(2024, time.December, 31))
		assert.True(t, got.Equal(decimal.RequireFromString("4813.15")), "got %s", got)
	})

	t.Run("shrinks with the book value", func(t *testing.T) {
		first := depreciation.DecliningBalanceAmount(decimal.NewFromInt(12000), 5, date(2023, time.January, 1), date(2023, time.December, 31))
		second := depreciation.DecliningBalanceAmount(decimal.NewFromInt(12000).Sub(first), 5, date(2024, time.January, 1), date(2024, time.December, 31))
		assert.True(t, second.LessThan(first))
	})

	t.Run("zero useful life yields zero", func(t *testing.T) {
		got := depreciation.DecliningBalanceAmount(decimal.NewFromInt(12000), 0, date(2024, time.January, 1), date(2024, time.December, 31))
		assert.True(t, got.IsZero())
	})
}

func TestSalvageValue(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		percent int
		want    string
	}{
		{"ten percent", "12000", 10, "1200"},
		{"zero percent", "12000", 0, "0"},
		{"hundred percent", "500.50", 100, "500.50"},
		{"odd cents", "999.99", 15, "149.9985"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := depreciation.SalvageValue(decimal.RequireFromString(tt.price), tt.percent)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

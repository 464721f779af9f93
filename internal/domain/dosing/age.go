package dosing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var daysPerYear = decimal.RequireFromString("365.25")

// AgeInWeeks returns the number of whole weeks between birth and ref.
func AgeInWeeks(birth, ref time.Time) (int, error) {
	days, err := ageInDays(birth, ref)
	if err != nil {
		return 0, err
	}
	return days / 7, nil
}

// AgeInYears returns the age at ref in years, rounded to one decimal place.
func AgeInYears(birth, ref time.Time) (decimal.Decimal, error) {
	days, err := ageInDays(birth, ref)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(int64(days)).Div(daysPerYear).Round(1), nil
}

func ageInDays(birth, ref time.Time) (int, error) {
	days := daysBetween(birth, ref)
	if days < 0 {
		return 0, fmt.Errorf("%w: %s precedes birth date %s", ErrInvalidDateRange, FormatDate(ref), FormatDate(birth))
	}
	return days, nil
}

package dosing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	exampleKey = VaccineKey{VaccineName: "EXAMPLE_VACCINE", BrandName: "EXAMPLE_BRAND", Manufacturer: "EXAMPLE_MANUFACTURER"}
	seniorKey  = VaccineKey{VaccineName: "EXAMPLE_VACCINE", BrandName: "EXAMPLE_BRAND_SENIOR", Manufacturer: "EXAMPLE_MANUFACTURER"}
)

func weeks(n int) *int { return &n }

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func exampleEntries() []Entry {
	return []Entry{
		{ID: 1, Key: exampleKey, DoseNumber: 1, MinAgeWeeks: 939, MaxAgeWeeks: 3390, IntervalWeeks: weeks(1), IntervalDescription: "Standard: 1 week", Preferred: true, DoseAmount: "0.5 mL", Route: "IM", Site: "Deltoid"},
		{ID: 2, Key: exampleKey, DoseNumber: 2, MinAgeWeeks: 939, MaxAgeWeeks: 3390, IntervalWeeks: weeks(4), IntervalDescription: "Extended: 4 weeks", Priority: 1, DoseAmount: "0.5 mL", Route: "IM"},
		{ID: 3, Key: exampleKey, DoseNumber: 2, MinAgeWeeks: 939, MaxAgeWeeks: 3390, IntervalWeeks: weeks(1), IntervalDescription: "Accelerated: 1 week", Preferred: true, DoseAmount: "0.5 mL", Route: "IM"},
		{ID: 4, Key: exampleKey, DoseNumber: 3, MinAgeWeeks: 939, MaxAgeWeeks: 3390, DoseAmount: "0.5 mL", Route: "IM", Preferred: true},
		{ID: 5, Key: seniorKey, DoseNumber: 1, MinAgeWeeks: 3391, MaxAgeWeeks: 7826, IntervalWeeks: weeks(4), IntervalDescription: "Senior: 4 weeks", Preferred: true, DoseAmount: "0.5 mL", Route: "IM"},
		{ID: 6, Key: seniorKey, DoseNumber: 2, MinAgeWeeks: 3391, MaxAgeWeeks: 7826, DoseAmount: "0.5 mL", Route: "IM", Preferred: true},
	}
}

func TestAgeInWeeks(t *testing.T) {
	tests := []struct {
		name  string
		birth string
		ref   string
		want  int
	}{
		{name: "two weeks", birth: "2000-01-01", ref: "2000-01-15", want: 2},
		{name: "same day", birth: "2000-01-01", ref: "2000-01-01", want: 0},
		{name: "six days truncates", birth: "2000-01-01", ref: "2000-01-07", want: 0},
		{name: "across leap day", birth: "2024-02-26", ref: "2024-03-04", want: 1},
		{name: "thirty years", birth: "1994-01-01", ref: "2024-01-01", want: 1565},
		{name: "span beyond duration range", birth: "1700-01-01", ref: "2024-01-01", want: 16905},
		{name: "year one placeholder", birth: "0001-01-01", ref: "2024-01-01", want: 105555},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AgeInWeeks(date(t, tt.birth), date(t, tt.ref))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestAgeInWeeks_ReferenceBeforeBirth(t *testing.T) {
	_, err := AgeInWeeks(date(t, "2000-01-15"), date(t, "2000-01-01"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestAgeInWeeks_IgnoresTimeOfDayAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	birth := time.Date(2000, 1, 1, 23, 30, 0, 0, loc)
	ref := time.Date(2000, 1, 15, 0, 15, 0, 0, time.UTC)

	got, err := AgeInWeeks(birth, ref)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestAgeInYears(t *testing.T) {
	got, err := AgeInYears(date(t, "1994-01-01"), date(t, "2024-07-01"))
	require.NoError(t, err)
	assert.Equal(t, "30.5", got.String())

	got, err = AgeInYears(date(t, "1700-01-01"), date(t, "2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, "324.0", got.StringFixed(1))

	_, err = AgeInYears(date(t, "2024-01-02"), date(t, "2024-01-01"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", FormatDate(d))

	d, err = ParseDate("2024-01-01T10:00:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", FormatDate(d))

	_, err = ParseDate("01/02/2024")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestEntryValidate(t *testing.T) {
	valid := exampleEntries()[0]
	assert.NoError(t, valid.Validate())

	missingBrand := valid
	missingBrand.Key.BrandName = ""
	assert.ErrorIs(t, missingBrand.Validate(), ErrInvalidEntry)

	badDose := valid
	badDose.DoseNumber = 0
	assert.ErrorIs(t, badDose.Validate(), ErrInvalidEntry)

	badWindow := valid
	badWindow.MinAgeWeeks, badWindow.MaxAgeWeeks = 100, 10
	assert.ErrorIs(t, badWindow.Validate(), ErrInvalidEntry)

	negative := valid
	negative.IntervalWeeks = weeks(-1)
	assert.ErrorIs(t, negative.Validate(), ErrInvalidEntry)
}

func TestTable_KeysAndMaxDose(t *testing.T) {
	table := NewTable(exampleEntries())

	assert.Equal(t, []VaccineKey{exampleKey, seniorKey}, table.Keys())
	assert.Equal(t, 3, table.MaxDose(exampleKey))
	assert.Equal(t, 2, table.MaxDose(seniorKey))
	assert.Equal(t, 0, table.MaxDose(VaccineKey{VaccineName: "UNKNOWN"}))
	assert.Len(t, table.Entries(), 6)
}

func TestResolve(t *testing.T) {
	table := NewTable(exampleEntries())

	res, err := table.Resolve(exampleKey, 1, 1565)
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, int64(1), res.Preferred().ID)
	assert.False(t, res.HasAlternatives())

	res, err = table.Resolve(exampleKey, 2, 1565)
	require.NoError(t, err)
	assert.Len(t, res.Matches, 2)
	assert.True(t, res.HasAlternatives())
	assert.Equal(t, int64(3), res.Preferred().ID)
}

func TestResolve_NotFound(t *testing.T) {
	table := NewTable(exampleEntries())

	_, err := table.Resolve(exampleKey, 4, 1565)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = table.Resolve(exampleKey, 1, 100)
	assert.ErrorIs(t, err, ErrNotFound, "age below the band")

	_, err = table.Resolve(seniorKey, 1, 1565)
	assert.ErrorIs(t, err, ErrNotFound, "adult age on the senior brand")
}

func TestResolutionPreferred_TieBreak(t *testing.T) {
	res := Resolution{Matches: []Entry{
		{ID: 9, Priority: 0, IntervalWeeks: weeks(8)},
		{ID: 7, Priority: 0, IntervalWeeks: weeks(2)},
		{ID: 8, Priority: 0, IntervalWeeks: weeks(2)},
		{ID: 1, Priority: 0},
	}}
	assert.Equal(t, int64(7), res.Preferred().ID, "shortest interval then lowest id")

	res.Matches = append(res.Matches, Entry{ID: 20, Priority: 5, IntervalWeeks: weeks(12), Preferred: true})
	assert.Equal(t, int64(20), res.Preferred().ID, "flagged row wins")

	res = Resolution{Matches: []Entry{
		{ID: 2, Priority: 3, IntervalWeeks: weeks(1)},
		{ID: 3, Priority: 1, IntervalWeeks: weeks(6)},
	}}
	assert.Equal(t, int64(3), res.Preferred().ID, "lower priority wins over shorter interval")
}

func TestAlternatives(t *testing.T) {
	table := NewTable(exampleEntries())

	alts := table.Alternatives(exampleKey, 2)
	require.Len(t, alts, 2)
	assert.Equal(t, 1, alts[0].IntervalWeeks)
	assert.Equal(t, "Accelerated: 1 week", alts[0].Description)
	assert.True(t, alts[0].Preferred)
	assert.Equal(t, 4, alts[1].IntervalWeeks)
	assert.True(t, HasAlternatives(alts))

	alts = table.Alternatives(exampleKey, 1)
	assert.Len(t, alts, 1)
	assert.False(t, HasAlternatives(alts))

	assert.Empty(t, table.Alternatives(exampleKey, 3), "final dose has no interval")
	assert.Empty(t, table.Alternatives(exampleKey, 9))
}

func TestNextDose_StandardInterval(t *testing.T) {
	table := NewTable(exampleEntries())

	result, err := table.NextDose(Request{
		Key:                exampleKey,
		DoseNumber:         1,
		AdministrationDate: date(t, "2024-01-01"),
		BirthDate:          date(t, "1994-01-01"),
	})
	require.NoError(t, err)
	require.NotNil(t, result.NextDoseDate)
	assert.Equal(t, "2024-01-08", FormatDate(*result.NextDoseDate))
	assert.Equal(t, 1, *result.IntervalWeeks)
	assert.False(t, result.CustomIntervalUsed)
	assert.False(t, result.SeriesComplete())
	assert.Equal(t, 1565, result.AgeInWeeks)
}

func TestNextDose_SeniorBand(t *testing.T) {
	table := NewTable(exampleEntries())

	result, err := table.NextDose(Request{
		Key:                seniorKey,
		DoseNumber:         1,
		AdministrationDate: date(t, "2024-01-01"),
		BirthDate:          date(t, "1954-01-01"),
	})
	require.NoError(t, err)
	require.NotNil(t, result.NextDoseDate)
	assert.Equal(t, "2024-01-29", FormatDate(*result.NextDoseDate))
}

func TestNextDose_OverrideTakesPrecedence(t *testing.T) {
	table := NewTable(exampleEntries())
	req := Request{
		Key:                   seniorKey,
		DoseNumber:            1,
		AdministrationDate:    date(t, "2024-01-01"),
		BirthDate:             date(t, "1954-01-01"),
		OverrideIntervalWeeks: weeks(6),
	}

	result, err := table.NextDose(req)
	require.NoError(t, err)
	require.NotNil(t, result.NextDoseDate)
	assert.Equal(t, "2024-02-12", FormatDate(*result.NextDoseDate))
	assert.Equal(t, 6, *result.IntervalWeeks)
	assert.True(t, result.CustomIntervalUsed)

	again, err := table.NextDose(req)
	require.NoError(t, err)
	assert.Equal(t, result, again)
}

func TestNextDose_OverrideSkipsTableLookup(t *testing.T) {
	result, err := NewTable(nil).NextDose(Request{
		Key:                   exampleKey,
		DoseNumber:            7,
		AdministrationDate:    date(t, "2024-01-01"),
		BirthDate:             date(t, "1994-01-01"),
		OverrideIntervalWeeks: weeks(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", FormatDate(*result.NextDoseDate))
}

func TestNextDose_Errors(t *testing.T) {
	table := NewTable(exampleEntries())

	_, err := table.NextDose(Request{
		Key:                exampleKey,
		DoseNumber:         1,
		AdministrationDate: date(t, "1993-12-31"),
		BirthDate:          date(t, "1994-01-01"),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = table.NextDose(Request{
		Key:                   exampleKey,
		DoseNumber:            1,
		AdministrationDate:    date(t, "2024-01-01"),
		BirthDate:             date(t, "1994-01-01"),
		OverrideIntervalWeeks: weeks(-2),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = table.NextDose(Request{
		Key:                exampleKey,
		DoseNumber:         4,
		AdministrationDate: date(t, "2024-01-01"),
		BirthDate:          date(t, "1994-01-01"),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNextDose_FinalDoseCompletesSeries(t *testing.T) {
	table := NewTable(exampleEntries())

	result, err := table.NextDose(Request{
		Key:                exampleKey,
		DoseNumber:         3,
		AdministrationDate: date(t, "2024-01-01"),
		BirthDate:          date(t, "1994-01-01"),
	})
	require.NoError(t, err)
	assert.True(t, result.SeriesComplete())
	assert.Nil(t, result.IntervalWeeks)
}

func TestNextDose_ReportsAlternatives(t *testing.T) {
	table := NewTable(exampleEntries())

	result, err := table.NextDose(Request{
		Key:                exampleKey,
		DoseNumber:         2,
		AdministrationDate: date(t, "2024-01-01"),
		BirthDate:          date(t, "1994-01-01"),
	})
	require.NoError(t, err)
	assert.True(t, result.HasAlternatives())
	assert.Equal(t, "2024-01-08", FormatDate(*result.NextDoseDate))
}

func TestNextDoseDate_RoundTrip(t *testing.T) {
	next := NextDoseDate(date(t, "2024-02-26"), 1)
	assert.Equal(t, "2024-03-04", FormatDate(next))

	parsed, err := ParseDate(FormatDate(next))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(next))
}

func TestValidateTable(t *testing.T) {
	assert.NoError(t, ValidateTable(exampleEntries()))

	gap := []Entry{
		{ID: 1, Key: exampleKey, DoseNumber: 1, MaxAgeWeeks: 10, IntervalWeeks: weeks(1)},
		{ID: 2, Key: exampleKey, DoseNumber: 3, MaxAgeWeeks: 10},
	}
	assert.ErrorIs(t, ValidateTable(gap), ErrInvalidEntry)

	overlap := []Entry{
		{ID: 1, Key: exampleKey, DoseNumber: 1, MinAgeWeeks: 0, MaxAgeWeeks: 10, IntervalWeeks: weeks(1), Preferred: true},
		{ID: 2, Key: exampleKey, DoseNumber: 1, MinAgeWeeks: 5, MaxAgeWeeks: 20, IntervalWeeks: weeks(2), Preferred: true},
	}
	assert.ErrorIs(t, ValidateTable(overlap), ErrInvalidEntry)

	invalid := []Entry{{ID: 1, Key: exampleKey, DoseNumber: 0}}
	assert.ErrorIs(t, ValidateTable(invalid), ErrInvalidEntry)
}

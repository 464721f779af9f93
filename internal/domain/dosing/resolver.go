package dosing

import (
	"fmt"
	"sort"
)

// Resolution holds every entry matching a dose and age. More than one match
// means the dose has alternative schedules for that age band.
type Resolution struct {
	Key        VaccineKey
	DoseNumber int
	AgeInWeeks int
	Matches    []Entry
}

// Resolve looks up the entries of key and doseNumber whose age band contains
// ageWeeks. It returns ErrNotFound when none match, including dose numbers
// past the end of the series.
func (t *Table) Resolve(key VaccineKey, doseNumber, ageWeeks int) (Resolution, error) {
	var matches []Entry
	for _, e := range t.ForDose(key, doseNumber) {
		if e.CoversAge(ageWeeks) {
			matches = append(matches, e)
		}
	}
	if len(matches) == 0 {
		return Resolution{}, fmt.Errorf("%w: %s dose %d at %d weeks", ErrNotFound, key, doseNumber, ageWeeks)
	}
	return Resolution{
		Key:        key,
		DoseNumber: doseNumber,
		AgeInWeeks: ageWeeks,
		Matches:    matches,
	}, nil
}

// Preferred returns the single entry used for the plain next-dose
// calculation: flagged-preferred rows first, then lowest priority, then
// shortest interval (final-dose rows last), then insertion order.
func (r Resolution) Preferred() Entry {
	ranked := make([]Entry, len(r.Matches))
	copy(ranked, r.Matches)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Preferred != b.Preferred {
			return a.Preferred
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if (a.IntervalWeeks == nil) != (b.IntervalWeeks == nil) {
			return a.IntervalWeeks != nil
		}
		if a.IntervalWeeks != nil && *a.IntervalWeeks != *b.IntervalWeeks {
			return *a.IntervalWeeks < *b.IntervalWeeks
		}
		return a.ID < b.ID
	})
	return ranked[0]
}

// Alternatives lists the interval options among the matches.
func (r Resolution) Alternatives() []Alternative {
	return alternativesOf(r.Matches)
}

// HasAlternatives reports whether the matches offer more than one interval.
func (r Resolution) HasAlternatives() bool {
	return HasAlternatives(r.Alternatives())
}

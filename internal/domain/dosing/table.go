package dosing

import (
	"sort"
)

// Table is a read-only snapshot of schedule entries.
type Table struct {
	entries []Entry
}

// Alternative is one interval option for a dose.
type Alternative struct {
	IntervalWeeks int
	Description   string
	Preferred     bool
}

// NewTable copies entries into a table ordered by key, dose number,
// priority and id.
func NewTable(entries []Entry) *Table {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Key != b.Key {
			return keyLess(a.Key, b.Key)
		}
		if a.DoseNumber != b.DoseNumber {
			return a.DoseNumber < b.DoseNumber
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.ID < b.ID
	})
	return &Table{entries: sorted}
}

// Entries returns a copy of every entry in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Keys returns the distinct vaccine keys in the table, sorted.
func (t *Table) Keys() []VaccineKey {
	var keys []VaccineKey
	for i, e := range t.entries {
		if i == 0 || e.Key != t.entries[i-1].Key {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// MaxDose returns the highest dose number defined for key, or 0.
func (t *Table) MaxDose(key VaccineKey) int {
	highest := 0
	for _, e := range t.entries {
		if e.Key == key && e.DoseNumber > highest {
			highest = e.DoseNumber
		}
	}
	return highest
}

// ForDose returns every entry of key with the given dose number.
func (t *Table) ForDose(key VaccineKey, doseNumber int) []Entry {
	var out []Entry
	for _, e := range t.entries {
		if e.Key == key && e.DoseNumber == doseNumber {
			out = append(out, e)
		}
	}
	return out
}

// Alternatives lists every interval option defined for the dose regardless
// of age, shortest interval first. Final-dose rows carry no interval and are
// left out.
func (t *Table) Alternatives(key VaccineKey, doseNumber int) []Alternative {
	return alternativesOf(t.ForDose(key, doseNumber))
}

// HasAlternatives reports whether there is an actual choice of interval.
func HasAlternatives(alts []Alternative) bool {
	return len(alts) > 1
}

func alternativesOf(entries []Entry) []Alternative {
	withInterval := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.IntervalWeeks != nil {
			withInterval = append(withInterval, e)
		}
	}
	sort.SliceStable(withInterval, func(i, j int) bool {
		a, b := withInterval[i], withInterval[j]
		if *a.IntervalWeeks != *b.IntervalWeeks {
			return *a.IntervalWeeks < *b.IntervalWeeks
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.ID < b.ID
	})

	alts := make([]Alternative, len(withInterval))
	for i, e := range withInterval {
		alts[i] = Alternative{
			IntervalWeeks: *e.IntervalWeeks,
			Description:   e.IntervalDescription,
			Preferred:     e.Preferred,
		}
	}
	return alts
}

func keyLess(a, b VaccineKey) bool {
	if a.VaccineName != b.VaccineName {
		return a.VaccineName < b.VaccineName
	}
	if a.BrandName != b.BrandName {
		return a.BrandName < b.BrandName
	}
	return a.Manufacturer < b.Manufacturer
}

package dosing

import (
	"fmt"
	"strings"
)

// VaccineKey identifies one vaccine product line.
type VaccineKey struct {
	VaccineName  string
	BrandName    string
	Manufacturer string
}

func (k VaccineKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.VaccineName, k.BrandName, k.Manufacturer)
}

// Complete reports whether every part of the key is set.
func (k VaccineKey) Complete() bool {
	return k.VaccineName != "" && k.BrandName != "" && k.Manufacturer != ""
}

// Entry is one reference row of the schedule table. IntervalWeeks is the
// interval from this dose to the next one and is nil on the final dose.
type Entry struct {
	ID                  int64
	Key                 VaccineKey
	DoseNumber          int
	MinAgeWeeks         int
	MaxAgeWeeks         int
	IntervalWeeks       *int
	IntervalDescription string
	Preferred           bool
	Priority            int
	DoseAmount          string
	Route               string
	Site                string
	Notes               string
	CVXCode             string
}

// Validate checks the fields required to resolve against the entry.
func (e Entry) Validate() error {
	var missing []string
	if e.Key.VaccineName == "" {
		missing = append(missing, "vaccine_name")
	}
	if e.Key.BrandName == "" {
		missing = append(missing, "brand_name")
	}
	if e.Key.Manufacturer == "" {
		missing = append(missing, "manufacturer")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: entry %d missing %s", ErrInvalidEntry, e.ID, strings.Join(missing, ", "))
	}
	if e.DoseNumber < 1 {
		return fmt.Errorf("%w: entry %d has dose number %d", ErrInvalidEntry, e.ID, e.DoseNumber)
	}
	if e.MinAgeWeeks < 0 || e.MinAgeWeeks > e.MaxAgeWeeks {
		return fmt.Errorf("%w: entry %d has age window [%d, %d]", ErrInvalidEntry, e.ID, e.MinAgeWeeks, e.MaxAgeWeeks)
	}
	if e.IntervalWeeks != nil && *e.IntervalWeeks < 0 {
		return fmt.Errorf("%w: entry %d has negative interval", ErrInvalidEntry, e.ID)
	}
	return nil
}

// CoversAge reports whether ageWeeks falls in the inclusive age band.
func (e Entry) CoversAge(ageWeeks int) bool {
	return ageWeeks >= e.MinAgeWeeks && ageWeeks <= e.MaxAgeWeeks
}

// IsFinalDose reports whether the entry has no follow-up dose.
func (e Entry) IsFinalDose() bool {
	return e.IntervalWeeks == nil
}

func (e Entry) overlaps(o Entry) bool {
	return e.MinAgeWeeks <= o.MaxAgeWeeks && o.MinAgeWeeks <= e.MaxAgeWeeks
}

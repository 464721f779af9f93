package dosing

import (
	"fmt"
	"time"
)

// Request is the input of a next-dose calculation.
type Request struct {
	Key                   VaccineKey
	DoseNumber            int
	AdministrationDate    time.Time
	BirthDate             time.Time
	OverrideIntervalWeeks *int
}

// Result is the outcome of a next-dose calculation. A nil NextDoseDate means
// the administered dose completes the series.
type Result struct {
	AdministrationDate time.Time
	AgeInWeeks         int
	IntervalWeeks      *int
	NextDoseDate       *time.Time
	CustomIntervalUsed bool
	Alternatives       []Alternative
}

// SeriesComplete reports whether there is no further dose.
func (r Result) SeriesComplete() bool {
	return r.NextDoseDate == nil
}

// HasAlternatives reports whether the resolved dose offered more than one
// interval.
func (r Result) HasAlternatives() bool {
	return HasAlternatives(r.Alternatives)
}

// NextDoseDate is administrationDate plus intervalWeeks whole weeks.
func NextDoseDate(administrationDate time.Time, intervalWeeks int) time.Time {
	return AddWeeks(administrationDate, intervalWeeks)
}

// NextDose computes the next eligible date for req. An override interval
// takes precedence over the table and skips the lookup entirely.
func (t *Table) NextDose(req Request) (Result, error) {
	age, err := AgeInWeeks(req.BirthDate, req.AdministrationDate)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		AdministrationDate: CalendarDate(req.AdministrationDate),
		AgeInWeeks:         age,
	}

	if req.OverrideIntervalWeeks != nil {
		weeks := *req.OverrideIntervalWeeks
		if weeks < 0 {
			return Result{}, fmt.Errorf("%w: interval override of %d weeks", ErrInvalidDateRange, weeks)
		}
		next := NextDoseDate(req.AdministrationDate, weeks)
		result.IntervalWeeks = &weeks
		result.NextDoseDate = &next
		result.CustomIntervalUsed = true
		return result, nil
	}

	resolution, err := t.Resolve(req.Key, req.DoseNumber, age)
	if err != nil {
		return Result{}, err
	}
	result.Alternatives = resolution.Alternatives()

	preferred := resolution.Preferred()
	if preferred.IsFinalDose() {
		return result, nil
	}

	weeks := *preferred.IntervalWeeks
	next := NextDoseDate(req.AdministrationDate, weeks)
	result.IntervalWeeks = &weeks
	result.NextDoseDate = &next
	return result, nil
}

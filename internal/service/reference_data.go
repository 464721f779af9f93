package service

import (
	"ehr-vaccine-service/internal/domain/entity"
)

// Age bands of the bundled example vaccine, in whole weeks. Week 3391 starts
// at 23737 days, so the senior band begins a few days before the 65th birthday.
const (
	adultMinAgeWeeks  = 939 // ~18 years
	adultMaxAgeWeeks  = 3390
	seniorMinAgeWeeks = 3391
	seniorMaxAgeWeeks = 7826 // ~150 years
)

func weeks(n int) *int {
	return &n
}

// ReferenceSchedules is the example dosing table loaded by the seed command.
func ReferenceSchedules() []entity.VaccineSchedule {
	adult := func(s entity.VaccineSchedule) entity.VaccineSchedule {
		s.VaccineName = "EXAMPLE_VACCINE"
		s.BrandName = "EXAMPLE_BRAND"
		s.Manufacturer = "EXAMPLE_MANUFACTURER"
		s.MinAgeWeeks = adultMinAgeWeeks
		s.MaxAgeWeeks = adultMaxAgeWeeks
		s.DoseAmount = "0.5 mL"
		s.PreferredRoute = "IM"
		s.PreferredSite = "Deltoid"
		return s
	}
	senior := func(s entity.VaccineSchedule) entity.VaccineSchedule {
		s.VaccineName = "EXAMPLE_VACCINE"
		s.BrandName = "EXAMPLE_BRAND_SENIOR"
		s.Manufacturer = "EXAMPLE_MANUFACTURER"
		s.MinAgeWeeks = seniorMinAgeWeeks
		s.MaxAgeWeeks = seniorMaxAgeWeeks
		s.DoseAmount = "0.5 mL"
		s.PreferredRoute = "IM"
		s.PreferredSite = "Deltoid"
		return s
	}

	return []entity.VaccineSchedule{
		adult(entity.VaccineSchedule{DoseNumber: 1, IntervalWeeks: weeks(1), IntervalDescription: "Standard", IsPreferred: true}),
		adult(entity.VaccineSchedule{DoseNumber: 2, IntervalWeeks: weeks(1), IntervalDescription: "Accelerated", IsPreferred: true}),
		adult(entity.VaccineSchedule{DoseNumber: 2, IntervalWeeks: weeks(4), IntervalDescription: "Extended", Priority: 1}),
		adult(entity.VaccineSchedule{DoseNumber: 3, IsPreferred: true, Notes: "Final dose of series"}),
		senior(entity.VaccineSchedule{DoseNumber: 1, IntervalWeeks: weeks(4), IntervalDescription: "Senior standard", IsPreferred: true}),
		senior(entity.VaccineSchedule{DoseNumber: 2, IsPreferred: true, Notes: "Final dose of series"}),
	}
}

// ReferenceCVXCodes are the CDC codes the bundled data relies on.
func ReferenceCVXCodes() []entity.CVXCode {
	return []entity.CVXCode{
		{Code: "20", VaccineName: "DTaP", ShortDescription: "DTaP", FullName: "Diphtheria, tetanus toxoids and acellular pertussis vaccine", VaccineStatus: "Active"},
		{Code: "94", VaccineName: "MMR", ShortDescription: "MMR", FullName: "Measles, Mumps, Rubella", Notes: "Combination MMR (live attenuated)", VaccineStatus: "Active"},
		{Code: "106", VaccineName: "DTaP, 5 pertussis antigens", ShortDescription: "DTaP-5", FullName: "DTaP, 5 pertussis antigens", Notes: "Infanrix", VaccineStatus: "Active"},
	}
}

package converter

import (
	"ehr-vaccine-service/internal/delivery/dto"
	"ehr-vaccine-service/internal/domain/dosing"
	"ehr-vaccine-service/internal/domain/entity"
)

// ScheduleToEntry converts a VaccineSchedule row to a resolver entry.
// A row that cannot be a valid entry is reported with dosing.ErrInvalidEntry.
func ScheduleToEntry(schedule *entity.VaccineSchedule) (dosing.Entry, error) {
	entry := dosing.Entry{
		ID: schedule.ID,
		Key: dosing.VaccineKey{
			VaccineName:  schedule.VaccineName,
			BrandName:    schedule.BrandName,
			Manufacturer: schedule.Manufacturer,
		},
		DoseNumber:          schedule.DoseNumber,
		MinAgeWeeks:         schedule.MinAgeWeeks,
		MaxAgeWeeks:         schedule.MaxAgeWeeks,
		IntervalWeeks:       copyInt(schedule.IntervalWeeks),
		IntervalDescription: schedule.IntervalDescription,
		Preferred:           schedule.IsPreferred,
		Priority:            schedule.Priority,
		DoseAmount:          schedule.DoseAmount,
		Route:               schedule.PreferredRoute,
		Site:                schedule.PreferredSite,
		Notes:               schedule.Notes,
		CVXCode:             schedule.CVXCode,
	}
	if err := entry.Validate(); err != nil {
		return dosing.Entry{}, err
	}
	return entry, nil
}

// SchedulesToEntries converts rows in order, stopping at the first invalid one.
func SchedulesToEntries(schedules []entity.VaccineSchedule) ([]dosing.Entry, error) {
	entries := make([]dosing.Entry, 0, len(schedules))
	for i := range schedules {
		entry, err := ScheduleToEntry(&schedules[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// EntryToResponse converts a resolver entry to ScheduleResponse DTO
func EntryToResponse(entry dosing.Entry) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		ID:                  entry.ID,
		VaccineName:         entry.Key.VaccineName,
		BrandName:           entry.Key.BrandName,
		Manufacturer:        entry.Key.Manufacturer,
		DoseNumber:          entry.DoseNumber,
		MinAgeWeeks:         entry.MinAgeWeeks,
		MaxAgeWeeks:         entry.MaxAgeWeeks,
		IntervalWeeks:       copyInt(entry.IntervalWeeks),
		IntervalDescription: entry.IntervalDescription,
		IsPreferred:         entry.Preferred,
		DoseAmount:          entry.DoseAmount,
		PreferredRoute:      entry.Route,
		PreferredSite:       entry.Site,
		Notes:               entry.Notes,
	}
}

func EntriesToResponses(entries []dosing.Entry) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(entries))
	for i, entry := range entries {
		responses[i] = EntryToResponse(entry)
	}
	return responses
}

// AlternativesToResponses never returns nil so the field encodes as [].
func AlternativesToResponses(alts []dosing.Alternative) []dto.AlternativeResponse {
	responses := make([]dto.AlternativeResponse, len(alts))
	for i, alt := range alts {
		responses[i] = dto.AlternativeResponse{
			IntervalWeeks: alt.IntervalWeeks,
			Description:   alt.Description,
			IsPreferred:   alt.Preferred,
		}
	}
	return responses
}

// EntryToDoseInfo converts the entry picked for a patient's age to DoseInfoResponse DTO
func EntryToDoseInfo(entry dosing.Entry) dto.DoseInfoResponse {
	return dto.DoseInfoResponse{
		DoseNumber:     entry.DoseNumber,
		DoseAmount:     entry.DoseAmount,
		PreferredRoute: entry.Route,
		PreferredSite:  entry.Site,
		Notes:          entry.Notes,
		MinAgeWeeks:    entry.MinAgeWeeks,
		MaxAgeWeeks:    entry.MaxAgeWeeks,
	}
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

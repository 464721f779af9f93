package entity

// ScheduleFilter is a domain-level filter for querying vaccine schedules.
// Empty fields are not filtered on.
type ScheduleFilter struct {
	VaccineName  string
	BrandName    string
	Manufacturer string
	DoseNumber   int
}

package dto

// Request DTOs. Handlers fill these from query parameters; validation tags
// declare which are required.

type ScheduleQuery struct {
	Vaccine      string `json:"vaccine" validate:"required"`
	Brand        string `json:"brand" validate:"omitempty"`
	Manufacturer string `json:"manufacturer" validate:"omitempty"`
}

type AlternativeScheduleQuery struct {
	Vaccine      string `json:"vaccine" validate:"required"`
	Brand        string `json:"brand" validate:"required"`
	Manufacturer string `json:"manufacturer" validate:"required"`
	DoseNumber   int    `json:"doseNumber" validate:"required,gte=1"`
}

type NextDoseQuery struct {
	Vaccine            string `json:"vaccine" validate:"required"`
	Brand              string `json:"brand" validate:"required"`
	Manufacturer       string `json:"manufacturer" validate:"required"`
	DoseNumber         int    `json:"doseNumber" validate:"required,gte=1"`
	AdministrationDate string `json:"date" validate:"required"` // Format: YYYY-MM-DD
	PatientID          int64  `json:"patientId" validate:"required,gte=1"`
	IntervalWeeks      *int   `json:"intervalWeeks" validate:"omitempty,gte=0,lte=520"`
}

type DoseByAgeQuery struct {
	Vaccine            string `json:"vaccine" validate:"required"`
	Brand              string `json:"brand" validate:"required"`
	Manufacturer       string `json:"manufacturer" validate:"required"`
	PatientID          int64  `json:"patientId" validate:"required,gte=1"`
	AdministrationDate string `json:"date" validate:"omitempty"` // Format: YYYY-MM-DD, defaults to today
	DoseNumber         int    `json:"doseNumber" validate:"omitempty,gte=1"`
}

type CVXCodeQuery struct {
	VaccineName string `json:"vaccineName" validate:"required"`
}

// Response DTOs

type ScheduleResponse struct {
	ID                  int64  `json:"id"`
	VaccineName         string `json:"vaccine_name"`
	BrandName           string `json:"brand_name"`
	Manufacturer        string `json:"manufacturer"`
	DoseNumber          int    `json:"dose_number"`
	MinAgeWeeks         int    `json:"min_age_weeks"`
	MaxAgeWeeks         int    `json:"max_age_weeks"`
	IntervalWeeks       *int   `json:"interval_weeks"`
	IntervalDescription string `json:"interval_description,omitempty"`
	IsPreferred         bool   `json:"is_preferred"`
	DoseAmount          string `json:"dose_amount,omitempty"`
	PreferredRoute      string `json:"preferred_route,omitempty"`
	PreferredSite       string `json:"preferred_site,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}

type AlternativeResponse struct {
	IntervalWeeks int    `json:"interval_weeks"`
	Description   string `json:"description"`
	IsPreferred   bool   `json:"is_preferred"`
}

type AlternativeScheduleResponse struct {
	Alternatives    []AlternativeResponse `json:"alternatives"`
	HasAlternatives bool                  `json:"hasAlternatives"`
}

type VaccineDoseInfo struct {
	Name            string `json:"name"`
	Brand           string `json:"brand"`
	Manufacturer    string `json:"manufacturer"`
	DoseNumber      int    `json:"doseNumber"`
	CurrentDoseDate string `json:"currentDoseDate"`
}

type NextDoseResponse struct {
	NextDoseDate       *string               `json:"nextDoseDate"`
	SeriesComplete     bool                  `json:"seriesComplete"`
	IntervalWeeks      *int                  `json:"intervalWeeks"`
	CustomIntervalUsed bool                  `json:"customIntervalUsed"`
	AgeInWeeks         int                   `json:"ageInWeeks"`
	Alternatives       []AlternativeResponse `json:"alternatives"`
	HasAlternatives    bool                  `json:"hasAlternatives"`
	Vaccine            VaccineDoseInfo       `json:"vaccine"`
}

type DoseInfoResponse struct {
	DoseNumber     int    `json:"dose_number"`
	DoseAmount     string `json:"dose_amount"`
	PreferredRoute string `json:"preferred_route"`
	PreferredSite  string `json:"preferred_site,omitempty"`
	Notes          string `json:"notes,omitempty"`
	MinAgeWeeks    int    `json:"min_age_weeks"`
	MaxAgeWeeks    int    `json:"max_age_weeks"`
}

type DoseByAgeResponse struct {
	DoseInfo   DoseInfoResponse `json:"doseInfo"`
	PatientAge float64          `json:"patientAge"`
	AgeInWeeks int              `json:"ageInWeeks"`
}

type AvailableVaccineResponse struct {
	VaccineName             string  `json:"vaccineName"`
	BrandName               string  `json:"brandName"`
	Manufacturer            string  `json:"manufacturer"`
	TotalDoses              int     `json:"totalDoses"`
	HasAlternativeSchedules bool    `json:"hasAlternativeSchedules"`
	CVXCode                 *string `json:"cvxCode"`
}

type AvailableVaccineListResponse struct {
	Vaccines []AvailableVaccineResponse `json:"vaccines"`
	Total    int                        `json:"total"`
}

type CVXCodeDetails struct {
	Code             string `json:"cvx_code"`
	VaccineName      string `json:"vaccine_name"`
	ShortDescription string `json:"short_description,omitempty"`
	FullName         string `json:"full_name,omitempty"`
	Notes            string `json:"notes,omitempty"`
	VaccineStatus    string `json:"vaccine_status,omitempty"`
}

type CVXCodeResponse struct {
	CVXCode     *string         `json:"cvxCode"`
	VaccineName string          `json:"vaccineName"`
	Details     *CVXCodeDetails `json:"details,omitempty"`
}

package entity

import (
	"time"
)

// VaccineSchedule is one reference row of the dosing schedule.
// IntervalWeeks is the interval to the next dose; NULL marks the final dose.
type VaccineSchedule struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	VaccineName         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_vaccine_schedule_slot,priority:1;index:idx_vaccine_schedule_key" json:"vaccine_name"`
	BrandName           string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_vaccine_schedule_slot,priority:2;index:idx_vaccine_schedule_key" json:"brand_name"`
	Manufacturer        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_vaccine_schedule_slot,priority:3;index:idx_vaccine_schedule_key" json:"manufacturer"`
	DoseNumber          int       `gorm:"not null;uniqueIndex:idx_vaccine_schedule_slot,priority:4" json:"dose_number"`
	MinAgeWeeks         int       `gorm:"not null;default:0;uniqueIndex:idx_vaccine_schedule_slot,priority:5" json:"min_age_weeks"`
	MaxAgeWeeks         int       `gorm:"not null" json:"max_age_weeks"`
	IntervalWeeks       *int      `json:"interval_weeks"`
	IntervalDescription string    `gorm:"type:varchar(255)" json:"interval_description,omitempty"`
	IsPreferred         bool      `gorm:"not null;default:false" json:"is_preferred"`
	Priority            int       `gorm:"not null;default:0;uniqueIndex:idx_vaccine_schedule_slot,priority:6" json:"priority"`
	DoseAmount          string    `gorm:"type:varchar(50)" json:"dose_amount,omitempty"`
	PreferredRoute      string    `gorm:"type:varchar(50)" json:"preferred_route,omitempty"`
	PreferredSite       string    `gorm:"type:varchar(100)" json:"preferred_site,omitempty"`
	Notes               string    `gorm:"type:text" json:"notes,omitempty"`
	CVXCode             string    `gorm:"type:varchar(10)" json:"cvx_code,omitempty"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (VaccineSchedule) TableName() string {
	return "vaccine_schedules"
}

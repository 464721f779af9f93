package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Patient holds the demographic data the scheduling logic reads.
// BirthDate is a timezone-naive calendar date.
type Patient struct {
	ID        int64          `gorm:"column:patient_id;primaryKey;autoIncrement" json:"patient_id"`
	MRN       string         `gorm:"column:mrn;type:varchar(32);uniqueIndex;not null" json:"mrn"`
	FirstName string         `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string         `gorm:"type:varchar(100);not null" json:"last_name"`
	BirthDate datatypes.Date `gorm:"type:date;not null" json:"birth_date"`
	Gender    string         `gorm:"type:varchar(1)" json:"gender"`
	Email     string         `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone     string         `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address   string         `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// DateOfBirth returns the birth date as a time.Time.
func (p *Patient) DateOfBirth() time.Time {
	return time.Time(p.BirthDate)
}

// FullName joins first and last name.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

package entity

// CVXCode is a CDC vaccine administered code.
type CVXCode struct {
	Code             string `gorm:"column:cvx_code;type:varchar(10);primaryKey" json:"cvx_code"`
	VaccineName      string `gorm:"type:varchar(255);not null;index" json:"vaccine_name"`
	ShortDescription string `gorm:"type:varchar(255)" json:"short_description,omitempty"`
	FullName         string `gorm:"type:text" json:"full_name,omitempty"`
	Notes            string `gorm:"type:text" json:"notes,omitempty"`
	VaccineStatus    string `gorm:"type:varchar(50)" json:"vaccine_status,omitempty"`
}

func (CVXCode) TableName() string {
	return "cvx_codes"
}

package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin     = 1
	RoleIDClinician = 2
	RoleIDStaff     = 3
)

// RoleNames constants
const (
	RoleAdmin     = "admin"
	RoleClinician = "clinician"
	RoleStaff     = "staff"
)

// DefaultRoles are the rows every installation starts with.
var DefaultRoles = []Role{
	{ID: RoleIDAdmin, RoleName: RoleAdmin, Description: "Full access including audit logs"},
	{ID: RoleIDClinician, RoleName: RoleClinician, Description: "Reads and registers patients, computes dose schedules"},
	{ID: RoleIDStaff, RoleName: RoleStaff, Description: "Read-only access to schedules and patients"},
}

// RoleNameByID maps a role id to its name, or "" when unknown.
func RoleNameByID(id int) string {
	for _, r := range DefaultRoles {
		if r.ID == id {
			return r.RoleName
		}
	}
	return ""
}

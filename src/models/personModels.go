package models

type Role string

const (
	RoleStudent Role = "Student"
	RoleStaff   Role = "Staff"
)

// PersonModel holds the pre-enrolled students and staff. Rows come from the
// enrollment process (seeded at startup); the API never creates or edits them.
type PersonModel struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Fullname string `json:"fullname" gorm:"type:varchar(50);not null"`
	Email    string `json:"email" gorm:"type:varchar(50);unique;not null"`
	Role     Role   `json:"role" gorm:"type:varchar(10);not null"`
}

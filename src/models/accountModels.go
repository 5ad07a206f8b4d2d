package models

// AccountModel shares its primary key with PersonModel: one account per person.
type AccountModel struct {
	Id       int          `json:"id" gorm:"primaryKey"`
	Person   *PersonModel `json:"person,omitempty" gorm:"foreignKey:Id;references:Id"`
	Username string       `json:"username" gorm:"type:varchar(50);unique;not null"`
	Password string       `json:"-" gorm:"type:varchar(255);not null"`
}

type RegisterRequest struct {
	Fullname string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

package model

// User is an admin credential gating the statistics dashboard — table users.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'admin'"      json:"role"`
	BaseModel
}

// TableName sets the table name.
func (User) TableName() string { return "users" }

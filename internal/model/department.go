package model

// Department is a donor organizational grouping — table departments.
// Departments are soft-deleted via Active=false; rows are never removed
// while donations reference them.
type Department struct {
	DepartmentID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"department_id"`
	Name         string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Active       bool   `gorm:"not null;default:true"                          json:"active"`
	BaseModel
}

// TableName sets the table name.
func (Department) TableName() string { return "departments" }

package model

// Gender values used by children and gift-idea templates.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderAny    = "any" // gift-idea templates only
)

// Child age bounds.
const (
	MinChildAge = 1
	MaxChildAge = 16
)

// Child is a beneficiary record — table children.
// Priority marks the curated set of real children, which selection
// exhausts before offering filler records. Assigned flips to true
// exactly once, when a donation is created for the child.
type Child struct {
	ChildID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"child_id"`
	Recipient string `gorm:"type:varchar(100);not null"                     json:"recipient"`
	Age       int    `gorm:"not null"                                       json:"age"`
	Gender    string `gorm:"type:varchar(10);not null"                      json:"gender"`
	GiftIdeas string `gorm:"type:text;not null;default:''"                  json:"gift_ideas"`
	Priority  bool   `gorm:"not null;default:false"                         json:"priority"`
	Assigned  bool   `gorm:"not null;default:false"                         json:"assigned"`
	BaseModel
}

// TableName sets the table name.
func (Child) TableName() string { return "children" }

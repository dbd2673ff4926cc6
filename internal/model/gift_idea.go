package model

// GiftIdea is a suggestion template keyed by (age, gender, category) —
// table gift_ideas. Gender may be "any" as a fallback bucket. Used by
// the seed tooling and the suggestion endpoint, never by the donation
// write path.
type GiftIdea struct {
	GiftIdeaID string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"gift_idea_id"`
	Age        int         `gorm:"not null"                                       json:"age"`
	Gender     string      `gorm:"type:varchar(10);not null"                      json:"gender"`
	Category   *string     `gorm:"type:varchar(50)"                               json:"category,omitempty"`
	Ideas      StringArray `gorm:"type:text[];not null"                           json:"ideas"`
	BaseModel
}

// TableName sets the table name.
func (GiftIdea) TableName() string { return "gift_ideas" }

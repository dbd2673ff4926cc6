package model

// Donation types.
const (
	DonationTypeGift = "gift"
	DonationTypeCash = "cash"
)

// Donation is an immutable pledge record — table donations.
// ChildName and DepartmentName are snapshots taken at creation time so
// the ledger survives later renames. Amount is non-nil iff the donation
// is cash. The unique index on ChildID backstops the one-donation-per-
// child invariant enforced by the assignment transaction.
type Donation struct {
	DonationID     string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"donation_id"`
	ChildID        string   `gorm:"type:uuid;not null;uniqueIndex"                 json:"child_id"`
	ChildName      string   `gorm:"type:varchar(100);not null"                     json:"child_name"`
	DonorName      string   `gorm:"type:varchar(100);not null"                     json:"donor_name"`
	DonorEmail     *string  `gorm:"type:varchar(255)"                              json:"donor_email,omitempty"`
	DepartmentID   string   `gorm:"type:uuid;not null"                             json:"department_id"`
	DepartmentName string   `gorm:"type:varchar(100);not null"                     json:"department_name"`
	DonationType   string   `gorm:"type:varchar(10);not null"                      json:"donation_type"`
	Amount         *float64 `gorm:"type:numeric(10,2)"                             json:"amount,omitempty"`
	BaseModel

	// relations
	Child      *Child      `gorm:"foreignKey:ChildID;references:ChildID"           json:"child,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID" json:"department,omitempty"`
}

// TableName sets the table name.
func (Donation) TableName() string { return "donations" }

// IsCash reports whether the donation carries a cash amount.
func (d *Donation) IsCash() bool { return d.DonationType == DonationTypeCash }

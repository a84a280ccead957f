package model

// ContactSubmission is a visitor message sent through a member's contact form.
type ContactSubmission struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	FirstName       string `gorm:"column:first_name;type:VARCHAR2(100);not null" json:"firstName"`
	LastName        string `gorm:"column:last_name;type:VARCHAR2(100);not null" json:"lastName"`
	Email           string `gorm:"column:email;type:VARCHAR2(255);not null" json:"email"`
	Phone           int64  `gorm:"column:phone" json:"phone"`
	Message         string `gorm:"column:message;type:CLOB;not null" json:"message"`
	MemberID        string `gorm:"column:member_id;type:VARCHAR2(64);not null;index:idx_contact_submission_member" json:"memberId"`
	MemberContactID string `gorm:"column:member_contact_id;type:VARCHAR2(64)" json:"memberContactId"`
	MemberEmail     string `gorm:"column:member_email;type:VARCHAR2(255)" json:"memberEmail"`

	BaseEntity
}

// TableName specifies the table name for ContactSubmission
func (*ContactSubmission) TableName() string {
	return "contact_us_submissions"
}

package model

import "encoding/json"

// MemberData is the canonical directory profile of a member.
// The table mirrors the MembersDataLatest collection of the hosted site.
type MemberData struct {
	// Primary key - member id assigned by the association's member system
	MemberID string `gorm:"column:member_id;type:VARCHAR2(64);primaryKey" json:"memberId"`

	// Identity
	FirstName   string            `gorm:"column:first_name;type:VARCHAR2(255)" json:"firstName"`
	LastName    string            `gorm:"column:last_name;type:VARCHAR2(255)" json:"lastName"`
	FullName    string            `gorm:"column:full_name;type:VARCHAR2(512);index:idx_member_data_full_name" json:"fullName"`
	Email       string            `gorm:"column:email;type:VARCHAR2(255);not null;index:idx_member_data_email" json:"email"`
	Phones      []string          `gorm:"column:phones;type:CLOB;serializer:json" json:"phones"`
	ToShowPhone string            `gorm:"column:to_show_phone;type:VARCHAR2(255)" json:"toShowPhone"`
	Action      string            `gorm:"column:action;type:VARCHAR2(16)" json:"action"`
	Licenses    []json.RawMessage `gorm:"column:licenses;type:CLOB;serializer:json" json:"licenses"`
	Memberships []string          `gorm:"column:memberships;type:CLOB;serializer:json" json:"memberships"`
	PageNumber  int               `gorm:"column:page_number" json:"pageNumber"`

	OptOut   bool     `gorm:"column:opt_out" json:"optOut"`
	ShowABMP bool     `gorm:"column:show_abmp" json:"showABMP"`
	LocHash  []string `gorm:"column:loc_hash;type:CLOB;serializer:json" json:"locHash"`

	// Display settings
	ShowLicenseNo  bool `gorm:"column:show_license_no" json:"showLicenseNo"`
	ShowName       bool `gorm:"column:show_name" json:"showName"`
	ShowBookingURL bool `gorm:"column:show_booking_url" json:"showBookingUrl"`
	ShowWebsite    bool `gorm:"column:show_website" json:"showWebsite"`
	ShowWixURL     bool `gorm:"column:show_wix_url" json:"showWixUrl"`
	IsVisible      bool `gorm:"column:is_visible;index:idx_member_data_visible" json:"isVisible"`

	URL           *string `gorm:"column:url;type:VARCHAR2(1024)" json:"url,omitempty"`
	BookingURL    string  `gorm:"column:booking_url;type:VARCHAR2(1024)" json:"bookingUrl"`
	APIBookingURL *string `gorm:"column:api_booking_url;type:VARCHAR2(1024)" json:"APIBookingUrl,omitempty"`

	// Migration enrichment
	Addresses        []Address         `gorm:"column:addresses;type:CLOB;serializer:json" json:"addresses,omitempty"`
	LogoImage        *string           `gorm:"column:logo_image;type:VARCHAR2(1024)" json:"logoImage,omitempty"`
	AboutYouHTML     *string           `gorm:"column:about_you_html;type:CLOB" json:"aboutYouHtml,omitempty"`
	AddressInfo      map[string]string `gorm:"column:address_info;type:CLOB;serializer:json" json:"addressInfo,omitempty"`
	Website          *string           `gorm:"column:website;type:VARCHAR2(1024)" json:"website,omitempty"`
	AreasOfPractices []string          `gorm:"column:areas_of_practices;type:CLOB;serializer:json" json:"areasOfPractices,omitempty"`

	// Set by the members area and the contact flow, never by a migration run
	ContactID        *string `gorm:"column:contact_id;type:VARCHAR2(64)" json:"contactId,omitempty"`
	ContactFormEmail *string `gorm:"column:contact_form_email;type:VARCHAR2(255)" json:"contactFormEmail,omitempty"`
	ShowContactForm  bool    `gorm:"column:show_contact_form" json:"showContactForm"`

	BaseEntity
}

// TableName specifies the table name for MemberData
func (*MemberData) TableName() string {
	return "member_data"
}

// Clone returns a shallow copy of m: slices and maps are shared with m.
// A nil receiver clones to an empty record.
func (m *MemberData) Clone() *MemberData {
	if m == nil {
		return &MemberData{}
	}
	out := *m
	return &out
}

// ContactEmail is the address contact form messages go to.
func (m *MemberData) ContactEmail() string {
	if m.ContactFormEmail != nil && *m.ContactFormEmail != "" {
		return *m.ContactFormEmail
	}
	return m.Email
}

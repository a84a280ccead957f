package memberdata

import "github.com/changhyeonkim/member-directory/go-api-server/internal/model"

// MemberAction is the change flag the member feed attaches to each record.
type MemberAction string

const (
	ActionUpdate MemberAction = "update"
	ActionNew    MemberAction = "new"
	ActionDrop   MemberAction = "drop"
	ActionNone   MemberAction = "none"
)

// Address visibility options as configured per address in the legacy system
const (
	VisibilityAll  = "all"
	VisibilityNone = "none"
)

// GeoHashPrecision is the geohash length used for location keys.
const GeoHashPrecision = 3

// DisplaySettings are the profile display flags every built record starts from.
type DisplaySettings struct {
	ShowLicenseNo  bool
	ShowName       bool
	ShowBookingURL bool
	ShowWebsite    bool
	ShowWixURL     bool
}

// DefaultDisplaySettings returns the defaults applied by CreateCoreMemberData.
func DefaultDisplaySettings() DisplaySettings {
	return DisplaySettings{
		ShowLicenseNo:  true,
		ShowName:       true,
		ShowBookingURL: false,
		ShowWebsite:    false,
		ShowWixURL:     true,
	}
}

func (s DisplaySettings) applyTo(record *model.MemberData) {
	record.ShowLicenseNo = s.ShowLicenseNo
	record.ShowName = s.ShowName
	record.ShowBookingURL = s.ShowBookingURL
	record.ShowWebsite = s.ShowWebsite
	record.ShowWixURL = s.ShowWixURL
}

package memberdata

import (
	"strings"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/model"
)

// CreateFullName joins the trimmed first and last name with a single space.
func CreateFullName(firstName, lastName string) string {
	return strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
}

// DetermineAddressDisplayStatus maps a visibility value to an address status.
// Unknown and empty values fall back to state/city/zip.
func DetermineAddressDisplayStatus(visibility string) string {
	switch strings.ToLower(strings.TrimSpace(visibility)) {
	case VisibilityAll:
		return model.AddressStatusFullAddress
	case VisibilityNone:
		return model.AddressStatusDontShow
	default:
		return model.AddressStatusStateCityZip
	}
}

// ProcessInterests splits a comma separated interests string, dropping empty entries.
func ProcessInterests(interests string) []string {
	out := []string{}
	for _, interest := range strings.Split(interests, ",") {
		if trimmed := strings.TrimSpace(interest); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// present reports whether an optional string is set and non-empty.
func present(s *string) bool {
	return s != nil && *s != ""
}

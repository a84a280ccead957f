package memberdata

import (
	"context"
	"encoding/json"
	"slices"
	"strings"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/model"
)

const bookingURLPrefix = "http"

// CreateCoreMemberData builds the canonical record for input on top of existing.
// It returns nil when input fails ValidateCoreMemberData.
//
// Merge precedence: the result starts as a shallow copy of existing (nil means
// an empty record). Identity fields, pageNumber, optOut, showABMP, locHash, the
// default display settings, isVisible, url, bookingUrl and APIBookingUrl are
// always overwritten. Every other field of existing survives unchanged.
func CreateCoreMemberData(ctx context.Context, input *RawMemberInput, existing *model.MemberData, currentPageNumber int) *model.MemberData {
	if !ValidateCoreMemberData(ctx, input) {
		return nil
	}

	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	migration := input.MigrationData

	record := existing.Clone()
	record.MemberID = input.MemberID
	record.FirstName = firstName
	record.LastName = lastName
	record.FullName = CreateFullName(firstName, lastName)
	record.Email = strings.TrimSpace(input.Email)
	record.Phones = orEmpty(slices.Clone(input.Phones))
	record.ToShowPhone = migration.showPhone()
	record.Action = string(input.Action)
	record.Licenses = orEmpty(slices.Clone(input.Licenses))
	record.Memberships = slices.Clone(input.Memberships)
	record.PageNumber = currentPageNumber
	record.OptOut = migration.optedOut()
	record.ShowABMP = migration.showMemberSince()
	record.LocHash = GenerateGeoHash(input.Addresses)
	DefaultDisplaySettings().applyTo(record)
	record.IsVisible = input.Action != ActionDrop
	record.URL = input.URL
	record.BookingURL = bookingURL(migration.scheduleCode())
	record.APIBookingURL = migration.scheduleCode() // kept as a reference to the original value

	return record
}

func bookingURL(scheduleCode *string) string {
	if scheduleCode != nil && strings.HasPrefix(*scheduleCode, bookingURLPrefix) {
		return *scheduleCode
	}
	return ""
}

func orEmpty[T string | json.RawMessage](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

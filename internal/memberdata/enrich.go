package memberdata

import "github.com/changhyeonkim/member-directory/go-api-server/internal/model"

// EnrichWithMigrationData copies the optional legacy fields onto record.
// logoImage, aboutYouHtml and addressInfo are always overwritten, even with nil.
// website (and showWebsite) and areasOfPractices are only set when present.
func EnrichWithMigrationData(record *model.MemberData, migration *MigrationData) {
	if migration == nil {
		return
	}

	record.LogoImage = migration.LogoURL
	record.AboutYouHTML = migration.DetailText
	record.AddressInfo = migration.AddressInfo

	if present(migration.Website) {
		record.Website = migration.Website
		record.ShowWebsite = true
	}

	if present(migration.Interests) {
		record.AreasOfPractices = ProcessInterests(*migration.Interests)
	}
}

// ProcessAddressesWithStatus returns a copy of each address annotated with its
// display status, in input order.
func ProcessAddressesWithStatus(addresses []model.Address, displayConfiguration map[string]string) []model.Address {
	if len(addresses) == 0 {
		return []model.Address{}
	}

	out := make([]model.Address, 0, len(addresses))
	for _, address := range addresses {
		status := model.AddressStatusStateCityZip
		if visibility := displayConfiguration[address.Key]; visibility != "" {
			status = DetermineAddressDisplayStatus(visibility)
		}
		out = append(out, address.WithStatus(status))
	}
	return out
}

// EnrichWithAddressData sets record.Addresses when addresses is non-empty and
// leaves it untouched otherwise.
func EnrichWithAddressData(record *model.MemberData, addresses []model.Address, addressDisplayInfo map[string]string) {
	if len(addresses) == 0 {
		return
	}
	record.Addresses = ProcessAddressesWithStatus(addresses, addressDisplayInfo)
}

package member

import (
	"context"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// syncedColumns are the columns a sync run owns. Contact columns belong to the
// members area and the contact flow and survive every upsert.
var syncedColumns = []string{
	"first_name", "last_name", "full_name", "email", "phones", "to_show_phone",
	"action", "licenses", "memberships", "page_number", "opt_out", "show_abmp",
	"loc_hash", "show_license_no", "show_name", "show_booking_url", "show_website",
	"show_wix_url", "is_visible", "url", "booking_url", "api_booking_url",
	"addresses", "logo_image", "about_you_html", "address_info", "website",
	"areas_of_practices", "updated_at", "updated_by",
}

type MemberDataRepository struct{}

func NewMemberDataRepository() *MemberDataRepository {
	return &MemberDataRepository{}
}

func (r *MemberDataRepository) FindByMemberID(ctx context.Context, db *gorm.DB, memberID string) (*model.MemberData, error) {
	var record model.MemberData
	err := db.WithContext(ctx).Where("member_id = ?", memberID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert inserts record or updates the synced columns of the existing row.
func (r *MemberDataRepository) Upsert(ctx context.Context, db *gorm.DB, record *model.MemberData) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "member_id"}},
		DoUpdates: clause.AssignmentColumns(syncedColumns),
	}).Create(record).Error
}

// UpdateContactID stores the CRM contact id of a member. It reports whether a row was updated.
func (r *MemberDataRepository) UpdateContactID(ctx context.Context, db *gorm.DB, memberID, contactID string) (bool, error) {
	result := db.WithContext(ctx).
		Model(&model.MemberData{}).
		Where("member_id = ?", memberID).
		Updates(map[string]any{
			"contact_id": contactID,
			"updated_by": model.ActorContactForm,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

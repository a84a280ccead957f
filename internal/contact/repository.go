package contact

import (
	"context"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/model"
	"gorm.io/gorm"
)

type ContactSubmissionRepository struct{}

func NewContactSubmissionRepository() *ContactSubmissionRepository {
	return &ContactSubmissionRepository{}
}

func (r *ContactSubmissionRepository) Create(ctx context.Context, db *gorm.DB, submission *model.ContactSubmission) error {
	return db.WithContext(ctx).Create(submission).Error
}

func (r *ContactSubmissionRepository) FindByMemberID(ctx context.Context, db *gorm.DB, memberID string) ([]model.ContactSubmission, error) {
	var submissions []model.ContactSubmission
	err := db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("id").
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

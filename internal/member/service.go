package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/memberdata"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/model"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type MemberService struct {
	db                   *gorm.DB
	memberDataRepository *MemberDataRepository
}

// MemberService is the lookup collaborator of the member data pipeline.
var _ memberdata.ExistingFinder = (*MemberService)(nil)

func NewMemberService(db *gorm.DB, memberDataRepository *MemberDataRepository) *MemberService {
	return &MemberService{
		db:                   db,
		memberDataRepository: memberDataRepository,
	}
}

// GetMember returns the stored record of memberID or an error wrapping ErrMemberNotFound.
func (s *MemberService) GetMember(ctx context.Context, memberID string) (*model.MemberData, error) {
	record, err := s.memberDataRepository.FindByMemberID(ctx, s.db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("회원을 찾을 수 없습니다 memberID=%s %w", memberID, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}
	return record, nil
}

// FindExisting returns the stored record of memberID, or (nil, nil) when there is none.
func (s *MemberService) FindExisting(ctx context.Context, memberID string) (*model.MemberData, error) {
	record, err := s.memberDataRepository.FindByMemberID(ctx, s.db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("기존 회원 데이터 조회 실패 memberID=%s: %w", memberID, err)
	}
	return record, nil
}

// SaveContactID persists the CRM contact id created for memberID.
func (s *MemberService) SaveContactID(ctx context.Context, memberID, contactID string) error {
	updated, err := s.memberDataRepository.UpdateContactID(ctx, s.db, memberID, contactID)
	if err != nil {
		return fmt.Errorf("contactId 저장 실패 memberID=%s: %w", memberID, err)
	}
	if !updated {
		return fmt.Errorf("contactId 저장 대상 없음 memberID=%s %w", memberID, ErrMemberNotFound)
	}

	logger.FromContext(ctx).Info("contactId 저장 완료", "memberId", memberID, "contactId", contactID)
	return nil
}

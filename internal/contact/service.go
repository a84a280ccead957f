package contact

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/member"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/model"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/platform"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/metrics"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/siteconfig"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Platform is the part of the hosted platform the contact flow needs.
type Platform interface {
	CreateMember(ctx context.Context, details platform.ContactDetails) (string, error)
	TriggerAutomation(ctx context.Context, triggerID string, payload any) (bool, error)
}

type ContactService struct {
	db                          *gorm.DB
	memberService               *member.MemberService
	siteConfigService           *siteconfig.SiteConfigService
	platform                    Platform
	contactSubmissionRepository *ContactSubmissionRepository
}

func NewContactService(
	db *gorm.DB,
	memberService *member.MemberService,
	siteConfigService *siteconfig.SiteConfigService,
	platform Platform,
	contactSubmissionRepository *ContactSubmissionRepository,
) *ContactService {
	return &ContactService{
		db:                          db,
		memberService:               memberService,
		siteConfigService:           siteConfigService,
		platform:                    platform,
		contactSubmissionRepository: contactSubmissionRepository,
	}
}

// Submit delivers a contact form message to memberID. Members with the contact
// form turned off get nothing and the response reports no email was triggered.
func (s *ContactService) Submit(ctx context.Context, memberID string, request *ContactRequest) (*ContactResponse, error) {
	log := logger.FromContext(ctx).With("memberId", memberID)

	var (
		record    *model.MemberData
		triggerID string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.memberService.GetMember(gctx, memberID)
		if err != nil {
			return err
		}
		record = found
		return nil
	})
	g.Go(func() error {
		id, err := s.siteConfigService.AutomationEmailTriggerID(gctx)
		if err != nil {
			return err
		}
		triggerID = id
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("contact submission: %w", err)
	}

	if !record.ShowContactForm {
		log.Info("회원 연락 폼 비활성화 - 제출 건너뜀")
		metrics.ContactSubmissionsTotal.WithLabelValues("disabled").Inc()
		return &ContactResponse{EmailTriggered: false}, nil
	}

	contactID, err := s.ensureContactID(ctx, record)
	if err != nil {
		return nil, err
	}

	emailTriggered, err := s.platform.TriggerAutomation(ctx, triggerID, automationPayload{
		ContactID: contactID,
		Name:      fmt.Sprintf("%s %s", request.FirstName, request.LastName),
		Email:     request.Email,
		Phone:     request.Phone,
		Message:   request.Message,
	})
	if err != nil {
		log.Error("자동화 트리거 실패", "triggerId", triggerID, "error", err)
		return nil, fmt.Errorf("trigger automation: %w", err)
	}

	submission := &model.ContactSubmission{
		FirstName:       request.FirstName,
		LastName:        request.LastName,
		Email:           request.Email,
		Phone:           phoneNumber(request.Phone),
		Message:         request.Message,
		MemberID:        memberID,
		MemberContactID: contactID,
	}
	actor := model.ActorContactForm
	submission.CreatedBy = &actor
	submission.UpdatedBy = &actor
	if record.ContactFormEmail != nil {
		submission.MemberEmail = *record.ContactFormEmail
	}
	if err := s.contactSubmissionRepository.Create(ctx, s.db, submission); err != nil {
		log.Error("연락 폼 제출 저장 실패", "error", err)
		return nil, fmt.Errorf("연락 폼 제출 저장 실패: %w", err)
	}

	metrics.ContactSubmissionsTotal.WithLabelValues("triggered").Inc()
	log.Info("연락 폼 제출 완료",
		"contactId", contactID,
		"visitorEmail", logger.MaskEmail(request.Email),
		"emailTriggered", emailTriggered,
	)
	return &ContactResponse{EmailTriggered: emailTriggered}, nil
}

// ensureContactID returns the member's CRM contact id, creating the contact
// for members that never logged in.
func (s *ContactService) ensureContactID(ctx context.Context, record *model.MemberData) (string, error) {
	if record.ContactID != nil && *record.ContactID != "" {
		return *record.ContactID, nil
	}

	logger.FromContext(ctx).Info("회원 contactId 없음 - 새 연락처 생성", "memberId", record.MemberID)

	details := platform.ContactDetails{
		FirstName: record.FirstName,
		LastName:  record.LastName,
		Email:     record.Email,
		Phones:    record.Phones,
	}
	if record.ContactFormEmail != nil {
		details.ContactFormEmail = *record.ContactFormEmail
	}

	contactID, err := s.platform.CreateMember(ctx, details)
	if err != nil {
		return "", fmt.Errorf("create member contact: %w", err)
	}
	if err := s.memberService.SaveContactID(ctx, record.MemberID, contactID); err != nil {
		return "", err
	}
	return contactID, nil
}

// phoneNumber keeps the digits of a phone number, 0 when there are none.
func phoneNumber(phone string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

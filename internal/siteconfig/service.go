package siteconfig

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/model"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type SiteConfigService struct {
	db                   *gorm.DB
	siteConfigRepository *SiteConfigRepository
}

func NewSiteConfigService(db *gorm.DB, siteConfigRepository *SiteConfigRepository) *SiteConfigService {
	return &SiteConfigService{
		db:                   db,
		siteConfigRepository: siteConfigRepository,
	}
}

// GetValue returns the value stored under key. A missing or blank value
// wraps ErrConfigNotFound.
func (s *SiteConfigService) GetValue(ctx context.Context, key string) (string, error) {
	cfg, err := s.siteConfigRepository.FindByKey(ctx, s.db, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.FromContext(ctx).Error("사이트 설정을 찾을 수 없습니다", "key", key)
			return "", fmt.Errorf("site config key=%s: %w", key, ErrConfigNotFound)
		}
		return "", fmt.Errorf("사이트 설정 조회 실패 key=%s: %w", key, err)
	}

	value := strings.TrimSpace(cfg.Value)
	if value == "" {
		logger.FromContext(ctx).Error("사이트 설정 값이 비어 있습니다", "key", key)
		return "", fmt.Errorf("site config key=%s is blank: %w", key, ErrConfigNotFound)
	}
	return value, nil
}

// AutomationEmailTriggerID returns the automation fired for contact form messages.
func (s *SiteConfigService) AutomationEmailTriggerID(ctx context.Context) (string, error) {
	return s.GetValue(ctx, model.ConfigKeyAutomationEmailTriggerID)
}

// SetValue stores value under key, replacing any previous value.
func (s *SiteConfigService) SetValue(ctx context.Context, key, value string) error {
	if err := s.siteConfigRepository.Upsert(ctx, s.db, &model.SiteConfig{Key: key, Value: value}); err != nil {
		return fmt.Errorf("사이트 설정 저장 실패 key=%s: %w", key, err)
	}
	return nil
}

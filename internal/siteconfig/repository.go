package siteconfig

import (
	"context"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteConfigRepository struct{}

func NewSiteConfigRepository() *SiteConfigRepository {
	return &SiteConfigRepository{}
}

func (r *SiteConfigRepository) FindByKey(ctx context.Context, db *gorm.DB, key string) (*model.SiteConfig, error) {
	var cfg model.SiteConfig
	err := db.WithContext(ctx).Where("config_key = ?", key).First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *SiteConfigRepository) Upsert(ctx context.Context, db *gorm.DB, cfg *model.SiteConfig) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"config_value", "updated_at"}),
	}).Create(cfg).Error
}

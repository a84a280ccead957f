package model

import (
	"time"
)

// Actors recorded in CreatedBy / UpdatedBy
const (
	ActorMigration   = "migration"
	ActorContactForm = "contact-form"
)

// GORM이 CreatedAt, UpdatedAt을 자동으로 관리
// CreatedBy, UpdatedBy는 member sync(ActorMigration) / contact flow(ActorContactForm)에서 명시적으로 설정
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"` // GORM이 자동 관리
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"` // GORM이 자동 관리
	CreatedBy *string   `gorm:"column:created_by;type:VARCHAR2(64)" json:"-"`
	UpdatedBy *string   `gorm:"column:updated_by;type:VARCHAR2(64)" json:"-"`
}

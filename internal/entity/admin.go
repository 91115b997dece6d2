package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppConfig struct {
	Key       string    `gorm:"size:100;primaryKey;column:config_key" json:"config_key"`
	Value     string    `gorm:"type:text;column:config_value" json:"config_value"`
	UpdatedBy uuid.UUID `gorm:"type:uuid" json:"updated_by"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *AppConfig) TableName() string {
	return "app_config"
}

// AdminLog records every mutating action taken through the admin panel.
type AdminLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AdminID     uuid.UUID `gorm:"type:uuid;not null;index" json:"admin_id"`
	Admin       User      `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE" json:"-"`
	Action      string    `gorm:"size:50;not null" json:"action"`
	TargetTable string    `gorm:"size:50" json:"target_table"`
	TargetID    string    `gorm:"size:64" json:"target_id"`
	Details     string    `gorm:"type:text" json:"details"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (l *AdminLog) TableName() string {
	return "admin_logs"
}

func (l *AdminLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

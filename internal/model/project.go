package model

import (
	"time"

	"gorm.io/gorm"
)

type Project struct {
	ID         string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	PublicCode string `gorm:"type:varchar(16);uniqueIndex:uk_public_code" json:"public_code"`

	// OwnerID is the legacy direct owner reference. The same user also holds
	// the root membership row; access resolution honors either.
	OwnerID uint `gorm:"not null;index:idx_owner_id" json:"owner_id"`

	// Digests only. The plaintext PIN and access key exist solely in the
	// creation response.
	PinHash       string `gorm:"type:varchar(128);not null" json:"-"`
	AccessKeyHash string `gorm:"type:varchar(128)" json:"-"`

	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Owner   *User           `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Members []ProjectMember `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
}

func (Project) TableName() string { return "projects" }

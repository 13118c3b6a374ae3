package model

import "time"

type ProjectMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID string    `gorm:"type:varchar(36);not null;uniqueIndex:uk_project_user" json:"project_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uk_project_user;index:idx_user_id" json:"user_id"`
	Role      Role      `gorm:"type:varchar(10);not null;default:user" json:"role"`
	JoinedAt  time.Time `gorm:"autoCreateTime" json:"joined_at"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ProjectMember) TableName() string { return "project_members" }

package service

import (
	"errors"

	"github.com/ADI-2707/Web-App/internal/model"
	"gorm.io/gorm"
)

// ErrAccessDenied is returned when the requester has no active membership
// in the target project. Handlers surface it as a bare 403 without
// distinguishing permission from existence.
var ErrAccessDenied = errors.New("40302:access denied")

// Access is the resolved standing of a user inside one project.
type Access struct {
	Role    model.Role `json:"role"`
	IsOwner bool       `json:"is_owner"`
}

// resolveAccess unifies the two ownership representations: the legacy
// direct owner reference on the project row and the root membership role.
// The ownership check takes precedence over any stored membership row, so
// the owner is canonically root even if a stray row says otherwise. Every
// read path (overview, search, lists) must go through this one function.
func resolveAccess(db *gorm.DB, project *model.Project, userID uint) (Access, error) {
	if project.OwnerID == userID {
		return Access{Role: model.RoleRoot, IsOwner: true}, nil
	}

	var member model.ProjectMember
	err := db.Where("project_id = ? AND user_id = ? AND is_active = ?", project.ID, userID, true).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Access{}, ErrAccessDenied
		}
		return Access{}, err
	}

	if member.Role == model.RoleRoot {
		return Access{Role: model.RoleRoot, IsOwner: true}, nil
	}
	return Access{Role: member.Role, IsOwner: false}, nil
}
